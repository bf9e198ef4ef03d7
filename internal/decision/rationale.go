package decision

import (
	"fmt"
	"strings"
)

type rationaleInput struct {
	Source        string
	Target        string
	DataTB        float64
	BandwidthMbps float64
	LatencyMs     float64
	HasDatabases  bool
	HasLargeFiles bool
	NetworkScore  int
}

// rationale concatenates independent templated observations in a fixed
// order. Each clause is selected purely from numeric thresholds.
func rationale(in rationaleInput) string {
	parts := make([]string, 0, 6)

	switch {
	case in.LatencyMs < 30:
		parts = append(parts, fmt.Sprintf("Excellent geographic proximity between %s and %s (≈%.0fms latency)", in.Source, in.Target, in.LatencyMs))
	case in.LatencyMs < 80:
		parts = append(parts, fmt.Sprintf("Good connectivity between %s and %s (≈%.0fms latency)", in.Source, in.Target, in.LatencyMs))
	default:
		parts = append(parts, fmt.Sprintf("Significant distance between %s and %s (≈%.0fms latency)", in.Source, in.Target, in.LatencyMs))
	}

	switch {
	case in.BandwidthMbps >= 10000:
		parts = append(parts, "High-bandwidth Direct Connect enables optimal network transfer performance")
	case in.BandwidthMbps >= 1000:
		parts = append(parts, "Adequate Direct Connect bandwidth supports efficient network-based migration")
	default:
		parts = append(parts, "Limited bandwidth suggests physical transfer methods for large datasets")
	}

	if in.DataTB > 100 {
		parts = append(parts, fmt.Sprintf("Large dataset (%.1fTB) requires high-throughput migration strategy", in.DataTB))
	}
	if in.HasDatabases {
		parts = append(parts, "Database workloads require specialized migration tools with minimal downtime capabilities")
	}
	if in.HasLargeFiles {
		parts = append(parts, "Large file presence optimizes for high-throughput, parallel transfer methods")
	}

	switch {
	case in.NetworkScore >= 8:
		parts = append(parts, "Network conditions are optimal for direct cloud migration")
	case in.NetworkScore >= 6:
		parts = append(parts, "Network conditions support cloud migration with some optimization needed")
	default:
		parts = append(parts, "Network limitations suggest hybrid or physical transfer approaches")
	}

	return strings.Join(parts, ". ") + "."
}
