package throughput

import (
	"math"

	"github.com/cloudmigrate/migration-estimator/internal/catalog"
)

// NetworkConditions are the caller-supplied link characteristics shared by
// the network-bound mechanisms.
type NetworkConditions struct {
	BandwidthMbps         float64 `json:"bandwidth_mbps"`
	LatencyMs             float64 `json:"latency_ms"`
	JitterMs              float64 `json:"jitter_ms"`
	PacketLossPct         float64 `json:"packet_loss_pct"`
	QoSEnabled            bool    `json:"qos_enabled"`
	DedicatedBandwidthPct float64 `json:"dedicated_bandwidth_pct"`
	Pattern               string  `json:"pattern"`
}

// networkChain builds the network efficiency chain: latency, jitter, packet
// loss and QoS factors plus the pattern's efficiency coefficient. Each
// degradation factor has a floor so a hostile link degrades throughput but
// never zeroes it.
func networkChain(cat *catalog.Catalog, cond NetworkConditions) Chain {
	qos := 1.0
	if cond.QoSEnabled {
		qos = 1.2
	}
	return Chain{
		{Name: "latency", Value: math.Max(0.4, 1-(cond.LatencyMs-5)/500)},
		{Name: "jitter", Value: math.Max(0.8, 1-cond.JitterMs/100)},
		{Name: "packet_loss", Value: math.Max(0.6, 1-cond.PacketLossPct/10)},
		{Name: "qos", Value: qos},
		{Name: "pattern", Value: cat.PatternEfficiency(cond.Pattern)},
	}
}

// availableBandwidth is the share of the link this migration may consume.
func (n NetworkConditions) availableBandwidth() float64 {
	return n.BandwidthMbps * n.DedicatedBandwidthPct / 100
}
