// Package cost turns resolved unit prices and an estimated duration into an
// auditable migration cost breakdown.
package cost

import (
	"time"

	"github.com/cloudmigrate/migration-estimator/internal/pricing"
)

// Fixed fees, USD.
const (
	serviceFeePerGB       = 0.0125
	complianceFeePerFrame = 500.0
	monitoringFeePerDay   = 200.0
	telemetryFeePerAgent  = 50.0 // per agent per day
)

// Component names used in a breakdown. Stable keys for callers and reports.
const (
	ComponentCompute       = "compute"
	ComponentTransfer      = "transfer"
	ComponentStorage       = "storage"
	ComponentDedicatedLine = "dedicated_line"
	ComponentServiceFee    = "service_fee"
	ComponentCompliance    = "compliance"
	ComponentMonitoring    = "monitoring"
	ComponentTelemetry     = "telemetry"
)

// Input is everything the aggregation needs besides resolved prices.
type Input struct {
	DataSizeGB           float64
	DurationDays         float64
	AgentCount           int
	ComplianceFrameworks []string
}

// Component is a single named cost line with the unit price that produced
// it and where that price came from.
type Component struct {
	Name      string         `json:"name"`
	AmountUSD float64        `json:"amount_usd"`
	UnitPrice float64        `json:"unit_price,omitempty"`
	Source    pricing.Source `json:"source,omitempty"`
}

// Breakdown is the aggregated cost result. ResolvedAt is the earliest
// resolution time among the priced components, kept for audit.
type Breakdown struct {
	Components []Component `json:"components"`
	TotalUSD   float64     `json:"total_usd"`
	ResolvedAt time.Time   `json:"resolved_at"`
}

// Component returns the named component, or a zero Component if absent.
func (b Breakdown) Component(name string) Component {
	for _, c := range b.Components {
		if c.Name == name {
			return c
		}
	}
	return Component{}
}

// Aggregate is a pure function over its inputs. Priced components carry the
// provenance flag of the price that produced them; fixed-fee components
// carry no source.
func Aggregate(in Input, prices pricing.BatchResult) Breakdown {
	agents := in.AgentCount
	if agents < 1 {
		agents = 1
	}
	hours := in.DurationDays * 24

	components := []Component{
		{
			Name:      ComponentCompute,
			AmountUSD: prices.Compute.Amount * float64(agents) * hours,
			UnitPrice: prices.Compute.Amount,
			Source:    prices.Compute.Source,
		},
		{
			Name:      ComponentTransfer,
			AmountUSD: in.DataSizeGB * prices.Transfer.Amount,
			UnitPrice: prices.Transfer.Amount,
			Source:    prices.Transfer.Source,
		},
		{
			Name:      ComponentStorage,
			AmountUSD: in.DataSizeGB * prices.Storage.Amount,
			UnitPrice: prices.Storage.Amount,
			Source:    prices.Storage.Source,
		},
		{
			Name:      ComponentDedicatedLine,
			AmountUSD: prices.DedicatedLine.Amount * hours,
			UnitPrice: prices.DedicatedLine.Amount,
			Source:    prices.DedicatedLine.Source,
		},
		{
			Name:      ComponentServiceFee,
			AmountUSD: in.DataSizeGB * serviceFeePerGB,
		},
		{
			Name:      ComponentCompliance,
			AmountUSD: complianceFeePerFrame * float64(len(in.ComplianceFrameworks)),
		},
		{
			Name:      ComponentMonitoring,
			AmountUSD: monitoringFeePerDay * in.DurationDays,
		},
		{
			Name:      ComponentTelemetry,
			AmountUSD: telemetryFeePerAgent * float64(agents) * in.DurationDays,
		},
	}

	total := 0.0
	for _, c := range components {
		total += c.AmountUSD
	}

	return Breakdown{
		Components: components,
		TotalUSD:   total,
		ResolvedAt: resolvedAt(prices),
	}
}

func resolvedAt(prices pricing.BatchResult) time.Time {
	at := prices.Compute.ResolvedAt
	for _, v := range []pricing.Value{prices.Storage, prices.Transfer, prices.DedicatedLine} {
		if at.IsZero() || (!v.ResolvedAt.IsZero() && v.ResolvedAt.Before(at)) {
			at = v.ResolvedAt
		}
	}
	return at
}
