// Package pricing resolves unit prices for migration cost estimation. Every
// resolved price carries a provenance tag: values come either from a live
// AWS Price List lookup (cached with a TTL) or from the static fallback
// table in the catalog. Lookup failures never propagate as errors; they
// degrade to the fallback and surface as warnings.
package pricing

import (
	"fmt"
	"time"
)

// ServiceKind identifies the priced service category.
type ServiceKind string

// Known service kinds.
const (
	ServiceCompute       ServiceKind = "compute"
	ServiceReplication   ServiceKind = "replication"
	ServiceStorage       ServiceKind = "storage"
	ServiceTransfer      ServiceKind = "transfer"
	ServiceDedicatedLine ServiceKind = "dedicated_line"
)

// Key identifies a single unit price. Identity is all three fields.
type Key struct {
	Service   ServiceKind `json:"service"`
	Parameter string      `json:"parameter"` // instance type, storage class, port speed...
	Region    string      `json:"region"`
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Service, k.Parameter, k.Region)
}

// Source tags where a resolved price came from.
type Source string

// Price sources.
const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Value is a resolved unit price with provenance.
type Value struct {
	Amount     float64   `json:"amount"`
	Source     Source    `json:"source"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// Warning records a non-fatal pricing degradation: the affected key and why
// the live value could not be used.
type Warning struct {
	Key    Key    `json:"key"`
	Reason string `json:"reason"`
}

// BatchResult carries the four unit prices the cost aggregator needs. All
// fields are always populated; a failed lookup holds the fallback value.
type BatchResult struct {
	Compute       Value     `json:"compute"`
	Storage       Value     `json:"storage"`
	Transfer      Value     `json:"transfer"`
	DedicatedLine Value     `json:"dedicated_line"`
	Warnings      []Warning `json:"warnings,omitempty"`
}

// BatchSpec names the concrete services a batch resolution should price.
type BatchSpec struct {
	InstanceType  string
	StorageClass  string
	Region        string
	BandwidthMbps float64
}
