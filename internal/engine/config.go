package engine

import (
	"github.com/cloudmigrate/migration-estimator/internal/catalog"
	"github.com/cloudmigrate/migration-estimator/internal/decision"
	"github.com/cloudmigrate/migration-estimator/internal/throughput"
)

// MigrationConfig carries every caller-supplied parameter for one
// estimation pass. It is immutable for the duration of the request.
type MigrationConfig struct {
	ProjectName string `json:"project_name,omitempty"`

	DataSizeGB     float64  `json:"data_size_gb"`
	SourceLocation string   `json:"source_location"`
	TargetRegion   string   `json:"target_region"`
	DataTypes      []string `json:"data_types,omitempty"`
	StorageClass   string   `json:"storage_class,omitempty"`

	// Mechanisms selects which transfer mechanisms to estimate. Empty
	// means all of them.
	Mechanisms []decision.Mechanism `json:"mechanisms,omitempty"`

	Network NetworkConfig  `json:"network"`
	Agent   AgentConfig    `json:"agent"`
	DB      DatabaseConfig `json:"database"`
	Device  DeviceConfig   `json:"device"`

	ComplianceFrameworks []string `json:"compliance_frameworks,omitempty"`
	DataClassification   string   `json:"data_classification,omitempty"`
	DataResidency        string   `json:"data_residency,omitempty"`

	// ExternalAnalysis is free text produced outside the engine, attached
	// to the recommendation verbatim. It never influences decision logic.
	ExternalAnalysis string `json:"external_analysis,omitempty"`
}

// NetworkConfig describes the link between the source site and the target
// region.
type NetworkConfig struct {
	BandwidthMbps         float64 `json:"bandwidth_mbps"`
	LatencyMs             float64 `json:"latency_ms,omitempty"` // zero means use the geographic estimate
	JitterMs              float64 `json:"jitter_ms,omitempty"`
	PacketLossPct         float64 `json:"packet_loss_pct,omitempty"`
	QoSEnabled            bool    `json:"qos_enabled,omitempty"`
	DedicatedBandwidthPct float64 `json:"dedicated_bandwidth_pct,omitempty"`
	Pattern               string  `json:"pattern,omitempty"`
}

// AgentConfig selects the file-sync agent fleet.
type AgentConfig struct {
	InstanceType     string                   `json:"instance_type,omitempty"`
	Count            int                      `json:"count,omitempty"`
	FileSizeCategory catalog.FileSizeCategory `json:"file_size_category,omitempty"`
	RealWorldMode    bool                     `json:"real_world_mode,omitempty"`
}

// DatabaseConfig selects the replication instance and source databases.
type DatabaseConfig struct {
	InstanceType string                   `json:"instance_type,omitempty"`
	Engines      []string                 `json:"engines,omitempty"`
	SizeGB       float64                  `json:"size_gb,omitempty"`
	Mode         throughput.MigrationMode `json:"mode,omitempty"`
}

// DeviceConfig selects the physical shipping appliance order.
type DeviceConfig struct {
	Type        string                         `json:"type,omitempty"`
	Count       int                            `json:"count,omitempty"`
	Destination throughput.ShippingDestination `json:"destination,omitempty"`
}

// Defaults applied before validation.
const (
	defaultInstanceType     = "m5.large"
	defaultReplicationClass = "dms.c5.xlarge"
	defaultDeviceType       = catalog.DeviceSnowballEdgeStorage
	defaultStorageClass     = "Standard"
	defaultBandwidthMbps    = 1000.0
	defaultDedicatedBWPct   = 100.0
)

// withDefaults fills unset optional fields so every downstream model sees a
// complete configuration.
func (c MigrationConfig) withDefaults() MigrationConfig {
	if c.Agent.InstanceType == "" {
		c.Agent.InstanceType = defaultInstanceType
	}
	if c.Agent.Count < 1 {
		c.Agent.Count = 1
	}
	if c.Agent.FileSizeCategory == "" {
		c.Agent.FileSizeCategory = "100mb_1gb"
	}
	if c.DB.InstanceType == "" {
		c.DB.InstanceType = defaultReplicationClass
	}
	if c.DB.Mode == "" {
		c.DB.Mode = throughput.ModeFullLoad
	}
	if c.Device.Type == "" {
		c.Device.Type = defaultDeviceType
	}
	if c.Device.Count < 1 {
		c.Device.Count = 1
	}
	if c.Device.Destination == "" {
		c.Device.Destination = throughput.DestinationDomestic
	}
	if c.StorageClass == "" {
		c.StorageClass = defaultStorageClass
	}
	if c.Network.BandwidthMbps <= 0 {
		c.Network.BandwidthMbps = defaultBandwidthMbps
	}
	if c.Network.DedicatedBandwidthPct <= 0 || c.Network.DedicatedBandwidthPct > 100 {
		c.Network.DedicatedBandwidthPct = defaultDedicatedBWPct
	}
	if len(c.Mechanisms) == 0 {
		c.Mechanisms = []decision.Mechanism{
			decision.MechanismDataSync,
			decision.MechanismDMS,
			decision.MechanismSnowball,
		}
	}
	return c
}

// mechanismEnabled reports whether the mechanism is in the enabled set.
func (c MigrationConfig) mechanismEnabled(m decision.Mechanism) bool {
	for _, enabled := range c.Mechanisms {
		if enabled == m {
			return true
		}
	}
	return false
}
