package engine

import (
	"fmt"

	"github.com/cloudmigrate/migration-estimator/internal/decision"
)

// validate rejects an invalid configuration deterministically, before any
// estimation runs. The first offending field is reported.
func (e *Engine) validate(cfg MigrationConfig) error {
	if cfg.DataSizeGB <= 0 {
		return &ConfigError{Field: "data_size_gb", Reason: "must be positive"}
	}

	for _, m := range cfg.Mechanisms {
		if !m.IsValid() || m == decision.MechanismNone {
			return &ConfigError{Field: "mechanisms", Reason: fmt.Sprintf("unknown mechanism %q", m)}
		}
	}

	if cfg.mechanismEnabled(decision.MechanismDataSync) {
		if _, ok := e.catalog.AgentProfile(cfg.Agent.InstanceType); !ok {
			return &ConfigError{
				Field:  "agent.instance_type",
				Reason: fmt.Sprintf("unknown instance type %q", cfg.Agent.InstanceType),
			}
		}
		if _, ok := e.catalog.FileSizeMultiplier(cfg.Agent.FileSizeCategory); !ok {
			return &ConfigError{
				Field:  "agent.file_size_category",
				Reason: fmt.Sprintf("unknown file size category %q", cfg.Agent.FileSizeCategory),
			}
		}
	}

	if cfg.mechanismEnabled(decision.MechanismDMS) {
		if _, ok := e.catalog.ReplicationProfile(cfg.DB.InstanceType); !ok {
			return &ConfigError{
				Field:  "database.instance_type",
				Reason: fmt.Sprintf("unknown replication instance class %q", cfg.DB.InstanceType),
			}
		}
		if !cfg.DB.Mode.IsValid() {
			return &ConfigError{
				Field:  "database.mode",
				Reason: fmt.Sprintf("unknown migration mode %q", cfg.DB.Mode),
			}
		}
	}

	if cfg.mechanismEnabled(decision.MechanismSnowball) {
		if _, ok := e.catalog.DeviceSpec(cfg.Device.Type); !ok {
			return &ConfigError{
				Field:  "device.type",
				Reason: fmt.Sprintf("unknown device type %q", cfg.Device.Type),
			}
		}
		if !cfg.Device.Destination.IsValid() {
			return &ConfigError{
				Field:  "device.destination",
				Reason: fmt.Sprintf("unknown shipping destination %q", cfg.Device.Destination),
			}
		}
	}

	if cfg.Network.Pattern != "" {
		if _, ok := e.catalog.Pattern(cfg.Network.Pattern); !ok {
			return &ConfigError{
				Field:  "network.pattern",
				Reason: fmt.Sprintf("unknown network pattern %q", cfg.Network.Pattern),
			}
		}
	}

	return nil
}
