package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PriceOverrides is an optional operator-supplied YAML document that adjusts
// individual fallback prices without rebuilding the binary. Only the fields
// present in the file are overridden.
type PriceOverrides struct {
	Compute       map[string]float64 `yaml:"compute"`
	Replication   map[string]float64 `yaml:"replication"`
	Storage       map[string]float64 `yaml:"storage"`
	TransferPerGB *float64           `yaml:"transfer_per_gb"`
}

// LoadPriceOverrides reads a PriceOverrides document from path.
func LoadPriceOverrides(path string) (*PriceOverrides, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read price overrides: %w", err)
	}
	var overrides PriceOverrides
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("parse price overrides: %w", err)
	}
	return &overrides, nil
}

// ApplyPriceOverrides merges the overrides into the catalog's fallback table.
// Called once during startup, before the catalog is shared.
func (c *Catalog) ApplyPriceOverrides(overrides *PriceOverrides) {
	if overrides == nil {
		return
	}
	fallback := c.fallback
	fallback.Compute = mergeRates(fallback.Compute, overrides.Compute)
	fallback.Replication = mergeRates(fallback.Replication, overrides.Replication)
	fallback.Storage = mergeRates(fallback.Storage, overrides.Storage)
	if overrides.TransferPerGB != nil {
		fallback.TransferPerGB = *overrides.TransferPerGB
	}
	c.fallback = fallback
}

func mergeRates(base, overrides map[string]float64) map[string]float64 {
	if len(overrides) == 0 {
		return base
	}
	merged := make(map[string]float64, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
