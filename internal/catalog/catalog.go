// Package catalog holds the immutable reference tables the estimation engine
// runs on: migration agent and replication instance profiles, Snowball device
// specifications, network pattern characteristics, the geographic latency
// matrix, compliance framework requirements and the static fallback prices
// used when live pricing is unavailable.
package catalog

import (
	"fmt"
	"sort"
)

// Catalog bundles all static reference data. It is loaded once at process
// start and treated as read-only afterwards.
type Catalog struct {
	agents       map[string]AgentProfile
	replication  map[string]ReplicationProfile
	devices      map[string]DeviceSpec
	devicePrices map[string]DevicePricing
	fileSizes    map[FileSizeCategory]float64
	patterns     map[string]NetworkPattern
	geoLatency   map[string]map[string]float64
	compliance   map[string][]string
	engines      map[string]float64
	fallback     FallbackPrices
	locations    map[string]string
}

// New returns a Catalog populated with the built-in reference tables.
func New() *Catalog {
	return &Catalog{
		agents:       agentProfiles,
		replication:  replicationProfiles,
		devices:      deviceSpecs,
		devicePrices: devicePricing,
		fileSizes:    fileSizeMultipliers,
		patterns:     networkPatterns,
		geoLatency:   geographicLatency,
		compliance:   complianceRequirements,
		engines:      engineCompatibility,
		fallback:     defaultFallbackPrices,
		locations:    priceListLocations,
	}
}

// Validate checks the internal consistency of the catalog. A failure here
// means the process cannot produce a correct estimate for at least one
// mechanism and the whole request must be aborted.
func (c *Catalog) Validate() error {
	if len(c.agents) == 0 {
		return fmt.Errorf("catalog: no agent instance profiles defined")
	}
	if len(c.replication) == 0 {
		return fmt.Errorf("catalog: no replication instance profiles defined")
	}
	if len(c.devices) == 0 {
		return fmt.Errorf("catalog: no device specs defined")
	}
	for name, spec := range c.devices {
		if spec.CapacityTB <= 0 || spec.TransferRateGbps <= 0 {
			return fmt.Errorf("catalog: device %q has non-positive capacity or transfer rate", name)
		}
		if _, ok := c.devicePrices[name]; !ok {
			return fmt.Errorf("catalog: device %q has no pricing entry", name)
		}
	}
	for _, pattern := range []string{
		PatternDirectConnectDedicated,
		PatternDirectConnectHosted,
		PatternSiteToSiteVPN,
		PatternTransitGateway,
	} {
		if _, ok := c.patterns[pattern]; !ok {
			return fmt.Errorf("catalog: network pattern %q missing", pattern)
		}
	}
	if len(c.fileSizes) == 0 {
		return fmt.Errorf("catalog: no file size multipliers defined")
	}
	return nil
}

// AgentProfile returns the performance profile for a DataSync agent instance
// type.
func (c *Catalog) AgentProfile(instanceType string) (AgentProfile, bool) {
	p, ok := c.agents[instanceType]
	return p, ok
}

// AgentInstanceTypes returns the known agent instance types in sorted order.
func (c *Catalog) AgentInstanceTypes() []string {
	return sortedKeys(c.agents)
}

// ReplicationProfile returns the performance profile for a DMS replication
// instance class.
func (c *Catalog) ReplicationProfile(instanceType string) (ReplicationProfile, bool) {
	p, ok := c.replication[instanceType]
	return p, ok
}

// ReplicationInstanceTypes returns the known replication instance classes in
// sorted order.
func (c *Catalog) ReplicationInstanceTypes() []string {
	return sortedKeys(c.replication)
}

// DeviceSpec returns the hardware specification for a Snowball device type.
func (c *Catalog) DeviceSpec(deviceType string) (DeviceSpec, bool) {
	s, ok := c.devices[deviceType]
	return s, ok
}

// DevicePricing returns the flat-fee pricing for a Snowball device type.
// Unknown device types fall back to the Snowball Edge Storage Optimized rate,
// mirroring how the service quotes unrecognized orders.
func (c *Catalog) DevicePricing(deviceType string) DevicePricing {
	if p, ok := c.devicePrices[deviceType]; ok {
		return p
	}
	return c.devicePrices[DeviceSnowballEdgeStorage]
}

// FileSizeMultiplier returns the throughput efficiency multiplier for a file
// size category.
func (c *Catalog) FileSizeMultiplier(category FileSizeCategory) (float64, bool) {
	m, ok := c.fileSizes[category]
	return m, ok
}

// Pattern returns the characteristics of a network connectivity pattern.
func (c *Catalog) Pattern(name string) (NetworkPattern, bool) {
	p, ok := c.patterns[name]
	return p, ok
}

// PatternEfficiency returns the efficiency coefficient for a network pattern,
// defaulting to 0.85 when the pattern is unrecognized.
func (c *Catalog) PatternEfficiency(name string) float64 {
	if p, ok := c.patterns[name]; ok {
		return p.Efficiency
	}
	return defaultPatternEfficiency
}

// Latency returns the estimated round-trip latency in milliseconds between a
// source location and a target region. Unknown pairs default to 50ms.
func (c *Catalog) Latency(sourceLocation, targetRegion string) float64 {
	if regions, ok := c.geoLatency[sourceLocation]; ok {
		if ms, ok := regions[targetRegion]; ok {
			return ms
		}
	}
	return defaultLatencyMs
}

// ComplianceRequirements returns the control set mandated by a compliance
// framework.
func (c *Catalog) ComplianceRequirements(framework string) ([]string, bool) {
	reqs, ok := c.compliance[framework]
	return reqs, ok
}

// EngineFactor returns the DMS compatibility factor for a database engine.
// Unlisted engines default to 0.85.
func (c *Catalog) EngineFactor(engine string) float64 {
	if f, ok := c.engines[normalizeEngine(engine)]; ok {
		return f
	}
	return defaultEngineFactor
}

// Location maps an AWS region code to the Price List API location name,
// defaulting to the N. Virginia reference region.
func (c *Catalog) Location(region string) string {
	if loc, ok := c.locations[region]; ok {
		return loc
	}
	return defaultLocation
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
