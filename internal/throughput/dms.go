package throughput

import (
	"fmt"
	"math"
)

// MigrationMode selects how DMS replicates the source database.
type MigrationMode string

// Known migration modes.
const (
	ModeFullLoad       MigrationMode = "full_load"
	ModeFullLoadAndCDC MigrationMode = "full_load_and_cdc"
	ModeCDCOnly        MigrationMode = "cdc_only"
)

// IsValid reports whether the mode is one of the known values.
func (m MigrationMode) IsValid() bool {
	switch m {
	case ModeFullLoad, ModeFullLoadAndCDC, ModeCDCOnly:
		return true
	}
	return false
}

// includesCDC reports whether ongoing change capture is part of the mode.
func (m MigrationMode) includesCDC() bool {
	return m == ModeFullLoadAndCDC || m == ModeCDCOnly
}

var migrationModeFactors = map[MigrationMode]float64{
	ModeFullLoad:       1.0,
	ModeFullLoadAndCDC: 0.8,
	ModeCDCOnly:        0.6,
}

const (
	// dmsBandwidthShare caps replication at 75% of the link so it cannot
	// starve other traffic.
	dmsBandwidthShare = 0.75
	// cdcConsistencyOverhead stretches elapsed time when change capture
	// keeps transactional consistency during the transfer.
	cdcConsistencyOverhead = 2.0
	// dmsMinimumHours is the duration floor substituted when throughput
	// degenerates to zero.
	dmsMinimumHours = 6.0
)

// DMSInput parameterizes a database replication estimate.
type DMSInput struct {
	InstanceType   string
	DatabaseSizeGB float64
	Engines        []string
	Mode           MigrationMode
	Network        NetworkConditions
}

// DMSEstimate is the database replication throughput result.
type DMSEstimate struct {
	EffectiveMbps       float64 `json:"effective_mbps"`
	TheoreticalMbps     float64 `json:"theoretical_mbps"`
	Efficiency          float64 `json:"efficiency"`
	FullLoadHours       float64 `json:"full_load_hours"`
	CDCLagMinutes       float64 `json:"cdc_lag_minutes"`
	EngineCompatibility float64 `json:"engine_compatibility"`
	Factors             Chain   `json:"factors"`
}

// DMS estimates replication throughput for the configured instance class,
// database engines and migration mode, capped at 75% of the network link.
func (m *Model) DMS(in DMSInput) (DMSEstimate, error) {
	profile, ok := m.catalog.ReplicationProfile(in.InstanceType)
	if !ok {
		return DMSEstimate{}, fmt.Errorf("unknown replication instance type %q", in.InstanceType)
	}
	if !in.Mode.IsValid() {
		return DMSEstimate{}, fmt.Errorf("unknown migration mode %q", in.Mode)
	}

	chain := Chain{
		{Name: "engine_compatibility", Value: m.engineFactor(in.Engines)},
		{Name: "migration_mode", Value: migrationModeFactors[in.Mode]},
		{Name: "pattern", Value: m.catalog.PatternEfficiency(in.Network.Pattern)},
		{Name: "database_size", Value: math.Min(1.0, 0.5+in.DatabaseSizeGB/10000)},
	}

	theoretical := profile.ThroughputMbps * chain.Product()
	effective := math.Min(theoretical, in.Network.BandwidthMbps*dmsBandwidthShare)

	efficiency := 0.0
	if in.Network.BandwidthMbps > 0 {
		efficiency = effective / in.Network.BandwidthMbps
	}

	return DMSEstimate{
		EffectiveMbps:       effective,
		TheoreticalMbps:     theoretical,
		Efficiency:          efficiency,
		FullLoadHours:       dmsDuration(in.DatabaseSizeGB, effective, in.Mode),
		CDCLagMinutes:       cdcLag(in.DatabaseSizeGB, in.Mode),
		EngineCompatibility: m.engineFactor(in.Engines),
		Factors:             chain,
	}, nil
}

// engineFactor averages the compatibility factors of the configured
// database engines; no engines means the default factor.
func (m *Model) engineFactor(engines []string) float64 {
	if len(engines) == 0 {
		return m.catalog.EngineFactor("")
	}
	sum := 0.0
	for _, engine := range engines {
		sum += m.catalog.EngineFactor(engine)
	}
	return sum / float64(len(engines))
}

// dmsDuration converts database size and throughput into elapsed hours.
// Change capture modes pay the consistency overhead. The floor guards
// against degenerate throughput.
func dmsDuration(databaseSizeGB, effectiveMbps float64, mode MigrationMode) float64 {
	if databaseSizeGB <= 0 || effectiveMbps <= 0 {
		return dmsMinimumHours
	}
	hours := databaseSizeGB * 8000 / (effectiveMbps * 3600)
	if mode.includesCDC() {
		hours *= cdcConsistencyOverhead
	}
	return hours
}

// cdcLag estimates steady-state change capture lag in minutes; zero for
// full-load-only migrations.
func cdcLag(databaseSizeGB float64, mode MigrationMode) float64 {
	if !mode.includesCDC() {
		return 0
	}
	return math.Max(1, databaseSizeGB/1000)
}
