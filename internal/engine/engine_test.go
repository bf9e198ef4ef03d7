package engine

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudmigrate/migration-estimator/internal/catalog"
	"github.com/cloudmigrate/migration-estimator/internal/decision"
	"github.com/cloudmigrate/migration-estimator/internal/pricing"
	"github.com/cloudmigrate/migration-estimator/internal/throughput"
)

// newTestEngine builds an engine without a live pricing provider; every
// price resolution degrades to the static fallback table.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cat := catalog.New()
	resolver := pricing.NewResolver(pricing.NewCache(time.Hour), nil, cat, zerolog.Nop(), 0)
	return New(cat, resolver, zerolog.Nop())
}

func TestEstimate_FileSyncMigration(t *testing.T) {
	eng := newTestEngine(t)

	result, err := eng.Estimate(context.Background(), MigrationConfig{
		ProjectName:    "media-archive",
		DataSizeGB:     10000,
		SourceLocation: "New York, NY",
		TargetRegion:   "us-east-1",
		Mechanisms:     []decision.Mechanism{decision.MechanismDataSync},
		Network:        NetworkConfig{BandwidthMbps: 10000},
		Agent:          AgentConfig{InstanceType: "m5.2xlarge", Count: 2},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.RequestID)
	assert.Equal(t, "media-archive", result.ProjectName)

	require.NotNil(t, result.Estimates.DataSync)
	assert.Greater(t, result.Estimates.DataSync.EffectiveMbps, 0.0)
	assert.Greater(t, result.Estimates.DataSync.DurationDays, 0.0)
	assert.Nil(t, result.Estimates.DMS)
	assert.Nil(t, result.Estimates.Snowball)

	assert.Equal(t, decision.MechanismDataSync, result.Recommendation.Primary)
	assert.Greater(t, result.Costs.TotalUSD, 0.0)
}

func TestEstimate_DatabaseMigration(t *testing.T) {
	eng := newTestEngine(t)

	result, err := eng.Estimate(context.Background(), MigrationConfig{
		DataSizeGB:     5000,
		SourceLocation: "Chicago, IL",
		TargetRegion:   "us-east-1",
		Network:        NetworkConfig{BandwidthMbps: 1000},
		DB: DatabaseConfig{
			Engines: []string{"PostgreSQL"},
			SizeGB:  2000,
			Mode:    throughput.ModeFullLoadAndCDC,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, decision.MechanismDMS, result.Recommendation.Primary)

	opt := result.Recommendation.Options[decision.MechanismDMS]
	assert.Equal(t, decision.SuitabilityHigh, opt.Suitability)

	require.NotNil(t, result.Estimates.DMS)
	assert.LessOrEqual(t, result.Estimates.DMS.EffectiveMbps, 0.75*1000)
	assert.InDelta(t, 2.0, result.Estimates.DMS.CDCLagMinutes, 1e-9)
}

func TestEstimate_LargeDatasetPrefersSnowball(t *testing.T) {
	eng := newTestEngine(t)

	result, err := eng.Estimate(context.Background(), MigrationConfig{
		DataSizeGB:     120 * 1024,
		SourceLocation: "Dallas, TX",
		TargetRegion:   "us-east-1",
		Network:        NetworkConfig{BandwidthMbps: 500},
	})
	require.NoError(t, err)

	assert.Equal(t, decision.MechanismSnowball, result.Recommendation.Primary)
	require.NotNil(t, result.Estimates.Snowball)
	assert.GreaterOrEqual(t, result.Estimates.Snowball.DevicesNeeded, 2)
}

// Without a live provider every component must carry the fallback flag and
// the total must still come out of the static table.
func TestEstimate_FallbackProvenance(t *testing.T) {
	eng := newTestEngine(t)

	result, err := eng.Estimate(context.Background(), MigrationConfig{
		DataSizeGB:     1000,
		SourceLocation: "New York, NY",
		TargetRegion:   "us-east-1",
		Network:        NetworkConfig{BandwidthMbps: 1000},
	})
	require.NoError(t, err)

	for _, name := range []string{"compute", "transfer", "storage", "dedicated_line"} {
		c := result.Costs.Component(name)
		assert.Equal(t, pricing.SourceFallback, c.Source, "%s should be fallback-priced", name)
	}
	assert.Greater(t, result.Costs.TotalUSD, 0.0)
	assert.Len(t, result.Warnings, 4, "each degraded lookup surfaces a warning")
	assert.False(t, result.Costs.ResolvedAt.IsZero())
}

func TestEstimate_ConfigErrors(t *testing.T) {
	tests := []struct {
		name      string
		cfg       MigrationConfig
		wantField string
	}{
		{
			name:      "non-positive data size",
			cfg:       MigrationConfig{DataSizeGB: 0},
			wantField: "data_size_gb",
		},
		{
			name: "unknown agent instance type",
			cfg: MigrationConfig{
				DataSizeGB: 1000,
				Agent:      AgentConfig{InstanceType: "t99.mega"},
			},
			wantField: "agent.instance_type",
		},
		{
			name: "unknown file size category",
			cfg: MigrationConfig{
				DataSizeGB: 1000,
				Agent:      AgentConfig{FileSizeCategory: "gigantic"},
			},
			wantField: "agent.file_size_category",
		},
		{
			name: "unknown mechanism",
			cfg: MigrationConfig{
				DataSizeGB: 1000,
				Mechanisms: []decision.Mechanism{"teleportation"},
			},
			wantField: "mechanisms",
		},
		{
			name: "unknown network pattern",
			cfg: MigrationConfig{
				DataSizeGB: 1000,
				Network:    NetworkConfig{BandwidthMbps: 1000, Pattern: "string_and_cans"},
			},
			wantField: "network.pattern",
		},
		{
			name: "unknown device type",
			cfg: MigrationConfig{
				DataSizeGB: 1000,
				Device:     DeviceConfig{Type: "snowmobile"},
			},
			wantField: "device.type",
		},
	}

	eng := newTestEngine(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.Estimate(context.Background(), tt.cfg)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}

func TestEstimate_ComplianceAssessment(t *testing.T) {
	eng := newTestEngine(t)

	result, err := eng.Estimate(context.Background(), MigrationConfig{
		DataSizeGB:           1000,
		SourceLocation:       "New York, NY",
		TargetRegion:         "us-east-1",
		Network:              NetworkConfig{BandwidthMbps: 1000},
		ComplianceFrameworks: []string{"GDPR", "HIPAA"},
		DataClassification:   "Public",
		DataResidency:        "No restrictions",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Compliance.Requirements)
	assert.Contains(t, result.Compliance.Risks, "GDPR requires data residency controls")
	assert.Contains(t, result.Compliance.Risks, "HIPAA incompatible with Public data classification")

	compliance := result.Costs.Component("compliance")
	assert.InDelta(t, 1000.0, compliance.AmountUSD, 1e-9, "two frameworks at the flat fee")
}

func TestEstimate_ExternalAnalysisAttachedVerbatim(t *testing.T) {
	eng := newTestEngine(t)

	result, err := eng.Estimate(context.Background(), MigrationConfig{
		DataSizeGB:       1000,
		SourceLocation:   "New York, NY",
		TargetRegion:     "us-east-1",
		Network:          NetworkConfig{BandwidthMbps: 1000},
		ExternalAnalysis: "reviewed by the architecture board",
	})
	require.NoError(t, err)
	assert.Equal(t, "reviewed by the architecture board", result.Recommendation.ExternalAnalysis)
}

func TestAssessImpact(t *testing.T) {
	tests := []struct {
		name      string
		dataTypes []string
		wantLevel string
	}{
		{"no data types", nil, "Medium"},
		{"critical mix", []string{"Customer Data", "Financial Records"}, "Critical"},
		{"high mix", []string{"Employee Data", "Database Backups"}, "High"},
		{"medium mix", []string{"Documents", "Media Files"}, "Medium"},
		{"low mix", []string{"System Logs"}, "Low"},
		{"unknown type uses default weight", []string{"Telemetry Blobs"}, "Medium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			impact := assessImpact(tt.dataTypes)
			assert.Equal(t, tt.wantLevel, impact.Level)
			assert.NotEmpty(t, impact.Recommendation)
		})
	}
}
