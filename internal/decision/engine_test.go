package decision

import (
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudmigrate/migration-estimator/internal/catalog"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(catalog.New(), zerolog.Nop())
}

func TestRecommend_Deterministic(t *testing.T) {
	engine := newTestEngine(t)
	input := Input{
		SourceLocation:  "Chicago, IL",
		TargetRegion:    "us-east-1",
		DataSizeGB:      25000,
		BandwidthMbps:   2000,
		DatabaseEngines: []string{"PostgreSQL", "MySQL"},
		DataTypes:       []string{"Customer Data", "Media Files"},
		AgentCount:      3,
		InstanceType:    "m5.xlarge",
	}

	first := engine.Recommend(input)
	second := engine.Recommend(input)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Recommend is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestRecommend_NetworkArchitecture(t *testing.T) {
	tests := []struct {
		name       string
		bandwidth  float64
		source     string
		wantOption string
		wantScore  int
	}{
		{"fast and close", 2000, "New York, NY", networkDirectConnect, 9},
		{"fast but far", 2000, "Sydney, AU", networkDirectBackup, 7},
		{"mid bandwidth", 600, "New York, NY", networkDirectBackup, 7},
		{"slow link", 200, "New York, NY", networkVPN, 5},
	}

	engine := newTestEngine(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := engine.Recommend(Input{
				SourceLocation: tt.source,
				TargetRegion:   "us-east-1",
				DataSizeGB:     10000,
				BandwidthMbps:  tt.bandwidth,
			})
			assert.Equal(t, tt.wantOption, rec.NetworkingOption)
			assert.Equal(t, tt.wantScore, rec.NetworkScore)
		})
	}
}

// High-bandwidth file migration with no databases picks DataSync.
func TestRecommend_FileSyncPrimary(t *testing.T) {
	engine := newTestEngine(t)

	rec := engine.Recommend(Input{
		SourceLocation: "New York, NY",
		TargetRegion:   "us-east-1",
		DataSizeGB:     10000,
		BandwidthMbps:  10000,
		AgentCount:     2,
		InstanceType:   "m5.2xlarge",
	})

	assert.Equal(t, MechanismDataSync, rec.Primary)
	assert.Equal(t, SecondaryMethod, rec.Secondary)

	opt, ok := rec.Options[MechanismDataSync]
	require.True(t, ok)
	assert.Equal(t, SuitabilityHigh, opt.Suitability)
	assert.Greater(t, opt.ThroughputMbps, 0.0)
	assert.Greater(t, opt.EstimatedDays, 0.0)
	assert.LessOrEqual(t, opt.ThroughputMbps, 2000.0)

	_, hasDMS := rec.Options[MechanismDMS]
	assert.False(t, hasDMS, "no databases, no replication option")
}

// Databases under the size limit pick DMS with high suitability.
func TestRecommend_DatabasePrimary(t *testing.T) {
	engine := newTestEngine(t)

	rec := engine.Recommend(Input{
		SourceLocation:  "New York, NY",
		TargetRegion:    "us-east-1",
		DataSizeGB:      5000,
		BandwidthMbps:   1000,
		DatabaseEngines: []string{"PostgreSQL"},
	})

	assert.Equal(t, MechanismDMS, rec.Primary)

	opt, ok := rec.Options[MechanismDMS]
	require.True(t, ok)
	assert.Equal(t, SuitabilityHigh, opt.Suitability)
	assert.InDelta(t, 700, opt.ThroughputMbps, 1e-9) // min(1000, 0.7*1000)
	assert.GreaterOrEqual(t, opt.EstimatedDays, dmsMinimumDays)
}

// Very large datasets on thin links pick Snowball.
func TestRecommend_SnowballPrimary(t *testing.T) {
	engine := newTestEngine(t)

	rec := engine.Recommend(Input{
		SourceLocation: "Dallas, TX",
		TargetRegion:   "us-east-1",
		DataSizeGB:     120 * 1024,
		BandwidthMbps:  500,
	})

	assert.Equal(t, MechanismSnowball, rec.Primary)

	opt, ok := rec.Options[MechanismSnowball]
	require.True(t, ok)
	assert.Equal(t, SuitabilityHigh, opt.Suitability, ">100TB is a strong physical-transfer fit")
	assert.Greater(t, opt.EstimatedDays, snowballShippingDays+snowballProcessingDays)

	assert.Equal(t, "High (Physical transfer)", rec.CostEfficiency)
	assert.Equal(t, "Medium", rec.RiskLevel)
}

// A database-heavy dataset over the replication size limit falls through to
// the remaining rules instead of forcing DMS.
func TestRecommend_LargeDatabaseFallsThrough(t *testing.T) {
	engine := newTestEngine(t)

	rec := engine.Recommend(Input{
		SourceLocation:  "Dallas, TX",
		TargetRegion:    "us-east-1",
		DataSizeGB:      120 * 1024,
		BandwidthMbps:   500,
		DatabaseEngines: []string{"Oracle"},
	})

	assert.Equal(t, MechanismSnowball, rec.Primary)
	_, hasDMS := rec.Options[MechanismDMS]
	assert.False(t, hasDMS, "over the size limit the replication option is not emitted")

	opt := rec.Options[MechanismDataSync]
	assert.Equal(t, SuitabilityMedium, opt.Suitability, "databases downgrade file sync")
}

func TestRecommend_MediumSnowballSuitability(t *testing.T) {
	engine := newTestEngine(t)

	rec := engine.Recommend(Input{
		SourceLocation: "Dallas, TX",
		TargetRegion:   "us-east-1",
		DataSizeGB:     60 * 1024, // between 50TB and 100TB
		BandwidthMbps:  2000,
	})

	opt, ok := rec.Options[MechanismSnowball]
	require.True(t, ok)
	assert.Equal(t, SuitabilityMedium, opt.Suitability)
	assert.Equal(t, MechanismDataSync, rec.Primary, "good bandwidth keeps network transfer primary")
}

func TestRecommend_Performance(t *testing.T) {
	engine := newTestEngine(t)

	rec := engine.Recommend(Input{
		SourceLocation: "New York, NY",
		TargetRegion:   "us-east-1",
		DataSizeGB:     10000,
		BandwidthMbps:  10000,
		AgentCount:     4,
		InstanceType:   "c5.4xlarge",
	})

	primary := rec.Options[rec.Primary]
	assert.InDelta(t, primary.ThroughputMbps, rec.Performance.ThroughputMbps, 1e-9)
	assert.InDelta(t, primary.EstimatedDays, rec.Performance.EstimatedDays, 1e-9)
	assert.InDelta(t, 0.9, rec.Performance.NetworkEfficiency, 1e-9)
	assert.Equal(t, 4, rec.Performance.AgentCount)
	assert.Equal(t, "c5.4xlarge", rec.Performance.InstanceType)
}

func TestRecommend_AttachAnalysis(t *testing.T) {
	engine := newTestEngine(t)

	rec := engine.Recommend(Input{
		SourceLocation: "New York, NY",
		TargetRegion:   "us-east-1",
		DataSizeGB:     1000,
		BandwidthMbps:  1000,
	})
	require.Empty(t, rec.ExternalAnalysis)

	rec.AttachAnalysis("externally generated analysis text")
	assert.Equal(t, "externally generated analysis text", rec.ExternalAnalysis)
}

func TestRationale_FixedClauseOrder(t *testing.T) {
	text := rationale(rationaleInput{
		Source:        "New York, NY",
		Target:        "us-east-1",
		DataTB:        120,
		BandwidthMbps: 10000,
		LatencyMs:     10,
		HasDatabases:  true,
		HasLargeFiles: true,
		NetworkScore:  9,
	})

	wantClauses := []string{
		"Excellent geographic proximity between New York, NY and us-east-1 (≈10ms latency)",
		"High-bandwidth Direct Connect enables optimal network transfer performance",
		"Large dataset (120.0TB) requires high-throughput migration strategy",
		"Database workloads require specialized migration tools with minimal downtime capabilities",
		"Large file presence optimizes for high-throughput, parallel transfer methods",
		"Network conditions are optimal for direct cloud migration",
	}

	want := ""
	for i, clause := range wantClauses {
		if i > 0 {
			want += ". "
		}
		want += clause
	}
	want += "."

	if text != want {
		t.Errorf("rationale mismatch:\ngot:  %s\nwant: %s", text, want)
	}
}

func TestRationale_MinimalInput(t *testing.T) {
	text := rationale(rationaleInput{
		Source:        "Sydney, AU",
		Target:        "us-east-1",
		DataTB:        1,
		BandwidthMbps: 100,
		LatencyMs:     220,
		NetworkScore:  5,
	})

	assert.Contains(t, text, "Significant distance")
	assert.Contains(t, text, "Limited bandwidth")
	assert.Contains(t, text, "Network limitations")
	assert.NotContains(t, text, "Database workloads")
	assert.NotContains(t, text, "Large dataset")
}

func TestContainsLargeFiles(t *testing.T) {
	assert.True(t, containsLargeFiles([]string{"Large Video Archives"}))
	assert.True(t, containsLargeFiles([]string{"Media Files"}))
	assert.False(t, containsLargeFiles([]string{"Documents", "System Logs"}))
	assert.False(t, containsLargeFiles(nil))
}

func TestMechanism_DisplayName(t *testing.T) {
	tests := []struct {
		mechanism Mechanism
		want      string
	}{
		{MechanismDataSync, "DataSync"},
		{MechanismDMS, "DMS"},
		{MechanismSnowball, "Snowball Edge"},
		{MechanismNone, "None"},
	}
	for _, tt := range tests {
		if got := tt.mechanism.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.mechanism, got, tt.want)
		}
	}
}
