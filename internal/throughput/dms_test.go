package throughput

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudmigrate/migration-estimator/internal/catalog"
)

func TestDMS_BandwidthShareCap(t *testing.T) {
	model := NewModel(catalog.New())

	for _, bandwidth := range []float64{100, 1000, 10000} {
		network := testNetwork()
		network.BandwidthMbps = bandwidth

		est, err := model.DMS(DMSInput{
			InstanceType:   "dms.r5.4xlarge",
			DatabaseSizeGB: 20000,
			Engines:        []string{"PostgreSQL"},
			Mode:           ModeFullLoad,
			Network:        network,
		})
		require.NoError(t, err)
		assert.LessOrEqual(t, est.EffectiveMbps, 0.75*bandwidth, "bandwidth=%v", bandwidth)
		assert.GreaterOrEqual(t, est.TheoreticalMbps, est.EffectiveMbps)
	}
}

func TestDMS_EngineCompatibilityMean(t *testing.T) {
	model := NewModel(catalog.New())

	est, err := model.DMS(DMSInput{
		InstanceType:   "dms.c5.xlarge",
		DatabaseSizeGB: 1000,
		Engines:        []string{"Oracle", "PostgreSQL"}, // 0.85 and 0.95
		Mode:           ModeFullLoad,
		Network:        testNetwork(),
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.90, est.EngineCompatibility, 1e-9)
}

func TestDMS_ModeFactors(t *testing.T) {
	model := NewModel(catalog.New())
	network := testNetwork()
	network.BandwidthMbps = 100000 // keep the cap out of the way

	run := func(mode MigrationMode) DMSEstimate {
		est, err := model.DMS(DMSInput{
			InstanceType:   "dms.c5.2xlarge",
			DatabaseSizeGB: 5000,
			Engines:        []string{"MySQL"},
			Mode:           mode,
			Network:        network,
		})
		require.NoError(t, err)
		return est
	}

	fullLoad := run(ModeFullLoad)
	withCDC := run(ModeFullLoadAndCDC)
	cdcOnly := run(ModeCDCOnly)

	assert.Greater(t, fullLoad.EffectiveMbps, withCDC.EffectiveMbps)
	assert.Greater(t, withCDC.EffectiveMbps, cdcOnly.EffectiveMbps)

	assert.Zero(t, fullLoad.CDCLagMinutes)
	assert.InDelta(t, 5.0, withCDC.CDCLagMinutes, 1e-9)
	assert.InDelta(t, 5.0, cdcOnly.CDCLagMinutes, 1e-9)
}

func TestDMS_CDCDoublesElapsedTime(t *testing.T) {
	// Same throughput either way: verify the consistency overhead directly.
	fullLoad := dmsDuration(1000, 500, ModeFullLoad)
	withCDC := dmsDuration(1000, 500, ModeFullLoadAndCDC)
	assert.InDelta(t, fullLoad*2, withCDC, 1e-9)
}

func TestDMS_SizeFactor(t *testing.T) {
	model := NewModel(catalog.New())
	network := testNetwork()
	network.BandwidthMbps = 100000

	small, err := model.DMS(DMSInput{
		InstanceType:   "dms.c5.xlarge",
		DatabaseSizeGB: 100, // size factor 0.51
		Engines:        []string{"MySQL"},
		Mode:           ModeFullLoad,
		Network:        network,
	})
	require.NoError(t, err)

	large, err := model.DMS(DMSInput{
		InstanceType:   "dms.c5.xlarge",
		DatabaseSizeGB: 20000, // size factor saturates at 1.0
		Engines:        []string{"MySQL"},
		Mode:           ModeFullLoad,
		Network:        network,
	})
	require.NoError(t, err)

	assert.Greater(t, large.EffectiveMbps, small.EffectiveMbps,
		"small databases pay proportionally more per-table overhead")
}

func TestDMS_ZeroThroughputFloor(t *testing.T) {
	if got := dmsDuration(1000, 0, ModeFullLoad); got != dmsMinimumHours {
		t.Errorf("dmsDuration with zero throughput = %v, want %v", got, dmsMinimumHours)
	}
	if got := dmsDuration(0, 500, ModeFullLoad); got != dmsMinimumHours {
		t.Errorf("dmsDuration with zero size = %v, want %v", got, dmsMinimumHours)
	}
}

func TestDMS_UnknownInputs(t *testing.T) {
	model := NewModel(catalog.New())

	_, err := model.DMS(DMSInput{
		InstanceType: "dms.z9.mega",
		Engines:      []string{"MySQL"},
		Mode:         ModeFullLoad,
		Network:      testNetwork(),
	})
	assert.Error(t, err)

	_, err = model.DMS(DMSInput{
		InstanceType: "dms.c5.xlarge",
		Engines:      []string{"MySQL"},
		Mode:         "bulk_copy",
		Network:      testNetwork(),
	})
	assert.Error(t, err)
}
