package decision

import (
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cloudmigrate/migration-estimator/internal/catalog"
)

// Networking architecture tiers keyed off dedicated-line bandwidth and
// estimated latency.
const (
	networkDirectConnect = "Direct Connect (Primary)"
	networkDirectBackup  = "Direct Connect with Internet Backup"
	networkVPN           = "Internet with VPN"

	SecondaryMethod = "S3 Transfer Acceleration"
)

// Thresholds driving the recommendation rules, in Mbps and TB.
const (
	primaryBandwidthMbps  = 1000
	backupBandwidthMbps   = 500
	primaryLatencyMs      = 50
	dmsMaxDataTB          = 50
	snowballMinDataTB     = 50
	snowballHighDataTB    = 100
	snowballPrimaryDataTB = 100
)

// DMS sizing used by the recommendation path. The throughput model's own
// replication estimate is more detailed; these mirror the coarser planning
// figures surfaced in a recommendation.
const (
	dmsBandwidthDerate   = 0.7
	dmsThroughputCapMbps = 1000
	dmsDatabaseShare     = 0.3
	dmsOverheadFactor    = 2.0
	dmsMinimumDays       = 0.25
)

// DataSync sizing for the recommendation path.
const (
	datasyncBandwidthDerate = 0.8
	datasyncCapMbps         = 2000
	datasyncOverhead        = 1.4
)

// Snowball planning figures for the recommendation path: round-trip
// shipping, loading at roughly 8 TB per device-day, AWS-side processing.
const (
	snowballShippingDays    = 6.0
	snowballLoadingTBPerDay = 8.0
	snowballProcessingDays  = 2.0
)

// Input carries the configuration facts the rules evaluate.
type Input struct {
	SourceLocation  string
	TargetRegion    string
	DataSizeGB      float64
	DatabaseSizeGB  float64 // zero means derive from DataSizeGB
	BandwidthMbps   float64
	DatabaseEngines []string
	DataTypes       []string
	AgentCount      int
	InstanceType    string
}

// Option is one mechanism's recommendation entry.
type Option struct {
	Mechanism      Mechanism   `json:"mechanism"`
	Suitability    Suitability `json:"suitability"`
	ThroughputMbps float64     `json:"throughput_mbps"`
	EstimatedDays  float64     `json:"estimated_days"`
	Pros           []string    `json:"pros"`
	Cons           []string    `json:"cons"`
}

// Performance summarizes the primary mechanism's expected behavior.
type Performance struct {
	ThroughputMbps    float64 `json:"throughput_mbps"`
	EstimatedDays     float64 `json:"estimated_days"`
	NetworkEfficiency float64 `json:"network_efficiency"`
	AgentCount        int     `json:"agent_count"`
	InstanceType      string  `json:"instance_type"`
}

// Recommendation is the full decision output.
type Recommendation struct {
	Primary          Mechanism            `json:"primary"`
	Secondary        string               `json:"secondary"`
	NetworkingOption string               `json:"networking_option"`
	NetworkScore     int                  `json:"network_score"`
	EstimatedLatency float64              `json:"estimated_latency_ms"`
	Options          map[Mechanism]Option `json:"options"`
	Performance      Performance          `json:"performance"`
	Rationale        string               `json:"rationale"`
	CostEfficiency   string               `json:"cost_efficiency"`
	RiskLevel        string               `json:"risk_level"`
	ExternalAnalysis string               `json:"external_analysis,omitempty"`
}

// Engine evaluates the fixed recommendation rules. Evaluation is
// deterministic: identical inputs yield identical recommendations.
type Engine struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewEngine returns a rule engine backed by the static catalogs.
func NewEngine(cat *catalog.Catalog, logger zerolog.Logger) *Engine {
	return &Engine{catalog: cat, logger: logger.With().Str("component", "decision").Logger()}
}

// Recommend runs every rule against the input and selects a primary
// mechanism. Multiple mechanism options may be emitted; exactly one is
// primary.
func (e *Engine) Recommend(in Input) Recommendation {
	dataTB := in.DataSizeGB / 1024
	latency := e.catalog.Latency(in.SourceLocation, in.TargetRegion)
	hasDatabases := len(in.DatabaseEngines) > 0
	hasLargeFiles := containsLargeFiles(in.DataTypes)

	rec := Recommendation{
		Secondary:        SecondaryMethod,
		EstimatedLatency: latency,
		Options:          make(map[Mechanism]Option, 3),
	}

	rec.NetworkingOption, rec.NetworkScore = networkArchitecture(in.BandwidthMbps, latency)

	if hasDatabases && dataTB <= dmsMaxDataTB {
		rec.Options[MechanismDMS] = e.dmsOption(in)
	}
	if dataTB > snowballMinDataTB {
		rec.Options[MechanismSnowball] = snowballOption(in.DataSizeGB, dataTB)
	}
	rec.Options[MechanismDataSync] = datasyncOption(in.DataSizeGB, in.BandwidthMbps, hasDatabases)

	rec.Primary = selectPrimary(dataTB, in.BandwidthMbps, hasDatabases)
	rec.Performance = e.performance(rec, in)
	rec.Rationale = rationale(rationaleInput{
		Source:        in.SourceLocation,
		Target:        in.TargetRegion,
		DataTB:        dataTB,
		BandwidthMbps: in.BandwidthMbps,
		LatencyMs:     latency,
		HasDatabases:  hasDatabases,
		HasLargeFiles: hasLargeFiles,
		NetworkScore:  rec.NetworkScore,
	})
	rec.CostEfficiency, rec.RiskLevel = costRiskProfile(dataTB, in.BandwidthMbps)

	e.logger.Debug().
		Str("primary", string(rec.Primary)).
		Int("network_score", rec.NetworkScore).
		Float64("data_tb", dataTB).
		Msg("recommendation computed")

	return rec
}

// AttachAnalysis adds an externally produced free-text analysis to the
// recommendation verbatim. Decision logic never depends on this text.
func (r *Recommendation) AttachAnalysis(text string) {
	r.ExternalAnalysis = text
}

func networkArchitecture(bandwidthMbps, latencyMs float64) (string, int) {
	switch {
	case bandwidthMbps >= primaryBandwidthMbps && latencyMs < primaryLatencyMs:
		return networkDirectConnect, 9
	case bandwidthMbps >= backupBandwidthMbps:
		return networkDirectBackup, 7
	default:
		return networkVPN, 5
	}
}

// dmsOption plans a database replication at 70% of the line, capped at
// 1 Gbps, with a 2x consistency overhead on raw transfer time.
func (e *Engine) dmsOption(in Input) Option {
	throughput := math.Min(dmsThroughputCapMbps, in.BandwidthMbps*dmsBandwidthDerate)

	dbSizeGB := in.DatabaseSizeGB
	if dbSizeGB <= 0 {
		dbSizeGB = in.DataSizeGB * dmsDatabaseShare
	}

	days := dmsMinimumDays
	if throughput > 0 {
		transferHours := dbSizeGB * 8 * 1000 / (throughput * 3600)
		days = math.Max(dmsMinimumDays, transferHours/24*dmsOverheadFactor)
	}

	return Option{
		Mechanism:      MechanismDMS,
		Suitability:    SuitabilityHigh,
		ThroughputMbps: throughput,
		EstimatedDays:  days,
		Pros:           []string{"Minimal downtime", "CDC support", "Database optimized"},
		Cons:           []string{"Database only", "Complex setup"},
	}
}

// snowballOption plans a physical transfer from round-trip shipping plus a
// coarse loading rate. The reported throughput is the dataset spread over
// the timeline, for comparison only.
func snowballOption(dataSizeGB, dataTB float64) Option {
	loadingDays := math.Max(1, dataTB/snowballLoadingTBPerDay)
	timelineDays := snowballShippingDays + loadingDays + snowballProcessingDays

	suitability := SuitabilityMedium
	if dataTB > snowballHighDataTB {
		suitability = SuitabilityHigh
	}

	return Option{
		Mechanism:      MechanismSnowball,
		Suitability:    suitability,
		ThroughputMbps: dataSizeGB * 8 * 1000 / (timelineDays * 24 * 3600),
		EstimatedDays:  timelineDays,
		Pros:           []string{"No bandwidth dependency", "Secure", "Cost-effective"},
		Cons:           []string{"Longer timeline", "Physical logistics"},
	}
}

// datasyncOption is always emitted: file sync works for every dataset even
// when it is not the best fit.
func datasyncOption(dataSizeGB, bandwidthMbps float64, hasDatabases bool) Option {
	throughput := math.Min(bandwidthMbps*datasyncBandwidthDerate, datasyncCapMbps)

	days := 1.0
	if dataSizeGB > 0 && throughput > 0 {
		transferSeconds := dataSizeGB * 8 * 1e9 / (throughput * 1e6)
		days = transferSeconds / (24 * 3600) * datasyncOverhead
		days = math.Max(days, datasyncMinimumDays(dataSizeGB))
	}

	suitability := SuitabilityHigh
	if hasDatabases {
		suitability = SuitabilityMedium
	}

	return Option{
		Mechanism:      MechanismDataSync,
		Suitability:    suitability,
		ThroughputMbps: throughput,
		EstimatedDays:  days,
		Pros:           []string{"File optimized", "Incremental sync", "Real-time monitoring"},
		Cons:           []string{"Network dependent", "File-based only"},
	}
}

func datasyncMinimumDays(dataSizeGB float64) float64 {
	switch {
	case dataSizeGB < 100:
		return 0.125
	case dataSizeGB < 1000:
		return 0.25
	default:
		return 0.5
	}
}

// selectPrimary picks exactly one mechanism. A database-heavy dataset over
// the DMS size limit falls through to the remaining rules.
func selectPrimary(dataTB, bandwidthMbps float64, hasDatabases bool) Mechanism {
	switch {
	case hasDatabases && dataTB <= dmsMaxDataTB:
		return MechanismDMS
	case dataTB > snowballPrimaryDataTB && bandwidthMbps < primaryBandwidthMbps:
		return MechanismSnowball
	default:
		return MechanismDataSync
	}
}

func (e *Engine) performance(rec Recommendation, in Input) Performance {
	opt, ok := rec.Options[rec.Primary]
	if !ok {
		opt = rec.Options[MechanismDataSync]
	}

	agents := in.AgentCount
	if agents < 1 {
		agents = 1
	}
	instanceType := in.InstanceType
	if instanceType == "" {
		instanceType = "m5.large"
	}

	return Performance{
		ThroughputMbps:    opt.ThroughputMbps,
		EstimatedDays:     opt.EstimatedDays,
		NetworkEfficiency: float64(rec.NetworkScore) / 10,
		AgentCount:        agents,
		InstanceType:      instanceType,
	}
}

// costRiskProfile maps data size and bandwidth to fixed labels.
func costRiskProfile(dataTB, bandwidthMbps float64) (costEfficiency, riskLevel string) {
	switch {
	case dataTB > snowballPrimaryDataTB && bandwidthMbps < primaryBandwidthMbps:
		return "High (Physical transfer)", "Medium"
	case bandwidthMbps >= primaryBandwidthMbps:
		return "Medium (Network transfer)", "Low"
	default:
		return "Medium", "Medium"
	}
}

func containsLargeFiles(dataTypes []string) bool {
	for _, dt := range dataTypes {
		if strings.Contains(dt, "Large") || strings.Contains(dt, "Media") {
			return true
		}
	}
	return false
}
