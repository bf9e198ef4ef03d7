// Package engine orchestrates one estimation request: configuration
// validation, per-mechanism throughput estimates, mechanism selection,
// price resolution and cost aggregation.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cloudmigrate/migration-estimator/internal/catalog"
	"github.com/cloudmigrate/migration-estimator/internal/cost"
	"github.com/cloudmigrate/migration-estimator/internal/decision"
	"github.com/cloudmigrate/migration-estimator/internal/pricing"
	"github.com/cloudmigrate/migration-estimator/internal/throughput"
)

// Engine wires the catalogs, pricing resolver, throughput models and the
// decision rules behind a single Estimate entry point.
type Engine struct {
	catalog  *catalog.Catalog
	resolver *pricing.Resolver
	model    *throughput.Model
	decision *decision.Engine
	logger   zerolog.Logger
}

// New returns an Engine over the given collaborators.
func New(cat *catalog.Catalog, resolver *pricing.Resolver, logger zerolog.Logger) *Engine {
	return &Engine{
		catalog:  cat,
		resolver: resolver,
		model:    throughput.NewModel(cat),
		decision: decision.NewEngine(cat, logger),
		logger:   logger.With().Str("component", "engine").Logger(),
	}
}

// Estimates collects the per-mechanism throughput results. A nil entry
// means the mechanism was not enabled for the request.
type Estimates struct {
	DataSync *throughput.DataSyncEstimate `json:"datasync,omitempty"`
	DMS      *throughput.DMSEstimate      `json:"dms,omitempty"`
	Snowball *throughput.SnowballEstimate `json:"snowball,omitempty"`
}

// Result is the full output of one estimation request.
type Result struct {
	RequestID      string                  `json:"request_id"`
	ProjectName    string                  `json:"project_name,omitempty"`
	Estimates      Estimates               `json:"estimates"`
	Recommendation decision.Recommendation `json:"recommendation"`
	Compliance     ComplianceAssessment    `json:"compliance"`
	Impact         BusinessImpact          `json:"impact"`
	Costs          cost.Breakdown          `json:"costs"`
	Warnings       []pricing.Warning       `json:"warnings,omitempty"`
}

// Estimate runs one estimation pass. Configuration errors are returned as
// *ConfigError, catalog defects as *InconsistencyError; pricing failures
// never fail the request, they degrade to fallback values and surface as
// warnings on the result.
func (e *Engine) Estimate(ctx context.Context, cfg MigrationConfig) (*Result, error) {
	start := time.Now()
	requestID := uuid.NewString()
	logger := e.logger.With().Str("request_id", requestID).Logger()

	cfg = cfg.withDefaults()
	if err := e.validate(cfg); err != nil {
		logger.Warn().Err(err).Msg("configuration rejected")
		return nil, err
	}
	if err := e.catalog.Validate(); err != nil {
		logger.Error().Err(err).Msg("catalog validation failed")
		return nil, &InconsistencyError{Err: err}
	}

	result := &Result{
		RequestID:   requestID,
		ProjectName: cfg.ProjectName,
	}

	network := e.networkConditions(cfg)

	if cfg.mechanismEnabled(decision.MechanismDataSync) {
		est, err := e.model.DataSync(throughput.DataSyncInput{
			InstanceType:     cfg.Agent.InstanceType,
			AgentCount:       cfg.Agent.Count,
			FileSizeCategory: cfg.Agent.FileSizeCategory,
			Network:          network,
			DataSizeGB:       cfg.DataSizeGB,
			RealWorldMode:    cfg.Agent.RealWorldMode,
		})
		if err != nil {
			return nil, &InconsistencyError{Err: err}
		}
		result.Estimates.DataSync = &est
	}

	if cfg.mechanismEnabled(decision.MechanismDMS) && len(cfg.DB.Engines) > 0 {
		est, err := e.model.DMS(throughput.DMSInput{
			InstanceType:   cfg.DB.InstanceType,
			DatabaseSizeGB: e.databaseSize(cfg),
			Engines:        cfg.DB.Engines,
			Mode:           cfg.DB.Mode,
			Network:        network,
		})
		if err != nil {
			return nil, &InconsistencyError{Err: err}
		}
		result.Estimates.DMS = &est
	}

	if cfg.mechanismEnabled(decision.MechanismSnowball) {
		est, err := e.model.Snowball(throughput.SnowballInput{
			DeviceType:       cfg.Device.Type,
			DataSizeGB:       cfg.DataSizeGB,
			RequestedDevices: cfg.Device.Count,
			Destination:      cfg.Device.Destination,
		})
		if err != nil {
			return nil, &InconsistencyError{Err: err}
		}
		result.Estimates.Snowball = &est
	}

	result.Recommendation = e.decision.Recommend(decision.Input{
		SourceLocation:  cfg.SourceLocation,
		TargetRegion:    cfg.TargetRegion,
		DataSizeGB:      cfg.DataSizeGB,
		DatabaseSizeGB:  cfg.DB.SizeGB,
		BandwidthMbps:   cfg.Network.BandwidthMbps,
		DatabaseEngines: cfg.DB.Engines,
		DataTypes:       cfg.DataTypes,
		AgentCount:      cfg.Agent.Count,
		InstanceType:    cfg.Agent.InstanceType,
	})
	if cfg.ExternalAnalysis != "" {
		result.Recommendation.AttachAnalysis(cfg.ExternalAnalysis)
	}

	result.Compliance = e.assessCompliance(cfg)
	result.Impact = assessImpact(cfg.DataTypes)

	prices := e.resolver.ResolveBatch(ctx, pricing.BatchSpec{
		InstanceType:  cfg.Agent.InstanceType,
		StorageClass:  cfg.StorageClass,
		Region:        cfg.TargetRegion,
		BandwidthMbps: cfg.Network.BandwidthMbps,
	})
	result.Warnings = prices.Warnings

	result.Costs = cost.Aggregate(cost.Input{
		DataSizeGB:           cfg.DataSizeGB,
		DurationDays:         result.Recommendation.Performance.EstimatedDays,
		AgentCount:           cfg.Agent.Count,
		ComplianceFrameworks: cfg.ComplianceFrameworks,
	}, prices)

	logger.Info().
		Str("primary", string(result.Recommendation.Primary)).
		Float64("data_size_gb", cfg.DataSizeGB).
		Float64("total_cost_usd", result.Costs.TotalUSD).
		Int("warnings", len(result.Warnings)).
		Dur("duration", time.Since(start)).
		Msg("estimation complete")

	return result, nil
}

// networkConditions resolves the effective link characteristics, filling
// latency from the geographic matrix when the caller left it unset.
func (e *Engine) networkConditions(cfg MigrationConfig) throughput.NetworkConditions {
	latency := cfg.Network.LatencyMs
	if latency <= 0 {
		latency = e.catalog.Latency(cfg.SourceLocation, cfg.TargetRegion)
	}
	return throughput.NetworkConditions{
		BandwidthMbps:         cfg.Network.BandwidthMbps,
		LatencyMs:             latency,
		JitterMs:              cfg.Network.JitterMs,
		PacketLossPct:         cfg.Network.PacketLossPct,
		QoSEnabled:            cfg.Network.QoSEnabled,
		DedicatedBandwidthPct: cfg.Network.DedicatedBandwidthPct,
		Pattern:               cfg.Network.Pattern,
	}
}

// databaseSize returns the configured database size, defaulting to 30% of
// the total dataset when unspecified.
func (e *Engine) databaseSize(cfg MigrationConfig) float64 {
	if cfg.DB.SizeGB > 0 {
		return cfg.DB.SizeGB
	}
	return cfg.DataSizeGB * 0.3
}
