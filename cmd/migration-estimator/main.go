// migration-estimator estimates cost, throughput and timeline for moving a
// dataset into AWS across DataSync, DMS and Snowball, either as a one-shot
// CLI run or as an HTTP service.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	json "github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cloudmigrate/migration-estimator/internal/catalog"
	"github.com/cloudmigrate/migration-estimator/internal/engine"
	"github.com/cloudmigrate/migration-estimator/internal/pricing"
	"github.com/cloudmigrate/migration-estimator/internal/server"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:          "migration-estimator",
		Short:        "Estimate cost, throughput and timeline for AWS data migrations",
		SilenceUsage: true,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the estimation HTTP service",
		RunE:  runServe,
	}

	estimateCmd := &cobra.Command{
		Use:   "estimate",
		Short: "Run a single estimation from a JSON configuration",
		RunE:  runEstimate,
	}
	estimateCmd.Flags().StringVarP(&configPath, "config", "c", "-",
		"Path to the migration configuration JSON (- for stdin)")

	rootCmd.AddCommand(serveCmd, estimateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildEngine assembles the catalog, resolver and engine from the process
// configuration. Live pricing is optional; without it every price comes
// from the static fallback tables.
func buildEngine(ctx context.Context, cfg Config, logger zerolog.Logger) (*engine.Engine, error) {
	cat := catalog.New()
	if cfg.PriceOverrides != "" {
		overrides, err := catalog.LoadPriceOverrides(cfg.PriceOverrides)
		if err != nil {
			return nil, fmt.Errorf("loading price overrides: %w", err)
		}
		cat.ApplyPriceOverrides(overrides)
		logger.Info().Str("path", cfg.PriceOverrides).Msg("price overrides applied")
	}

	var provider pricing.Provider
	if cfg.LivePricing {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, fmt.Errorf("loading AWS configuration: %w", err)
		}
		provider = pricing.NewAWSProviderFromConfig(awsCfg, logger)
		logger.Info().Str("region", cfg.Region).Msg("live pricing enabled")
	} else {
		logger.Info().Msg("live pricing disabled, using fallback prices")
	}

	cache := pricing.NewCache(cfg.CacheTTL)
	resolver := pricing.NewResolver(cache, provider, cat, logger, cfg.LookupTimeout)

	return engine.New(cat, resolver, logger), nil
}

func newLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "error loading .env file: %v\n", err)
	}

	bootLogger := newLogger(zerolog.InfoLevel)
	cfg := parseConfig(bootLogger)
	logger := newLogger(cfg.LogLevel)

	eng, err := buildEngine(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	api := server.New(logger, server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: 10 * time.Second,
	}, eng)

	return api.Start()
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "error loading .env file: %v\n", err)
	}

	bootLogger := newLogger(zerolog.WarnLevel)
	cfg := parseConfig(bootLogger)
	logger := newLogger(cfg.LogLevel)

	var (
		input []byte
		err   error
	)
	if configPath == "-" {
		input, err = io.ReadAll(os.Stdin)
	} else {
		input, err = os.ReadFile(configPath)
	}
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}

	var migration engine.MigrationConfig
	if err := json.Unmarshal(input, &migration); err != nil {
		return fmt.Errorf("parsing configuration: %w", err)
	}

	eng, err := buildEngine(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	result, err := eng.Estimate(cmd.Context(), migration)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
