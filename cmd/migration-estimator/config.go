package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cloudmigrate/migration-estimator/internal/pricing"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Addr           string
	LivePricing    bool
	CacheTTL       time.Duration
	LookupTimeout  time.Duration
	Region         string
	PriceOverrides string
	LogLevel       zerolog.Level
}

// parseConfig reads environment variables, applying defaults for anything
// unset. Invalid values are logged and replaced with defaults rather than
// failing startup.
func parseConfig(logger zerolog.Logger) Config {
	cfg := Config{
		Addr:          ":8080",
		CacheTTL:      pricing.DefaultTTL,
		LookupTimeout: pricing.DefaultLookupTimeout,
		Region:        "us-east-1",
		LogLevel:      zerolog.InfoLevel,
	}

	if addr := os.Getenv("ESTIMATOR_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if strings.ToLower(os.Getenv("ESTIMATOR_LIVE_PRICING")) == "true" {
		cfg.LivePricing = true
	}
	if ttl := os.Getenv("ESTIMATOR_CACHE_TTL_SECONDS"); ttl != "" {
		if parsed, err := strconv.Atoi(ttl); err == nil && parsed > 0 {
			cfg.CacheTTL = time.Duration(parsed) * time.Second
		} else {
			logger.Warn().Str("value", ttl).Msg("invalid ESTIMATOR_CACHE_TTL_SECONDS, using default")
		}
	}
	if timeout := os.Getenv("ESTIMATOR_LOOKUP_TIMEOUT_SECONDS"); timeout != "" {
		if parsed, err := strconv.Atoi(timeout); err == nil && parsed > 0 {
			cfg.LookupTimeout = time.Duration(parsed) * time.Second
		} else {
			logger.Warn().Str("value", timeout).Msg("invalid ESTIMATOR_LOOKUP_TIMEOUT_SECONDS, using default")
		}
	}
	if region := os.Getenv("ESTIMATOR_REGION"); region != "" {
		cfg.Region = region
	}
	cfg.PriceOverrides = os.Getenv("ESTIMATOR_PRICE_OVERRIDES")

	if level := os.Getenv("ESTIMATOR_LOG_LEVEL"); level != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil {
			cfg.LogLevel = parsed
		} else {
			logger.Warn().Str("value", level).Msg("invalid ESTIMATOR_LOG_LEVEL, using info")
		}
	}

	return cfg
}
