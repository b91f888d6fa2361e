package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port string

	// EstimateDelay pads each estimate to emulate a network round-trip.
	EstimateDelay time.Duration

	// Session retention.
	SessionMaxAge        time.Duration // idle sessions older than this are swept (0 = never)
	SessionSweepInterval time.Duration // how often the sweep runs (0 = disabled)
	SessionMaxHistory    int           // recent quotes kept per session (0 = unlimited)

	// Estimator circuit breaker.
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration

	// RandomSeed pins the price generator; 0 seeds from entropy.
	RandomSeed uint64
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")

	var err error
	if cfg.EstimateDelay, err = getenvDuration("ESTIMATE_DELAY", "1s"); err != nil {
		return nil, err
	}
	if cfg.SessionMaxAge, err = getenvDuration("SESSION_MAX_AGE", "30m"); err != nil {
		return nil, err
	}
	if cfg.SessionSweepInterval, err = getenvDuration("SESSION_SWEEP_INTERVAL", "5m"); err != nil {
		return nil, err
	}
	cfg.SessionMaxHistory = getenvInt("SESSION_MAX_HISTORY", 10)

	maxFailures := getenvInt("BREAKER_MAX_FAILURES", 5)
	if maxFailures <= 0 {
		return nil, fmt.Errorf("invalid BREAKER_MAX_FAILURES: must be positive, got %d", maxFailures)
	}
	cfg.BreakerMaxFailures = uint32(maxFailures)
	if cfg.BreakerOpenTimeout, err = getenvDuration("BREAKER_OPEN_TIMEOUT", "30s"); err != nil {
		return nil, err
	}

	if v := os.Getenv("RANDOM_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RANDOM_SEED: %w", err)
		}
		cfg.RandomSeed = seed
	}

	return cfg, nil
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return d, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
