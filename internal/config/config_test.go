package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "ESTIMATE_DELAY", "SESSION_MAX_AGE", "SESSION_SWEEP_INTERVAL",
	"SESSION_MAX_HISTORY", "BREAKER_MAX_FAILURES", "BREAKER_OPEN_TIMEOUT", "RANDOM_SEED",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Second, cfg.EstimateDelay)
	assert.Equal(t, 30*time.Minute, cfg.SessionMaxAge)
	assert.Equal(t, 5*time.Minute, cfg.SessionSweepInterval)
	assert.Equal(t, 10, cfg.SessionMaxHistory)
	assert.Equal(t, uint32(5), cfg.BreakerMaxFailures)
	assert.Equal(t, 30*time.Second, cfg.BreakerOpenTimeout)
	assert.Equal(t, uint64(0), cfg.RandomSeed)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ESTIMATE_DELAY", "0s")
	t.Setenv("SESSION_MAX_AGE", "1h")
	t.Setenv("SESSION_MAX_HISTORY", "3")
	t.Setenv("BREAKER_MAX_FAILURES", "2")
	t.Setenv("RANDOM_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, time.Duration(0), cfg.EstimateDelay)
	assert.Equal(t, time.Hour, cfg.SessionMaxAge)
	assert.Equal(t, 3, cfg.SessionMaxHistory)
	assert.Equal(t, uint32(2), cfg.BreakerMaxFailures)
	assert.Equal(t, uint64(42), cfg.RandomSeed)
}

func TestLoadInvalidValues(t *testing.T) {
	cases := map[string]string{
		"ESTIMATE_DELAY":       "soon",
		"SESSION_MAX_AGE":      "-1m",
		"BREAKER_MAX_FAILURES": "0",
		"RANDOM_SEED":          "-7",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_MAX_HISTORY", "many")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.SessionMaxHistory)
}
