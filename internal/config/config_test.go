package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultPort, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, DefaultDataDir, cfg.DataDir)
		assert.Equal(t, DefaultCacheSize, cfg.CacheSize)
		assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
		assert.Equal(t, DefaultSimMaxTrials, cfg.SimMaxTrials)
		assert.Nil(t, cfg.DefaultSeed)
		assert.False(t, cfg.AuthEnabled())
		assert.False(t, cfg.HistoryEnabled())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv(EnvPort, "3000")
		t.Setenv(EnvAPIKey, "custom-api-key")
		t.Setenv(EnvLogLevel, "DEBUG")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "prod")
		t.Setenv(EnvDatabaseURL, "postgres://u:p@db:5432/craft")
		t.Setenv(EnvCacheSize, "64")
		t.Setenv(EnvCacheTTL, "90s")
		t.Setenv(EnvSimMaxTrials, "5000")
		t.Setenv(EnvSimWorkers, "8")
		t.Setenv(EnvDefaultSeed, "18446744073709551615")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.True(t, cfg.HistoryEnabled())
		assert.True(t, cfg.AuthEnabled())
		assert.Equal(t, 64, cfg.CacheSize)
		assert.Equal(t, 90*time.Second, cfg.CacheTTL)
		assert.Equal(t, 5000, cfg.SimMaxTrials)
		assert.Equal(t, 8, cfg.SimWorkers)
		require.NotNil(t, cfg.DefaultSeed)
		assert.Equal(t, uint64(18446744073709551615), *cfg.DefaultSeed)
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvPort, "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT value")
	})

	t.Run("returns error for invalid seed", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvDefaultSeed, "-1")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvDefaultSeed)
	})

	t.Run("returns error for unknown log level", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvLogLevel, "verbose")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "verbose")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port: 8080, LogLevel: "info", LogFormat: "text", DataDir: "configs/data",
			CacheSize: 1, CacheTTL: time.Minute, SimMaxTrials: 1, SimWorkers: 1,
			HistoryWorkers: 1, HistoryQueueSize: 1,
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name    string
		mutate  func(c *Config)
		message string
	}{
		{"port zero", func(c *Config) { c.Port = 0 }, "PORT must be between"},
		{"port too large", func(c *Config) { c.Port = 70000 }, "PORT must be between"},
		{"log format", func(c *Config) { c.LogFormat = "xml" }, "LOG_FORMAT"},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, "DATA_DIR must not be empty"},
		{"cache size", func(c *Config) { c.CacheSize = 0 }, "CACHE_SIZE must be positive"},
		{"cache ttl", func(c *Config) { c.CacheTTL = 0 }, "CACHE_TTL must be positive"},
		{"sim trials", func(c *Config) { c.SimMaxTrials = -1 }, "SIM_MAX_TRIALS must be positive"},
		{"sim workers", func(c *Config) { c.SimWorkers = 0 }, "SIM_WORKERS must be positive"},
		{"history queue", func(c *Config) { c.HistoryQueueSize = 0 }, "HISTORY_QUEUE_SIZE must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}

	t.Run("reports every problem", func(t *testing.T) {
		cfg := valid()
		cfg.Port = 0
		cfg.SimWorkers = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvPort)
		assert.Contains(t, err.Error(), EnvSimWorkers)
	})
}

func TestLoggerConfig(t *testing.T) {
	cfg := &Config{LogLevel: "debug", LogFormat: "json", ServiceName: "svc", Version: "1.2.3", Environment: "dev"}

	lc := cfg.LoggerConfig()

	assert.Equal(t, "debug", lc.Level)
	assert.True(t, lc.IsJSON())
	assert.Equal(t, "svc", lc.ServiceName)
	assert.Equal(t, "1.2.3", lc.Version)
	assert.True(t, lc.AddSource, "dev adds source locations")
}

// clearEnvVars unsets every variable Load reads; t.Setenv restores them afterwards
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		EnvPort, EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvVersion, EnvServiceName,
		EnvDataDir, EnvSchemaDir, EnvDatabaseURL, EnvAPIKey, EnvCacheSize, EnvCacheTTL,
		EnvSimMaxTrials, EnvSimWorkers, EnvDefaultSeed, EnvHistoryWorkers, EnvHistoryQueueSize,
		EnvSchemaVersion, EnvDBMaxConns, EnvDBMaxIdleTime, EnvDBMaxLifetime, EnvTrustedProxies,
	}

	for _, key := range envVars {
		t.Setenv(key, "")
		clearVar(t, key)
	}
}

// clearVar unsets a variable already registered with t.Setenv
func clearVar(t *testing.T, key string) {
	t.Helper()
	require.NoError(t, os.Unsetenv(key))
}
