package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		set   bool
		value string
		want  int
	}{
		{"unset uses default", false, "", 42},
		{"valid integer", true, "100", 100},
		{"negative", true, "-10", -10},
		{"zero", true, "0", 0},
		{"not a number", true, "not-a-number", 42},
		{"float", true, "42.5", 42},
		{"empty", true, "", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT_VAR", tt.value)
			if !tt.set {
				clearVar(t, "TEST_INT_VAR")
			}
			assert.Equal(t, tt.want, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	def := 5 * time.Minute
	tests := []struct {
		name  string
		set   bool
		value string
		want  time.Duration
	}{
		{"unset uses default", false, "", def},
		{"minutes", true, "10m", 10 * time.Minute},
		{"compound", true, "1h30m45s", time.Hour + 30*time.Minute + 45*time.Second},
		{"milliseconds", true, "500ms", 500 * time.Millisecond},
		{"invalid", true, "not-a-duration", def},
		{"number without unit", true, "100", def},
		{"empty", true, "", def},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", tt.value)
			if !tt.set {
				clearVar(t, "TEST_DURATION_VAR")
			}
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION_VAR", def))
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "10.0.0.1", []string{"10.0.0.1"}},
		{"trims and skips blanks", " 10.0.0.1 , ,10.0.0.2,", []string{"10.0.0.1", "10.0.0.2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_LIST_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsList("TEST_LIST_VAR"))
		})
	}
}

// TestLoad_DatabasePoolConfig tests that database pool configuration is loaded correctly
func TestLoad_DatabasePoolConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
		assert.Equal(t, DefaultDBMaxIdleTime, cfg.DBMaxConnIdleTime)
		assert.Equal(t, DefaultDBMaxLifetime, cfg.DBMaxConnLifetime)
	})

	t.Run("custom values", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvDBMaxConns, "50")
		t.Setenv(EnvDBMaxIdleTime, "10m")
		t.Setenv(EnvDBMaxLifetime, "1h")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 50, cfg.DBMaxConns)
		assert.Equal(t, 10*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, time.Hour, cfg.DBMaxConnLifetime)

		pc := cfg.PoolConfig()
		assert.Equal(t, 50, pc.MaxConns)
		assert.Equal(t, 10*time.Minute, pc.MaxConnIdleTime)
		assert.Equal(t, time.Hour, pc.MaxConnLifetime)
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvDBMaxConns, "not-a-number")
		t.Setenv(EnvDBMaxIdleTime, "invalid")
		t.Setenv(EnvDBMaxLifetime, "bad-duration")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
		assert.Equal(t, DefaultDBMaxIdleTime, cfg.DBMaxConnIdleTime)
		assert.Equal(t, DefaultDBMaxLifetime, cfg.DBMaxConnLifetime)
	})
}
