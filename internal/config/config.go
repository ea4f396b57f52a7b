package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/PoE2Craft_Go/internal/database"
	"github.com/osse101/PoE2Craft_Go/internal/logger"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string
	ServiceName string

	DataDir   string
	SchemaDir string

	DatabaseURL       string // empty disables craft history
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	APIKey         string // empty disables authentication
	TrustedProxies []string

	CacheSize int
	CacheTTL  time.Duration

	SimMaxTrials int
	SimWorkers   int

	// DefaultSeed seeds the process-wide random source; nil seeds from the OS
	DefaultSeed *uint64

	HistoryWorkers   int
	HistoryQueueSize int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:        strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:      getEnv(EnvEnvironment, DefaultEnvironment),
		Version:          getEnv(EnvVersion, DefaultVersion),
		ServiceName:      getEnv(EnvServiceName, DefaultServiceName),
		DataDir:          getEnv(EnvDataDir, DefaultDataDir),
		SchemaDir:        getEnv(EnvSchemaDir, DefaultSchemaDir),
		DatabaseURL:      getEnv(EnvDatabaseURL, ""),
		APIKey:           getEnv(EnvAPIKey, ""),
		TrustedProxies:   getEnvAsList(EnvTrustedProxies),
		CacheSize:        getEnvAsInt(EnvCacheSize, DefaultCacheSize),
		CacheTTL:         getEnvAsDuration(EnvCacheTTL, DefaultCacheTTL),
		SimMaxTrials:     getEnvAsInt(EnvSimMaxTrials, DefaultSimMaxTrials),
		SimWorkers:       getEnvAsInt(EnvSimWorkers, DefaultSimWorkers),
		HistoryWorkers:   getEnvAsInt(EnvHistoryWorkers, DefaultHistoryWorkers),
		HistoryQueueSize: getEnvAsInt(EnvHistoryQueueSize, DefaultHistoryQueueSize),

		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxIdleTime, DefaultDBMaxIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxLifetime, DefaultDBMaxLifetime),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf(ErrFmtInvalidPort, EnvPort, err)
	}
	cfg.Port = port

	if raw, ok := os.LookupEnv(EnvDefaultSeed); ok && raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtInvalidSeed, EnvDefaultSeed, err)
		}
		cfg.DefaultSeed = &seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the service cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf(ErrFmtPortRange, EnvPort, c.Port))
	}
	if !logger.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf(ErrFmtUnknownLogLevel, EnvLogLevel, c.LogLevel))
	}
	if c.LogFormat != logger.LogFormatJSON && c.LogFormat != logger.LogFormatText {
		errs = append(errs, fmt.Errorf(ErrFmtUnknownFormat, EnvLogFormat, c.LogFormat))
	}
	if c.DataDir == "" {
		errs = append(errs, fmt.Errorf(ErrFmtEmpty, EnvDataDir))
	}
	for _, pos := range []struct {
		name  string
		value int
	}{
		{EnvCacheSize, c.CacheSize},
		{EnvSimMaxTrials, c.SimMaxTrials},
		{EnvSimWorkers, c.SimWorkers},
		{EnvHistoryWorkers, c.HistoryWorkers},
		{EnvHistoryQueueSize, c.HistoryQueueSize},
	} {
		if pos.value <= 0 {
			errs = append(errs, fmt.Errorf(ErrFmtNotPositive, pos.name, pos.value))
		}
	}
	if c.CacheTTL <= 0 {
		errs = append(errs, fmt.Errorf(ErrFmtNotPositiveDur, EnvCacheTTL, c.CacheTTL))
	}
	return errors.Join(errs...)
}

// AuthEnabled reports whether requests must carry the API key
func (c *Config) AuthEnabled() bool {
	return c.APIKey != ""
}

// HistoryEnabled reports whether craft history is persisted
func (c *Config) HistoryEnabled() bool {
	return c.DatabaseURL != ""
}

// PoolConfig maps the settings onto the database package
func (c *Config) PoolConfig() database.PoolConfig {
	return database.PoolConfig{
		URL:             c.DatabaseURL,
		MaxConns:        c.DBMaxConns,
		MaxConnIdleTime: c.DBMaxConnIdleTime,
		MaxConnLifetime: c.DBMaxConnLifetime,
	}
}

// LoggerConfig maps the settings onto the logger package
func (c *Config) LoggerConfig() logger.Config {
	return logger.NewConfig(c.LogLevel, c.LogFormat, c.ServiceName, c.Version, c.Environment, c.Environment == logger.EnvironmentDev)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the default when the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsDuration accepts Go duration strings such as "90s" or "10m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
