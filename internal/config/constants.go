package config

import "time"

// Environment variable names
const (
	EnvPort             = "PORT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvEnvironment      = "ENVIRONMENT"
	EnvVersion          = "VERSION"
	EnvServiceName      = "SERVICE_NAME"
	EnvDataDir          = "DATA_DIR"
	EnvSchemaDir        = "SCHEMA_DIR"
	EnvDatabaseURL      = "DATABASE_URL"
	EnvAPIKey           = "API_KEY"
	EnvTrustedProxies   = "TRUSTED_PROXIES"
	EnvCacheSize        = "CACHE_SIZE"
	EnvCacheTTL         = "CACHE_TTL"
	EnvSimMaxTrials     = "SIM_MAX_TRIALS"
	EnvSimWorkers       = "SIM_WORKERS"
	EnvDefaultSeed      = "DEFAULT_SEED"
	EnvHistoryWorkers   = "HISTORY_WORKERS"
	EnvHistoryQueueSize = "HISTORY_QUEUE_SIZE"
	EnvSchemaVersion    = "ENV_SCHEMA_VERSION"
	EnvDBMaxConns       = "DB_MAX_CONNS"
	EnvDBMaxIdleTime    = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxLifetime    = "DB_MAX_CONN_LIFETIME"
)

// Defaults
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultVersion          = "dev"
	DefaultServiceName      = "poe2craft"
	DefaultDataDir          = "configs/data"
	DefaultSchemaDir        = "configs/schemas"
	DefaultCacheSize        = 512
	DefaultCacheTTL         = 10 * time.Minute
	DefaultSimMaxTrials     = 100_000
	DefaultSimWorkers       = 4
	DefaultHistoryWorkers   = 2
	DefaultHistoryQueueSize = 256
	DefaultDBMaxConns       = 20
	DefaultDBMaxIdleTime    = 5 * time.Minute
	DefaultDBMaxLifetime    = 30 * time.Minute
)

// Error messages
const (
	ErrFmtInvalidPort     = "invalid %s value: %w"
	ErrFmtInvalidSeed     = "invalid %s value: %w"
	ErrFmtPortRange       = "%s must be between 1 and 65535, got %d"
	ErrFmtNotPositive     = "%s must be positive, got %d"
	ErrFmtNotPositiveDur  = "%s must be positive, got %s"
	ErrFmtUnknownLogLevel = "%s %q is not one of debug, info, warn, error"
	ErrFmtUnknownFormat   = "%s %q is not one of json, text"
	ErrFmtEmpty           = "%s must not be empty"
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleAPIKey = "generate_with_openssl_rand_hex_32"
)
