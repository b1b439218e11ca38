package config

import "time"

// Environment variable names
const (
	EnvPort              = "PORT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvEnvironment       = "ENVIRONMENT"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvAPIKey            = "API_KEY"
	EnvStorageBackend    = "STORAGE_BACKEND"
	EnvDataFile          = "DATA_FILE"
	EnvDBUser            = "DB_USER"
	EnvDBPassword        = "DB_PASSWORD"
	EnvDBHost            = "DB_HOST"
	EnvDBPort            = "DB_PORT"
	EnvDBName            = "DB_NAME"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime = "DB_MAX_CONN_LIFETIME"
	EnvCatalogDir        = "CATALOG_DIR"
	EnvSummaryCacheSize  = "SUMMARY_CACHE_SIZE"
	EnvSummaryCacheTTL   = "SUMMARY_CACHE_TTL"
	EnvTrustedProxies    = "TRUSTED_PROXIES"
	EnvMaxBodyBytes      = "MAX_BODY_BYTES"
	EnvRateLimitRPS      = "RATE_LIMIT_RPS"
	EnvRateLimitBurst    = "RATE_LIMIT_BURST"
)

// Defaults
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "factory-planner"
	DefaultVersion     = "dev"
	DefaultDataFile    = "data/production_lines.json"

	DefaultDBUser     = "postgres"
	DefaultDBPassword = "postgres"
	DefaultDBHost     = "localhost"
	DefaultDBPort     = "5432"
	DefaultDBName     = "factory_planner"
	DefaultDBMaxConns = 10

	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultSummaryCacheSize = 256
	DefaultSummaryCacheTTL  = 10 * time.Minute

	DefaultMaxBodyBytes   = 1 << 20
	DefaultRateLimitRPS   = 50.0
	DefaultRateLimitBurst = 100
)

// Storage backends
const (
	StorageBackendFile     = "file"
	StorageBackendPostgres = "postgres"
)

// Accepted values
var (
	ValidLogFormats   = []string{"json", "text"}
	ValidLogLevels    = []string{"debug", "info", "warn", "warning", "error"}
	ValidEnvironments = []string{"dev", "staging", "prod", "test"}
)

// Port bounds
const (
	MinPort = 1
	MaxPort = 65535
)
