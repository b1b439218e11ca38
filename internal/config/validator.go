package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks the loaded values and reports every problem at once
func (c *Config) Validate() error {
	var problems []string

	if c.Port < MinPort || c.Port > MaxPort {
		problems = append(problems, fmt.Sprintf("PORT must be between %d and %d, got %d", MinPort, MaxPort, c.Port))
	}
	if !slices.Contains(ValidLogFormats, strings.ToLower(c.LogFormat)) {
		problems = append(problems, fmt.Sprintf("LOG_FORMAT must be one of %s, got %q", strings.Join(ValidLogFormats, ", "), c.LogFormat))
	}
	if !slices.Contains(ValidLogLevels, strings.ToLower(c.LogLevel)) {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of %s, got %q", strings.Join(ValidLogLevels, ", "), c.LogLevel))
	}
	if !slices.Contains(ValidEnvironments, c.Environment) {
		problems = append(problems, fmt.Sprintf("ENVIRONMENT must be one of %s, got %q", strings.Join(ValidEnvironments, ", "), c.Environment))
	}

	switch c.StorageBackend {
	case StorageBackendFile:
		if c.DataFile == "" {
			problems = append(problems, "DATA_FILE must be set for the file backend")
		}
	case StorageBackendPostgres:
		if c.DBHost == "" || c.DBName == "" || c.DBUser == "" {
			problems = append(problems, "DB_HOST, DB_NAME and DB_USER must be set for the postgres backend")
		}
		if c.DBMaxConns < 1 {
			problems = append(problems, fmt.Sprintf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns))
		}
	default:
		problems = append(problems, fmt.Sprintf("STORAGE_BACKEND must be %q or %q, got %q", StorageBackendFile, StorageBackendPostgres, c.StorageBackend))
	}

	if c.MaxBodyBytes < 1 {
		problems = append(problems, fmt.Sprintf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes))
	}
	if c.RateLimitRPS < 0 {
		problems = append(problems, fmt.Sprintf("RATE_LIMIT_RPS must not be negative, got %g", c.RateLimitRPS))
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		problems = append(problems, fmt.Sprintf("RATE_LIMIT_BURST must be positive when rate limiting is enabled, got %d", c.RateLimitBurst))
	}
	if c.SummaryCacheSize < 0 {
		problems = append(problems, fmt.Sprintf("SUMMARY_CACHE_SIZE must not be negative, got %d", c.SummaryCacheSize))
	}
	if c.SummaryCacheTTL < 0 {
		problems = append(problems, fmt.Sprintf("SUMMARY_CACHE_TTL must not be negative, got %s", c.SummaryCacheTTL))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Warnings returns non-fatal issues, such as insecure defaults in production
func (c *Config) Warnings() []string {
	var warnings []string

	if c.Environment != "prod" {
		return warnings
	}
	if c.APIKey == "" {
		warnings = append(warnings, "API_KEY is not set - the API is open to anyone who can reach it")
	}
	if c.UsesPostgres() && c.DBPassword == DefaultDBPassword {
		warnings = append(warnings, "DB_PASSWORD is using the default value - please use a secure password")
	}

	return warnings
}
