package config

import (
	"fmt"
	"os"
	"strconv"
)

// RetentionConfig holds configuration for event retention and cleanup.
type RetentionConfig struct {
	// RetentionDays is how long events are kept before cleanup deletes
	// them. Default: 90, Range: 1-730.
	RetentionDays int

	// CleanupBatchSize is the number of events to delete per transaction.
	// Larger batches finish faster but hold locks longer.
	// Default: 500, Range: 100-10000.
	CleanupBatchSize int
}

// DefaultRetentionConfig returns the default retention configuration.
func DefaultRetentionConfig() RetentionConfig {
	return RetentionConfig{
		RetentionDays:    90,
		CleanupBatchSize: 500,
	}
}

// Validate checks if the configuration has valid values.
func (c RetentionConfig) Validate() error {
	if c.RetentionDays < 1 || c.RetentionDays > 730 {
		return fmt.Errorf("retention_days must be between 1 and 730 (got %d)", c.RetentionDays)
	}
	if c.CleanupBatchSize < 100 {
		return fmt.Errorf("cleanup_batch_size must be at least 100 (got %d)", c.CleanupBatchSize)
	}
	if c.CleanupBatchSize > 10000 {
		return fmt.Errorf("cleanup_batch_size too large (got %d, max 10000)", c.CleanupBatchSize)
	}
	return nil
}

// RetentionConfigFromEnv creates a RetentionConfig from environment
// variables, falling back to defaults.
//
// Environment variables:
//   - DEVHEALTH_EVENT_RETENTION_DAYS: Days to keep events (default: 90)
//   - DEVHEALTH_CLEANUP_BATCH_SIZE: Events deleted per transaction (default: 500)
//
// Returns an error if any environment variable has an invalid value.
func RetentionConfigFromEnv() (RetentionConfig, error) {
	cfg := DefaultRetentionConfig()

	if err := parseEnvInt("DEVHEALTH_EVENT_RETENTION_DAYS", &cfg.RetentionDays); err != nil {
		return cfg, err
	}
	if err := parseEnvInt("DEVHEALTH_CLEANUP_BATCH_SIZE", &cfg.CleanupBatchSize); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid retention configuration from environment: %w", err)
	}

	return cfg, nil
}

// parseEnvInt parses an int from an environment variable.
func parseEnvInt(key string, dest *int) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dest = parsed
	return nil
}
