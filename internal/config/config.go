// Package config holds the health monitor configuration: pattern
// thresholds, reminder intervals, and the monitoring cadence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the complete health monitor configuration.
// Zero values are never valid; construct via DefaultConfig or Load.
type Config struct {
	// MinBreak is the commit gap that ends a coding session.
	// Default: 5 minutes
	MinBreak time.Duration `yaml:"min_break"`

	// LongSession is the session duration considered unhealthy.
	// Default: 3 hours
	LongSession time.Duration `yaml:"long_session"`

	// LateNightStart is the hour (0-23) after which commits count as late-night.
	// Default: 22
	LateNightStart int `yaml:"late_night_start"`

	// LateNightEnd is the hour (0-23) before which commits count as late-night.
	// Default: 6
	LateNightEnd int `yaml:"late_night_end"`

	// DailyLimit is the healthy maximum coding time per day.
	// Default: 8 hours
	DailyLimit time.Duration `yaml:"daily_limit"`

	// WeeklyLimit is the healthy maximum coding time per ISO week.
	// Default: 40 hours
	WeeklyLimit time.Duration `yaml:"weekly_limit"`

	// CheckInterval is how often the monitor loop re-analyzes activity.
	// Default: 10 minutes
	CheckInterval time.Duration `yaml:"check_interval"`

	// Reminder intervals
	HydrationInterval  time.Duration `yaml:"hydration_interval"`  // Default: 60 minutes
	ActivityInterval   time.Duration `yaml:"activity_interval"`   // Default: 90 minutes
	ErgonomicsInterval time.Duration `yaml:"ergonomics_interval"` // Default: 120 minutes
	MoodCheckInterval  time.Duration `yaml:"mood_check_interval"` // Default: 180 minutes

	// NotifySpacing is the pause between consecutive notifications so
	// popups don't pile on top of each other.
	// Default: 2 seconds
	NotifySpacing time.Duration `yaml:"notify_spacing"`

	// DesktopNotifications controls whether native popups are sent.
	// When false only console output is produced.
	// Default: true
	DesktopNotifications bool `yaml:"desktop_notifications"`
}

// DefaultConfig returns the configuration matching the tool's documented
// defaults: 5m session gap, 3h long-session threshold, 22:00-06:00
// late-night window, 8h/40h work limits, 10m check cadence.
func DefaultConfig() *Config {
	return &Config{
		MinBreak:             5 * time.Minute,
		LongSession:          3 * time.Hour,
		LateNightStart:       22,
		LateNightEnd:         6,
		DailyLimit:           8 * time.Hour,
		WeeklyLimit:          40 * time.Hour,
		CheckInterval:        10 * time.Minute,
		HydrationInterval:    60 * time.Minute,
		ActivityInterval:     90 * time.Minute,
		ErgonomicsInterval:   120 * time.Minute,
		MoodCheckInterval:    180 * time.Minute,
		NotifySpacing:        2 * time.Second,
		DesktopNotifications: true,
	}
}

// LoadFromFile loads configuration from a YAML file.
// Returns default config if the file doesn't exist.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override default values. Prefix: DEVHEALTH_
func LoadFromEnv() *Config {
	cfg := DefaultConfig()
	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		fmt.Printf("Warning: invalid config from environment: %v\n", err)
		return DefaultConfig()
	}

	return cfg
}

// Load reads the config file (if any) and then applies environment
// overrides on top of it.
func Load(path string) (*Config, error) {
	cfg, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}

	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if val := os.Getenv("DEVHEALTH_MIN_BREAK"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			c.MinBreak = d
		}
	}

	if val := os.Getenv("DEVHEALTH_LONG_SESSION"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			c.LongSession = d
		}
	}

	if val := os.Getenv("DEVHEALTH_LATE_NIGHT_START"); val != "" {
		if h, err := strconv.Atoi(val); err == nil {
			c.LateNightStart = h
		}
	}

	if val := os.Getenv("DEVHEALTH_LATE_NIGHT_END"); val != "" {
		if h, err := strconv.Atoi(val); err == nil {
			c.LateNightEnd = h
		}
	}

	if val := os.Getenv("DEVHEALTH_DAILY_LIMIT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			c.DailyLimit = d
		}
	}

	if val := os.Getenv("DEVHEALTH_WEEKLY_LIMIT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			c.WeeklyLimit = d
		}
	}

	if val := os.Getenv("DEVHEALTH_CHECK_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			c.CheckInterval = d
		}
	}

	if val := os.Getenv("DEVHEALTH_HYDRATION_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			c.HydrationInterval = d
		}
	}

	if val := os.Getenv("DEVHEALTH_ACTIVITY_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			c.ActivityInterval = d
		}
	}

	if val := os.Getenv("DEVHEALTH_ERGONOMICS_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			c.ErgonomicsInterval = d
		}
	}

	if val := os.Getenv("DEVHEALTH_MOOD_CHECK_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			c.MoodCheckInterval = d
		}
	}

	if val := os.Getenv("DEVHEALTH_NOTIFY_SPACING"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			c.NotifySpacing = d
		}
	}

	if val := os.Getenv("DEVHEALTH_DESKTOP_NOTIFICATIONS"); val != "" {
		c.DesktopNotifications = parseBool(val)
	}
}

// parseBool parses a boolean string with a default value of true
func parseBool(val string) bool {
	switch val {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return true
	}
}

// Validate checks that the configuration has safe and reasonable values.
func (c *Config) Validate() error {
	return c.validate()
}

func (c *Config) validate() error {
	if c.MinBreak <= 0 {
		return fmt.Errorf("min_break must be positive, got %v", c.MinBreak)
	}

	if c.LongSession <= 0 {
		return fmt.Errorf("long_session must be positive, got %v", c.LongSession)
	}

	if c.LateNightStart < 0 || c.LateNightStart > 23 {
		return fmt.Errorf("late_night_start must be an hour 0-23, got %d", c.LateNightStart)
	}
	if c.LateNightEnd < 0 || c.LateNightEnd > 23 {
		return fmt.Errorf("late_night_end must be an hour 0-23, got %d", c.LateNightEnd)
	}

	if c.DailyLimit <= 0 {
		return fmt.Errorf("daily_limit must be positive, got %v", c.DailyLimit)
	}
	if c.WeeklyLimit <= 0 {
		return fmt.Errorf("weekly_limit must be positive, got %v", c.WeeklyLimit)
	}

	// Check interval should be reasonable (not too fast, not too slow)
	if c.CheckInterval < 10*time.Second {
		return fmt.Errorf("check_interval too fast (minimum 10s), got %v", c.CheckInterval)
	}
	if c.CheckInterval > 2*time.Hour {
		return fmt.Errorf("check_interval too slow (maximum 2h), got %v", c.CheckInterval)
	}

	if c.HydrationInterval <= 0 {
		return fmt.Errorf("hydration_interval must be positive, got %v", c.HydrationInterval)
	}
	if c.ActivityInterval <= 0 {
		return fmt.Errorf("activity_interval must be positive, got %v", c.ActivityInterval)
	}
	if c.ErgonomicsInterval <= 0 {
		return fmt.Errorf("ergonomics_interval must be positive, got %v", c.ErgonomicsInterval)
	}
	if c.MoodCheckInterval <= 0 {
		return fmt.Errorf("mood_check_interval must be positive, got %v", c.MoodCheckInterval)
	}

	if c.NotifySpacing < 0 {
		return fmt.Errorf("notify_spacing must be non-negative, got %v", c.NotifySpacing)
	}

	return nil
}

// SaveToFile saves the current configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
