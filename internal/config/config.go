package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Host string
	Port int

	// Database configuration
	DatabasePath string

	// Feed configuration
	FeedSize         int
	RecentWindowSize int

	// Notification scheduling configuration
	NotificationsSupported bool
	MinLeadHours           int
	DeliveryPollInterval   time.Duration

	// Day-ledger retention
	LedgerRetentionDays int

	// Metrics configuration
	MetricsEnabled bool
	MetricsHost    string
	MetricsPort    int

	// Logging configuration
	LogLevel string
}

// Load reads configuration from environment variables.
// Every value has a default; Load fails fast on values that would make the
// feed or the scheduler misbehave rather than limping along with them.
func Load() (*Config, error) {
	cfg := &Config{
		Host:         getEnv("HOST", "localhost"),
		Port:         getEnvInt("PORT", 4180),
		DatabasePath: getEnv("DATABASE_PATH", "./data.db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),

		FeedSize:         getEnvInt("FEED_SIZE", 20),
		RecentWindowSize: getEnvInt("RECENT_WINDOW_SIZE", 100),

		NotificationsSupported: getEnvBool("NOTIFICATIONS_SUPPORTED", true),
		MinLeadHours:           getEnvInt("MIN_LEAD_HOURS", 4),
		DeliveryPollInterval:   time.Duration(getEnvInt("DELIVERY_POLL_INTERVAL_MS", 30000)) * time.Millisecond,

		LedgerRetentionDays: getEnvInt("LEDGER_RETENTION_DAYS", 365),

		MetricsEnabled: getEnvBool("METRICS_ENABLED", false),
		MetricsHost:    getEnv("METRICS_HOST", "localhost"),
		MetricsPort:    getEnvInt("METRICS_PORT", 4181),
	}

	if cfg.FeedSize < 1 {
		return nil, fmt.Errorf("FEED_SIZE must be at least 1, got %d", cfg.FeedSize)
	}
	if cfg.RecentWindowSize < cfg.FeedSize {
		return nil, fmt.Errorf("RECENT_WINDOW_SIZE (%d) must not be smaller than FEED_SIZE (%d)",
			cfg.RecentWindowSize, cfg.FeedSize)
	}
	if cfg.MinLeadHours < 0 {
		return nil, fmt.Errorf("MIN_LEAD_HOURS must not be negative, got %d", cfg.MinLeadHours)
	}
	if cfg.LedgerRetentionDays < 7 {
		return nil, fmt.Errorf("LEDGER_RETENTION_DAYS must be at least 7, got %d", cfg.LedgerRetentionDays)
	}
	if cfg.DeliveryPollInterval < time.Second {
		return nil, fmt.Errorf("DELIVERY_POLL_INTERVAL_MS must be at least 1000, got %v", cfg.DeliveryPollInterval)
	}

	return cfg, nil
}

// MinLead returns the minimum lead time before a scheduled notification may fire
func (c *Config) MinLead() time.Duration {
	return time.Duration(c.MinLeadHours) * time.Hour
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// getEnvBool gets a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
