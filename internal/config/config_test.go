package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfigWithDefaults(t *testing.T) {
	clearTestEnv(t)

	config, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.Host != "localhost" {
		t.Errorf("Expected default host 'localhost', got %s", config.Host)
	}
	if config.Port != 4180 {
		t.Errorf("Expected default port 4180, got %d", config.Port)
	}
	if config.DatabasePath != "./data.db" {
		t.Errorf("Expected default database path './data.db', got %s", config.DatabasePath)
	}
	if config.LogLevel != "info" {
		t.Errorf("Expected default log level 'info', got %s", config.LogLevel)
	}
	if config.FeedSize != 20 {
		t.Errorf("Expected default feed size 20, got %d", config.FeedSize)
	}
	if config.RecentWindowSize != 100 {
		t.Errorf("Expected default recent window size 100, got %d", config.RecentWindowSize)
	}
	if config.MinLeadHours != 4 {
		t.Errorf("Expected default minimum lead hours 4, got %d", config.MinLeadHours)
	}
	if config.LedgerRetentionDays != 365 {
		t.Errorf("Expected default ledger retention 365, got %d", config.LedgerRetentionDays)
	}
	if !config.NotificationsSupported {
		t.Error("Expected notifications supported by default")
	}
	if config.MetricsEnabled {
		t.Error("Expected metrics disabled by default")
	}
}

func TestLoadConfigFromEnvVars(t *testing.T) {
	setTestEnv(t, map[string]string{
		"HOST":                     "0.0.0.0",
		"PORT":                     "8080",
		"DATABASE_PATH":            "/tmp/test.db",
		"LOG_LEVEL":                "debug",
		"FEED_SIZE":                "10",
		"RECENT_WINDOW_SIZE":       "50",
		"MIN_LEAD_HOURS":           "2",
		"LEDGER_RETENTION_DAYS":    "30",
		"DELIVERY_POLL_INTERVAL_MS": "5000",
		"NOTIFICATIONS_SUPPORTED":  "false",
		"METRICS_ENABLED":          "true",
		"METRICS_PORT":             "9090",
	})

	config, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.Host != "0.0.0.0" {
		t.Errorf("Expected host '0.0.0.0', got %s", config.Host)
	}
	if config.Port != 8080 {
		t.Errorf("Expected port 8080, got %d", config.Port)
	}
	if config.DatabasePath != "/tmp/test.db" {
		t.Errorf("Expected database path '/tmp/test.db', got %s", config.DatabasePath)
	}
	if config.FeedSize != 10 {
		t.Errorf("Expected feed size 10, got %d", config.FeedSize)
	}
	if config.RecentWindowSize != 50 {
		t.Errorf("Expected recent window size 50, got %d", config.RecentWindowSize)
	}
	if config.MinLeadHours != 2 {
		t.Errorf("Expected minimum lead hours 2, got %d", config.MinLeadHours)
	}
	if config.LedgerRetentionDays != 30 {
		t.Errorf("Expected ledger retention 30, got %d", config.LedgerRetentionDays)
	}
	if config.DeliveryPollInterval != 5*time.Second {
		t.Errorf("Expected delivery poll interval 5s, got %v", config.DeliveryPollInterval)
	}
	if config.NotificationsSupported {
		t.Error("Expected notifications unsupported")
	}
	if !config.MetricsEnabled {
		t.Error("Expected metrics enabled")
	}
	if config.MetricsPort != 9090 {
		t.Errorf("Expected metrics port 9090, got %d", config.MetricsPort)
	}
}

func TestLoadConfigRejectsFeedLargerThanWindow(t *testing.T) {
	setTestEnv(t, map[string]string{
		"FEED_SIZE":          "30",
		"RECENT_WINDOW_SIZE": "20",
	})

	if _, err := Load(); err == nil {
		t.Fatal("Expected error when RECENT_WINDOW_SIZE < FEED_SIZE")
	}
}

func TestLoadConfigRejectsShortRetention(t *testing.T) {
	setTestEnv(t, map[string]string{
		"LEDGER_RETENTION_DAYS": "3",
	})

	if _, err := Load(); err == nil {
		t.Fatal("Expected error when LEDGER_RETENTION_DAYS < 7")
	}
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	setTestEnv(t, map[string]string{
		"PORT":            "not-a-number",
		"METRICS_ENABLED": "definitely",
	})

	config, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Malformed values fall back to defaults
	if config.Port != 4180 {
		t.Errorf("Expected default port 4180, got %d", config.Port)
	}
	if config.MetricsEnabled {
		t.Error("Expected metrics disabled for malformed bool")
	}
}

func TestMinLead(t *testing.T) {
	cfg := &Config{MinLeadHours: 4}
	if cfg.MinLead() != 4*time.Hour {
		t.Errorf("Expected 4h minimum lead, got %v", cfg.MinLead())
	}
}

// Helper function to set test environment variables and clean up after test
func setTestEnv(t *testing.T, vars map[string]string) {
	t.Helper()

	clearTestEnv(t)

	for key, value := range vars {
		os.Setenv(key, value)
		t.Cleanup(func() {
			os.Unsetenv(key)
		})
	}
}

// Helper function to clear all config-related environment variables
func clearTestEnv(t *testing.T) {
	t.Helper()

	envVars := []string{
		"HOST", "PORT", "DATABASE_PATH", "LOG_LEVEL",
		"FEED_SIZE", "RECENT_WINDOW_SIZE",
		"NOTIFICATIONS_SUPPORTED", "MIN_LEAD_HOURS", "DELIVERY_POLL_INTERVAL_MS",
		"LEDGER_RETENTION_DAYS",
		"METRICS_ENABLED", "METRICS_HOST", "METRICS_PORT",
	}

	for _, key := range envVars {
		os.Unsetenv(key)
	}
}
