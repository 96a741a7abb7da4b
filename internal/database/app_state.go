package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"toughlove-affirmations/internal/metrics"
)

// Keys used in the app_state table
const (
	StateOnboardingCompleted = "onboardingCompleted"
	StateSelectedAreas       = "selectedAreas"
	StateTodayAffirmation    = "todayAffirmation" // suffixed with _<day>
)

// GetAppState returns the value for a key, or "" when the key is unset
func (d *DB) GetAppState(key string) (string, error) {
	timer := prometheus.NewTimer(metrics.DBOperationDuration.WithLabelValues(metrics.DBOpGetAppState))
	defer timer.ObserveDuration()

	var value string
	err := d.conn.QueryRow(`SELECT value FROM app_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpGetAppState).Inc()
		return "", fmt.Errorf("failed to get app state %q: %w", key, err)
	}
	return value, nil
}

// SetAppState creates or overwrites the value for a key
func (d *DB) SetAppState(key, value string) error {
	timer := prometheus.NewTimer(metrics.DBOperationDuration.WithLabelValues(metrics.DBOpSetAppState))
	defer timer.ObserveDuration()

	_, err := d.conn.Exec(
		`INSERT INTO app_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpSetAppState).Inc()
		return fmt.Errorf("failed to set app state %q: %w", key, err)
	}
	return nil
}
