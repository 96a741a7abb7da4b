package database

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"toughlove-affirmations/internal/metrics"
)

// GetRecentAffirmations returns the recently served texts, oldest first
func (d *DB) GetRecentAffirmations() ([]string, error) {
	timer := prometheus.NewTimer(metrics.DBOperationDuration.WithLabelValues(metrics.DBOpGetRecent))
	defer timer.ObserveDuration()

	rows, err := d.conn.Query(`SELECT text FROM recent_affirmations ORDER BY seq ASC`)
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpGetRecent).Inc()
		return nil, fmt.Errorf("failed to query recent affirmations: %w", err)
	}
	defer rows.Close()

	var recent []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("failed to scan recent affirmation: %w", err)
		}
		recent = append(recent, text)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recent affirmations: %w", err)
	}

	return recent, nil
}

// AppendRecentAffirmations appends served texts to the FIFO window and
// prunes the oldest entries beyond maxSize, in one transaction
func (d *DB) AppendRecentAffirmations(texts []string, maxSize int) error {
	timer := prometheus.NewTimer(metrics.DBOperationDuration.WithLabelValues(metrics.DBOpAppendRecent))
	defer timer.ObserveDuration()

	tx, err := d.conn.Begin()
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpAppendRecent).Inc()
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, text := range texts {
		if _, err := tx.Exec(`INSERT INTO recent_affirmations (text) VALUES (?)`, text); err != nil {
			metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpAppendRecent).Inc()
			return fmt.Errorf("failed to insert recent affirmation: %w", err)
		}
	}

	// Keep only the newest maxSize entries
	if _, err := tx.Exec(
		`DELETE FROM recent_affirmations
		 WHERE seq NOT IN (SELECT seq FROM recent_affirmations ORDER BY seq DESC LIMIT ?)`,
		maxSize,
	); err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpAppendRecent).Inc()
		return fmt.Errorf("failed to prune recent affirmations: %w", err)
	}

	if err := tx.Commit(); err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpAppendRecent).Inc()
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ClearRecentAffirmations empties the FIFO window
func (d *DB) ClearRecentAffirmations() error {
	timer := prometheus.NewTimer(metrics.DBOperationDuration.WithLabelValues(metrics.DBOpClearRecent))
	defer timer.ObserveDuration()

	if _, err := d.conn.Exec(`DELETE FROM recent_affirmations`); err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpClearRecent).Inc()
		return fmt.Errorf("failed to clear recent affirmations: %w", err)
	}
	return nil
}

// GetRecentAffirmationCount returns the current window size
func (d *DB) GetRecentAffirmationCount() (int, error) {
	var count int
	err := d.conn.QueryRow(`SELECT COUNT(*) FROM recent_affirmations`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent affirmations: %w", err)
	}
	return count, nil
}

// GetFavorites returns the starred corpus indices in ascending order
func (d *DB) GetFavorites() ([]int, error) {
	timer := prometheus.NewTimer(metrics.DBOperationDuration.WithLabelValues(metrics.DBOpGetFavorites))
	defer timer.ObserveDuration()

	rows, err := d.conn.Query(`SELECT affirmation_id FROM favorites ORDER BY affirmation_id ASC`)
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpGetFavorites).Inc()
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	favorites := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate favorites: %w", err)
	}

	return favorites, nil
}

// ToggleFavorite stars the given corpus index, or unstars it when already
// present. Returns true when the index is starred after the call.
func (d *DB) ToggleFavorite(id int, now time.Time) (bool, error) {
	timer := prometheus.NewTimer(metrics.DBOperationDuration.WithLabelValues(metrics.DBOpToggleFavorite))
	defer timer.ObserveDuration()

	result, err := d.conn.Exec(`DELETE FROM favorites WHERE affirmation_id = ?`, id)
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpToggleFavorite).Inc()
		return false, fmt.Errorf("failed to toggle favorite: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check favorite removal: %w", err)
	}
	if removed > 0 {
		return false, nil
	}

	if _, err := d.conn.Exec(
		`INSERT INTO favorites (affirmation_id, created_at) VALUES (?, ?)`,
		id, now.Unix(),
	); err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpToggleFavorite).Inc()
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}
	return true, nil
}
