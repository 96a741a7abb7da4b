package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"toughlove-affirmations/internal/metrics"
)

// Progress holds the single-row streak counters
type Progress struct {
	CurrentStreak int
	LongestStreak int
	TotalDays     int
	LastVisitDay  string
	UpdatedAt     time.Time
}

// IsDayCompleted reports whether the given day (YYYY-MM-DD) has a
// completion record
func (d *DB) IsDayCompleted(day string) (bool, error) {
	timer := prometheus.NewTimer(metrics.DBOperationDuration.WithLabelValues(metrics.DBOpIsDayCompleted))
	defer timer.ObserveDuration()

	var one int
	err := d.conn.QueryRow(`SELECT 1 FROM day_completions WHERE day = ?`, day).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpIsDayCompleted).Inc()
		return false, fmt.Errorf("failed to check day completion: %w", err)
	}
	return true, nil
}

// CompleteDay records a completion for today and updates the streak
// counters in the same transaction. The ledger insert is idempotent and the
// streak update re-derives its decision from last_visit_day, so calling
// this twice on the same day leaves the counters unchanged.
//
// Streak rules: last visit yesterday continues the streak, any older last
// visit (or none) resets it to 1, a last visit of today is a repeat call.
// total_days counts unique completed days, not invocations.
func (d *DB) CompleteDay(today, yesterday string, now time.Time) (*Progress, error) {
	timer := prometheus.NewTimer(metrics.DBOperationDuration.WithLabelValues(metrics.DBOpCompleteDay))
	defer timer.ObserveDuration()

	tx, err := d.conn.Begin()
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpCompleteDay).Inc()
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO day_completions (day, completed_at) VALUES (?, ?)
		 ON CONFLICT(day) DO NOTHING`,
		today, now.Unix(),
	); err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpCompleteDay).Inc()
		return nil, fmt.Errorf("failed to record day completion: %w", err)
	}

	p, err := scanProgress(tx.QueryRow(progressQuery))
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpCompleteDay).Inc()
		return nil, err
	}

	switch p.LastVisitDay {
	case yesterday:
		p.CurrentStreak++
		p.TotalDays++
	case today:
		// Already updated today, counters stay put
	default:
		p.CurrentStreak = 1
		p.TotalDays++
	}
	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
	p.LastVisitDay = today
	p.UpdatedAt = now

	if _, err := tx.Exec(
		`INSERT INTO progress (id, current_streak, longest_streak, total_days, last_visit_day, updated_at)
		 VALUES (1, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		     current_streak = excluded.current_streak,
		     longest_streak = excluded.longest_streak,
		     total_days = excluded.total_days,
		     last_visit_day = excluded.last_visit_day,
		     updated_at = excluded.updated_at`,
		p.CurrentStreak, p.LongestStreak, p.TotalDays, p.LastVisitDay, now.Unix(),
	); err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpCompleteDay).Inc()
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}

	if err := tx.Commit(); err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpCompleteDay).Inc()
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return p, nil
}

const progressQuery = `
	SELECT current_streak, longest_streak, total_days, last_visit_day, updated_at
	FROM progress
	WHERE id = 1
`

// GetProgress returns the streak counters, or a zero-valued Progress when
// nothing has been recorded yet
func (d *DB) GetProgress() (*Progress, error) {
	timer := prometheus.NewTimer(metrics.DBOperationDuration.WithLabelValues(metrics.DBOpGetProgress))
	defer timer.ObserveDuration()

	p, err := scanProgress(d.conn.QueryRow(progressQuery))
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpGetProgress).Inc()
		return nil, err
	}
	return p, nil
}

// RaiseLongestStreak sets longest_streak to the given value if it exceeds
// the stored one
func (d *DB) RaiseLongestStreak(value int) error {
	timer := prometheus.NewTimer(metrics.DBOperationDuration.WithLabelValues(metrics.DBOpRaiseLongestStreak))
	defer timer.ObserveDuration()

	_, err := d.conn.Exec(
		`UPDATE progress SET longest_streak = ? WHERE id = 1 AND longest_streak < ?`,
		value, value,
	)
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpRaiseLongestStreak).Inc()
		return fmt.Errorf("failed to raise longest streak: %w", err)
	}
	return nil
}

// CompactLedger deletes completion records for days before the given day
// (YYYY-MM-DD, exclusive). Returns the number of rows removed.
func (d *DB) CompactLedger(beforeDay string) (int64, error) {
	timer := prometheus.NewTimer(metrics.DBOperationDuration.WithLabelValues(metrics.DBOpCompactLedger))
	defer timer.ObserveDuration()

	result, err := d.conn.Exec(`DELETE FROM day_completions WHERE day < ?`, beforeDay)
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpCompactLedger).Inc()
		return 0, fmt.Errorf("failed to compact ledger: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count compacted rows: %w", err)
	}
	return removed, nil
}

// CountCompletedDays returns the number of days in the ledger
func (d *DB) CountCompletedDays() (int, error) {
	var count int
	err := d.conn.QueryRow(`SELECT COUNT(*) FROM day_completions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count completed days: %w", err)
	}
	return count, nil
}

func scanProgress(row *sql.Row) (*Progress, error) {
	var p Progress
	var lastVisit sql.NullString
	var updatedAt int64

	err := row.Scan(&p.CurrentStreak, &p.LongestStreak, &p.TotalDays, &lastVisit, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return &Progress{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read progress: %w", err)
	}

	p.LastVisitDay = lastVisit.String
	p.UpdatedAt = time.Unix(updatedAt, 0)
	return &p, nil
}
