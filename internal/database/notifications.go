package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"toughlove-affirmations/internal/metrics"
)

// NotificationPrefs is the persisted notification preference row
type NotificationPrefs struct {
	Enabled   bool
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	UpdatedAt time.Time
}

// ScheduledNotification is a registered notification trigger
type ScheduledNotification struct {
	ID          string
	FireAt      time.Time
	Title       string
	Body        string
	Delivered   bool
	DeliveredAt *time.Time
	CreatedAt   time.Time
}

// GetNotificationPrefs returns the stored preferences, or nil when none
// have been saved yet
func (d *DB) GetNotificationPrefs() (*NotificationPrefs, error) {
	timer := prometheus.NewTimer(metrics.DBOperationDuration.WithLabelValues(metrics.DBOpGetPreferences))
	defer timer.ObserveDuration()

	var p NotificationPrefs
	var updatedAt int64
	err := d.conn.QueryRow(
		`SELECT enabled, start_time, end_time, updated_at FROM notification_prefs WHERE id = 1`,
	).Scan(&p.Enabled, &p.StartTime, &p.EndTime, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpGetPreferences).Inc()
		return nil, fmt.Errorf("failed to get notification preferences: %w", err)
	}

	p.UpdatedAt = time.Unix(updatedAt, 0)
	return &p, nil
}

// SaveNotificationPrefs creates or overwrites the preferences row
func (d *DB) SaveNotificationPrefs(p *NotificationPrefs, now time.Time) error {
	timer := prometheus.NewTimer(metrics.DBOperationDuration.WithLabelValues(metrics.DBOpSavePreferences))
	defer timer.ObserveDuration()

	_, err := d.conn.Exec(
		`INSERT INTO notification_prefs (id, enabled, start_time, end_time, updated_at)
		 VALUES (1, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		     enabled = excluded.enabled,
		     start_time = excluded.start_time,
		     end_time = excluded.end_time,
		     updated_at = excluded.updated_at`,
		p.Enabled, p.StartTime, p.EndTime, now.Unix(),
	)
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpSavePreferences).Inc()
		return fmt.Errorf("failed to save notification preferences: %w", err)
	}
	return nil
}

// RegisterNotification inserts a scheduled notification into the registry
func (d *DB) RegisterNotification(n *ScheduledNotification) error {
	timer := prometheus.NewTimer(metrics.DBOperationDuration.WithLabelValues(metrics.DBOpRegisterNotification))
	defer timer.ObserveDuration()

	_, err := d.conn.Exec(
		`INSERT INTO scheduled_notifications (id, fire_at, title, body, delivered, created_at)
		 VALUES (?, ?, ?, ?, 0, ?)`,
		n.ID, n.FireAt.Unix(), n.Title, n.Body, n.CreatedAt.Unix(),
	)
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpRegisterNotification).Inc()
		return fmt.Errorf("failed to register notification: %w", err)
	}
	return nil
}

// CancelPendingNotifications removes every undelivered notification.
// Returns the number of rows removed.
func (d *DB) CancelPendingNotifications() (int64, error) {
	timer := prometheus.NewTimer(metrics.DBOperationDuration.WithLabelValues(metrics.DBOpCancelNotifications))
	defer timer.ObserveDuration()

	result, err := d.conn.Exec(`DELETE FROM scheduled_notifications WHERE delivered = 0`)
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpCancelNotifications).Inc()
		return 0, fmt.Errorf("failed to cancel pending notifications: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cancelled notifications: %w", err)
	}
	return removed, nil
}

// ListPendingNotifications returns undelivered notifications ordered by
// fire time
func (d *DB) ListPendingNotifications() ([]*ScheduledNotification, error) {
	timer := prometheus.NewTimer(metrics.DBOperationDuration.WithLabelValues(metrics.DBOpListPending))
	defer timer.ObserveDuration()

	rows, err := d.conn.Query(
		`SELECT id, fire_at, title, body, delivered, delivered_at, created_at
		 FROM scheduled_notifications
		 WHERE delivered = 0
		 ORDER BY fire_at ASC`,
	)
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpListPending).Inc()
		return nil, fmt.Errorf("failed to list pending notifications: %w", err)
	}
	defer rows.Close()

	return scanNotifications(rows)
}

// ClaimDueNotifications returns undelivered notifications whose fire time
// has passed, oldest first
func (d *DB) ClaimDueNotifications(now time.Time, limit int) ([]*ScheduledNotification, error) {
	timer := prometheus.NewTimer(metrics.DBOperationDuration.WithLabelValues(metrics.DBOpClaimDue))
	defer timer.ObserveDuration()

	rows, err := d.conn.Query(
		`SELECT id, fire_at, title, body, delivered, delivered_at, created_at
		 FROM scheduled_notifications
		 WHERE delivered = 0 AND fire_at <= ?
		 ORDER BY fire_at ASC
		 LIMIT ?`,
		now.Unix(), limit,
	)
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpClaimDue).Inc()
		return nil, fmt.Errorf("failed to claim due notifications: %w", err)
	}
	defer rows.Close()

	return scanNotifications(rows)
}

// MarkNotificationDelivered flags a notification as delivered
func (d *DB) MarkNotificationDelivered(id string, now time.Time) error {
	timer := prometheus.NewTimer(metrics.DBOperationDuration.WithLabelValues(metrics.DBOpMarkDelivered))
	defer timer.ObserveDuration()

	_, err := d.conn.Exec(
		`UPDATE scheduled_notifications SET delivered = 1, delivered_at = ? WHERE id = ?`,
		now.Unix(), id,
	)
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpMarkDelivered).Inc()
		return fmt.Errorf("failed to mark notification delivered: %w", err)
	}
	return nil
}

// PruneDeliveredNotifications removes delivered rows older than the cutoff
func (d *DB) PruneDeliveredNotifications(before time.Time) (int64, error) {
	timer := prometheus.NewTimer(metrics.DBOperationDuration.WithLabelValues(metrics.DBOpPruneDelivered))
	defer timer.ObserveDuration()

	result, err := d.conn.Exec(
		`DELETE FROM scheduled_notifications WHERE delivered = 1 AND delivered_at < ?`,
		before.Unix(),
	)
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpPruneDelivered).Inc()
		return 0, fmt.Errorf("failed to prune delivered notifications: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned notifications: %w", err)
	}
	return removed, nil
}

// GetPendingNotificationCount returns the number of undelivered
// notifications
func (d *DB) GetPendingNotificationCount() (int, error) {
	var count int
	err := d.conn.QueryRow(`SELECT COUNT(*) FROM scheduled_notifications WHERE delivered = 0`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending notifications: %w", err)
	}
	return count, nil
}

func scanNotifications(rows *sql.Rows) ([]*ScheduledNotification, error) {
	var notifications []*ScheduledNotification
	for rows.Next() {
		var n ScheduledNotification
		var fireAt, createdAt int64
		var deliveredAt sql.NullInt64

		if err := rows.Scan(&n.ID, &fireAt, &n.Title, &n.Body, &n.Delivered, &deliveredAt, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		n.FireAt = time.Unix(fireAt, 0)
		n.CreatedAt = time.Unix(createdAt, 0)
		if deliveredAt.Valid {
			t := time.Unix(deliveredAt.Int64, 0)
			n.DeliveredAt = &t
		}
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return notifications, nil
}
