package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"toughlove-affirmations/internal/database"
	"toughlove-affirmations/internal/metrics"
)

// Content is the payload of a local notification
type Content struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Pending describes a registered notification trigger
type Pending struct {
	Handle  string    `json:"handle"`
	FireAt  time.Time `json:"fireAt"`
	Content Content   `json:"content"`
}

// Notifier is the platform notification service contract. Implementations
// own the handle namespace; callers treat handles as opaque.
type Notifier interface {
	// Supported reports whether this platform can deliver notifications
	Supported() bool

	// RequestPermission asks the platform for notification authorization
	RequestPermission() (bool, error)

	// Schedule registers a trigger at the given instant and returns its handle
	Schedule(at time.Time, content Content) (string, error)

	// CancelAll cancels every pending trigger
	CancelAll() error

	// ListScheduled returns the pending triggers ordered by fire time
	ListScheduled() ([]Pending, error)
}

// LocalNotifier registers triggers in the scheduled-notification table; the
// delivery worker fires them. Handles are uuids.
type LocalNotifier struct {
	db  *database.DB
	now func() time.Time
}

// NewLocalNotifier creates a database-backed notifier
func NewLocalNotifier(db *database.DB) *LocalNotifier {
	return &LocalNotifier{db: db, now: time.Now}
}

// Supported always reports true for the local notifier
func (n *LocalNotifier) Supported() bool {
	return true
}

// RequestPermission always grants; local delivery needs no authorization
func (n *LocalNotifier) RequestPermission() (bool, error) {
	return true, nil
}

// Schedule registers a trigger and returns its handle
func (n *LocalNotifier) Schedule(at time.Time, content Content) (string, error) {
	handle := uuid.NewString()
	err := n.db.RegisterNotification(&database.ScheduledNotification{
		ID:        handle,
		FireAt:    at,
		Title:     content.Title,
		Body:      content.Body,
		CreatedAt: n.now(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to schedule notification: %w", err)
	}
	return handle, nil
}

// CancelAll removes every undelivered trigger from the registry
func (n *LocalNotifier) CancelAll() error {
	removed, err := n.db.CancelPendingNotifications()
	if err != nil {
		return fmt.Errorf("failed to cancel notifications: %w", err)
	}
	metrics.NotificationsCancelledTotal.Add(float64(removed))
	return nil
}

// ListScheduled returns the pending triggers ordered by fire time
func (n *LocalNotifier) ListScheduled() ([]Pending, error) {
	rows, err := n.db.ListPendingNotifications()
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled notifications: %w", err)
	}

	pending := make([]Pending, len(rows))
	for i, row := range rows {
		pending[i] = Pending{
			Handle:  row.ID,
			FireAt:  row.FireAt,
			Content: Content{Title: row.Title, Body: row.Body},
		}
	}
	return pending, nil
}

// UnsupportedNotifier is the stand-in for platforms without local
// notification support. Permission is always denied and scheduling no-ops.
type UnsupportedNotifier struct{}

func (UnsupportedNotifier) Supported() bool                  { return false }
func (UnsupportedNotifier) RequestPermission() (bool, error) { return false, nil }
func (UnsupportedNotifier) CancelAll() error                 { return nil }
func (UnsupportedNotifier) ListScheduled() ([]Pending, error) {
	return []Pending{}, nil
}

func (UnsupportedNotifier) Schedule(at time.Time, content Content) (string, error) {
	return "", fmt.Errorf("notifications are not supported on this platform")
}
