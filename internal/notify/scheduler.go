package notify

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"toughlove-affirmations/internal/config"
	"toughlove-affirmations/internal/database"
	"toughlove-affirmations/internal/metrics"
)

// notificationTitle is the fixed title of every scheduled affirmation
const notificationTitle = "Daily Motivation 💪"

// safetyBound caps how far ahead the hourly walk may wander
const safetyBound = 7 * 24 * time.Hour

// Preferences is the user-facing notification preference shape
type Preferences struct {
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
}

// DefaultPreferences returns the preferences used before onboarding saves
// any: disabled, 8 AM to 8 PM
func DefaultPreferences() Preferences {
	return Preferences{Enabled: false, StartTime: "08:00", EndTime: "20:00"}
}

// ContentSource provides the body text for each notification slot
type ContentSource interface {
	Random() string
}

// Scheduler computes future notification trigger times from the user's
// daily time window and registers them with the platform notifier.
//
// Contract: triggers are never registered in the past or inside the minimum
// lead window; rescheduling always replaces (cancel then recreate) rather
// than appends; each slot carries one independent random affirmation.
type Scheduler struct {
	db       *database.DB
	notifier Notifier
	content  ContentSource
	logger   *slog.Logger
	minLead  time.Duration
	now      func() time.Time

	// Single in-flight guard: overlapping schedule calls short-circuit
	// instead of queueing, so a reschedule at app start cannot stack on a
	// preference save
	inFlight sync.Mutex
}

// NewScheduler creates a notification scheduler
func NewScheduler(db *database.DB, notifier Notifier, content ContentSource, cfg *config.Config) *Scheduler {
	return &Scheduler{
		db:       db,
		notifier: notifier,
		content:  content,
		logger:   slog.Default(),
		minLead:  cfg.MinLead(),
		now:      time.Now,
	}
}

// RequestPermission asks the platform for notification authorization.
// False on unsupported platforms or platform errors, never an error.
func (s *Scheduler) RequestPermission() bool {
	granted, err := s.notifier.RequestPermission()
	if err != nil {
		s.logger.Error("Failed to request notification permission", "error", err)
		return false
	}
	return granted
}

// GetPreferences returns the stored preferences, or the defaults when none
// are stored or the read fails
func (s *Scheduler) GetPreferences() Preferences {
	stored, err := s.db.GetNotificationPrefs()
	if err != nil {
		s.logger.Error("Failed to read notification preferences", "error", err)
		return DefaultPreferences()
	}
	if stored == nil {
		return DefaultPreferences()
	}
	return Preferences{Enabled: stored.Enabled, StartTime: stored.StartTime, EndTime: stored.EndTime}
}

// SavePreferences validates and persists the preferences, then reschedules
// when enabled or cancels everything when disabled
func (s *Scheduler) SavePreferences(prefs Preferences) error {
	if _, err := parseHour(prefs.StartTime); err != nil {
		return fmt.Errorf("invalid start time %q: %w", prefs.StartTime, err)
	}
	if _, err := parseHour(prefs.EndTime); err != nil {
		return fmt.Errorf("invalid end time %q: %w", prefs.EndTime, err)
	}

	err := s.db.SaveNotificationPrefs(&database.NotificationPrefs{
		Enabled:   prefs.Enabled,
		StartTime: prefs.StartTime,
		EndTime:   prefs.EndTime,
	}, s.now())
	if err != nil {
		return fmt.Errorf("failed to save notification preferences: %w", err)
	}

	if prefs.Enabled {
		s.Schedule()
	} else if err := s.CancelAll(); err != nil {
		s.logger.Error("Failed to cancel notifications", "error", err)
	}

	return nil
}

// Reschedule reads the stored preferences and re-runs scheduling when
// enabled. Called once per cold start to keep the rolling schedule fresh.
func (s *Scheduler) Reschedule() {
	prefs := s.GetPreferences()
	if !prefs.Enabled {
		metrics.SchedulerRunsTotal.WithLabelValues(metrics.SchedulerOutcomeDisabled).Inc()
		return
	}
	s.Schedule()
}

// CancelAll cancels every pending notification
func (s *Scheduler) CancelAll() error {
	if err := s.notifier.CancelAll(); err != nil {
		return fmt.Errorf("failed to cancel all notifications: %w", err)
	}
	s.logger.Info("All notifications cancelled")
	return nil
}

// ListScheduled returns the pending triggers. Empty on platform failure.
func (s *Scheduler) ListScheduled() []Pending {
	pending, err := s.notifier.ListScheduled()
	if err != nil {
		s.logger.Error("Failed to list scheduled notifications", "error", err)
		return []Pending{}
	}
	return pending
}

// Schedule registers one day's worth of hourly triggers inside the stored
// time window. A window whose end hour is at or before its start hour wraps
// past midnight; a window of equal hours is invalid and aborts with nothing
// scheduled. Failures never propagate; every exit path is logged and
// counted.
func (s *Scheduler) Schedule() {
	if !s.notifier.Supported() {
		s.logger.Info("Notifications not supported on this platform")
		return
	}

	if !s.inFlight.TryLock() {
		s.logger.Info("Scheduling already in progress, skipping")
		metrics.SchedulerRunsTotal.WithLabelValues(metrics.SchedulerOutcomeBusy).Inc()
		return
	}
	defer s.inFlight.Unlock()

	prefs := s.GetPreferences()

	startHour, err := parseHour(prefs.StartTime)
	if err != nil {
		s.logger.Error("Invalid notification start time", "start", prefs.StartTime, "error", err)
		metrics.SchedulerRunsTotal.WithLabelValues(metrics.SchedulerOutcomeInvalidRange).Inc()
		return
	}
	endHour, err := parseHour(prefs.EndTime)
	if err != nil {
		s.logger.Error("Invalid notification end time", "end", prefs.EndTime, "error", err)
		metrics.SchedulerRunsTotal.WithLabelValues(metrics.SchedulerOutcomeInvalidRange).Inc()
		return
	}

	hours := hoursInWindow(startHour, endHour)
	if hours <= 0 {
		s.logger.Error("Invalid notification time range", "start", prefs.StartTime, "end", prefs.EndTime)
		metrics.SchedulerRunsTotal.WithLabelValues(metrics.SchedulerOutcomeInvalidRange).Inc()
		return
	}

	// Replace, never append
	if err := s.CancelAll(); err != nil {
		s.logger.Error("Failed to cancel existing notifications", "error", err)
		metrics.SchedulerRunsTotal.WithLabelValues(metrics.SchedulerOutcomeError).Inc()
		return
	}

	now := s.now()
	earliest := now.Add(s.minLead)

	// Anchor at tomorrow's window start, pushed one more day if that
	// instant is still inside the minimum lead window
	cur := time.Date(now.Year(), now.Month(), now.Day(), startHour, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	if cur.Before(earliest) {
		cur = cur.AddDate(0, 0, 1)
	}

	s.logger.Info("Scheduling notifications",
		"window", fmt.Sprintf("%02d:00-%02d:00", startHour, endHour),
		"slots", hours,
		"from", cur)

	scheduled := 0
	for scheduled < hours {
		if hourInWindow(cur.Hour(), startHour, endHour) {
			// One independent random draw per slot
			body := s.content.Random()

			if cur.After(earliest) {
				handle, err := s.notifier.Schedule(cur, Content{Title: notificationTitle, Body: body})
				if err != nil {
					s.logger.Error("Failed to register notification", "at", cur, "error", err)
					metrics.SchedulerRunsTotal.WithLabelValues(metrics.SchedulerOutcomeError).Inc()
					return
				}
				scheduled++
				metrics.NotificationsScheduledTotal.Inc()
				s.logger.Debug("Notification scheduled", "handle", handle, "at", cur)
			} else {
				metrics.NotificationsSkippedTotal.Inc()
				s.logger.Debug("Slot inside minimum lead window, skipping", "at", cur)
			}
		}

		cur = cur.Add(time.Hour)

		// Past the window end: jump to the next window start
		if endHour > startHour && cur.Hour() >= endHour {
			cur = time.Date(cur.Year(), cur.Month(), cur.Day(), startHour, 0, 0, 0, cur.Location()).AddDate(0, 0, 1)
		} else if endHour <= startHour && cur.Hour() >= endHour && cur.Hour() < startHour {
			cur = time.Date(cur.Year(), cur.Month(), cur.Day(), startHour, 0, 0, 0, cur.Location())
		}

		if cur.Sub(now) > safetyBound {
			s.logger.Warn("Scheduling walk reached safety bound", "scheduled", scheduled)
			break
		}
	}

	metrics.SchedulerRunsTotal.WithLabelValues(metrics.SchedulerOutcomeScheduled).Inc()
	s.logger.Info("Notifications scheduled", "count", scheduled)
}

// hoursInWindow returns the number of whole hours in the window, treating
// an end at or before the start as wrapping past midnight. Equal hours are
// an empty window.
func hoursInWindow(startHour, endHour int) int {
	switch {
	case endHour > startHour:
		return endHour - startHour
	case endHour < startHour:
		return (24 - startHour) + endHour
	default:
		return 0
	}
}

// hourInWindow reports whether a clock hour falls inside [start, end),
// wraparound-aware
func hourInWindow(hour, startHour, endHour int) bool {
	if endHour > startHour {
		return hour >= startHour && hour < endHour
	}
	return hour >= startHour || hour < endHour
}

// parseHour extracts the hour from an "HH:MM" string
func parseHour(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return t.Hour(), nil
}
