package notify

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"toughlove-affirmations/internal/database"
)

type staticContent struct{}

func (staticContent) Random() string { return "Stop scrolling. Start doing." }

func setupTestScheduler(t *testing.T) (*Scheduler, *database.DB) {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s := &Scheduler{
		db:       db,
		notifier: NewLocalNotifier(db),
		content:  staticContent{},
		logger:   slog.Default(),
		minLead:  4 * time.Hour,
		now:      time.Now,
	}
	return s, db
}

func savePrefs(t *testing.T, db *database.DB, start, end string) {
	t.Helper()
	err := db.SaveNotificationPrefs(&database.NotificationPrefs{
		Enabled:   true,
		StartTime: start,
		EndTime:   end,
	}, time.Now())
	if err != nil {
		t.Fatalf("Failed to save preferences: %v", err)
	}
}

func TestScheduleFillsWindow(t *testing.T) {
	s, db := setupTestScheduler(t)
	savePrefs(t, db, "08:00", "12:00")

	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	s.Schedule()

	pending := s.ListScheduled()
	if len(pending) != 4 {
		t.Fatalf("Expected 4 scheduled notifications, got %d", len(pending))
	}

	earliest := now.Add(s.minLead)
	for i, p := range pending {
		hour := p.FireAt.Hour()
		if hour < 8 || hour >= 12 {
			t.Errorf("Notification %d fires at hour %d, outside 08:00-12:00", i, hour)
		}
		if !p.FireAt.After(earliest) {
			t.Errorf("Notification %d fires at %v, inside the minimum lead window", i, p.FireAt)
		}
		if p.Content.Body == "" {
			t.Errorf("Notification %d has an empty body", i)
		}
	}
}

func TestScheduleWrapsPastMidnight(t *testing.T) {
	s, db := setupTestScheduler(t)
	savePrefs(t, db, "22:00", "06:00")

	s.now = func() time.Time { return time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC) }
	s.Schedule()

	pending := s.ListScheduled()
	if len(pending) != 8 {
		t.Fatalf("Expected 8 scheduled notifications for a 22:00-06:00 window, got %d", len(pending))
	}

	for i, p := range pending {
		hour := p.FireAt.Hour()
		if hour < 22 && hour >= 6 {
			t.Errorf("Notification %d fires at hour %d, outside the wrapped window", i, hour)
		}
	}
}

func TestScheduleRejectsEmptyWindow(t *testing.T) {
	s, db := setupTestScheduler(t)
	savePrefs(t, db, "08:00", "08:00")

	s.now = func() time.Time { return time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC) }
	s.Schedule()

	if pending := s.ListScheduled(); len(pending) != 0 {
		t.Errorf("Expected nothing scheduled for an empty window, got %d", len(pending))
	}
}

func TestScheduleReplacesExisting(t *testing.T) {
	s, db := setupTestScheduler(t)
	savePrefs(t, db, "08:00", "12:00")

	s.now = func() time.Time { return time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC) }
	s.Schedule()
	s.Schedule()

	if pending := s.ListScheduled(); len(pending) != 4 {
		t.Errorf("Expected rescheduling to replace, not append: got %d pending", len(pending))
	}
}

func TestScheduleDefersInsideLeadWindow(t *testing.T) {
	s, db := setupTestScheduler(t)
	savePrefs(t, db, "08:00", "12:00")

	// Tomorrow's window start falls inside a 10-hour lead, so the whole
	// schedule shifts one more day out
	s.minLead = 10 * time.Hour
	s.now = func() time.Time { return time.Date(2025, 6, 2, 23, 0, 0, 0, time.UTC) }
	s.Schedule()

	pending := s.ListScheduled()
	if len(pending) != 4 {
		t.Fatalf("Expected 4 scheduled notifications, got %d", len(pending))
	}
	if day := pending[0].FireAt.Day(); day != 4 {
		t.Errorf("Expected first notification on June 4, got day %d", day)
	}
}

func TestRescheduleHonorsDisabledPrefs(t *testing.T) {
	s, db := setupTestScheduler(t)
	err := db.SaveNotificationPrefs(&database.NotificationPrefs{
		Enabled:   false,
		StartTime: "08:00",
		EndTime:   "20:00",
	}, time.Now())
	if err != nil {
		t.Fatalf("Failed to save preferences: %v", err)
	}

	s.Reschedule()

	if pending := s.ListScheduled(); len(pending) != 0 {
		t.Errorf("Expected nothing scheduled while disabled, got %d", len(pending))
	}
}

func TestSavePreferencesValidatesTimes(t *testing.T) {
	s, _ := setupTestScheduler(t)

	if err := s.SavePreferences(Preferences{Enabled: true, StartTime: "25:00", EndTime: "20:00"}); err == nil {
		t.Error("Expected error for invalid start time")
	}
	if err := s.SavePreferences(Preferences{Enabled: true, StartTime: "08:00", EndTime: "bogus"}); err == nil {
		t.Error("Expected error for invalid end time")
	}
}

func TestSavePreferencesDisableCancels(t *testing.T) {
	s, db := setupTestScheduler(t)
	savePrefs(t, db, "08:00", "12:00")

	s.now = func() time.Time { return time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC) }
	s.Schedule()
	if len(s.ListScheduled()) == 0 {
		t.Fatal("Expected notifications scheduled before disabling")
	}

	if err := s.SavePreferences(Preferences{Enabled: false, StartTime: "08:00", EndTime: "12:00"}); err != nil {
		t.Fatalf("Failed to save preferences: %v", err)
	}
	if pending := s.ListScheduled(); len(pending) != 0 {
		t.Errorf("Expected disabling to cancel everything, got %d pending", len(pending))
	}
}

func TestGetPreferencesDefaults(t *testing.T) {
	s, _ := setupTestScheduler(t)

	prefs := s.GetPreferences()
	if prefs.Enabled {
		t.Error("Expected notifications disabled by default")
	}
	if prefs.StartTime != "08:00" || prefs.EndTime != "20:00" {
		t.Errorf("Expected default window 08:00-20:00, got %s-%s", prefs.StartTime, prefs.EndTime)
	}
}

func TestUnsupportedNotifier(t *testing.T) {
	s, _ := setupTestScheduler(t)
	s.notifier = UnsupportedNotifier{}

	if s.RequestPermission() {
		t.Error("Expected permission denied on unsupported platform")
	}

	s.Schedule()
	if pending := s.ListScheduled(); len(pending) != 0 {
		t.Errorf("Expected nothing scheduled on unsupported platform, got %d", len(pending))
	}
}

func TestHoursInWindow(t *testing.T) {
	cases := []struct {
		start, end, want int
	}{
		{8, 20, 12},
		{22, 6, 8},
		{0, 24, 24},
		{8, 8, 0},
		{23, 0, 1},
	}
	for _, c := range cases {
		if got := hoursInWindow(c.start, c.end); got != c.want {
			t.Errorf("hoursInWindow(%d, %d) = %d, want %d", c.start, c.end, got, c.want)
		}
	}
}
