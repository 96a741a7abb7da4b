package progress

import (
	"log/slog"
	"time"

	"toughlove-affirmations/internal/config"
	"toughlove-affirmations/internal/database"
	"toughlove-affirmations/internal/metrics"
)

// WeeklyGoal is the number of days in the weekly completion target
const WeeklyGoal = 7

// Stats is the aggregate progress view served to clients
type Stats struct {
	CurrentStreak     int     `json:"currentStreak"`
	LongestStreak     int     `json:"longestStreak"`
	TotalDays         int     `json:"totalDays"`
	WeeklyGoal        int     `json:"weeklyGoal"`
	CompletedThisWeek int     `json:"completedThisWeek"`
	WeeklyCompletions [7]bool `json:"weeklyCompletions"`
}

// Tracker maintains the per-day completion ledger and the streak counters
// derived from it. Every read degrades to safe defaults on storage failure
// rather than surfacing an error.
type Tracker struct {
	db            *database.DB
	logger        *slog.Logger
	retentionDays int
	now           func() time.Time
}

// NewTracker creates a progress tracker
func NewTracker(db *database.DB, cfg *config.Config) *Tracker {
	return &Tracker{
		db:            db,
		logger:        slog.Default(),
		retentionDays: cfg.LedgerRetentionDays,
		now:           time.Now,
	}
}

// DayKey formats a calendar day as its natural ledger key (local date)
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// IsDayCompleted reports whether the given date's calendar day has a
// completion record. Returns false on storage failure.
func (t *Tracker) IsDayCompleted(date time.Time) bool {
	completed, err := t.db.IsDayCompleted(DayKey(date))
	if err != nil {
		t.logger.Error("Failed to check day completion", "day", DayKey(date), "error", err)
		return false
	}
	return completed
}

// MarkTodayCompleted records today in the ledger and updates the streak
// counters. The whole update is one transaction, so a repeat call on the
// same calendar day leaves the streak unchanged.
func (t *Tracker) MarkTodayCompleted() {
	now := t.now()
	today := DayKey(now)
	yesterday := DayKey(now.AddDate(0, 0, -1))

	p, err := t.db.CompleteDay(today, yesterday, now)
	if err != nil {
		t.logger.Error("Failed to mark today completed", "day", today, "error", err)
		return
	}

	metrics.DaysCompletedTotal.Inc()
	metrics.CurrentStreak.Set(float64(p.CurrentStreak))
	metrics.LongestStreak.Set(float64(p.LongestStreak))

	t.logger.Info("Day completed",
		"day", today,
		"streak", p.CurrentStreak,
		"longest", p.LongestStreak,
		"total_days", p.TotalDays)
}

// Stats returns the aggregate progress view. The longest streak is raised
// as a side effect if the current streak exceeds the stored value. Storage
// failures produce zero-valued stats.
func (t *Tracker) Stats() Stats {
	stats := Stats{WeeklyGoal: WeeklyGoal}

	p, err := t.db.GetProgress()
	if err != nil {
		t.logger.Error("Failed to read progress", "error", err)
		return stats
	}

	if p.CurrentStreak > p.LongestStreak {
		if err := t.db.RaiseLongestStreak(p.CurrentStreak); err != nil {
			t.logger.Error("Failed to raise longest streak", "error", err)
		}
		p.LongestStreak = p.CurrentStreak
	}

	stats.CurrentStreak = p.CurrentStreak
	stats.LongestStreak = p.LongestStreak
	stats.TotalDays = p.TotalDays
	stats.CompletedThisWeek, stats.WeeklyCompletions = t.weeklyProgress()

	metrics.CurrentStreak.Set(float64(p.CurrentStreak))
	metrics.LongestStreak.Set(float64(p.LongestStreak))

	return stats
}

// weeklyProgress builds the Sunday-first completion grid for the current
// week. Days after now are never looked up and always report false.
func (t *Tracker) weeklyProgress() (int, [7]bool) {
	now := t.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := midnight.AddDate(0, 0, -int(now.Weekday()))

	completed := 0
	var week [7]bool
	for i := 0; i < 7; i++ {
		day := startOfWeek.AddDate(0, 0, i)
		if day.After(now) {
			continue
		}
		if t.IsDayCompleted(day) {
			week[i] = true
			completed++
		}
	}

	return completed, week
}

// Favorites returns the starred corpus indices. Empty on storage failure.
func (t *Tracker) Favorites() []int {
	favorites, err := t.db.GetFavorites()
	if err != nil {
		t.logger.Error("Failed to read favorites", "error", err)
		return []int{}
	}
	return favorites
}

// ToggleFavorite stars or unstars a corpus index and reports the resulting
// state. A storage failure reports unstarred.
func (t *Tracker) ToggleFavorite(id int) bool {
	starred, err := t.db.ToggleFavorite(id, t.now())
	if err != nil {
		t.logger.Error("Failed to toggle favorite", "id", id, "error", err)
		return false
	}
	return starred
}

// CompactLedger removes completion records older than the retention
// horizon, keeping every day inside the current streak regardless of age.
// Returns the number of rows removed.
func (t *Tracker) CompactLedger() (int64, error) {
	now := t.now()
	horizon := now.AddDate(0, 0, -t.retentionDays)

	if p, err := t.db.GetProgress(); err == nil && p.CurrentStreak > 0 {
		streakStart := now.AddDate(0, 0, -(p.CurrentStreak - 1))
		if streakStart.Before(horizon) {
			horizon = streakStart
		}
	}

	return t.db.CompactLedger(DayKey(horizon))
}
