package metrics

import (
	"context"
	"log/slog"
	"time"
)

// DB is the subset of the database used by the gauge collector
type DB interface {
	GetPendingNotificationCount() (int, error)
	GetRecentAffirmationCount() (int, error)
}

// StartDepthCollector starts a background goroutine that periodically
// refreshes the pending-notification and recent-window gauges
func StartDepthCollector(ctx context.Context, db DB, interval time.Duration) {
	logger := slog.Default()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Collect once immediately
	collectDepths(db, logger)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Depth collector stopping")
			return
		case <-ticker.C:
			collectDepths(db, logger)
		}
	}
}

func collectDepths(db DB, logger *slog.Logger) {
	if pending, err := db.GetPendingNotificationCount(); err != nil {
		logger.Error("Failed to get pending notification count", "error", err)
	} else {
		PendingNotifications.Set(float64(pending))
	}

	if recent, err := db.GetRecentAffirmationCount(); err != nil {
		logger.Error("Failed to get recent affirmation count", "error", err)
	} else {
		RecentWindowSize.Set(float64(recent))
	}
}
