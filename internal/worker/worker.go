package worker

import (
	"context"
	"log/slog"
	"time"

	"toughlove-affirmations/internal/config"
	"toughlove-affirmations/internal/database"
	"toughlove-affirmations/internal/metrics"
)

// claimBatchSize bounds how many due notifications one poll cycle delivers
const claimBatchSize = 50

// pruneAfter is how long delivered rows are kept before removal
const pruneAfter = 7 * 24 * time.Hour

// Worker delivers due scheduled notifications. It is the in-process stand-in
// for the platform's notification delivery: on each poll it claims triggers
// whose fire time has passed, emits them, and marks them delivered.
type Worker struct {
	db           *database.DB
	logger       *slog.Logger
	pollInterval time.Duration
	now          func() time.Time
}

// NewWorker creates a delivery worker
func NewWorker(db *database.DB, cfg *config.Config) *Worker {
	return &Worker{
		db:           db,
		logger:       slog.Default(),
		pollInterval: cfg.DeliveryPollInterval,
		now:          time.Now,
	}
}

// Start runs the delivery loop until the context is cancelled
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("Starting delivery worker", "poll_interval", w.pollInterval)
	metrics.WorkerActive.Set(1)
	defer metrics.WorkerActive.Set(0)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Deliver anything already due before the first tick
	w.runCycle()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping delivery worker")
			return ctx.Err()
		case <-ticker.C:
			w.runCycle()
		}
	}
}

func (w *Worker) runCycle() {
	w.DeliverDue()

	if removed, err := w.db.PruneDeliveredNotifications(w.now().Add(-pruneAfter)); err != nil {
		w.logger.Error("Failed to prune delivered notifications", "error", err)
	} else if removed > 0 {
		w.logger.Debug("Pruned delivered notifications", "removed", removed)
	}
}

// DeliverDue delivers every notification whose fire time has passed and
// returns the number delivered
func (w *Worker) DeliverDue() int {
	now := w.now()

	due, err := w.db.ClaimDueNotifications(now, claimBatchSize)
	if err != nil {
		w.logger.Error("Failed to claim due notifications", "error", err)
		return 0
	}

	delivered := 0
	for _, n := range due {
		// Delivery is the emission itself; a notification that reaches the
		// log is considered delivered
		w.logger.Info("Notification delivered",
			"handle", n.ID,
			"title", n.Title,
			"body", n.Body,
			"fire_at", n.FireAt,
			"late_by", now.Sub(n.FireAt))

		if err := w.db.MarkNotificationDelivered(n.ID, now); err != nil {
			w.logger.Error("Failed to mark notification delivered", "handle", n.ID, "error", err)
			continue
		}

		metrics.NotificationsDeliveredTotal.Inc()
		delivered++
	}

	return delivered
}
