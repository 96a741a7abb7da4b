package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label value constants to prevent typos
const (
	// HTTP endpoints
	EndpointFeed          = "feed"
	EndpointAffirmations  = "affirmations"
	EndpointComplete      = "complete"
	EndpointProgress      = "progress"
	EndpointFavorites     = "favorites"
	EndpointPreferences   = "notification_preferences"
	EndpointReschedule    = "notifications_reschedule"
	EndpointScheduled     = "notifications_scheduled"
	EndpointCancel        = "notifications_cancel"
	EndpointOnboarding    = "onboarding"
	EndpointHealth        = "health"

	// Scheduler run outcomes
	SchedulerOutcomeScheduled    = "scheduled"
	SchedulerOutcomeDisabled     = "disabled"
	SchedulerOutcomeInvalidRange = "invalid_range"
	SchedulerOutcomeBusy         = "busy"
	SchedulerOutcomeError        = "error"

	// Sampler outcomes
	SamplerOutcomeFresh    = "fresh"
	SamplerOutcomeReset    = "window_reset"
	SamplerOutcomeFallback = "fallback"

	// Database operations
	DBOpIsDayCompleted        = "is_day_completed"
	DBOpCompleteDay           = "complete_day"
	DBOpGetProgress           = "get_progress"
	DBOpRaiseLongestStreak    = "raise_longest_streak"
	DBOpCompactLedger         = "compact_ledger"
	DBOpGetRecent             = "get_recent_affirmations"
	DBOpAppendRecent          = "append_recent_affirmations"
	DBOpClearRecent           = "clear_recent_affirmations"
	DBOpGetFavorites          = "get_favorites"
	DBOpToggleFavorite        = "toggle_favorite"
	DBOpGetPreferences        = "get_notification_preferences"
	DBOpSavePreferences       = "save_notification_preferences"
	DBOpRegisterNotification  = "register_notification"
	DBOpCancelNotifications   = "cancel_notifications"
	DBOpListPending           = "list_pending_notifications"
	DBOpClaimDue              = "claim_due_notifications"
	DBOpMarkDelivered         = "mark_delivered"
	DBOpPruneDelivered        = "prune_delivered"
	DBOpGetAppState           = "get_app_state"
	DBOpSetAppState           = "set_app_state"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"endpoint", "status_code"},
	)
)

// Content Metrics
var (
	AffirmationsServedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "affirmations_served_total",
			Help: "Total number of affirmations served, by sampler outcome",
		},
		[]string{"outcome"},
	)

	RecentWindowSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recent_affirmations_window_size",
			Help: "Current number of entries in the recent-affirmations window",
		},
	)
)

// Progress Metrics
var (
	DaysCompletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "days_completed_total",
			Help: "Total number of day-completion events recorded",
		},
	)

	CurrentStreak = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "current_streak_days",
			Help: "Current consecutive-day streak",
		},
	)

	LongestStreak = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "longest_streak_days",
			Help: "Longest recorded consecutive-day streak",
		},
	)
)

// Notification Metrics
var (
	SchedulerRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_scheduler_runs_total",
			Help: "Total scheduler invocations, by outcome",
		},
		[]string{"outcome"},
	)

	NotificationsScheduledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notifications_scheduled_total",
			Help: "Total number of notification triggers registered",
		},
	)

	NotificationsSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notifications_skipped_total",
			Help: "Slots skipped because they fell inside the minimum lead window",
		},
	)

	NotificationsCancelledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notifications_cancelled_total",
			Help: "Total number of pending notifications cancelled",
		},
	)

	NotificationsDeliveredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notifications_delivered_total",
			Help: "Total number of notifications delivered by the worker",
		},
	)

	PendingNotifications = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pending_notifications",
			Help: "Number of undelivered scheduled notifications",
		},
	)

	WorkerActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "delivery_worker_active",
			Help: "Whether the delivery worker is running (1) or not (0)",
		},
	)
)

// Database Metrics
var (
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Database operation latency in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation"},
	)

	DBOperationErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_operation_errors_total",
			Help: "Total number of database operation errors",
		},
		[]string{"operation"},
	)
)
