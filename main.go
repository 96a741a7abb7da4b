package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"toughlove-affirmations/internal/config"
	"toughlove-affirmations/internal/content"
	"toughlove-affirmations/internal/database"
	"toughlove-affirmations/internal/handlers"
	"toughlove-affirmations/internal/metrics"
	"toughlove-affirmations/internal/middleware"
	"toughlove-affirmations/internal/notify"
	"toughlove-affirmations/internal/progress"
	"toughlove-affirmations/internal/worker"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Set up logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Starting affirmations server",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.DatabasePath,
		"corpus_size", content.Count(),
		"log_level", cfg.LogLevel)

	// Open database
	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	logger.Info("Database opened successfully")

	// Build services. The notifier is the platform collaborator; on
	// platforms without local-notification support scheduling no-ops.
	var notifier notify.Notifier = notify.NewLocalNotifier(db)
	if !cfg.NotificationsSupported {
		notifier = notify.UnsupportedNotifier{}
	}

	sampler := content.NewSampler(db, cfg.RecentWindowSize)
	tracker := progress.NewTracker(db, cfg)
	scheduler := notify.NewScheduler(db, notifier, sampler, cfg)

	// Keep the rolling schedule fresh across cold starts
	scheduler.Reschedule()

	// Create handlers
	feedHandler := handlers.NewFeedHandler(sampler, cfg)
	progressHandler := handlers.NewProgressHandler(tracker)
	notificationsHandler := handlers.NewNotificationsHandler(scheduler)
	onboardingHandler := handlers.NewOnboardingHandler(db, scheduler)

	// Set up HTTP routes
	mux := http.NewServeMux()

	mux.Handle("/feed", middleware.WrapHandler(metrics.EndpointFeed, feedHandler.HandleFeed))
	mux.Handle("/affirmations", middleware.WrapHandler(metrics.EndpointAffirmations, feedHandler.HandleAffirmations))
	mux.Handle("/affirmations/categories", middleware.WrapHandler(metrics.EndpointAffirmations, feedHandler.HandleCategories))

	mux.Handle("/complete", middleware.WrapHandler(metrics.EndpointComplete, progressHandler.HandleComplete))
	mux.Handle("/progress", middleware.WrapHandler(metrics.EndpointProgress, progressHandler.HandleProgress))
	mux.Handle("/favorites", middleware.WrapHandler(metrics.EndpointFavorites, progressHandler.HandleFavorites))

	mux.Handle("/notifications/preferences", middleware.WrapHandler(metrics.EndpointPreferences, notificationsHandler.HandlePreferences))
	mux.Handle("/notifications/reschedule", middleware.WrapHandler(metrics.EndpointReschedule, notificationsHandler.HandleReschedule))
	mux.Handle("/notifications/scheduled", middleware.WrapHandler(metrics.EndpointScheduled, notificationsHandler.HandleScheduled))
	mux.Handle("/notifications", middleware.WrapHandler(metrics.EndpointCancel, notificationsHandler.HandleCancel))

	mux.Handle("/onboarding", middleware.WrapHandler(metrics.EndpointOnboarding, onboardingHandler.HandleOnboarding))

	// Health check endpoint
	mux.Handle("/health", middleware.WrapHandler(metrics.EndpointHealth, func(w http.ResponseWriter, r *http.Request) {
		if err := db.Health(); err != nil {
			http.Error(w, "unhealthy", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start delivery worker in background
	workerInstance := worker.NewWorker(db, cfg)
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	go func() {
		if err := workerInstance.Start(workerCtx); err != nil && err != context.Canceled {
			logger.Error("Delivery worker failed", "error", err)
		}
	}()

	// Start gauge collector if metrics are enabled
	if cfg.MetricsEnabled {
		go func() {
			logger.Info("Starting depth collector")
			metrics.StartDepthCollector(workerCtx, db, 15*time.Second)
		}()
	}

	// Start metrics server if enabled
	var metricsServer *http.Server
	if cfg.MetricsEnabled {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", promhttp.Handler())

		metricsAddr := fmt.Sprintf("%s:%d", cfg.MetricsHost, cfg.MetricsPort)
		metricsServer = &http.Server{
			Addr:    metricsAddr,
			Handler: metricsMux,
		}

		go func() {
			logger.Info("Metrics server listening", "addr", metricsAddr)
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("Metrics server failed", "error", err)
			}
		}()
	}

	// Start HTTP server in background
	go func() {
		logger.Info("HTTP server listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down gracefully...")

	// Stop worker
	workerCancel()

	// Shutdown HTTP servers with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Metrics server shutdown failed", "error", err)
		}
	}

	logger.Info("Server stopped")
}
