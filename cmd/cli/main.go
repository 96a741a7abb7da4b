package main

import (
	"fmt"
	"log/slog"
	"os"

	"toughlove-affirmations/internal/config"
	"toughlove-affirmations/internal/content"
	"toughlove-affirmations/internal/database"
	"toughlove-affirmations/internal/progress"
)

func main() {
	// Disable structured logging for CLI
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors
	})))

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Open database
	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	switch command {
	case "stats":
		handleStats(db, cfg)
	case "list-scheduled":
		handleListScheduled(db)
	case "cancel-notifications":
		handleCancelNotifications(db)
	case "compact-ledger":
		handleCompactLedger(db, cfg)
	default:
		fmt.Fprintf(os.Stderr, "Error: Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: cli <command>

Commands:
  stats                 Show progress and corpus statistics
  list-scheduled        List pending scheduled notifications
  cancel-notifications  Cancel all pending notifications
  compact-ledger        Remove day-completion records past the retention horizon
`)
}

func handleStats(db *database.DB, cfg *config.Config) {
	tracker := progress.NewTracker(db, cfg)
	stats := tracker.Stats()

	fmt.Println("Progress:")
	fmt.Printf("  Current streak:      %d\n", stats.CurrentStreak)
	fmt.Printf("  Longest streak:      %d\n", stats.LongestStreak)
	fmt.Printf("  Total days:          %d\n", stats.TotalDays)
	fmt.Printf("  Completed this week: %d/%d\n", stats.CompletedThisWeek, stats.WeeklyGoal)

	if days, err := db.CountCompletedDays(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to count ledger days: %v\n", err)
	} else {
		fmt.Printf("  Ledger days:         %d\n", days)
	}

	if pending, err := db.GetPendingNotificationCount(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to count pending notifications: %v\n", err)
	} else {
		fmt.Printf("  Pending triggers:    %d\n", pending)
	}

	fmt.Println("\nCorpus:")
	fmt.Printf("  Affirmations: %d\n", content.Count())
	fmt.Println("  Categories:")
	for _, name := range content.Categories() {
		fmt.Printf("    %-12s %d texts\n", name, len(content.ByCategory(name)))
	}
}

func handleListScheduled(db *database.DB) {
	pending, err := db.ListPendingNotifications()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to list notifications: %v\n", err)
		os.Exit(1)
	}

	if len(pending) == 0 {
		fmt.Println("No pending notifications.")
		return
	}

	fmt.Printf("Found %d pending notification(s):\n\n", len(pending))
	for _, n := range pending {
		fmt.Printf("ID: %s\n", n.ID)
		fmt.Printf("  Fires: %s\n", n.FireAt.Format("2006-01-02 15:04 MST"))
		fmt.Printf("  Body:  %s\n", n.Body)
		fmt.Println()
	}
}

func handleCancelNotifications(db *database.DB) {
	removed, err := db.CancelPendingNotifications()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to cancel notifications: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Cancelled %d pending notification(s)\n", removed)
}

func handleCompactLedger(db *database.DB, cfg *config.Config) {
	tracker := progress.NewTracker(db, cfg)

	removed, err := tracker.CompactLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to compact ledger: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Removed %d old day-completion record(s)\n", removed)
}
