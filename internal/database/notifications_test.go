package database

import (
	"testing"
	"time"
)

func registerTestNotification(t *testing.T, db *DB, id string, fireAt time.Time) {
	t.Helper()

	err := db.RegisterNotification(&ScheduledNotification{
		ID:        id,
		FireAt:    fireAt,
		Title:     "Daily Motivation",
		Body:      "Stop making excuses.",
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("Failed to register notification %s: %v", id, err)
	}
}

func TestNotificationRegistry(t *testing.T) {
	db := setupTestDB(t)

	now := time.Now().Truncate(time.Second)
	registerTestNotification(t, db, "n2", now.Add(2*time.Hour))
	registerTestNotification(t, db, "n1", now.Add(1*time.Hour))
	registerTestNotification(t, db, "n3", now.Add(3*time.Hour))

	pending, err := db.ListPendingNotifications()
	if err != nil {
		t.Fatalf("Failed to list pending: %v", err)
	}
	if len(pending) != 3 {
		t.Fatalf("Expected 3 pending, got %d", len(pending))
	}

	// Ordered by fire time
	if pending[0].ID != "n1" || pending[1].ID != "n2" || pending[2].ID != "n3" {
		t.Errorf("Expected order n1,n2,n3, got %s,%s,%s", pending[0].ID, pending[1].ID, pending[2].ID)
	}
	if !pending[0].FireAt.Equal(now.Add(1 * time.Hour)) {
		t.Errorf("Expected fire time %v, got %v", now.Add(time.Hour), pending[0].FireAt)
	}

	count, err := db.GetPendingNotificationCount()
	if err != nil {
		t.Fatalf("Failed to count pending: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected pending count 3, got %d", count)
	}
}

func TestClaimDueNotifications(t *testing.T) {
	db := setupTestDB(t)

	now := time.Now()
	registerTestNotification(t, db, "past", now.Add(-time.Hour))
	registerTestNotification(t, db, "future", now.Add(time.Hour))

	due, err := db.ClaimDueNotifications(now, 10)
	if err != nil {
		t.Fatalf("Failed to claim due: %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("Expected 1 due notification, got %d", len(due))
	}
	if due[0].ID != "past" {
		t.Errorf("Expected 'past' claimed, got %s", due[0].ID)
	}
}

func TestMarkDeliveredAndPrune(t *testing.T) {
	db := setupTestDB(t)

	now := time.Now()
	registerTestNotification(t, db, "old", now.Add(-time.Hour))
	registerTestNotification(t, db, "kept", now.Add(time.Hour))

	if err := db.MarkNotificationDelivered("old", now.Add(-10*24*time.Hour)); err != nil {
		t.Fatalf("Failed to mark delivered: %v", err)
	}

	// Delivered rows leave the pending set
	count, _ := db.GetPendingNotificationCount()
	if count != 1 {
		t.Errorf("Expected 1 pending after delivery, got %d", count)
	}

	removed, err := db.PruneDeliveredNotifications(now.Add(-7 * 24 * time.Hour))
	if err != nil {
		t.Fatalf("Failed to prune: %v", err)
	}
	if removed != 1 {
		t.Errorf("Expected 1 pruned row, got %d", removed)
	}
}

func TestCancelPendingNotifications(t *testing.T) {
	db := setupTestDB(t)

	now := time.Now()
	registerTestNotification(t, db, "a", now.Add(time.Hour))
	registerTestNotification(t, db, "b", now.Add(2*time.Hour))
	registerTestNotification(t, db, "done", now.Add(-time.Hour))
	db.MarkNotificationDelivered("done", now)

	removed, err := db.CancelPendingNotifications()
	if err != nil {
		t.Fatalf("Failed to cancel: %v", err)
	}
	if removed != 2 {
		t.Errorf("Expected 2 cancelled, got %d", removed)
	}

	// Delivered history is not part of the pending set and survives
	count, _ := db.GetPendingNotificationCount()
	if count != 0 {
		t.Errorf("Expected 0 pending after cancel, got %d", count)
	}
}
