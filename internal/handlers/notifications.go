package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"toughlove-affirmations/internal/notify"
)

// NotificationsHandler serves the notification preference and scheduling
// endpoints
type NotificationsHandler struct {
	scheduler *notify.Scheduler
	logger    *slog.Logger
}

// NewNotificationsHandler creates a notifications handler
func NewNotificationsHandler(scheduler *notify.Scheduler) *NotificationsHandler {
	return &NotificationsHandler{
		scheduler: scheduler,
		logger:    slog.Default(),
	}
}

// HandlePreferences handles GET and PUT /notifications/preferences.
// A PUT that enables notifications first asks the platform for permission;
// on denial the preferences are still saved, but disabled.
func (h *NotificationsHandler) HandlePreferences(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.scheduler.GetPreferences())

	case http.MethodPut:
		var prefs notify.Preferences
		if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		granted := true
		if prefs.Enabled {
			granted = h.scheduler.RequestPermission()
			if !granted {
				h.logger.Info("Notification permission denied, saving preferences disabled")
				prefs.Enabled = false
			}
		}

		if err := h.scheduler.SavePreferences(prefs); err != nil {
			h.logger.Warn("Rejected notification preferences", "error", err)
			http.Error(w, "Invalid notification preferences", http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"preferences":       prefs,
			"permissionGranted": granted,
		})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleReschedule handles POST /notifications/reschedule
func (h *NotificationsHandler) HandleReschedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.scheduler.Reschedule()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"pending": len(h.scheduler.ListScheduled()),
	})
}

// HandleScheduled handles GET /notifications/scheduled
func (h *NotificationsHandler) HandleScheduled(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scheduled": h.scheduler.ListScheduled(),
	})
}

// HandleCancel handles DELETE /notifications
func (h *NotificationsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.scheduler.CancelAll(); err != nil {
		h.logger.Error("Failed to cancel notifications", "error", err)
		http.Error(w, "Failed to cancel notifications", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
