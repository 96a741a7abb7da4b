package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"toughlove-affirmations/internal/database"
	"toughlove-affirmations/internal/notify"
)

// OnboardingHandler serves the onboarding-completion endpoint
type OnboardingHandler struct {
	db        *database.DB
	scheduler *notify.Scheduler
	logger    *slog.Logger
}

// NewOnboardingHandler creates an onboarding handler
func NewOnboardingHandler(db *database.DB, scheduler *notify.Scheduler) *OnboardingHandler {
	return &OnboardingHandler{
		db:        db,
		scheduler: scheduler,
		logger:    slog.Default(),
	}
}

// onboardingRequest is the POST /onboarding body
type onboardingRequest struct {
	SelectedAreas []string           `json:"selectedAreas"`
	Notifications notify.Preferences `json:"notifications"`
}

// HandleOnboarding handles GET /onboarding (status) and POST /onboarding
// (finish the flow: persist focus areas, save notification preferences,
// which kicks off the first schedule)
func (h *OnboardingHandler) HandleOnboarding(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleStatus(w)
	case http.MethodPost:
		h.handleComplete(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *OnboardingHandler) handleStatus(w http.ResponseWriter) {
	completed, err := h.db.GetAppState(database.StateOnboardingCompleted)
	if err != nil {
		h.logger.Error("Failed to read onboarding state", "error", err)
	}

	areas := []string{}
	if stored, err := h.db.GetAppState(database.StateSelectedAreas); err != nil {
		h.logger.Error("Failed to read selected areas", "error", err)
	} else if stored != "" {
		if err := json.Unmarshal([]byte(stored), &areas); err != nil {
			h.logger.Error("Failed to decode selected areas", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"completed":     completed == "true",
		"selectedAreas": areas,
	})
}

func (h *OnboardingHandler) handleComplete(w http.ResponseWriter, r *http.Request) {
	var req onboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	areas, err := json.Marshal(req.SelectedAreas)
	if err != nil {
		http.Error(w, "Invalid selected areas", http.StatusBadRequest)
		return
	}

	if err := h.db.SetAppState(database.StateSelectedAreas, string(areas)); err != nil {
		h.logger.Error("Failed to persist selected areas", "error", err)
		http.Error(w, "Failed to save onboarding", http.StatusInternalServerError)
		return
	}
	if err := h.db.SetAppState(database.StateOnboardingCompleted, "true"); err != nil {
		h.logger.Error("Failed to persist onboarding state", "error", err)
		http.Error(w, "Failed to save onboarding", http.StatusInternalServerError)
		return
	}

	prefs := req.Notifications
	granted := true
	if prefs.Enabled {
		granted = h.scheduler.RequestPermission()
		if !granted {
			h.logger.Info("Notification permission denied during onboarding")
			prefs.Enabled = false
		}
	}
	if prefs.StartTime == "" || prefs.EndTime == "" {
		defaults := notify.DefaultPreferences()
		if prefs.StartTime == "" {
			prefs.StartTime = defaults.StartTime
		}
		if prefs.EndTime == "" {
			prefs.EndTime = defaults.EndTime
		}
	}

	if err := h.scheduler.SavePreferences(prefs); err != nil {
		h.logger.Warn("Rejected onboarding notification preferences", "error", err)
		http.Error(w, "Invalid notification preferences", http.StatusBadRequest)
		return
	}

	h.logger.Info("Onboarding completed",
		"areas", len(req.SelectedAreas),
		"notifications_enabled", prefs.Enabled)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"completed":            true,
		"notificationsEnabled": prefs.Enabled,
		"permissionGranted":    granted,
	})
}
