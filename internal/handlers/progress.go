package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"toughlove-affirmations/internal/content"
	"toughlove-affirmations/internal/progress"
)

// ProgressHandler serves the completion, streak, and favorites endpoints
type ProgressHandler struct {
	tracker *progress.Tracker
	logger  *slog.Logger
}

// NewProgressHandler creates a progress handler
func NewProgressHandler(tracker *progress.Tracker) *ProgressHandler {
	return &ProgressHandler{
		tracker: tracker,
		logger:  slog.Default(),
	}
}

// HandleComplete handles POST /complete: the card-cycle-finished trigger.
// Storage failures degrade inside the tracker, so this always succeeds.
func (h *ProgressHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.tracker.MarkTodayCompleted()
	writeJSON(w, http.StatusOK, h.tracker.Stats())
}

// HandleProgress handles GET /progress
func (h *ProgressHandler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, h.tracker.Stats())
}

// HandleFavorites handles GET /favorites (list) and POST /favorites
// (toggle one corpus index)
func (h *ProgressHandler) HandleFavorites(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"favorites": h.tracker.Favorites(),
		})

	case http.MethodPost:
		var req struct {
			ID int `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.ID < 0 || req.ID >= content.Count() {
			http.Error(w, "Affirmation id out of range", http.StatusBadRequest)
			return
		}

		starred := h.tracker.ToggleFavorite(req.ID)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"id":       req.ID,
			"favorite": starred,
		})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
