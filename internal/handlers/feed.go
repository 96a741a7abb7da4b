package handlers

import (
	"log/slog"
	"net/http"

	"toughlove-affirmations/internal/config"
	"toughlove-affirmations/internal/content"
)

// FeedHandler serves the swipeable card feed and the raw affirmation corpus
type FeedHandler struct {
	sampler *content.Sampler
	config  *config.Config
	logger  *slog.Logger
}

// NewFeedHandler creates a feed handler
func NewFeedHandler(sampler *content.Sampler, cfg *config.Config) *FeedHandler {
	return &FeedHandler{
		sampler: sampler,
		config:  cfg,
		logger:  slog.Default(),
	}
}

// HandleFeed handles GET /feed: one feed-load of fresh affirmations plus
// today's sticky affirmation
func (h *FeedHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"today":        h.sampler.TodayAffirmation(),
		"affirmations": h.sampler.Fresh(h.config.FeedSize),
	})
}

// HandleCategories handles GET /affirmations/categories
func (h *FeedHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": content.Categories(),
		"total":      content.Count(),
	})
}

// HandleAffirmations handles GET /affirmations?category=<name>.
// The pseudo-category "all" returns a fresh feed-sized sample; a named
// category returns its full text list.
func (h *FeedHandler) HandleAffirmations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		http.Error(w, "Missing category parameter", http.StatusBadRequest)
		return
	}

	if category == "all" {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"category":     category,
			"affirmations": h.sampler.Fresh(h.config.FeedSize),
		})
		return
	}

	texts := content.ByCategory(category)
	if texts == nil {
		http.Error(w, "Unknown category", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"category":     category,
		"affirmations": texts,
	})
}
