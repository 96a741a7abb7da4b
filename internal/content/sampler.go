package content

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"toughlove-affirmations/internal/metrics"
)

// Store is the persistence surface the sampler needs
type Store interface {
	GetRecentAffirmations() ([]string, error)
	AppendRecentAffirmations(texts []string, maxSize int) error
	ClearRecentAffirmations() error
	GetAppState(key string) (string, error)
	SetAppState(key, value string) error
}

// Sampler serves affirmations without near-term repetition by tracking a
// bounded FIFO of recently served texts
type Sampler struct {
	store      Store
	logger     *slog.Logger
	windowSize int
	now        func() time.Time
}

// NewSampler creates a sampler with the given recent-window capacity
func NewSampler(store Store, windowSize int) *Sampler {
	return &Sampler{
		store:      store,
		logger:     slog.Default(),
		windowSize: windowSize,
		now:        time.Now,
	}
}

// Fresh returns count affirmations excluding the recent window. When the
// remaining pool is smaller than count, the window is cleared and sampling
// falls back to the full corpus. Storage failures degrade to a plain random
// sample; Fresh never fails.
func (s *Sampler) Fresh(count int) []string {
	recent, err := s.store.GetRecentAffirmations()
	if err != nil {
		s.logger.Error("Failed to read recent affirmations, sampling from full corpus", "error", err)
		metrics.AffirmationsServedTotal.WithLabelValues(metrics.SamplerOutcomeFallback).Add(float64(count))
		return sample(All(), count)
	}

	seen := make(map[string]bool, len(recent))
	for _, text := range recent {
		seen[text] = true
	}

	var pool []string
	for _, text := range All() {
		if !seen[text] {
			pool = append(pool, text)
		}
	}

	outcome := metrics.SamplerOutcomeFresh
	if len(pool) < count {
		// Repetition avoidance degrades rather than failing
		s.logger.Info("Fresh pool exhausted, resetting recent window", "pool", len(pool), "requested", count)
		if err := s.store.ClearRecentAffirmations(); err != nil {
			s.logger.Error("Failed to clear recent affirmations", "error", err)
		}
		pool = All()
		outcome = metrics.SamplerOutcomeReset
	}

	selected := sample(pool, count)

	if err := s.store.AppendRecentAffirmations(selected, s.windowSize); err != nil {
		s.logger.Error("Failed to update recent affirmations", "error", err)
	}

	metrics.AffirmationsServedTotal.WithLabelValues(outcome).Add(float64(len(selected)))
	return selected
}

// Random returns one uniform draw from the full corpus
func (s *Sampler) Random() string {
	texts := All()
	return texts[rand.IntN(len(texts))]
}

// TodayAffirmation returns the sticky affirmation of the day, drawing and
// persisting a new one on the first call of each day
func (s *Sampler) TodayAffirmation() string {
	key := "todayAffirmation_" + s.now().Format("2006-01-02")

	stored, err := s.store.GetAppState(key)
	if err != nil {
		s.logger.Error("Failed to read today's affirmation", "error", err)
		return s.Random()
	}
	if stored != "" {
		return stored
	}

	today := s.Random()
	if err := s.store.SetAppState(key, today); err != nil {
		s.logger.Error("Failed to persist today's affirmation", "error", err)
	}
	return today
}

// sample shuffles a copy of pool and returns the first count entries
func sample(pool []string, count int) []string {
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
