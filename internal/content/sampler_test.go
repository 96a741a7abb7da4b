package content

import (
	"errors"
	"testing"
	"time"
)

// memStore is an in-memory Store for sampler tests
type memStore struct {
	recent  []string
	state   map[string]string
	failAll bool
}

func newMemStore() *memStore {
	return &memStore{state: make(map[string]string)}
}

func (m *memStore) GetRecentAffirmations() ([]string, error) {
	if m.failAll {
		return nil, errors.New("storage down")
	}
	return m.recent, nil
}

func (m *memStore) AppendRecentAffirmations(texts []string, maxSize int) error {
	if m.failAll {
		return errors.New("storage down")
	}
	m.recent = append(m.recent, texts...)
	if len(m.recent) > maxSize {
		m.recent = m.recent[len(m.recent)-maxSize:]
	}
	return nil
}

func (m *memStore) ClearRecentAffirmations() error {
	if m.failAll {
		return errors.New("storage down")
	}
	m.recent = nil
	return nil
}

func (m *memStore) GetAppState(key string) (string, error) {
	if m.failAll {
		return "", errors.New("storage down")
	}
	return m.state[key], nil
}

func (m *memStore) SetAppState(key, value string) error {
	if m.failAll {
		return errors.New("storage down")
	}
	m.state[key] = value
	return nil
}

func TestFreshAvoidsRecent(t *testing.T) {
	store := newMemStore()
	sampler := NewSampler(store, 100)

	first := sampler.Fresh(20)
	if len(first) != 20 {
		t.Fatalf("Expected 20 affirmations, got %d", len(first))
	}

	second := sampler.Fresh(20)
	if len(second) != 20 {
		t.Fatalf("Expected 20 affirmations, got %d", len(second))
	}

	seen := make(map[string]bool, len(first))
	for _, text := range first {
		seen[text] = true
	}
	for _, text := range second {
		if seen[text] {
			t.Errorf("Affirmation repeated within recent window: %q", text)
		}
	}
}

func TestFreshNoDuplicatesInBatch(t *testing.T) {
	store := newMemStore()
	sampler := NewSampler(store, 100)

	batch := sampler.Fresh(20)
	seen := make(map[string]bool)
	for _, text := range batch {
		if seen[text] {
			t.Errorf("Duplicate in single batch: %q", text)
		}
		seen[text] = true
	}
}

func TestFreshResetsExhaustedWindow(t *testing.T) {
	store := newMemStore()
	// Window big enough to hold nearly the full corpus
	sampler := NewSampler(store, Count()-5)

	// Exhaust the pool: mark all but 5 texts as recently served
	store.recent = All()[:Count()-5]

	batch := sampler.Fresh(20)
	if len(batch) != 20 {
		t.Fatalf("Expected 20 affirmations after reset, got %d", len(batch))
	}

	// The window was cleared before sampling, so only this batch remains
	if len(store.recent) != 20 {
		t.Errorf("Expected window of 20 after reset, got %d", len(store.recent))
	}
}

func TestFreshDegradesOnStorageFailure(t *testing.T) {
	store := newMemStore()
	store.failAll = true
	sampler := NewSampler(store, 100)

	batch := sampler.Fresh(20)
	if len(batch) != 20 {
		t.Fatalf("Expected 20 affirmations despite storage failure, got %d", len(batch))
	}
}

func TestTodayAffirmationSticky(t *testing.T) {
	store := newMemStore()
	sampler := NewSampler(store, 100)
	sampler.now = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }

	first := sampler.TodayAffirmation()
	if first == "" {
		t.Fatal("Expected a non-empty affirmation")
	}

	for i := 0; i < 10; i++ {
		if got := sampler.TodayAffirmation(); got != first {
			t.Fatalf("Expected stable affirmation %q, got %q", first, got)
		}
	}

	// A new day draws fresh
	sampler.now = func() time.Time { return time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC) }
	next := sampler.TodayAffirmation()
	if got := sampler.TodayAffirmation(); got != next {
		t.Errorf("Expected stable affirmation %q on the new day, got %q", next, got)
	}
}

func TestRandomDrawsFromCorpus(t *testing.T) {
	sampler := NewSampler(newMemStore(), 100)

	valid := make(map[string]bool, Count())
	for _, text := range All() {
		valid[text] = true
	}

	for i := 0; i < 50; i++ {
		if text := sampler.Random(); !valid[text] {
			t.Fatalf("Random returned text outside the corpus: %q", text)
		}
	}
}
