// Package memory provides in-memory storage adapters.
//
// The corpus lives only for the duration of one CLI run or one web
// session; there is no cross-run persistence.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/balsas-labs/stenograma-cli/internal/core/domain"
	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driven"
)

// Ensure CorpusStore implements the interface.
var _ driven.CorpusStore = (*CorpusStore)(nil)

// CorpusStore is an in-memory implementation of driven.CorpusStore.
// Append-only; safe for concurrent readers.
type CorpusStore struct {
	mu         sync.RWMutex
	utterances []domain.Utterance
}

// NewCorpusStore creates an empty in-memory corpus store.
func NewCorpusStore() *CorpusStore {
	return &CorpusStore{}
}

// Add appends utterances, assigning the global order.
func (s *CorpusStore) Add(_ context.Context, utterances []domain.Utterance) error {
	if len(utterances) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range utterances {
		if domain.NormaliseSpeaker(u.Speaker) == "" {
			return domain.ErrInvalidInput
		}
		u.Order = len(s.utterances)
		s.utterances = append(s.utterances, u)
	}
	return nil
}

// All returns a copy of the full corpus in global order.
func (s *CorpusStore) All(_ context.Context) ([]domain.Utterance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Utterance, len(s.utterances))
	copy(out, s.utterances)
	return out, nil
}

// Speakers returns the distinct normalised speaker names, sorted.
func (s *CorpusStore) Speakers(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for _, u := range s.utterances {
		key := u.SpeakerKey()
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out, nil
}

// Dates returns the distinct dates present, sorted ascending.
func (s *CorpusStore) Dates(_ context.Context) ([]time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[time.Time]bool)
	var out []time.Time
	for _, u := range s.utterances {
		if !u.HasDate() || seen[u.Date] {
			continue
		}
		seen[u.Date] = true
		out = append(out, u.Date)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out, nil
}

// HasUndated reports whether any utterance has no date.
func (s *CorpusStore) HasUndated(_ context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.utterances {
		if !u.HasDate() {
			return true, nil
		}
	}
	return false, nil
}

// Len returns the number of utterances stored.
func (s *CorpusStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.utterances), nil
}
