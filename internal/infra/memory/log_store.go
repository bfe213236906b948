package memory

import (
	"context"
	"sync"

	"trivia-quiz-service/internal/domain"
)

// LogStore is an in-memory implementation of app.LogStore. Events are kept
// in append order; there is no clear operation.
type LogStore struct {
	mu     sync.RWMutex
	events []domain.Event
}

func NewLogStore() *LogStore {
	return &LogStore{}
}

func (s *LogStore) Append(_ context.Context, ev domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *LogStore) ReadAll(_ context.Context) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out, nil
}
