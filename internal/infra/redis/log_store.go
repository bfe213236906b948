package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"trivia-quiz-service/internal/domain"
)

// DefaultLogKey is the well-known key holding the serialized event array.
const DefaultLogKey = "quiz:events"

// LogStore keeps the whole event log as one JSON array under a single key.
// Append is read, push, write-back; a local mutex serializes writers from
// this process. An absent or corrupt key reads as an empty log.
type LogStore struct {
	client *redis.Client
	key    string
	mu     sync.Mutex
}

func NewLogStore(client *redis.Client, key string) *LogStore {
	if key == "" {
		key = DefaultLogKey
	}
	return &LogStore{client: client, key: key}
}

func (s *LogStore) Append(ctx context.Context, ev domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.readLog(ctx)
	events = append(events, ev)

	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("marshal event log: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("write event log: %w", err)
	}
	return nil
}

func (s *LogStore) ReadAll(ctx context.Context) ([]domain.Event, error) {
	return s.readLog(ctx), nil
}

// readLog swallows transport and decode failures: the log degrades to
// empty rather than blocking quiz progression.
func (s *LogStore) readLog(ctx context.Context) []domain.Event {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		return []domain.Event{}
	}
	var events []domain.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return []domain.Event{}
	}
	return events
}
