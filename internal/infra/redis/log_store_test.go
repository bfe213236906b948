package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"trivia-quiz-service/internal/domain"
)

func TestLogStoreAppendAndReadBack(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewLogStore(client, "")

	at := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	_ = store.Append(ctx, domain.StartedEvent("a@b.com", at))
	_ = store.Append(ctx, domain.CompletedEvent("a@b.com", 10, 15, "66.67", 600, at))

	if !mr.Exists(DefaultLogKey) {
		t.Fatalf("expected log key %q to be set", DefaultLogKey)
	}

	events, err := store.ReadAll(ctx)
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Kind != domain.EventStarted || events[1].Kind != domain.EventCompleted {
		t.Fatalf("expected append order preserved, got %+v", events)
	}
	if events[1].Percentage != "66.67" || events[1].TimeTakenSeconds != 600 {
		t.Fatalf("completed event fields lost: %+v", events[1])
	}
}

func TestLogStoreSurvivesReconnect(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	first := NewLogStore(client, "")
	_ = first.Append(ctx, domain.StartedEvent("a@b.com", time.Now()))

	// A fresh store over the same backing key sees the history.
	second := NewLogStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "")
	events, err := second.ReadAll(ctx)
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if len(events) != 1 || events[0].Identity != "a@b.com" {
		t.Fatalf("expected persisted event, got %+v", events)
	}
}

func TestLogStoreTreatsCorruptKeyAsEmpty(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	_ = mr.Set(DefaultLogKey, "{broken json")

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewLogStore(client, "")

	events, err := store.ReadAll(ctx)
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("corrupt key must read as empty, got %+v", events)
	}

	// Appending over a corrupt key restarts the array.
	_ = store.Append(ctx, domain.StartedEvent("a@b.com", time.Now()))
	events, _ = store.ReadAll(ctx)
	if len(events) != 1 {
		t.Fatalf("expected log rebuilt after corrupt key, got %d events", len(events))
	}
}
