package app_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/infra/memory"
)

func TestExportDocument(t *testing.T) {
	ctx := context.Background()
	logs := memory.NewLogStore()
	at := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	_ = logs.Append(ctx, domain.StartedEvent("a@b.com", at))
	_ = logs.Append(ctx, domain.CompletedEvent("a@b.com", 15, 15, "100.00", 120, at))

	data, filename, err := app.ExportDocument(ctx, logs, func() time.Time { return at })
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filename != "quiz_logs_2026-02-01T12:00:00Z.json" {
		t.Fatalf("unexpected filename %q", filename)
	}

	var events []domain.Event
	if err := json.Unmarshal(data, &events); err != nil {
		t.Fatalf("export must be a JSON array: %v", err)
	}
	if len(events) != 2 || events[0].Kind != domain.EventStarted || events[1].Kind != domain.EventCompleted {
		t.Fatalf("expected both events in order, got %+v", events)
	}
}

func TestExportDocumentKeepsZeroValuedFields(t *testing.T) {
	ctx := context.Background()
	logs := memory.NewLogStore()
	at := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	q := domain.QuestionRecord{Prompt: "Q", CorrectAnswer: "A", CandidateAnswers: []string{"A", "B"}}
	_ = logs.Append(ctx, domain.AnswerEvent("a@b.com", 0, q, domain.NotAnswered, at))
	_ = logs.Append(ctx, domain.CompletedEvent("a@b.com", 0, 15, "0.00", 120, at))

	data, _, err := app.ExportDocument(ctx, logs, func() time.Time { return at })
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	// Question zero, a missed answer and a zero score must all survive
	// serialization verbatim.
	doc := string(data)
	for _, want := range []string{`"questionIndex": 0`, `"isCorrect": false`, `"score": 0`} {
		if !strings.Contains(doc, want) {
			t.Fatalf("expected document to contain %s, got %s", want, doc)
		}
	}
}

func TestExportDocumentEmptyLog(t *testing.T) {
	data, _, err := app.ExportDocument(context.Background(), memory.NewLogStore(), time.Now)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Fatalf("expected empty array, got %s", data)
	}
}
