package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"trivia-quiz-service/internal/domain"
)

// ExportDocument serializes the full event log into one downloadable JSON
// document and returns it with a timestamped filename. It is a convenience
// projection over ReadAll, not part of the log contract.
func ExportDocument(ctx context.Context, logs LogStore, now func() time.Time) ([]byte, string, error) {
	events, err := logs.ReadAll(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("export event log: %w", err)
	}
	if events == nil {
		events = []domain.Event{}
	}
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("export event log: %w", err)
	}
	filename := fmt.Sprintf("quiz_logs_%s.json", now().UTC().Format(time.RFC3339))
	return data, filename, nil
}
