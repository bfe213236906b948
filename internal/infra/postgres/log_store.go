package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"trivia-quiz-service/internal/domain"
)

// LogStore appends events to the event_log table. Rows are immutable and
// read back in insertion order, so the log survives process restarts.
type LogStore struct {
	pool *pgxpool.Pool
}

func NewLogStore(pool *pgxpool.Pool) *LogStore {
	return &LogStore{pool: pool}
}

func (s *LogStore) Append(ctx context.Context, ev domain.Event) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO event_log
		   (kind, identity, at, question_index, prompt, selected, correct, is_correct,
		    score, total, percentage, time_taken_seconds)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		string(ev.Kind), ev.Identity, ev.At, ev.QuestionIndex, ev.Prompt, ev.Selected,
		ev.Correct, ev.IsCorrect, ev.Score, ev.Total, ev.Percentage, ev.TimeTakenSeconds)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

func (s *LogStore) ReadAll(ctx context.Context) ([]domain.Event, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT kind, identity, at, question_index, prompt, selected, correct, is_correct,
		        score, total, percentage, time_taken_seconds
		   FROM event_log ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("read event log: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var ev domain.Event
		var kind string
		if err := rows.Scan(&kind, &ev.Identity, &ev.At, &ev.QuestionIndex, &ev.Prompt,
			&ev.Selected, &ev.Correct, &ev.IsCorrect, &ev.Score, &ev.Total,
			&ev.Percentage, &ev.TimeTakenSeconds); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.Kind = domain.EventKind(kind)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read event log: %w", err)
	}
	return events, nil
}
