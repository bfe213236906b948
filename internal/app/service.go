package app

import (
	"context"

	"github.com/rs/zerolog"

	"trivia-quiz-service/internal/domain"
)

// SessionRepository abstracts how quiz sessions are stored (in-memory, etc).
type SessionRepository interface {
	GetOrCreate(sessionID string, create func(id string) *Session) *Session
	Get(sessionID string) (*Session, bool)
	Delete(sessionID string)
}

// QuestionSupplier produces the fixed-size question list for a run. It fails
// over to a built-in set internally and therefore never returns an error.
type QuestionSupplier interface {
	Load(ctx context.Context) []domain.QuestionRecord
}

// LogStore is the append-only session event log.
type LogStore interface {
	Append(ctx context.Context, ev domain.Event) error
	ReadAll(ctx context.Context) ([]domain.Event, error)
}

// SessionService exposes the quiz use cases over a session repository.
type SessionService struct {
	sessions SessionRepository
	supplier QuestionSupplier
	logs     LogStore
	log      zerolog.Logger
}

func NewSessionService(sessions SessionRepository, supplier QuestionSupplier, logs LogStore, log zerolog.Logger) *SessionService {
	return &SessionService{sessions: sessions, supplier: supplier, logs: logs, log: log}
}

// Attach returns the session for the given ID, creating it in the start
// phase if needed.
func (s *SessionService) Attach(sessionID string) *Session {
	return s.sessions.GetOrCreate(sessionID, func(id string) *Session {
		return NewSession(id, s.logs, s.log)
	})
}

// Begin starts a quiz run for the session. Question loading happens before
// the session is touched, so a slow upstream never holds the session mutex.
func (s *SessionService) Begin(ctx context.Context, sessionID, identity string) (domain.Snapshot, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.Snapshot{}, domain.ErrSessionNotFound
	}
	if !domain.ValidIdentity(identity) {
		return domain.Snapshot{}, domain.ErrInvalidIdentity
	}

	questions := s.supplier.Load(ctx)
	if err := session.Begin(ctx, identity, questions); err != nil {
		return domain.Snapshot{}, err
	}
	return session.Snapshot(), nil
}

// SelectAnswer records an answer for the session's current question.
func (s *SessionService) SelectAnswer(sessionID, answer string) error {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	session.SelectAnswer(answer)
	return nil
}

// ClearAnswer removes the answer for the session's current question.
func (s *SessionService) ClearAnswer(sessionID string) error {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	session.ClearAnswer()
	return nil
}

// GoTo navigates the session to the given question index.
func (s *SessionService) GoTo(sessionID string, index int) error {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	return session.GoTo(index)
}

// Next advances the session one question.
func (s *SessionService) Next(sessionID string) error {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	session.Next()
	return nil
}

// Previous steps the session back one question.
func (s *SessionService) Previous(sessionID string) error {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	session.Previous()
	return nil
}

// Submit finalizes the session's run.
func (s *SessionService) Submit(ctx context.Context, sessionID string) error {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	session.Submit(ctx)
	return nil
}

// Reset returns the session to the start phase.
func (s *SessionService) Reset(sessionID string) error {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	session.Reset()
	return nil
}

// Results returns the frozen outcome of a submitted run.
func (s *SessionService) Results(sessionID string) (domain.Results, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.Results{}, domain.ErrSessionNotFound
	}
	results, ok := session.Results()
	if !ok {
		return domain.Results{}, domain.ErrNoResults
	}
	return results, nil
}

// Subscribe returns a channel of state snapshots for the session.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *SessionService) Subscribe(sessionID string) (<-chan domain.Snapshot, func(), error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, nil, domain.ErrSessionNotFound
	}
	ch, cancel := session.Subscribe()
	return ch, cancel, nil
}

// Detach drops the session when the client disconnects with no run in
// progress; an active or submitted run is kept so a reconnect can resume it.
func (s *SessionService) Detach(sessionID string) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return
	}
	if session.Snapshot().Phase == domain.PhaseStart {
		s.sessions.Delete(sessionID)
	}
}
