package app

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"trivia-quiz-service/internal/domain"
)

// Session is the quiz state machine for one client: phase, question list,
// answer map, visited set, and countdown timer. All mutations, including
// timer ticks, are serialized through the session mutex, so the submit
// guard (phase check plus flip) is atomic with respect to the tick/submit
// race.
type Session struct {
	id   string
	logs LogStore
	log  zerolog.Logger
	now  func() time.Time

	mu           sync.Mutex
	phase        domain.Phase
	identity     string
	questions    []domain.QuestionRecord
	currentIndex int
	answers      map[int]string
	visited      map[int]struct{}
	remaining    int
	startedAt    time.Time
	results      *domain.Results
	timerStop    chan struct{}
	subscribers  map[chan domain.Snapshot]struct{}
}

// NewSession creates a session in the start phase.
func NewSession(id string, logs LogStore, log zerolog.Logger) *Session {
	return NewSessionWithClock(id, logs, log, time.Now)
}

// NewSessionWithClock allows deterministic timestamps in tests.
func NewSessionWithClock(id string, logs LogStore, log zerolog.Logger, now func() time.Time) *Session {
	s := &Session{
		id:          id,
		logs:        logs,
		log:         log.With().Str("session", id).Logger(),
		now:         now,
		subscribers: make(map[chan domain.Snapshot]struct{}),
	}
	s.resetLocked()
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Begin validates the identity, installs the question list, and starts the
// countdown. The identity check happens before any state change; an invalid
// identity leaves the session untouched and logs nothing.
func (s *Session) Begin(ctx context.Context, identity string, questions []domain.QuestionRecord) error {
	if !domain.ValidIdentity(identity) {
		return domain.ErrInvalidIdentity
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseStart {
		return domain.ErrSessionActive
	}

	s.identity = identity
	s.questions = questions
	s.currentIndex = 0
	s.answers = make(map[int]string)
	s.visited = map[int]struct{}{0: {}}
	s.remaining = domain.TimeLimitSeconds
	s.startedAt = s.now()
	s.phase = domain.PhaseInProgress
	s.startTimerLocked()
	s.append(ctx, domain.StartedEvent(identity, s.startedAt))
	s.broadcastLocked()
	return nil
}

// SelectAnswer records the answer for the current question, overwriting any
// prior selection. Answers outside the question's candidate set and calls
// outside the in-progress phase are ignored.
func (s *Session) SelectAnswer(answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseInProgress {
		return
	}
	if !containsAnswer(s.questions[s.currentIndex].CandidateAnswers, answer) {
		s.log.Debug().Int("index", s.currentIndex).Msg("ignoring answer outside candidate set")
		return
	}
	s.answers[s.currentIndex] = answer
	s.broadcastLocked()
}

// ClearAnswer removes the selection for the current question, if any.
func (s *Session) ClearAnswer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseInProgress {
		return
	}
	if _, ok := s.answers[s.currentIndex]; !ok {
		return
	}
	delete(s.answers, s.currentIndex)
	s.broadcastLocked()
}

// GoTo jumps to the given question index and marks it visited.
func (s *Session) GoTo(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseInProgress {
		return nil
	}
	return s.goToLocked(index)
}

func (s *Session) goToLocked(index int) error {
	if index < 0 || index >= len(s.questions) {
		return domain.ErrIndexOutOfRange
	}
	s.currentIndex = index
	s.visited[index] = struct{}{}
	s.broadcastLocked()
	return nil
}

// Next advances one question; a no-op at the last question.
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseInProgress {
		return
	}
	if s.currentIndex < len(s.questions)-1 {
		_ = s.goToLocked(s.currentIndex + 1)
	}
}

// Previous steps back one question; a no-op at index 0.
func (s *Session) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseInProgress {
		return
	}
	if s.currentIndex > 0 {
		_ = s.goToLocked(s.currentIndex - 1)
	}
}

// Tick consumes one second of the countdown. At zero it submits the run
// exactly once; the phase flip inside submitLocked stops further ticks.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseInProgress {
		return
	}
	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		s.submitLocked(context.Background())
	}
	s.broadcastLocked()
}

// Submit finalizes the run: logs the answer batch, scores it, and freezes
// the session in the results phase. Calling it again is a no-op, so an
// explicit submit racing a timer-forced one produces exactly one completed
// event.
func (s *Session) Submit(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseInProgress {
		return
	}
	s.submitLocked(ctx)
	s.broadcastLocked()
}

// submitLocked must be called with the mutex held and phase == InProgress.
func (s *Session) submitLocked(ctx context.Context) {
	now := s.now()
	timeTaken := int(now.Sub(s.startedAt) / time.Second)

	review := make([]domain.ReviewEntry, 0, len(s.questions))
	for i, q := range s.questions {
		selected, ok := s.answers[i]
		if !ok {
			selected = domain.NotAnswered
		}
		s.append(ctx, domain.AnswerEvent(s.identity, i, q, selected, now))
		review = append(review, domain.ReviewEntry{
			Prompt:        q.Prompt,
			Selected:      selected,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     selected == q.CorrectAnswer,
		})
	}

	score := Score(s.questions, s.answers)
	percentage := Percentage(score, len(s.questions))
	s.append(ctx, domain.CompletedEvent(s.identity, score, len(s.questions), percentage, timeTaken, now))

	s.results = &domain.Results{
		Identity:         s.identity,
		Score:            score,
		Total:            len(s.questions),
		Percentage:       percentage,
		TimeTakenSeconds: timeTaken,
		Review:           review,
	}
	s.phase = domain.PhaseResults
	s.stopTimerLocked()
}

// Reset returns the session to its initial values in place. Legal from any
// phase; any running timer is stopped before state is cleared.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	s.broadcastLocked()
}

func (s *Session) resetLocked() {
	s.stopTimerLocked()
	s.phase = domain.PhaseStart
	s.identity = ""
	s.questions = nil
	s.currentIndex = 0
	s.answers = make(map[int]string)
	s.visited = map[int]struct{}{0: {}}
	s.remaining = domain.TimeLimitSeconds
	s.startedAt = time.Time{}
	s.results = nil
}

// Results returns the frozen outcome of a submitted run.
func (s *Session) Results() (domain.Results, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.results == nil {
		return domain.Results{}, false
	}
	return *s.results, true
}

// Snapshot returns a copy of the observable session state.
func (s *Session) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe returns a channel that receives a snapshot after every mutation,
// starting with the current state. The caller must invoke the returned
// cancel function to avoid leaks.
func (s *Session) Subscribe() (<-chan domain.Snapshot, func()) {
	ch := make(chan domain.Snapshot, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	// Seed under the lock so a concurrent broadcast cannot slip in ahead
	// of the current state.
	ch <- s.snapshotLocked()
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Session) startTimerLocked() {
	stop := make(chan struct{})
	s.timerStop = stop
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Tick()
			case <-stop:
				return
			}
		}
	}()
}

func (s *Session) stopTimerLocked() {
	if s.timerStop != nil {
		close(s.timerStop)
		s.timerStop = nil
	}
}

// append writes an event to the log store, dropping failures: the log is an
// audit trail, not a dependency of quiz progression.
func (s *Session) append(ctx context.Context, ev domain.Event) {
	if err := s.logs.Append(ctx, ev); err != nil {
		s.log.Warn().Err(err).Str("kind", string(ev.Kind)).Msg("dropping event log write")
	}
}

func (s *Session) snapshotLocked() domain.Snapshot {
	views := make([]domain.QuestionView, 0, len(s.questions))
	for _, q := range s.questions {
		views = append(views, q.View())
	}
	answers := make(map[int]string, len(s.answers))
	for i, a := range s.answers {
		answers[i] = a
	}
	visited := make([]int, 0, len(s.visited))
	for i := range s.visited {
		visited = append(visited, i)
	}
	sort.Ints(visited)

	return domain.Snapshot{
		SessionID:        s.id,
		Phase:            s.phase,
		Identity:         s.identity,
		Questions:        views,
		CurrentIndex:     s.currentIndex,
		Answers:          answers,
		Visited:          visited,
		RemainingSeconds: s.remaining,
	}
}

func (s *Session) broadcastLocked() {
	snap := s.snapshotLocked()
	for ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
			// Drop the oldest pending snapshot so a slow client never
			// blocks the mutation path.
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}

func containsAnswer(candidates []string, answer string) bool {
	for _, c := range candidates {
		if c == answer {
			return true
		}
	}
	return false
}
