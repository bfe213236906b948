package domain

import "time"

// EventKind tags the variants of the session event log.
type EventKind string

const (
	EventStarted   EventKind = "quiz_started"
	EventAnswer    EventKind = "answer"
	EventCompleted EventKind = "quiz_completed"
)

// Event is one append-only log record. Fields beyond Kind/Identity/At are
// populated per variant: answer events carry the question fields, completed
// events carry the result fields.
type Event struct {
	Kind     EventKind `json:"kind"`
	Identity string    `json:"identity"`
	At       time.Time `json:"at"`

	// Zero is a legitimate value for the index, the correctness flag and
	// the score, so these never use omitempty.
	QuestionIndex int    `json:"questionIndex"`
	Prompt        string `json:"prompt,omitempty"`
	Selected      string `json:"selected,omitempty"`
	Correct       string `json:"correct,omitempty"`
	IsCorrect     bool   `json:"isCorrect"`

	Score            int    `json:"score"`
	Total            int    `json:"total,omitempty"`
	Percentage       string `json:"percentage,omitempty"`
	TimeTakenSeconds int    `json:"timeTakenSeconds"`
}

// StartedEvent builds the quiz_started record.
func StartedEvent(identity string, at time.Time) Event {
	return Event{Kind: EventStarted, Identity: identity, At: at}
}

// AnswerEvent builds one per-question answer record for the submission batch.
func AnswerEvent(identity string, index int, q QuestionRecord, selected string, at time.Time) Event {
	return Event{
		Kind:          EventAnswer,
		Identity:      identity,
		At:            at,
		QuestionIndex: index,
		Prompt:        q.Prompt,
		Selected:      selected,
		Correct:       q.CorrectAnswer,
		IsCorrect:     selected == q.CorrectAnswer,
	}
}

// CompletedEvent builds the quiz_completed record.
func CompletedEvent(identity string, score, total int, percentage string, timeTaken int, at time.Time) Event {
	return Event{
		Kind:             EventCompleted,
		Identity:         identity,
		At:               at,
		Score:            score,
		Total:            total,
		Percentage:       percentage,
		TimeTakenSeconds: timeTaken,
	}
}
