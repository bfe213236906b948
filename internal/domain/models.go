package domain

const (
	// QuestionCount is the fixed number of questions in every quiz run.
	QuestionCount = 15
	// TimeLimitSeconds is the countdown length for a quiz run.
	TimeLimitSeconds = 30 * 60
	// NotAnswered is the sentinel logged for questions left blank at submission.
	NotAnswered = "Not answered"
)

// Phase is the lifecycle stage of a quiz session.
type Phase string

const (
	PhaseStart      Phase = "start"
	PhaseInProgress Phase = "in_progress"
	PhaseResults    Phase = "results"
)

// QuestionRecord is a multiple-choice question as presented to a session.
// CandidateAnswers contains CorrectAnswer exactly once; the order is fixed
// at load time and never reshuffled afterwards.
type QuestionRecord struct {
	Prompt           string   `json:"prompt"`
	CorrectAnswer    string   `json:"correctAnswer"`
	CandidateAnswers []string `json:"candidateAnswers"`
	Category         string   `json:"category"`
	Difficulty       string   `json:"difficulty"`
}

// QuestionView is the answer-blind projection sent to clients while a run
// is in progress.
type QuestionView struct {
	Prompt           string   `json:"prompt"`
	CandidateAnswers []string `json:"candidateAnswers"`
	Category         string   `json:"category"`
	Difficulty       string   `json:"difficulty"`
}

// View strips the correct answer from a record.
func (q QuestionRecord) View() QuestionView {
	return QuestionView{
		Prompt:           q.Prompt,
		CandidateAnswers: q.CandidateAnswers,
		Category:         q.Category,
		Difficulty:       q.Difficulty,
	}
}

// Snapshot is a point-in-time copy of session state for clients.
type Snapshot struct {
	SessionID        string         `json:"sessionId"`
	Phase            Phase          `json:"phase"`
	Identity         string         `json:"identity,omitempty"`
	Questions        []QuestionView `json:"questions,omitempty"`
	CurrentIndex     int            `json:"currentIndex"`
	Answers          map[int]string `json:"answers"`
	Visited          []int          `json:"visited"`
	RemainingSeconds int            `json:"remainingSeconds"`
}

// ReviewEntry pairs a question with the final answer for the results view.
type ReviewEntry struct {
	Prompt        string `json:"prompt"`
	Selected      string `json:"selected"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

// Results summarizes a completed run.
type Results struct {
	Identity         string        `json:"identity"`
	Score            int           `json:"score"`
	Total            int           `json:"total"`
	Percentage       string        `json:"percentage"`
	TimeTakenSeconds int           `json:"timeTakenSeconds"`
	Review           []ReviewEntry `json:"review"`
}
