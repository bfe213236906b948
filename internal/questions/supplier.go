package questions

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"trivia-quiz-service/internal/domain"
)

// Source is the primary question provider, typically the trivia API client.
type Source interface {
	Fetch(ctx context.Context, count int) ([]domain.QuestionRecord, error)
}

// Supplier produces the fixed-size question list for a quiz run. Provider
// failures of any kind are absorbed by substituting the built-in fallback
// set, so Load never returns an error. Concurrent loads collapse into one
// upstream request; candidate shuffling stays per-call so every run gets an
// independent order.
type Supplier struct {
	source Source
	log    zerolog.Logger
	sf     singleflight.Group

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSupplier(source Source, log zerolog.Logger) *Supplier {
	return &Supplier{
		source: source,
		log:    log,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Load returns exactly domain.QuestionCount records with shuffled candidate
// lists.
func (s *Supplier) Load(ctx context.Context) []domain.QuestionRecord {
	result, err, _ := s.sf.Do("batch", func() (interface{}, error) {
		return s.source.Fetch(ctx, domain.QuestionCount)
	})

	var records []domain.QuestionRecord
	if err != nil {
		s.log.Info().Err(err).Msg("trivia provider unavailable, using fallback questions")
		records = fallbackQuestions()
	} else {
		records = result.([]domain.QuestionRecord)
	}
	return s.normalize(records)
}

// normalize deep-copies the batch and shuffles each candidate list with a
// uniform Fisher-Yates permutation.
func (s *Supplier) normalize(records []domain.QuestionRecord) []domain.QuestionRecord {
	out := make([]domain.QuestionRecord, len(records))
	for i, q := range records {
		candidates := make([]string, len(q.CandidateAnswers))
		copy(candidates, q.CandidateAnswers)
		s.shuffle(candidates)
		q.CandidateAnswers = candidates
		out[i] = q
	}
	return out
}

func (s *Supplier) shuffle(answers []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(answers) - 1; i > 0; i-- {
		j := s.rnd.Intn(i + 1)
		answers[i], answers[j] = answers[j], answers[i]
	}
}
