package app

import (
	"fmt"

	"trivia-quiz-service/internal/domain"
)

// Score counts the indices whose selected answer exactly equals the
// question's correct answer. Comparison is case and whitespace sensitive;
// an absent answer never matches.
func Score(questions []domain.QuestionRecord, answers map[int]string) int {
	score := 0
	for i, q := range questions {
		if selected, ok := answers[i]; ok && selected == q.CorrectAnswer {
			score++
		}
	}
	return score
}

// Percentage formats score/total as a percentage with two decimal places,
// e.g. "86.67".
func Percentage(score, total int) string {
	return fmt.Sprintf("%.2f", float64(score)/float64(total)*100)
}
