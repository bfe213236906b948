package app_test

import (
	"testing"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/domain"
)

func TestScoreCountsExactMatches(t *testing.T) {
	qs := stubQuestions()

	answers := map[int]string{}
	if got := app.Score(qs, answers); got != 0 {
		t.Fatalf("empty answers must score 0, got %d", got)
	}

	for i, q := range qs {
		answers[i] = q.CorrectAnswer
	}
	if got := app.Score(qs, answers); got != domain.QuestionCount {
		t.Fatalf("all correct must score %d, got %d", domain.QuestionCount, got)
	}

	// Trailing whitespace and case differences never match.
	answers[0] = qs[0].CorrectAnswer + " "
	answers[1] = "answer 01"
	if got := app.Score(qs, answers); got != domain.QuestionCount-2 {
		t.Fatalf("expected %d, got %d", domain.QuestionCount-2, got)
	}

	if got := app.Score(qs, answers); got > len(qs) {
		t.Fatalf("score must never exceed question count, got %d", got)
	}
}

func TestPercentageFormatsTwoDecimals(t *testing.T) {
	cases := []struct {
		score, total int
		want         string
	}{
		{15, 15, "100.00"},
		{0, 15, "0.00"},
		{13, 15, "86.67"},
		{7, 15, "46.67"},
		{1, 3, "33.33"},
	}
	for _, tc := range cases {
		if got := app.Percentage(tc.score, tc.total); got != tc.want {
			t.Fatalf("percentage(%d,%d) = %s, want %s", tc.score, tc.total, got, tc.want)
		}
	}
}
