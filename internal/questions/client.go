package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"trivia-quiz-service/internal/domain"
)

// DefaultAPIURL is the Open Trivia DB endpoint used when none is configured.
const DefaultAPIURL = "https://opentdb.com/api.php"

// generalKnowledgeCategory is the fixed Open Trivia DB category requested
// for every batch.
const generalKnowledgeCategory = 9

// Client fetches question batches from an Open Trivia DB-compatible API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// triviaResponse mirrors the provider payload. All text fields may carry
// HTML-entity-escaped content and must be decoded before use.
type triviaResponse struct {
	ResponseCode int `json:"response_code"`
	Results      []struct {
		Category         string   `json:"category"`
		Type             string   `json:"type"`
		Difficulty       string   `json:"difficulty"`
		Question         string   `json:"question"`
		CorrectAnswer    string   `json:"correct_answer"`
		IncorrectAnswers []string `json:"incorrect_answers"`
	} `json:"results"`
}

// Fetch requests count multiple-choice questions. The returned records have
// entity-decoded text and an unshuffled candidate list starting with the
// correct answer; the supplier owns the shuffle.
func (c *Client) Fetch(ctx context.Context, count int) ([]domain.QuestionRecord, error) {
	q := url.Values{}
	q.Set("amount", strconv.Itoa(count))
	q.Set("category", strconv.Itoa(generalKnowledgeCategory))
	q.Set("type", "multiple")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build trivia request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch trivia questions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trivia api status %d", resp.StatusCode)
	}

	var payload triviaResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode trivia payload: %w", err)
	}
	if payload.ResponseCode != 0 {
		return nil, fmt.Errorf("trivia api response code %d", payload.ResponseCode)
	}
	if len(payload.Results) != count {
		return nil, fmt.Errorf("trivia api returned %d questions, want %d", len(payload.Results), count)
	}

	records := make([]domain.QuestionRecord, 0, count)
	for _, r := range payload.Results {
		candidates := make([]string, 0, len(r.IncorrectAnswers)+1)
		candidates = append(candidates, html.UnescapeString(r.CorrectAnswer))
		for _, a := range r.IncorrectAnswers {
			candidates = append(candidates, html.UnescapeString(a))
		}
		records = append(records, domain.QuestionRecord{
			Prompt:           html.UnescapeString(r.Question),
			CorrectAnswer:    html.UnescapeString(r.CorrectAnswer),
			CandidateAnswers: candidates,
			Category:         html.UnescapeString(r.Category),
			Difficulty:       r.Difficulty,
		})
	}
	return records, nil
}
