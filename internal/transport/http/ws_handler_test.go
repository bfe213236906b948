package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/infra/memory"
)

func TestWebSocketQuizFlow(t *testing.T) {
	logs := memory.NewLogStore()
	service := app.NewSessionService(memory.NewSessionStore(), stubSupplier{}, logs, zerolog.Nop())
	wsHandler := NewWSHandler(service, zerolog.Nop())

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	server := httptest.NewServer(mux)
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Initial snapshot arrives before any action.
	snap := readUntil(conn, t, "state")
	if snap["phase"] != string(domain.PhaseStart) {
		t.Fatalf("expected start phase, got %v", snap["phase"])
	}

	// A malformed identity is surfaced as an error and changes nothing.
	writeMsg(conn, t, "begin", map[string]any{"email": "not-an-email"})
	if msg := readUntil(conn, t, "error"); msg["message"] == "" {
		t.Fatalf("expected validation error message")
	}

	writeMsg(conn, t, "begin", map[string]any{"email": "a@b.com"})
	snap = readUntil(conn, t, "state")
	if snap["phase"] != string(domain.PhaseInProgress) {
		t.Fatalf("expected in_progress, got %v", snap["phase"])
	}

	writeMsg(conn, t, "answer", map[string]any{"answer": "Answer 00"})
	snap = readUntil(conn, t, "state")
	answers, _ := snap["answers"].(map[string]any)
	if answers["0"] != "Answer 00" {
		t.Fatalf("expected recorded answer, got %v", snap["answers"])
	}

	writeMsg(conn, t, "submit", nil)
	results := readUntil(conn, t, "results")
	if results["score"] != float64(1) || results["percentage"] != "6.67" {
		t.Fatalf("expected score 1 (6.67%%), got %v / %v", results["score"], results["percentage"])
	}
}

func writeMsg(conn *websocket.Conn, t *testing.T, msgType string, payload map[string]any) {
	t.Helper()
	msg := map[string]any{"type": msgType}
	if payload == nil {
		payload = map[string]any{}
	}
	msg["payload"] = payload
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write %s: %v", msgType, err)
	}
}

// readUntil reads messages until one of the wanted type arrives.
func readUntil(conn *websocket.Conn, t *testing.T, want string) map[string]any {
	t.Helper()
	for i := 0; i < 20; i++ {
		var msg struct {
			Type    string         `json:"type"`
			Payload map[string]any `json:"payload"`
		}
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read json: %v", err)
		}
		if msg.Type == want {
			return msg.Payload
		}
	}
	t.Fatalf("no %s message within 20 reads", want)
	return nil
}

type stubSupplier struct{}

func (stubSupplier) Load(context.Context) []domain.QuestionRecord {
	qs := make([]domain.QuestionRecord, domain.QuestionCount)
	for i := range qs {
		label := fmt.Sprintf("%02d", i)
		qs[i] = domain.QuestionRecord{
			Prompt:           "Question " + label,
			CorrectAnswer:    "Answer " + label,
			CandidateAnswers: []string{"Answer " + label, "Wrong " + label + "a", "Wrong " + label + "b"},
			Category:         "General Knowledge",
			Difficulty:       "easy",
		}
	}
	return qs
}
