package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/domain"
)

// WSHandler drives one quiz session per websocket connection. The client
// sends actions; the server streams state snapshots, including the
// once-per-second countdown updates, and pushes the results exactly once
// when the run is submitted.
type WSHandler struct {
	service  *app.SessionService
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.SessionService, log zerolog.Logger) *WSHandler {
	return &WSHandler{
		service: service,
		log:     log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type beginPayload struct {
	Email string `json:"email"`
}

type answerPayload struct {
	Answer string `json:"answer"`
}

type gotoPayload struct {
	Index int `json:"index"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request and wires the connection into the session
// use cases. A sessionId query parameter resumes an existing session;
// otherwise a fresh one is minted.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("ws upgrade failed")
		return
	}
	defer conn.Close()

	h.service.Attach(sessionID)
	updates, cancel, err := h.service.Subscribe(sessionID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer cancel()
	defer h.service.Detach(sessionID)

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				h.log.Debug().Err(err).Msg("ws write error")
				return
			}
		}
	}()

	go func() {
		defer close(updatesDone)
		lastPhase := domain.PhaseStart
		for {
			select {
			case snap, ok := <-updates:
				if !ok {
					return
				}
				out := []outboundMessage[any]{{Type: "state", Payload: snap}}
				if snap.Phase == domain.PhaseResults && lastPhase != domain.PhaseResults {
					if results, err := h.service.Results(sessionID); err == nil {
						out = append(out, outboundMessage[any]{Type: "results", Payload: results})
					}
				}
				lastPhase = snap.Phase
				for _, msg := range out {
					select {
					case send <- msg:
					case <-closeSignals:
						return
					}
				}
			case <-closeSignals:
				return
			}
		}
	}()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		if err := h.dispatch(r, sessionID, inbound); err != nil {
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}

var errBadPayload = errors.New("invalid message payload")

func (h *WSHandler) dispatch(r *http.Request, sessionID string, inbound inboundMessage) error {
	switch inbound.Type {
	case "begin":
		var payload beginPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return errBadPayload
		}
		_, err := h.service.Begin(r.Context(), sessionID, payload.Email)
		return err
	case "answer":
		var payload answerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return errBadPayload
		}
		return h.service.SelectAnswer(sessionID, payload.Answer)
	case "clear":
		return h.service.ClearAnswer(sessionID)
	case "goto":
		var payload gotoPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return errBadPayload
		}
		return h.service.GoTo(sessionID, payload.Index)
	case "next":
		return h.service.Next(sessionID)
	case "previous":
		return h.service.Previous(sessionID)
	case "submit":
		return h.service.Submit(r.Context(), sessionID)
	case "reset":
		return h.service.Reset(sessionID)
	default:
		return errors.New("unsupported message type")
	}
}
