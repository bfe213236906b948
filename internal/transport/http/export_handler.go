package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"trivia-quiz-service/internal/app"
)

// ExportHandler serves the full event log as a downloadable JSON document.
type ExportHandler struct {
	logs app.LogStore
	log  zerolog.Logger
	now  func() time.Time
}

func NewExportHandler(logs app.LogStore, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{logs: logs, log: log, now: time.Now}
}

func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, filename, err := app.ExportDocument(r.Context(), h.logs, h.now)
	if err != nil {
		h.log.Error().Err(err).Msg("event log export failed")
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(data)
}
