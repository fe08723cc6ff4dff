package api

import (
	"context"
	"net/http"

	"github.com/okian/matchtag/internal/domain/model"
)

// StopwatchDependencies defines the stopwatch operations used by StopwatchHandler.
type StopwatchDependencies interface {
	StartStopwatch(ctx context.Context, sessionID string) (model.StopwatchStatus, error)
	StopStopwatch(ctx context.Context, sessionID string) (model.StopwatchStatus, error)
	ResetStopwatch(ctx context.Context, sessionID string) (model.StopwatchStatus, error)
	StopwatchStatus(ctx context.Context, sessionID string) (model.StopwatchStatus, error)
	Elapsed(ctx context.Context, sessionID string) (float64, error)
}

// StopwatchHandler handles stopwatch requests.
type StopwatchHandler struct {
	deps StopwatchDependencies
}

// NewStopwatchHandler creates a new stopwatch handler.
func NewStopwatchHandler(deps StopwatchDependencies) *StopwatchHandler {
	return &StopwatchHandler{deps: deps}
}

type elapsedResponse struct {
	ElapsedTime float64 `json:"elapsed_time"`
}

// HandleStart handles POST /api/stopwatch/start.
func (h *StopwatchHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "api.stopwatch_start", h.deps.StartStopwatch)
}

// HandleStop handles POST /api/stopwatch/stop.
func (h *StopwatchHandler) HandleStop(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "api.stopwatch_stop", h.deps.StopStopwatch)
}

// HandleReset handles POST /api/stopwatch/reset.
func (h *StopwatchHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "api.stopwatch_reset", h.deps.ResetStopwatch)
}

// HandleStatus handles GET /api/stopwatch/status.
func (h *StopwatchHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "api.stopwatch_status", h.deps.StopwatchStatus)
}

// HandleElapsed handles GET /api/stopwatch/elapsed.
func (h *StopwatchHandler) HandleElapsed(w http.ResponseWriter, r *http.Request) {
	const op = "api.stopwatch_elapsed"
	elapsed, err := h.deps.Elapsed(r.Context(), SessionFrom(r.Context()))
	if err != nil {
		writeFailure(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, elapsedResponse{ElapsedTime: elapsed})
}

func (h *StopwatchHandler) respond(w http.ResponseWriter, r *http.Request, op string,
	call func(context.Context, string) (model.StopwatchStatus, error),
) {
	st, err := call(r.Context(), SessionFrom(r.Context()))
	if err != nil {
		writeFailure(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
