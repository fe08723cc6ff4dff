package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/okian/matchtag/internal/domain/model"
	"github.com/okian/matchtag/internal/domain/stats"
)

// EventDependencies defines the ledger operations used by EventsHandler.
type EventDependencies interface {
	CreateEvent(ctx context.Context, sessionID string, in model.EventInput) (model.Event, error)
	ListEvents(ctx context.Context, sessionID string) ([]model.Event, error)
	DeleteEvent(ctx context.Context, sessionID string, id int) error
	ClearEvents(ctx context.Context, sessionID string) (int, error)
	TeamStats(ctx context.Context, sessionID string) ([]stats.TeamStats, error)
	HotZones(ctx context.Context, sessionID string, eventType *string) (map[int]int, error)
}

// EventsHandler handles event requests.
type EventsHandler struct {
	deps EventDependencies
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(deps EventDependencies) *EventsHandler {
	return &EventsHandler{deps: deps}
}

// HandleCreateEvent handles POST /api/events.
func (h *EventsHandler) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	const op = "api.create_event"
	var in model.EventInput
	if err := decodeJSON(r, &in); err != nil {
		writeFailure(r.Context(), w, op, WrapKind(op, ErrBadRequest, err))
		return
	}
	ev, err := h.deps.CreateEvent(r.Context(), SessionFrom(r.Context()), in)
	if err != nil {
		writeFailure(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, ev)
}

// HandleListEvents handles GET /api/events.
func (h *EventsHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_events"
	events, err := h.deps.ListEvents(r.Context(), SessionFrom(r.Context()))
	if err != nil {
		writeFailure(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// HandleDeleteEvent handles DELETE /api/events/{id}.
func (h *EventsHandler) HandleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	const op = "api.delete_event"
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeFailure(r.Context(), w, op, WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.deps.DeleteEvent(r.Context(), SessionFrom(r.Context()), id); err != nil {
		writeFailure(r.Context(), w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type clearResponse struct {
	Removed int `json:"removed"`
}

// HandleClearEvents handles DELETE /api/events.
func (h *EventsHandler) HandleClearEvents(w http.ResponseWriter, r *http.Request) {
	const op = "api.clear_events"
	removed, err := h.deps.ClearEvents(r.Context(), SessionFrom(r.Context()))
	if err != nil {
		writeFailure(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, clearResponse{Removed: removed})
}

// HandleStats handles GET /api/events/stats.
func (h *EventsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	const op = "api.event_stats"
	out, err := h.deps.TeamStats(r.Context(), SessionFrom(r.Context()))
	if err != nil {
		writeFailure(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleHotZones handles GET /api/events/hot-zones?event_type=.
func (h *EventsHandler) HandleHotZones(w http.ResponseWriter, r *http.Request) {
	const op = "api.hot_zones"
	zones, err := h.deps.HotZones(r.Context(), SessionFrom(r.Context()), eventTypeParam(r))
	if err != nil {
		writeFailure(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, zones)
}

// eventTypeParam returns the event_type query value, or nil when absent.
func eventTypeParam(r *http.Request) *string {
	v := strings.TrimSpace(r.URL.Query().Get("event_type"))
	if v == "" {
		return nil
	}
	return &v
}
