package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/matchtag/internal/domain/session"
)

// SessionDependencies defines the session operations used by SessionsHandler.
type SessionDependencies interface {
	EnsureSession(ctx context.Context, sessionID string) (session.Info, error)
	Session(ctx context.Context, sessionID string) (session.Info, error)
	ListSessions(ctx context.Context) ([]string, error)
	DeleteSession(ctx context.Context, sessionID string) (bool, error)
	ClearSessions(ctx context.Context) error
	EventTypes() []string
}

// SessionsHandler handles session management requests.
type SessionsHandler struct {
	deps SessionDependencies
}

// NewSessionsHandler creates a new sessions handler.
func NewSessionsHandler(deps SessionDependencies) *SessionsHandler {
	return &SessionsHandler{deps: deps}
}

type sessionsResponse struct {
	Sessions []string `json:"sessions"`
	Count    int      `json:"count"`
}

type eventTypesResponse struct {
	EventTypes []string `json:"event_types"`
}

// HandleList handles GET /api/sessions.
func (h *SessionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_sessions"
	ids, err := h.deps.ListSessions(r.Context())
	if err != nil {
		writeFailure(r.Context(), w, op, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, sessionsResponse{Sessions: ids, Count: len(ids)})
}

// HandleGet handles GET /api/sessions/{id}.
func (h *SessionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_session"
	info, err := h.deps.Session(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeFailure(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// HandleEnsure handles PUT /api/sessions/{id}.
func (h *SessionsHandler) HandleEnsure(w http.ResponseWriter, r *http.Request) {
	const op = "api.ensure_session"
	info, err := h.deps.EnsureSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeFailure(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// HandleDelete handles DELETE /api/sessions/{id}.
func (h *SessionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	const op = "api.delete_session"
	ok, err := h.deps.DeleteSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeFailure(r.Context(), w, op, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", NewKind(op, ErrNotFound))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleClear handles DELETE /api/sessions.
func (h *SessionsHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	const op = "api.clear_sessions"
	if err := h.deps.ClearSessions(r.Context()); err != nil {
		writeFailure(r.Context(), w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleEventTypes handles GET /api/event-types.
func (h *SessionsHandler) HandleEventTypes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, eventTypesResponse{EventTypes: h.deps.EventTypes()})
}
