package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	service "github.com/okian/matchtag/internal/app"
	"github.com/okian/matchtag/internal/domain/pitch"
)

// VisualizationDependencies defines the chart operations used by VisualizationHandler.
type VisualizationDependencies interface {
	DefaultGrid() pitch.Grid
	DivergentChart(ctx context.Context, sessionID string) (service.DivergentChart, error)
	Heatmap(ctx context.Context, sessionID string, grid pitch.Grid, eventType *string) (service.Heatmap, error)
	Pitch(ctx context.Context, sessionID string, grid pitch.Grid) (service.PitchView, error)
}

// VisualizationHandler serves chart data.
type VisualizationHandler struct {
	deps VisualizationDependencies
}

// NewVisualizationHandler creates a new visualization handler.
func NewVisualizationHandler(deps VisualizationDependencies) *VisualizationHandler {
	return &VisualizationHandler{deps: deps}
}

// HandleDivergentChart handles POST /api/visualization/divergent-chart.
func (h *VisualizationHandler) HandleDivergentChart(w http.ResponseWriter, r *http.Request) {
	const op = "api.divergent_chart"
	chart, err := h.deps.DivergentChart(r.Context(), SessionFrom(r.Context()))
	if err != nil {
		writeFailure(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, chart)
}

// HandleHeatmap handles POST /api/visualization/heatmap.
func (h *VisualizationHandler) HandleHeatmap(w http.ResponseWriter, r *http.Request) {
	const op = "api.heatmap"
	grid, err := h.gridParams(r)
	if err != nil {
		writeFailure(r.Context(), w, op, WrapKind(op, ErrBadRequest, err))
		return
	}
	hm, err := h.deps.Heatmap(r.Context(), SessionFrom(r.Context()), grid, eventTypeParam(r))
	if err != nil {
		writeFailure(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, hm)
}

// HandlePitch handles GET /api/pitch.
func (h *VisualizationHandler) HandlePitch(w http.ResponseWriter, r *http.Request) {
	const op = "api.pitch"
	grid, err := h.gridParams(r)
	if err != nil {
		writeFailure(r.Context(), w, op, WrapKind(op, ErrBadRequest, err))
		return
	}
	view, err := h.deps.Pitch(r.Context(), SessionFrom(r.Context()), grid)
	if err != nil {
		writeFailure(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// gridParams overlays the rows, columns, field_length and field_width query
// values on the default grid.
func (h *VisualizationHandler) gridParams(r *http.Request) (pitch.Grid, error) {
	g := h.deps.DefaultGrid()
	q := r.URL.Query()

	ints := []struct {
		key string
		dst *int
	}{
		{"rows", &g.Rows},
		{"columns", &g.Columns},
	}
	for _, p := range ints {
		if v := q.Get(p.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return g, fmt.Errorf("%s: %q is not an integer", p.key, v)
			}
			*p.dst = n
		}
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"field_length", &g.Length},
		{"field_width", &g.Width},
	}
	for _, p := range floats {
		if v := q.Get(p.key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return g, fmt.Errorf("%s: %q is not a number", p.key, v)
			}
			*p.dst = f
		}
	}
	return g, nil
}
