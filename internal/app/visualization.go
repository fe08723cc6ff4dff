package service

import (
	"context"

	"github.com/okian/matchtag/internal/domain/model"
	"github.com/okian/matchtag/internal/domain/pitch"
	"github.com/okian/matchtag/internal/domain/stats"
)

// DivergentChart is the data behind a team-vs-team bar chart.
type DivergentChart struct {
	Teams     []model.Team        `json:"teams"`
	Variables []string            `json:"variables"`
	Rows      []stats.MetricShare `json:"rows"`
}

// Heatmap is zone data laid over the pitch grid.
type Heatmap struct {
	Grid    pitch.Grid          `json:"grid"`
	Centers map[int]pitch.Point `json:"centers"`
	HotZone map[int]int         `json:"hot_zone"`
	Z       [][]int             `json:"z"`
}

// PitchView describes the pitch grid together with the session hot zones.
type PitchView struct {
	Grid    pitch.Grid          `json:"grid"`
	Zones   int                 `json:"zones"`
	Centers map[int]pitch.Point `json:"centers"`
	HotZone map[int]int         `json:"hot_zone"`
}

// DivergentChart melts per-team statistics into chart rows.
func (s *Service) DivergentChart(ctx context.Context, sessionID string) (DivergentChart, error) {
	teams, err := s.TeamStats(ctx, sessionID)
	if err != nil {
		return DivergentChart{}, err
	}
	if len(teams) == 0 {
		return DivergentChart{}, ErrEmptyState
	}

	chart := DivergentChart{
		Teams:     make([]model.Team, 0, len(teams)),
		Variables: append([]string(nil), stats.Metrics...),
		Rows:      stats.Divergent(teams),
	}
	for _, t := range teams {
		chart.Teams = append(chart.Teams, t.Team)
	}
	return chart, nil
}

// Heatmap counts zone-tagged events, optionally of one event type, on grid.
func (s *Service) Heatmap(ctx context.Context, sessionID string, grid pitch.Grid, eventType *string) (Heatmap, error) {
	if err := grid.Validate(); err != nil {
		return Heatmap{}, err
	}
	hot, err := s.HotZones(ctx, sessionID, eventType)
	if err != nil {
		return Heatmap{}, err
	}
	if len(hot) == 0 {
		return Heatmap{}, ErrNoZoneData
	}
	return Heatmap{
		Grid:    grid,
		Centers: grid.Centers(),
		HotZone: hot,
		Z:       grid.Heatmap(hot),
	}, nil
}

// Pitch returns grid geometry and the session's running zone counts.
func (s *Service) Pitch(ctx context.Context, sessionID string, grid pitch.Grid) (PitchView, error) {
	if err := grid.Validate(); err != nil {
		return PitchView{}, err
	}
	hot, err := s.HotZones(ctx, sessionID, nil)
	if err != nil {
		return PitchView{}, err
	}
	return PitchView{
		Grid:    grid,
		Zones:   grid.Zones(),
		Centers: grid.Centers(),
		HotZone: hot,
	}, nil
}
