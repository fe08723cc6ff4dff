// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/matchtag/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	EventDependencies
	StopwatchDependencies
	ExportDependencies
	VisualizationDependencies
	SessionDependencies
	StatsProvider
}

// Server wires HTTP routes for the tagging API.
type Server struct {
	healthHandler        *HealthHandler
	statsHandler         *StatsHandler
	eventsHandler        *EventsHandler
	stopwatchHandler     *StopwatchHandler
	exportHandler        *ExportHandler
	visualizationHandler *VisualizationHandler
	sessionsHandler      *SessionsHandler

	defaultSession string
	maxBodyBytes   int64
	corsOrigins    []string
	exportFileName string
	logger         logger.Logger
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{
		defaultSession: "default",
		maxBodyBytes:   1 << 20,
		corsOrigins:    []string{"*"},
		exportFileName: "events",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Named("http")
	}

	s.healthHandler = NewHealthHandler()
	s.statsHandler = NewStatsHandler(deps)
	s.eventsHandler = NewEventsHandler(deps)
	s.stopwatchHandler = NewStopwatchHandler(deps)
	s.exportHandler = NewExportHandler(deps, s.exportFileName)
	s.visualizationHandler = NewVisualizationHandler(deps)
	s.sessionsHandler = NewSessionsHandler(deps)
	return s
}

// Routes builds the router. Service endpoints sit at the root, the tagging
// API under /api.
func (s *Server) Routes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Recovery(s.logger))
	r.Use(Logger(s.logger))
	r.Use(CORS(s.corsOrigins))

	r.Get("/health", MetricsMiddleware(s.healthHandler.HandleHealth, "health"))
	r.Get("/metrics", s.healthHandler.HandleMetrics)
	r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	r.Route("/api", func(r chi.Router) {
		r.Use(SessionID(s.defaultSession))
		r.Use(BodyLimit(s.maxBodyBytes))

		r.Route("/events", func(r chi.Router) {
			r.Post("/", MetricsMiddleware(s.eventsHandler.HandleCreateEvent, "events.create"))
			r.Get("/", MetricsMiddleware(s.eventsHandler.HandleListEvents, "events.list"))
			r.Delete("/", MetricsMiddleware(s.eventsHandler.HandleClearEvents, "events.clear"))
			r.Get("/stats", MetricsMiddleware(s.eventsHandler.HandleStats, "events.stats"))
			r.Get("/hot-zones", MetricsMiddleware(s.eventsHandler.HandleHotZones, "events.hot_zones"))
			r.Delete("/{id}", MetricsMiddleware(s.eventsHandler.HandleDeleteEvent, "events.delete"))
		})

		r.Route("/stopwatch", func(r chi.Router) {
			r.Post("/start", MetricsMiddleware(s.stopwatchHandler.HandleStart, "stopwatch.start"))
			r.Post("/stop", MetricsMiddleware(s.stopwatchHandler.HandleStop, "stopwatch.stop"))
			r.Post("/reset", MetricsMiddleware(s.stopwatchHandler.HandleReset, "stopwatch.reset"))
			r.Get("/status", MetricsMiddleware(s.stopwatchHandler.HandleStatus, "stopwatch.status"))
			r.Get("/elapsed", MetricsMiddleware(s.stopwatchHandler.HandleElapsed, "stopwatch.elapsed"))
		})

		r.Route("/export", func(r chi.Router) {
			r.Post("/csv", MetricsMiddleware(s.exportHandler.HandleCSV, "export.csv"))
			r.Post("/xml", MetricsMiddleware(s.exportHandler.HandleXML, "export.xml"))
			r.Post("/zip", MetricsMiddleware(s.exportHandler.HandleZIP, "export.zip"))
		})

		r.Route("/visualization", func(r chi.Router) {
			r.Post("/divergent-chart", MetricsMiddleware(s.visualizationHandler.HandleDivergentChart, "visualization.divergent"))
			r.Post("/heatmap", MetricsMiddleware(s.visualizationHandler.HandleHeatmap, "visualization.heatmap"))
		})
		r.Get("/pitch", MetricsMiddleware(s.visualizationHandler.HandlePitch, "pitch"))
		r.Get("/event-types", MetricsMiddleware(s.sessionsHandler.HandleEventTypes, "event_types"))

		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", MetricsMiddleware(s.sessionsHandler.HandleList, "sessions.list"))
			r.Delete("/", MetricsMiddleware(s.sessionsHandler.HandleClear, "sessions.clear"))
			r.Get("/{id}", MetricsMiddleware(s.sessionsHandler.HandleGet, "sessions.get"))
			r.Put("/{id}", MetricsMiddleware(s.sessionsHandler.HandleEnsure, "sessions.ensure"))
			r.Delete("/{id}", MetricsMiddleware(s.sessionsHandler.HandleDelete, "sessions.delete"))
		})
	})

	return r
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeFailure classifies err and writes the matching error response.
func writeFailure(ctx context.Context, w http.ResponseWriter, op string, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		logger.Named("http").Error(ctx, "request failed", logger.String("op", op), logger.Error(err))
		writeError(w, status, code, NewKind(op, ErrInternal))
		return
	}
	writeError(w, status, code, Wrap(op, err))
}

// decodeJSON decodes exactly one JSON value from the request body.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, tooLarge.Limit)
		}
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}
