package api

import (
	"errors"
	"net/http"

	"github.com/okian/matchtag/internal/adapters/repository"
	service "github.com/okian/matchtag/internal/app"
	"github.com/okian/matchtag/internal/domain/model"
	"github.com/okian/matchtag/internal/domain/pitch"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("not found")
	ErrInternal   = errors.New("internal error")
	ErrTooLarge   = errors.New("request body too large")
)

// Error ties a failure to the handler operation that produced it.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return e.Op + ": " + e.Kind.Error()
	case e.Kind == nil:
		return e.Op + ": " + e.Err.Error()
	default:
		return e.Op + ": " + e.Kind.Error() + ": " + e.Err.Error()
	}
}

// Unwrap exposes both the kind and the cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

// NewKind returns an error of kind for op.
func NewKind(op string, kind error) error {
	return &Error{Op: op, Kind: kind}
}

// WrapKind wraps err with op and kind.
func WrapKind(op string, kind, err error) error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Wrap attaches op to err, keeping the cause's own kind.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// classify maps an error to an HTTP status and response code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, ErrTooLarge):
		return http.StatusRequestEntityTooLarge, "payload_too_large"
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest, "validation_error"
	case errors.Is(err, pitch.ErrInvalidGrid):
		return http.StatusBadRequest, "invalid_grid"
	case errors.Is(err, service.ErrEmptyState):
		return http.StatusBadRequest, "empty_state"
	case errors.Is(err, service.ErrNoZoneData):
		return http.StatusBadRequest, "no_zone_data"
	case errors.Is(err, repository.ErrInvalidSession), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, repository.ErrSessionNotFound),
		errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, service.ErrStopwatchStopped):
		return http.StatusConflict, "stopwatch_stopped"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
