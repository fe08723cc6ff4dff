package service

import "errors"

// Sentinel kinds returned by the service. Validation failures wrap
// model.ErrValidation and unknown sessions wrap repository.ErrSessionNotFound.
var (
	ErrEmptyState       = errors.New("no events found for this session")
	ErrNoZoneData       = errors.New("no zone data found for this session")
	ErrStopwatchStopped = errors.New("stopwatch is not running")
	ErrEventNotFound    = errors.New("event not found")
)
