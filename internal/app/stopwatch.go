package service

import (
	"context"

	"github.com/okian/matchtag/internal/domain/model"
	"github.com/okian/matchtag/internal/domain/session"
	"github.com/okian/matchtag/pkg/logger"
	"github.com/okian/matchtag/pkg/metrics"
)

// Stopwatch actions.
const (
	ActionStart = "start"
	ActionStop  = "stop"
	ActionReset = "reset"
)

// StartStopwatch starts the session stopwatch. Starting a running stopwatch is a no-op.
func (s *Service) StartStopwatch(ctx context.Context, sessionID string) (model.StopwatchStatus, error) {
	return s.stopwatchAction(ctx, sessionID, ActionStart, func(sess *session.Session) { sess.Stopwatch.Start() })
}

// StopStopwatch stops the session stopwatch. Stopping a stopped stopwatch is a no-op.
func (s *Service) StopStopwatch(ctx context.Context, sessionID string) (model.StopwatchStatus, error) {
	return s.stopwatchAction(ctx, sessionID, ActionStop, func(sess *session.Session) { sess.Stopwatch.Stop() })
}

// ResetStopwatch stops the session stopwatch and zeroes it.
func (s *Service) ResetStopwatch(ctx context.Context, sessionID string) (model.StopwatchStatus, error) {
	return s.stopwatchAction(ctx, sessionID, ActionReset, func(sess *session.Session) { sess.Stopwatch.Reset() })
}

func (s *Service) stopwatchAction(ctx context.Context, sessionID, action string, apply func(*session.Session)) (model.StopwatchStatus, error) {
	var st model.StopwatchStatus
	err := s.store.Update(ctx, sessionID, func(sess *session.Session) error {
		apply(sess)
		sess.Touch()
		st = sess.Stopwatch.Status()
		return nil
	})
	if err != nil {
		return model.StopwatchStatus{}, err
	}

	metrics.RecordStopwatchTransition(action)
	s.logger.Info(ctx, "stopwatch "+action,
		logger.String("session", sessionID),
		logger.Bool("running", st.Running),
		logger.Float64("elapsed", st.ElapsedTime),
	)
	return st, nil
}

// StopwatchStatus returns a snapshot of the session stopwatch without
// changing it. Unknown sessions report a stopped stopwatch at zero.
func (s *Service) StopwatchStatus(ctx context.Context, sessionID string) (model.StopwatchStatus, error) {
	var st model.StopwatchStatus
	err := s.view(ctx, sessionID, func(sess *session.Session) error {
		st = sess.Stopwatch.Status()
		return nil
	})
	return st, err
}

// Elapsed returns the elapsed seconds of the session stopwatch.
func (s *Service) Elapsed(ctx context.Context, sessionID string) (float64, error) {
	st, err := s.StopwatchStatus(ctx, sessionID)
	return st.ElapsedTime, err
}
