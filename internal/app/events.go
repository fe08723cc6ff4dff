package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/okian/matchtag/internal/adapters/repository"
	"github.com/okian/matchtag/internal/domain/model"
	"github.com/okian/matchtag/internal/domain/session"
	"github.com/okian/matchtag/internal/domain/stats"
	"github.com/okian/matchtag/pkg/logger"
	"github.com/okian/matchtag/pkg/metrics"
)

// CreateEvent validates in and appends it to the session ledger, creating the
// session on first use.
func (s *Service) CreateEvent(ctx context.Context, sessionID string, in model.EventInput) (model.Event, error) {
	if err := in.Validate(); err != nil {
		metrics.RecordEventRejected("validation")
		s.logger.Debug(ctx, "event rejected", logger.String("session", sessionID), logger.Error(err))
		return model.Event{}, err
	}

	var ev model.Event
	err := s.store.Update(ctx, sessionID, func(sess *session.Session) error {
		if s.requireRunning && !sess.Stopwatch.Running() {
			return ErrStopwatchStopped
		}
		ev = sess.Ledger.Append(in, sess.Now())
		sess.Touch()
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrStopwatchStopped) {
			metrics.RecordEventRejected("stopwatch_stopped")
		}
		return model.Event{}, err
	}

	metrics.RecordEventTagged(string(ev.Team))
	s.logger.Info(ctx, "event tagged",
		logger.String("session", sessionID),
		logger.Int("id", ev.ID),
		logger.String("team", string(ev.Team)),
		logger.String("event_type", ev.EventType),
	)
	return ev, nil
}

// ListEvents returns the session ledger in insertion order. Unknown sessions
// have an empty ledger.
func (s *Service) ListEvents(ctx context.Context, sessionID string) ([]model.Event, error) {
	events := []model.Event{}
	err := s.view(ctx, sessionID, func(sess *session.Session) error {
		events = sess.Ledger.List()
		return nil
	})
	return events, err
}

// DeleteEvent removes the event at id. Later events are renumbered.
func (s *Service) DeleteEvent(ctx context.Context, sessionID string, id int) error {
	err := s.store.Update(ctx, sessionID, func(sess *session.Session) error {
		if !sess.Ledger.Delete(id) {
			return fmt.Errorf("%w: %d", ErrEventNotFound, id)
		}
		sess.Touch()
		return nil
	})
	if err != nil {
		return err
	}

	metrics.RecordEventDeleted()
	s.logger.Info(ctx, "event deleted", logger.String("session", sessionID), logger.Int("id", id))
	return nil
}

// ClearEvents empties the session ledger and returns how many events it held.
func (s *Service) ClearEvents(ctx context.Context, sessionID string) (int, error) {
	removed := 0
	err := s.store.Update(ctx, sessionID, func(sess *session.Session) error {
		removed = sess.Ledger.Len()
		sess.Ledger.Clear()
		sess.Touch()
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info(ctx, "ledger cleared", logger.String("session", sessionID), logger.Int("removed", removed))
	return removed, nil
}

// TeamStats returns per-team statistics, one record per team that tagged events.
func (s *Service) TeamStats(ctx context.Context, sessionID string) ([]stats.TeamStats, error) {
	events, err := s.ListEvents(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := stats.Compute(events)
	if out == nil {
		out = []stats.TeamStats{}
	}
	return out, nil
}

// HotZones returns zone counts for the session, optionally restricted to one
// event type.
func (s *Service) HotZones(ctx context.Context, sessionID string, eventType *string) (map[int]int, error) {
	zones := map[int]int{}
	err := s.view(ctx, sessionID, func(sess *session.Session) error {
		zones = sess.Ledger.HotZones(eventType)
		return nil
	})
	return zones, err
}

// view runs fn on an existing session and treats an unknown session as empty.
func (s *Service) view(ctx context.Context, sessionID string, fn func(*session.Session) error) error {
	err := s.store.View(ctx, sessionID, fn)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil
	}
	return err
}
