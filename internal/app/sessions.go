package service

import (
	"context"

	"github.com/okian/matchtag/internal/domain/session"
	"github.com/okian/matchtag/pkg/logger"
)

// EnsureSession returns the session summary, creating the session if needed.
func (s *Service) EnsureSession(ctx context.Context, sessionID string) (session.Info, error) {
	return s.store.GetOrCreate(ctx, sessionID)
}

// Session returns the summary of an existing session.
func (s *Service) Session(ctx context.Context, sessionID string) (session.Info, error) {
	return s.store.Get(ctx, sessionID)
}

// ListSessions returns all session ids in ascending order.
func (s *Service) ListSessions(ctx context.Context) ([]string, error) {
	return s.store.List(ctx)
}

// DeleteSession drops a session and reports whether it existed.
func (s *Service) DeleteSession(ctx context.Context, sessionID string) (bool, error) {
	ok, err := s.store.Delete(ctx, sessionID)
	if err != nil {
		return false, err
	}
	if ok {
		s.logger.Info(ctx, "session deleted", logger.String("session", sessionID))
	}
	return ok, nil
}

// ClearSessions drops every session.
func (s *Service) ClearSessions(ctx context.Context) error {
	if err := s.store.ClearAll(ctx); err != nil {
		return err
	}
	s.logger.Info(ctx, "all sessions cleared")
	return nil
}
