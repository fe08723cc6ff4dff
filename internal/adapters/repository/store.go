// Package repository defines the session store interface and its in-memory
// implementation.
package repository

import (
	"context"

	"github.com/okian/matchtag/internal/domain/session"
)

// Store holds tagging sessions keyed by an opaque id.
//
// Sessions never leave the store: callers read and mutate them inside View
// and Update, which run while the store lock is held. Every other method
// returns copies.
type Store interface {
	// GetOrCreate returns the session summary, creating the session on first use.
	GetOrCreate(ctx context.Context, id string) (session.Info, error)
	// Get returns the session summary or ErrSessionNotFound.
	Get(ctx context.Context, id string) (session.Info, error)
	// Delete removes a session and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
	// List returns all session ids in ascending order.
	List(ctx context.Context) ([]string, error)
	// ClearAll removes every session.
	ClearAll(ctx context.Context) error
	// Count returns the number of sessions.
	Count(ctx context.Context) int

	// Update runs fn on the session. A missing session is created for fn and
	// kept only when fn returns nil.
	Update(ctx context.Context, id string, fn func(*session.Session) error) error
	// View runs fn on an existing session or returns ErrSessionNotFound.
	View(ctx context.Context, id string, fn func(*session.Session) error) error
}
