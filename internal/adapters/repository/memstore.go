package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/okian/matchtag/internal/domain/session"
	"github.com/okian/matchtag/internal/domain/stopwatch"
	"github.com/okian/matchtag/pkg/metrics"
)

// MemoryStore keeps sessions in a map guarded by one mutex. Every operation,
// including work done inside View and Update, holds that mutex, so a read of
// one session blocks a write to another.
type MemoryStore struct {
	mu       sync.Mutex
	sessions   map[string]*session.Session
	clock      stopwatch.Clock
	zoneLabels int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		sessions:   make(map[string]*session.Session),
		clock:      time.Now,
		zoneLabels: DefaultZoneLabels,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func validID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidSession)
	}
	return nil
}

// getOrCreateLocked must be called with mu held.
func (s *MemoryStore) getOrCreateLocked(id string) *session.Session {
	if sess, ok := s.sessions[id]; ok {
		return sess
	}
	sess := session.New(id, s.clock)
	s.sessions[id] = sess
	metrics.RecordSessionCreated()
	metrics.UpdateSessionsActive(len(s.sessions))
	return sess
}

// GetOrCreate implements Store.
func (s *MemoryStore) GetOrCreate(ctx context.Context, id string) (session.Info, error) {
	if err := ctx.Err(); err != nil {
		return session.Info{}, err
	}
	if err := validID(id); err != nil {
		return session.Info{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreateLocked(id).Info(), nil
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context, id string) (session.Info, error) {
	if err := ctx.Err(); err != nil {
		return session.Info{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return session.Info{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return sess.Info(), nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false, nil
	}
	delete(s.sessions, id)
	metrics.RecordSessionDeleted()
	s.publishLocked()
	return true, nil
}

// List implements Store.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	s.mu.Unlock()
	sort.Strings(ids)
	return ids, nil
}

// ClearAll implements Store.
func (s *MemoryStore) ClearAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]*session.Session)
	s.publishLocked()
	return nil
}

// Count implements Store.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Update implements Store. A session created for fn is only kept when fn
// succeeds.
func (s *MemoryStore) Update(ctx context.Context, id string, fn func(*session.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = session.New(id, s.clock)
	}
	if err := fn(sess); err != nil {
		return err
	}
	if !ok {
		s.sessions[id] = sess
		metrics.RecordSessionCreated()
	}
	s.publishLocked()
	return nil
}

// View implements Store.
func (s *MemoryStore) View(ctx context.Context, id string, fn func(*session.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return fn(sess)
}

// publishLocked refreshes store gauges. Must be called with mu held.
func (s *MemoryStore) publishLocked() {
	total := 0
	zones := make(map[int]int)
	for _, sess := range s.sessions {
		total += sess.Ledger.Len()
		for zone, n := range sess.Ledger.HotZones(nil) {
			zones[zone] += n
		}
	}
	metrics.UpdateSessionsActive(len(s.sessions))
	metrics.UpdateLedgerEvents(total)
	metrics.UpdateHotZones(zones, s.zoneLabels)
}
