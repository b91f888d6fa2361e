package store

import (
	"errors"
	"sync"
	"time"

	"github.com/i474232898/crop-advisor/internal/orchestrator"
)

var (
	// ErrNotFound is returned when no display state exists for a session.
	ErrNotFound = errors.New("no display state for session")
)

// MemoryStore is a concurrency-safe in-memory store of session display state.
type MemoryStore struct {
	mu sync.RWMutex

	// key: session ID
	data map[string]*orchestrator.Display

	// retention configuration
	maxAge time.Duration // idle sessions older than this are swept (0 = never)
	now    func() time.Time
}

// NewMemoryStore creates a new MemoryStore.
// If maxAge is <= 0, sessions are kept until the process exits.
func NewMemoryStore(maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:   make(map[string]*orchestrator.Display),
		maxAge: maxAge,
		now:    time.Now,
	}
}

// Update applies fn to the session's display and keeps the result when fn
// returns true. fn runs under the write lock, so read-check-write sequences in
// fn are atomic.
func (s *MemoryStore) Update(sessionID string, fn func(d *orchestrator.Display) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var d orchestrator.Display
	if cur, ok := s.data[sessionID]; ok {
		d = cloneDisplay(cur)
	} else {
		d = orchestrator.Display{SessionID: sessionID, State: orchestrator.StateIdle}
	}

	if !fn(&d) {
		return
	}
	s.data[sessionID] = &d
}

// Get returns a copy of the session's display state.
func (s *MemoryStore) Get(sessionID string) (orchestrator.Display, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.data[sessionID]
	if !ok {
		return orchestrator.Display{}, ErrNotFound
	}
	return cloneDisplay(d), nil
}

// Len returns the number of sessions held.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Sweep removes sessions idle for longer than maxAge. Sessions with a request
// in flight are kept. It returns the number of sessions removed.
func (s *MemoryStore) Sweep() int {
	if s.maxAge <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, d := range s.data {
		if d.PendingRequestID != "" {
			continue
		}
		if d.UpdatedAt.Before(cutoff) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}

func cloneDisplay(d *orchestrator.Display) orchestrator.Display {
	out := *d
	if d.Quote != nil {
		q := *d.Quote
		out.Quote = &q
	}
	out.Recent = append(out.Recent[:0:0], d.Recent...)
	return out
}
