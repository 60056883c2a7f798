package store

import (
	"sort"
	"sync"
	"time"

	"github.com/Vladimirbabic/vibestatus/internal/types"
)

// Store owns the current session map. The map is replaced wholesale each
// engine cycle, never mutated in place, so readers always see one
// consistent generation. The store does no I/O.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]types.Session
}

// New creates an empty Store.
func New() *Store {
	return &Store{sessions: make(map[string]types.Session)}
}

// Replace swaps in a new session generation.
func (s *Store) Replace(sessions map[string]types.Session) {
	if sessions == nil {
		sessions = make(map[string]types.Session)
	}
	s.mu.Lock()
	s.sessions = sessions
	s.mu.Unlock()
}

// Sessions returns the current sessions sorted ascending by project,
// ties broken by id. Both comparisons are case-sensitive so the order is
// deterministic across cycles.
func (s *Store) Sessions() []types.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Project != out[j].Project {
			return out[i].Project < out[j].Project
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Statuses returns the id→state view the transition detector consumes.
func (s *Store) Statuses() map[string]types.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]types.SessionState, len(s.sessions))
	for id, sess := range s.sessions {
		out[id] = sess.Status
	}
	return out
}

// Count returns the number of tracked sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Prune drops sessions whose LastSeen is at least timeout old. The
// scanner already evicts stale files on disk; this covers the window
// between scans when a writer disappears without a final update.
func (s *Store) Prune(now time.Time, timeout time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make(map[string]types.Session, len(s.sessions))
	for id, sess := range s.sessions {
		if now.Sub(sess.LastSeen) < timeout {
			kept[id] = sess
		}
	}
	s.sessions = kept
}
