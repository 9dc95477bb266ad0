package maze

import "sync"

// Shared guards a single Maze with one RW lock.
//
// Two-sided wall writes and the full-grid reset of a flood must never
// interleave with another mutation, so every mutation (flooding included,
// since it rewrites the CostField) goes through Update. View holds the read
// lock and must not mutate.
type Shared struct {
	mu sync.RWMutex
	m  *Maze
}

// NewShared wraps m. A nil m is replaced by New().
func NewShared(m *Maze) *Shared {
	if m == nil {
		m = New()
	}
	return &Shared{m: m}
}

// Update runs fn with exclusive access to the maze.
func (s *Shared) Update(fn func(*Maze) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.m)
}

// View runs fn with shared read access to the maze.
func (s *Shared) View(fn func(*Maze) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.m)
}

// Snapshot returns a clone taken under the read lock.
func (s *Shared) Snapshot() *Maze {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Clone()
}
