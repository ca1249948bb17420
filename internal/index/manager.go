package index

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Manager holds the active index and serializes rebuilds. Readers load the
// active snapshot lock-free; a rebuild constructs a new index off to the side
// and swaps the reference atomically only after the build fully succeeds, so
// in-flight queries always see a consistent snapshot.
type Manager struct {
	active    atomic.Pointer[Index]
	rebuildMu sync.Mutex
}

// NewManager creates a manager with the given initial index. A nil initial
// index is replaced with an empty one.
func NewManager(initial *Index) *Manager {
	if initial == nil {
		initial = &Index{}
	}
	m := &Manager{}
	m.active.Store(initial)
	return m
}

// Active returns the current index snapshot. The returned index remains valid
// and consistent even if a rebuild swaps in a replacement afterward.
func (m *Manager) Active() *Index {
	return m.active.Load()
}

// Rebuild builds a replacement index via build and atomically swaps it in.
// At most one rebuild runs at a time; concurrent callers wait their turn.
// A failed build leaves the previous index active.
func (m *Manager) Rebuild(build func() (*Index, error)) error {
	m.rebuildMu.Lock()
	defer m.rebuildMu.Unlock()

	next, err := build()
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}
	if next == nil {
		return fmt.Errorf("build index: builder returned nil")
	}

	m.active.Store(next)
	return nil
}
