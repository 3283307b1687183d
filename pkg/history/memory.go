package history

import (
	"sync"

	"github.com/google/uuid"
)

// MemoryStore implements Store using an in-memory map (not persistent)
type MemoryStore struct {
	runs map[uuid.UUID]Run
	mu   sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[uuid.UUID]Run)}
}

// Save stores or replaces a run
func (m *MemoryStore) Save(run Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.runs[run.ID] = run
	return nil
}

// Get retrieves a run by id
func (m *MemoryStore) Get(id uuid.UUID) (Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	run, ok := m.runs[id]
	if !ok {
		return Run{}, ErrRunNotFound
	}
	return run, nil
}

// List returns all runs, newest first
func (m *MemoryStore) List() ([]Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	runs := make([]Run, 0, len(m.runs))
	for _, run := range m.runs {
		runs = append(runs, run)
	}
	sortNewestFirst(runs)
	return runs, nil
}

// Close is a no-op for the memory store
func (m *MemoryStore) Close() error {
	return nil
}
