package mastery

import (
	"context"
	"sync"
)

// Store is the mastery persistence collaborator. The engine reads and
// writes probabilities only through this interface; storage layout is
// the implementation's business.
type Store interface {
	// Get returns the probability for (userID, subject, skill),
	// DefaultProbability on miss.
	Get(ctx context.Context, userID, subject, skill string) (float64, error)

	// Put records a probability for (userID, subject, skill).
	Put(ctx context.Context, userID, subject, skill string, p float64) error

	// Snapshot returns a copy of one user's full mastery state.
	Snapshot(ctx context.Context, userID string) (Snapshot, error)
}

// MemoryStore is an in-memory Store guarded by a mutex. Suitable for
// tests and single-process callers; durable callers hydrate it from the
// event store at startup.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]Snapshot
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]Snapshot)}
}

func (m *MemoryStore) Get(_ context.Context, userID, subject, skill string) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.users[userID].Get(subject, skill), nil
}

func (m *MemoryStore) Put(_ context.Context, userID, subject, skill string, p float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap, ok := m.users[userID]
	if !ok {
		snap = make(Snapshot)
		m.users[userID] = snap
	}
	snap.Set(subject, skill, p)
	return nil
}

func (m *MemoryStore) Snapshot(_ context.Context, userID string) (Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap, ok := m.users[userID]
	if !ok {
		return make(Snapshot), nil
	}
	return snap.Clone(), nil
}
