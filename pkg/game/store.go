package game

import "sync"

// ScoreStore persists integers under string keys. Only the high score lives here.
type ScoreStore interface {
	// Get returns the stored value and whether the key exists
	Get(key string) (int, bool, error)
	Set(key string, value int) error
	// Raise stores value unless a larger one is already stored, and returns the stored value
	Raise(key string, value int) (int, error)
}

// MemoryStore keeps scores in process memory
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

func (m *MemoryStore) Get(key string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Raise(key string, value int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.values[key]; ok && cur >= value {
		return cur, nil
	}
	m.values[key] = value
	return value, nil
}
