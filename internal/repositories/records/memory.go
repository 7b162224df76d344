package records

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// MemoryRepository is a map-backed Store. Values are copied on the way in
// and out so callers never share a buffer with the store.
type MemoryRepository struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string][]byte)}
}

func (m *MemoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return slices.Clone(v), nil
}

func (m *MemoryRepository) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key] = slices.Clone(value)
	return nil
}

// Delete removes key; an absent key is not an error.
func (m *MemoryRepository) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

// Atomic stages writes in a copy of the map and swaps it in on success.
func (m *MemoryRepository) Atomic(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	staged := &MemoryRepository{data: maps.Clone(m.data)}
	if err := fn(ctx, staged); err != nil {
		return err
	}
	m.data = staged.data
	return nil
}
