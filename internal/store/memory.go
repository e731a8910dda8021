package store

import (
	"context"
	"sync"
)

// MemoryStore es el backend por defecto cuando no hay Redis configurado,
// y el fake que usan los tests.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		slots: make(map[string][]byte),
	}
}

func (m *MemoryStore) Read(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, found := m.slots[key]
	if !found {
		return nil, nil
	}
	return data, nil
}

func (m *MemoryStore) Write(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Copia defensiva: el caller puede reutilizar el buffer
	buf := make([]byte, len(data))
	copy(buf, data)
	m.slots[key] = buf
	return nil
}
