package store

import (
	"context"
	"sync"
)

// MemoryKV is a process-local KV used when Redis is not configured and as
// the backing store in tests. Single-instance only.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *MemoryKV {
	return &MemoryKV{data: map[string]string{}}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MemoryKV) Set(_ context.Context, key, value string) {
	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()
}
