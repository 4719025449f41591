package kvstore

import (
	"context"
	"sync"

	"github.com/murkotick/menswear-storefront/internal/pkg/committer"
)

// MemoryBackend keeps entries in a map. It is the default backend and the one
// tests use; a fresh store built on the same MemoryBackend sees earlier writes
// the way a page reload sees browser storage.
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string][]byte

	// FailWrites makes Apply return an error, simulating a full quota.
	FailWrites error
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{entries: make(map[string][]byte)}
}

func (m *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put writes a raw value without JSON validation. Tests use it to plant
// corrupt documents.
func (m *MemoryBackend) Put(key string, raw []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = append([]byte(nil), raw...)
}

func (m *MemoryBackend) Apply(_ context.Context, plan *committer.Plan) error {
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range plan.Writes() {
		m.entries[w.Key] = append([]byte(nil), w.Value...)
	}
	return nil
}

func (m *MemoryBackend) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *MemoryBackend) Close() error { return nil }
