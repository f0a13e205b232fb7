package credentials

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// MemoryRepository keeps credentials for the lifetime of the process only.
type MemoryRepository struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{values: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	if !ok {
		return nil, nil
	}
	return slices.Clone(v), nil
}

func (r *MemoryRepository) Replace(_ context.Context, values map[string][]byte) error {
	next := make(map[string][]byte, len(values))
	for k, v := range values {
		next[k] = slices.Clone(v)
	}

	r.mu.Lock()
	r.values = next
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	clear(r.values)
	r.mu.Unlock()
	return nil
}

// Keys returns the stored keys in sorted order.
func (r *MemoryRepository) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.values))
}
