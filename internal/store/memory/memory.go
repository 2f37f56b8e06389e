package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/MrSnakeDoc/klub/internal/store"
)

// Backend keeps collections in process memory.
// A positive quota caps the total bytes (keys plus values) it will hold.
type Backend struct {
	mu    sync.RWMutex
	data  map[string][]byte
	size  int
	quota int
}

// New creates an empty backend. quota <= 0 means unlimited.
func New(quota int) *Backend {
	return &Backend{
		data:  make(map[string][]byte),
		quota: quota,
	}
}

func (b *Backend) Get(_ context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.data[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return clone(v), nil
}

func (b *Backend) Set(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.put(key, value)
}

func (b *Backend) SetIfAbsent(_ context.Context, key string, value []byte) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.data[key]; ok {
		return false, nil
	}
	if err := b.put(key, value); err != nil {
		return false, err
	}
	return true, nil
}

func (b *Backend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.data[key]; ok {
		b.size -= len(key) + len(old)
		delete(b.data, key)
	}
	return nil
}

func (b *Backend) Ping(context.Context) error { return nil }

// Collections lists the stored keys in lexical order.
func (b *Backend) Collections(context.Context) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.data))
	for k := range b.data {
		names = append(names, k)
	}
	sort.Strings(names)
	return names, nil
}

// Len returns the number of stored keys.
func (b *Backend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.data)
}

// Size returns the bytes currently accounted against the quota.
func (b *Backend) Size() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.size
}

// put must be called with the write lock held.
func (b *Backend) put(key string, value []byte) error {
	next := b.size + len(key) + len(value)
	if old, ok := b.data[key]; ok {
		next -= len(key) + len(old)
	}
	if b.quota > 0 && next > b.quota {
		return store.ErrQuotaExceeded
	}
	b.data[key] = clone(value)
	b.size = next
	return nil
}

func clone(v []byte) []byte {
	out := make([]byte, len(v))
	copy(out, v)
	return out
}
