// Package syncmap provides a generic thread-safe map whose main use is lazy,
// race-free creation of shared instances.
package syncmap

import "sync"

// ConcurrentMap is a thread-safe map with generic key and value types.
type ConcurrentMap[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

// New creates a new empty ConcurrentMap.
func New[K comparable, V any]() *ConcurrentMap[K, V] {
	return &ConcurrentMap[K, V]{items: make(map[K]V)}
}

// Get retrieves a value by key. Returns the value and true if found.
func (m *ConcurrentMap[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.items[key]
	return value, ok
}

// ComputeIfAbsent returns the value stored under key, computing and storing it
// first if absent. compute runs at most once per key, under the write lock.
func (m *ConcurrentMap[K, V]) ComputeIfAbsent(key K, compute func() V) V {
	if value, ok := m.Get(key); ok {
		return value
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if value, ok := m.items[key]; ok {
		return value
	}
	value := compute()
	m.items[key] = value
	return value
}

// Has returns true if the key exists.
func (m *ConcurrentMap[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Len returns the number of entries.
func (m *ConcurrentMap[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
