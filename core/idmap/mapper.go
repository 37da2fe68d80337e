// Package idmap assigns dense integer ids to external identifiers.
package idmap

import "sync"

// Mapper is a bijection between external ids of type K and dense ids
// 0, 1, 2, ... handed out in insertion order.
type Mapper[K comparable] struct {
	mu      sync.RWMutex
	byIndex []K
	byKey   map[K]uint32
}

// New returns an empty mapper.
func New[K comparable]() *Mapper[K] {
	return &Mapper[K]{byKey: make(map[K]uint32)}
}

// AddOrFind returns the id of key, assigning the next free one if needed.
func (m *Mapper[K]) AddOrFind(key K) uint32 {
	m.mu.RLock()
	id, ok := m.byKey[key]
	m.mu.RUnlock()
	if ok {
		return id
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.byKey[key]; ok {
		return id
	}
	id = uint32(len(m.byIndex))
	m.byIndex = append(m.byIndex, key)
	m.byKey[key] = id
	return id
}

// Key returns the external id for id.
func (m *Mapper[K]) Key(id uint32) (K, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if int(id) >= len(m.byIndex) {
		var zero K
		return zero, false
	}
	return m.byIndex[id], true
}

// ID returns the dense id of key without assigning one.
func (m *Mapper[K]) ID(key K) (uint32, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byKey[key]
	return id, ok
}

// Len returns the number of known keys.
func (m *Mapper[K]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byIndex)
}
