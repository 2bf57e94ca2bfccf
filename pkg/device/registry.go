package device

import (
	"fmt"
	"sync"

	"github.com/igloo-home/esphome-go/pkg/wire"
)

// EntityInfo is one registered entity.
type EntityInfo struct {
	Index int
	Type  wire.EntityType
	Key   uint32
	Name  string
}

// EntityRegistry maps device entity keys to hub entity indices and back.
// Indices are assigned sequentially from zero and never reused. Every index
// in [0, Len()) resolves to exactly one entry and every registered key
// resolves to its index.
type EntityRegistry struct {
	mu      sync.RWMutex
	byKey   map[uint32]int
	entries []EntityInfo
}

// NewEntityRegistry creates an empty registry.
func NewEntityRegistry() *EntityRegistry {
	return &EntityRegistry{byKey: make(map[uint32]int)}
}

// Register assigns the next index to key. A key already registered is
// rejected with ErrDuplicateKey and consumes no index.
func (r *EntityRegistry) Register(et wire.EntityType, key uint32, name string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx, ok := r.byKey[key]; ok {
		return 0, fmt.Errorf("%w: key %d already registered as index %d", ErrDuplicateKey, key, idx)
	}
	idx := len(r.entries)
	r.entries = append(r.entries, EntityInfo{Index: idx, Type: et, Key: key, Name: name})
	r.byKey[key] = idx
	return idx, nil
}

// IndexOf returns the index registered for key.
func (r *EntityRegistry) IndexOf(key uint32) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byKey[key]
	return idx, ok
}

// Lookup returns the entity at index.
func (r *EntityRegistry) Lookup(index int) (EntityInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index < 0 || index >= len(r.entries) {
		return EntityInfo{}, false
	}
	return r.entries[index], true
}

// Len returns the number of registered entities.
func (r *EntityRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Entities returns a copy of all entries in index order.
func (r *EntityRegistry) Entities() []EntityInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]EntityInfo, len(r.entries))
	copy(out, r.entries)
	return out
}
