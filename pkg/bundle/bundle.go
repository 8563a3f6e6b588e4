package bundle

import (
	"slices"
	"sort"
)

// Bundle is a localized key/value data object. Implementations must be safe
// for concurrent reads; this package never mutates a bundle after
// construction.
type Bundle interface {
	// Lookup returns the value for key and whether the key exists.
	Lookup(key string) (string, bool)

	// Keys returns all keys in the bundle, sorted.
	Keys() []string
}

// Constructor builds a bundle instance. A fresh instance is expected on every
// call; an error is a failure of the bundle's own construction logic and is
// passed through to the caller unchanged.
type Constructor func() (Bundle, error)

// Map is an immutable Bundle backed by decoded key/value pairs.
type Map struct {
	entries map[string]string
	keys    []string
}

// NewMap creates a Map from the given entries. The map is copied, so the
// caller may reuse or mutate its argument afterwards.
func NewMap(entries map[string]string) *Map {
	m := &Map{
		entries: make(map[string]string, len(entries)),
		keys:    make([]string, 0, len(entries)),
	}
	for k, v := range entries {
		m.entries[k] = v
		m.keys = append(m.keys, k)
	}
	sort.Strings(m.keys)
	return m
}

// Lookup returns the value for key and whether the key exists.
func (m *Map) Lookup(key string) (string, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Keys returns all keys in the bundle, sorted.
func (m *Map) Keys() []string {
	return slices.Clone(m.keys)
}

// Len returns the number of entries in the bundle.
func (m *Map) Len() int {
	return len(m.entries)
}
