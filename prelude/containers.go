package prelude

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// DefaultMap is a map that creates missing values on first access
type DefaultMap[K comparable, V any] struct {
	m       map[K]V
	factory func() V
}

// NewDefaultMap creates a DefaultMap filling missing keys with factory().
// A nil factory fills them with the zero value.
func NewDefaultMap[K comparable, V any](factory func() V) *DefaultMap[K, V] {
	if factory == nil {
		factory = func() V {
			var zero V
			return zero
		}
	}
	return &DefaultMap[K, V]{m: make(map[K]V), factory: factory}
}

// Get returns the value for key, storing a fresh default if it is missing
func (d *DefaultMap[K, V]) Get(key K) V {
	v, ok := d.m[key]
	if !ok {
		v = d.factory()
		d.m[key] = v
	}
	return v
}

// Set stores v under key
func (d *DefaultMap[K, V]) Set(key K, v V) {
	d.m[key] = v
}

// Update replaces the value for key with fn applied to the current (or default) value
func (d *DefaultMap[K, V]) Update(key K, fn func(V) V) V {
	v := fn(d.Get(key))
	d.m[key] = v
	return v
}

// Lookup returns the value for key without creating it
func (d *DefaultMap[K, V]) Lookup(key K) (V, bool) {
	v, ok := d.m[key]
	return v, ok
}

// Delete removes key
func (d *DefaultMap[K, V]) Delete(key K) {
	delete(d.m, key)
}

// Len returns the number of keys
func (d *DefaultMap[K, V]) Len() int {
	return len(d.m)
}

// Map returns the underlying map
func (d *DefaultMap[K, V]) Map() map[K]V {
	return d.m
}

// Counter counts occurrences of comparable values
type Counter[K comparable] struct {
	counts map[K]int
}

// NewCounter creates a Counter, counting each of items once
func NewCounter[K comparable](items ...K) *Counter[K] {
	c := &Counter[K]{counts: make(map[K]int)}
	for _, it := range items {
		c.counts[it]++
	}
	return c
}

// Add increases the count of key by n
func (c *Counter[K]) Add(key K, n int) {
	c.counts[key] += n
}

// Inc increases the count of key by one
func (c *Counter[K]) Inc(key K) {
	c.counts[key]++
}

// Count returns the count of key
func (c *Counter[K]) Count(key K) int {
	return c.counts[key]
}

// Total returns the sum of all counts
func (c *Counter[K]) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Len returns the number of distinct keys
func (c *Counter[K]) Len() int {
	return len(c.counts)
}

// Map returns a copy of the counts
func (c *Counter[K]) Map() map[K]int {
	return maps.Clone(c.counts)
}

// CountEntry is a key with its count
type CountEntry[K comparable] struct {
	Key   K
	Count int
}

// MostCommon returns the n most frequent keys, highest count first.
// n <= 0 returns all keys. Ties keep no particular order.
func (c *Counter[K]) MostCommon(n int) []CountEntry[K] {
	out := make([]CountEntry[K], 0, len(c.counts))
	for k, v := range c.counts {
		out = append(out, CountEntry[K]{Key: k, Count: v})
	}
	slices.SortStableFunc(out, func(a, b CountEntry[K]) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// OrderedMap is a map that remembers insertion order
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrderedMap creates an empty OrderedMap
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{values: make(map[K]V)}
}

// Set stores v under key. Updating an existing key keeps its position.
func (m *OrderedMap[K, V]) Set(key K, v V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value for key
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Delete removes key
func (m *OrderedMap[K, V]) Delete(key K) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k K) bool { return k == key })
}

// Len returns the number of keys
func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order
func (m *OrderedMap[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// All iterates over key-value pairs in insertion order
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}
