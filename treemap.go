// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package treemap implements an in-memory ordered map backed by an
// unbalanced binary search tree.
//
// The ordering is supplied by the caller as a comparison function. No
// rebalancing is performed, so inserting keys in sorted order produces a
// tree whose depth equals its size.
//
// A Map is not safe for concurrent use. Iterators and the sequences returned
// by Keys, Values and Entries panic if the map is structurally modified
// (a new key inserted, a key removed or the map cleared) while they are in
// use. Overwriting the value of an existing key is permitted.
package treemap

import (
	"cmp"
	"iter"

	"github.com/ajwerner/treemap/internal/abstract"
)

// Map is an ordered map from K to V.
type Map[K, V any] struct {
	t abstract.Map[K, V]
}

// New constructs a Map ordered by cmp, which must define a strict weak
// ordering over K. It panics if cmp is nil.
func New[K, V any](cmp func(K, K) int) *Map[K, V] {
	return &Map[K, V]{
		t: abstract.MakeMap[K, V](cmp),
	}
}

// NewOrdered constructs a Map ordered by the natural ordering of K.
func NewOrdered[K cmp.Ordered, V any]() *Map[K, V] {
	return New[K, V](cmp.Compare[K])
}

// Place associates value with key. It reports whether an existing entry's
// value was replaced rather than a new entry inserted.
func (m *Map[K, V]) Place(key K, value V) (replaced bool) {
	return m.t.Upsert(key, value)
}

// Set associates value with key, overwriting any existing value.
func (m *Map[K, V]) Set(key K, value V) {
	m.t.Upsert(key, value)
}

// Remove deletes the entry for key and reports whether it was present.
func (m *Map[K, V]) Remove(key K) (removed bool) {
	_, _, removed = m.t.Delete(key)
	return removed
}

// Get returns the value for key and whether it was present. It never
// modifies the map.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.t.Get(key)
}

// GetOrDefault returns the value for key, or def if key is not present.
func (m *Map[K, V]) GetOrDefault(key K, def V) V {
	if v, ok := m.t.Get(key); ok {
		return v
	}
	return def
}

// GetOrInsert returns the value for key. If key is not present, the zero
// value of V is inserted for it and returned.
func (m *Map[K, V]) GetOrInsert(key K) V {
	if v, ok := m.t.Get(key); ok {
		return v
	}
	var v V
	m.t.Upsert(key, v)
	return v
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.t.Contains(key)
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.t.Reset()
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.t.Len()
}

// Height returns the number of nodes on the longest path from the root.
func (m *Map[K, V]) Height() int {
	return m.t.Height()
}

// Min returns the entry with the smallest key.
func (m *Map[K, V]) Min() (K, V, bool) {
	return m.t.Min()
}

// Max returns the entry with the largest key.
func (m *Map[K, V]) Max() (K, V, bool) {
	return m.t.Max()
}

// Verify checks the structural invariants of the map.
func (m *Map[K, V]) Verify() error {
	return m.t.Verify()
}

func (m *Map[K, V]) String() string {
	return m.t.String()
}

// Keys returns the keys in ascending order, or descending if reverse is set.
func (m *Map[K, V]) Keys(reverse bool) iter.Seq[K] {
	return func(yield func(K) bool) {
		it := m.t.MakeIter(reverse)
		for it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// Values returns the values in the order of their keys.
func (m *Map[K, V]) Values(reverse bool) iter.Seq[V] {
	return func(yield func(V) bool) {
		it := m.t.MakeIter(reverse)
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Entries returns the key-value pairs in the order of their keys.
func (m *Map[K, V]) Entries(reverse bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.t.MakeIter(reverse)
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Iterator is a cursor over the entries of a Map.
type Iterator[K, V any] struct {
	it abstract.Iterator[K, V]
}

// MakeIter returns an Iterator positioned before the first entry, in
// descending key order if reverse is set.
func (m *Map[K, V]) MakeIter(reverse bool) Iterator[K, V] {
	return Iterator[K, V]{m.t.MakeIter(reverse)}
}

func (it *Iterator[K, V]) Reset() { it.it.Reset() }

func (it *Iterator[K, V]) Next() bool { return it.it.Next() }

func (it *Iterator[K, V]) Valid() bool { return it.it.Valid() }

func (it *Iterator[K, V]) Key() K { return it.it.Key() }

func (it *Iterator[K, V]) Value() V { return it.it.Value() }
