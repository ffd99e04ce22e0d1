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

package abstract

import "github.com/cockroachdb/errors"

// Iterator is a cursor over the entries of a Map in ascending order, or in
// descending order if it was created in reverse. It holds the current node
// and the precomputed next node; stepping follows parent links so no stack
// is needed.
//
// An Iterator records the Map's generation when it is reset. Any insertion
// of a new key, removal or clear made after that point causes the next call
// to Next, Valid, Key or Value to panic. Overwriting the value of an existing
// key does not invalidate the Iterator.
type Iterator[K, V any] struct {
	r       *Map[K, V]
	reverse bool
	gen     uint64
	cur     *node[K, V]
	next    *node[K, V]
}

// Reset positions the Iterator before the first entry of the Map in its
// current state.
func (i *Iterator[K, V]) Reset() {
	i.gen = i.r.gen
	i.cur = nil
	i.next = i.r.root
	if i.next == nil {
		return
	}
	if i.reverse {
		i.next = i.next.rightmost()
	} else {
		i.next = i.next.leftmost()
	}
}

// Next advances the Iterator and reports whether it is positioned at an
// entry.
func (i *Iterator[K, V]) Next() bool {
	i.assertUnmodified()
	i.cur = i.next
	if i.cur == nil {
		return false
	}
	if i.reverse {
		i.next = i.cur.predecessor()
	} else {
		i.next = i.cur.successor()
	}
	return true
}

// Valid returns whether the Iterator is positioned at an entry.
func (i *Iterator[K, V]) Valid() bool {
	i.assertUnmodified()
	return i.cur != nil
}

// Key returns the key at the Iterator's current position. It is illegal
// to call Key if the Iterator is not valid.
func (i *Iterator[K, V]) Key() K {
	i.assertUnmodified()
	return i.cur.key
}

// Value returns the value at the Iterator's current position. It is illegal
// to call Value if the Iterator is not valid.
func (i *Iterator[K, V]) Value() V {
	i.assertUnmodified()
	return i.cur.value
}

func (i *Iterator[K, V]) assertUnmodified() {
	if i.gen != i.r.gen {
		panic(errors.AssertionFailedf(
			"map modified during iteration (generation %d, now %d)", i.gen, i.r.gen))
	}
}
