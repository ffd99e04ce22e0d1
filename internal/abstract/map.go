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

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Map is an ordered map implemented as an unbalanced binary search tree.
// Nodes carry a reference to their parent so that iteration requires no
// auxiliary stack.
//
// Map is not safe for concurrent use.
type Map[K, V any] struct {
	root   *node[K, V]
	length int
	// gen is incremented on every structural change and is used by
	// iterators to detect use after mutation.
	gen uint64
	cfg config[K, V]
}

// MakeMap constructs a new Map ordered by cmp. It panics if cmp is nil.
func MakeMap[K, V any](cmp func(K, K) int) Map[K, V] {
	if cmp == nil {
		panic(errors.AssertionFailedf("nil comparison function"))
	}
	return Map[K, V]{cfg: makeConfig[K, V](cmp)}
}

func (t *Map[K, V]) find(k K) *node[K, V] {
	cur := t.root
	for cur != nil {
		c := t.cfg.cmp(k, cur.key)
		switch {
		case c < 0:
			cur = cur.left
		case c > 0:
			cur = cur.right
		default:
			return cur
		}
	}
	return nil
}

// splice installs n in the slot below parent on the given side, or at the
// root if parent is nil, and points n back at parent.
func (t *Map[K, V]) splice(parent *node[K, V], right bool, n *node[K, V]) {
	switch {
	case parent == nil:
		t.root = n
	case right:
		parent.right = n
	default:
		parent.left = n
	}
	if n != nil {
		n.parent = parent
	}
}

// Get returns the value associated with k.
func (t *Map[K, V]) Get(k K) (v V, found bool) {
	if n := t.find(k); n != nil {
		return n.value, true
	}
	return v, false
}

// Contains returns whether k is in the Map.
func (t *Map[K, V]) Contains(k K) bool {
	return t.find(k) != nil
}

// Upsert adds the key and value to the tree. If a key in the tree already
// equals k, its value is overwritten in place and replaced is true. An
// overwrite is not a structural change.
func (t *Map[K, V]) Upsert(k K, v V) (replaced bool) {
	var parent *node[K, V]
	var right bool
	cur := t.root
	for cur != nil {
		c := t.cfg.cmp(k, cur.key)
		switch {
		case c < 0:
			parent, cur, right = cur, cur.left, false
		case c > 0:
			parent, cur, right = cur, cur.right, true
		default:
			cur.value = v
			return true
		}
	}
	t.splice(parent, right, t.cfg.np.getNode(k, v, parent))
	t.length++
	t.gen++
	return false
}

// Delete removes the entry with a key equal to k from the tree.
//
// When the removed node has a left child, that child takes the removed
// node's place and the removed node's right subtree is joined onto the
// rightmost position of the left subtree. Otherwise the right child takes
// its place.
func (t *Map[K, V]) Delete(k K) (removedK K, v V, found bool) {
	var parent *node[K, V]
	var right bool
	cur := t.root
	for cur != nil {
		c := t.cfg.cmp(k, cur.key)
		switch {
		case c < 0:
			parent, cur, right = cur, cur.left, false
		case c > 0:
			parent, cur, right = cur, cur.right, true
		default:
			if l := cur.left; l != nil {
				t.splice(parent, right, l)
				join(t.cfg.cmp, l, cur.right)
			} else {
				t.splice(parent, right, cur.right)
			}
			removedK, v = cur.key, cur.value
			t.cfg.np.putNode(cur)
			t.length--
			t.gen++
			return removedK, v, true
		}
	}
	return removedK, v, false
}

// Reset removes all items from the Map. The root is detached and the nodes
// become unreachable together; they are not returned to the node pool.
func (t *Map[K, V]) Reset() {
	t.root = nil
	t.length = 0
	t.gen++
}

// Min returns the smallest entry in the Map.
func (t *Map[K, V]) Min() (k K, v V, found bool) {
	if t.root == nil {
		return k, v, false
	}
	n := t.root.leftmost()
	return n.key, n.value, true
}

// Max returns the largest entry in the Map.
func (t *Map[K, V]) Max() (k K, v V, found bool) {
	if t.root == nil {
		return k, v, false
	}
	n := t.root.rightmost()
	return n.key, n.value, true
}

// MakeIter returns a new Iterator positioned before the first entry in the
// requested direction. It is not safe to continue using an Iterator after
// structural modifications are made to the tree; doing so panics.
func (t *Map[K, V]) MakeIter(reverse bool) Iterator[K, V] {
	it := Iterator[K, V]{r: t, reverse: reverse}
	it.Reset()
	return it
}

// Height returns the height of the tree.
func (t *Map[K, V]) Height() int {
	var h int
	// The visit function never fails, and a tree built through the Map has
	// consistent parent links.
	_ = t.root.walk(func(_ *node[K, V], depth int) error {
		if depth > h {
			h = depth
		}
		return nil
	})
	return h
}

// Len returns the number of items currently in the tree.
func (t *Map[K, V]) Len() int {
	return t.length
}

// Verify checks the structural invariants of the tree: key ordering, parent
// links and the entry count.
func (t *Map[K, V]) Verify() error {
	if t.root != nil && t.root.parent != nil {
		return errors.Errorf("root %v has a parent", t.root.key)
	}
	var prev *node[K, V]
	var n int
	if err := t.root.walk(func(cur *node[K, V], _ int) error {
		if prev != nil && t.cfg.cmp(prev.key, cur.key) >= 0 {
			return errors.Errorf("key %v does not order after %v", cur.key, prev.key)
		}
		prev = cur
		n++
		return nil
	}); err != nil {
		return err
	}
	if n != t.length {
		return errors.Errorf("found %d reachable nodes, expected %d", n, t.length)
	}
	return nil
}

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Map[K, V]) String() string {
	if t.length == 0 {
		return ";"
	}
	var b strings.Builder
	t.root.writeString(&b)
	b.WriteString(";")
	return b.String()
}
