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
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// node is a single entry of the tree. The parent relation is kept in sync
// with every assignment to left or right.
type node[K, V any] struct {
	key    K
	value  V
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

func (n *node[K, V]) leftmost() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K, V]) rightmost() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the node following n in key order, or nil if n is the
// last node of the tree.
func (n *node[K, V]) successor() *node[K, V] {
	if n.right != nil {
		return n.right.leftmost()
	}
	for n.parent != nil {
		if n.parent.left == n {
			return n.parent
		}
		n = n.parent
	}
	return nil
}

// predecessor is the mirror image of successor.
func (n *node[K, V]) predecessor() *node[K, V] {
	if n.left != nil {
		return n.left.rightmost()
	}
	for n.parent != nil {
		if n.parent.right == n {
			return n.parent
		}
		n = n.parent
	}
	return nil
}

// join attaches r as the right child of the rightmost node of the subtree
// rooted at l. Every key under r must compare greater than every key under
// l, so the walk from l only ever descends to the right.
func join[K, V any](cmp func(K, K) int, l, r *node[K, V]) {
	if r == nil {
		return
	}
	var last *node[K, V]
	for cur := l; cur != nil; cur = cur.right {
		if cmp(r.key, cur.key) <= 0 {
			panic(errors.AssertionFailedf(
				"subtree join: key %v does not order after %v", r.key, cur.key))
		}
		last = cur
	}
	last.right = r
	r.parent = last
}

// walk visits the subtree rooted at n in key order, passing each node and
// its depth, counting n as depth 1. It follows parent links instead of
// recursing, so it runs in constant space whatever the shape of the tree.
// Every child's parent link is checked before descending into it; walk
// returns an error on the first stale link or the first error from visit.
func (n *node[K, V]) walk(visit func(*node[K, V], int) error) error {
	if n == nil {
		return nil
	}
	descend := func(cur, child *node[K, V]) error {
		if child.parent != cur {
			return errors.Errorf("child %v of %v has a stale parent", child.key, cur.key)
		}
		return nil
	}
	top := n.parent
	prev, cur, depth := top, n, 1
	for cur != top {
		switch prev {
		case cur.parent:
			if cur.left != nil {
				if err := descend(cur, cur.left); err != nil {
					return err
				}
				prev, cur = cur, cur.left
				depth++
				continue
			}
			fallthrough
		case cur.left:
			if err := visit(cur, depth); err != nil {
				return err
			}
			if cur.right != nil {
				if err := descend(cur, cur.right); err != nil {
					return err
				}
				prev, cur = cur, cur.right
				depth++
				continue
			}
		}
		prev, cur = cur, cur.parent
		depth--
	}
	return nil
}

func (n *node[K, V]) writeString(b *strings.Builder) {
	if n.left != nil || n.right != nil {
		b.WriteString("(")
		if n.left != nil {
			n.left.writeString(b)
		}
		b.WriteString(",")
		if n.right != nil {
			n.right.writeString(b)
		}
		b.WriteString(")")
	}
	fmt.Fprintf(b, "%v:%v", n.key, n.value)
}
