// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package set implements an ordered set of unique keys on top of an AVL tree.
//
// Mutations descend recursively and rebalance every ancestor on the way back
// up. Queries and traversals never modify the tree. A Set is not safe for
// concurrent use; callers sharing one must serialize access themselves.
package set

import "golang.org/x/exp/constraints"

// Set is an ordered set of unique keys.
type Set[T any] struct {
	cmp   func(a, b T) int
	root  *node[T]
	count int
}

// New returns an empty set ordered by the natural order of T.
func New[T constraints.Ordered]() *Set[T] {
	return NewFunc(compareOrdered[T])
}

// NewFunc returns an empty set ordered by cmp, which must define a strict
// total order: negative when a < b, zero when equal, positive when a > b.
func NewFunc[T any](cmp func(a, b T) int) *Set[T] {
	return &Set[T]{cmp: cmp}
}

// Of returns a set holding keys. Repeated keys are stored once.
func Of[T constraints.Ordered](keys ...T) *Set[T] {
	s := New[T]()
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Len returns the number of keys in the set.
func (s *Set[T]) Len() int { return s.count }

// Empty reports whether the set holds no keys.
func (s *Set[T]) Empty() bool { return s.count == 0 }

// Height returns the height of the tree, 0 for an empty set.
func (s *Set[T]) Height() int { return height(s.root) }

// Clear removes every key.
func (s *Set[T]) Clear() {
	if s.root == nil {
		return
	}
	s.root.release()
	s.root = nil
	s.count = 0
}

// Clone returns a deep copy of s sharing no nodes with it.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{cmp: s.cmp, root: s.root.clone(), count: s.count}
}

// Swap exchanges the contents of s and other.
func (s *Set[T]) Swap(other *Set[T]) {
	s.cmp, other.cmp = other.cmp, s.cmp
	s.root, other.root = other.root, s.root
	s.count, other.count = other.count, s.count
}

// Insert adds key to the set. It reports whether the set changed.
func (s *Set[T]) Insert(key T) bool {
	var added bool
	s.root, added = s.insert(s.root, key)
	return added
}

func (s *Set[T]) insert(n *node[T], key T) (*node[T], bool) {
	if n == nil {
		s.count++
		return newNode(key), true
	}

	var added bool
	switch c := s.cmp(key, n.key); {
	case c < 0:
		n.left, added = s.insert(n.left, key)
	case c > 0:
		n.right, added = s.insert(n.right, key)
	default:
		return n, false
	}
	if !added {
		return n, false
	}
	return fixupInsert(n), true
}

// Erase removes key from the set. It reports whether the set changed.
func (s *Set[T]) Erase(key T) bool {
	var removed bool
	s.root, removed = s.erase(s.root, key)
	return removed
}

func (s *Set[T]) erase(n *node[T], key T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch c := s.cmp(key, n.key); {
	case c < 0:
		n.left, removed = s.erase(n.left, key)
	case c > 0:
		n.right, removed = s.erase(n.right, key)
	default:
		if n.right == nil {
			s.count--
			left := n.left
			n.left = nil
			return left, true
		}
		// The successor's node is the one freed; n keeps its place.
		var succ *node[T]
		n.right, succ = s.detachMin(n.right)
		n.key = succ.key
		removed = true
	}
	if !removed {
		return n, false
	}
	return fixupErase(n), true
}

// detachMin unlinks the leftmost node of the subtree rooted at n and returns
// the rebalanced remainder together with the detached node.
func (s *Set[T]) detachMin(n *node[T]) (*node[T], *node[T]) {
	if n.left == nil {
		s.count--
		rest := n.right
		n.right = nil
		return rest, n
	}
	var lowest *node[T]
	n.left, lowest = s.detachMin(n.left)
	return fixupErase(n), lowest
}

func rotateRight[T any](p *node[T]) *node[T] {
	pivot := p.left
	p.left = pivot.right
	pivot.right = p

	p.updateHeight()
	pivot.updateHeight()
	return pivot
}

func rotateLeft[T any](p *node[T]) *node[T] {
	pivot := p.right
	p.right = pivot.left
	pivot.left = p

	p.updateHeight()
	pivot.updateHeight()
	return pivot
}

// fixupInsert rebalances p after an insertion below it. The single rotation
// is chosen when the outer grandchild is at least as tall as the inner one.
func fixupInsert[T any](p *node[T]) *node[T] {
	p.updateHeight()

	switch p.balance() {
	case -2:
		if height(p.left.left) >= height(p.left.right) {
			return rotateRight(p)
		}
		p.left = rotateLeft(p.left)
		return rotateRight(p)
	case 2:
		if height(p.right.right) >= height(p.right.left) {
			return rotateLeft(p)
		}
		p.right = rotateRight(p.right)
		return rotateLeft(p)
	}
	return p
}

// fixupErase rebalances p after a removal below it. Unlike fixupInsert it
// decides on the balance factor of the heavy child; a balanced heavy child
// takes the single rotation.
func fixupErase[T any](p *node[T]) *node[T] {
	p.updateHeight()

	switch p.balance() {
	case 2:
		if p.right.balance() >= 0 {
			return rotateLeft(p)
		}
		p.right = rotateRight(p.right)
		return rotateLeft(p)
	case -2:
		if p.left.balance() <= 0 {
			return rotateRight(p)
		}
		p.left = rotateLeft(p.left)
		return rotateRight(p)
	}
	return p
}
