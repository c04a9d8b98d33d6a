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

package set

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Order selects a tree walk.
type Order int

const (
	OrderIn    Order = iota // ascending keys
	OrderPre                // node, left subtree, right subtree
	OrderPost               // left subtree, right subtree, node
	OrderLevel              // breadth first, root first
)

var orderNames = map[Order]string{
	OrderIn:    "in",
	OrderPre:   "pre",
	OrderPost:  "post",
	OrderLevel: "level",
}

func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder maps "in", "pre", "post" and "level" to an Order.
func ParseOrder(name string) (Order, error) {
	name = strings.TrimSuffix(strings.ToLower(name), "order")
	for o, n := range orderNames {
		if n == name {
			return o, nil
		}
	}
	return 0, errors.Errorf("unknown traversal order %q", name)
}

// Walk calls fn for every key in the given order until fn returns false.
// An order other than the four defined ones visits nothing.
func (s *Set[T]) Walk(order Order, fn func(T) bool) {
	switch order {
	case OrderIn:
		s.WalkInOrder(fn)
	case OrderPre:
		s.WalkPreOrder(fn)
	case OrderPost:
		s.WalkPostOrder(fn)
	case OrderLevel:
		s.WalkLevelOrder(fn)
	}
}

// WalkInOrder visits keys in ascending order.
func (s *Set[T]) WalkInOrder(fn func(T) bool) {
	var stack []*node[T]
	n := s.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n.key) {
			return
		}
		n = n.right
	}
}

// WalkPreOrder visits each node before its left and then its right subtree.
func (s *Set[T]) WalkPreOrder(fn func(T) bool) {
	if s.root == nil {
		return
	}
	stack := []*node[T]{s.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n.key) {
			return
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
}

// WalkPostOrder visits both subtrees of a node before the node itself.
func (s *Set[T]) WalkPostOrder(fn func(T) bool) {
	var (
		stack []*node[T]
		last  *node[T]
	)
	n := s.root
	for n != nil || len(stack) > 0 {
		if n != nil {
			stack = append(stack, n)
			n = n.left
			continue
		}
		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			n = top.right
			continue
		}
		stack = stack[:len(stack)-1]
		if !fn(top.key) {
			return
		}
		last = top
	}
}

// WalkLevelOrder visits keys breadth first, left to right within a level.
func (s *Set[T]) WalkLevelOrder(fn func(T) bool) {
	if s.root == nil {
		return
	}
	queue := []*node[T]{s.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if !fn(n.key) {
			return
		}
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
}

// Keys returns the keys in the given order.
func (s *Set[T]) Keys(order Order) []T {
	keys := make([]T, 0, s.count)
	s.Walk(order, func(k T) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// InOrder returns the keys in ascending order.
func (s *Set[T]) InOrder() []T { return s.Keys(OrderIn) }

// PreOrder returns the keys in pre-order.
func (s *Set[T]) PreOrder() []T { return s.Keys(OrderPre) }

// PostOrder returns the keys in post-order.
func (s *Set[T]) PostOrder() []T { return s.Keys(OrderPost) }

// LevelOrder returns the keys breadth first.
func (s *Set[T]) LevelOrder() []T { return s.Keys(OrderLevel) }

// Levels groups the keys by depth, root first.
func (s *Set[T]) Levels() [][]T {
	var levels [][]T
	if s.root == nil {
		return levels
	}
	current := []*node[T]{s.root}
	for len(current) > 0 {
		var next []*node[T]
		keys := make([]T, 0, len(current))
		for _, n := range current {
			keys = append(keys, n.key)
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		levels = append(levels, keys)
		current = next
	}
	return levels
}

// Format writes the keys in the given order, each followed by a space.
func (s *Set[T]) Format(w io.Writer, order Order) error {
	var err error
	s.Walk(order, func(k T) bool {
		_, err = fmt.Fprintf(w, "%v ", k)
		return err == nil
	})
	return err
}
