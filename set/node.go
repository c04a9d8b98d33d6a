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

type node[T any] struct {
	key    T
	height int // leaf = 1, absent subtree = 0
	left   *node[T]
	right  *node[T]
}

func newNode[T any](key T) *node[T] {
	return &node[T]{key: key, height: 1}
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node[T]) updateHeight() {
	n.height = max(height(n.left), height(n.right)) + 1
}

// balance is height(right) - height(left).
func (n *node[T]) balance() int {
	return height(n.right) - height(n.left)
}

func leftmost[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[T any](n *node[T]) *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

func (n *node[T]) clone() *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{
		key:    n.key,
		height: n.height,
		left:   n.left.clone(),
		right:  n.right.clone(),
	}
}

// release unlinks the subtree rooted at n, children before parent.
func (n *node[T]) release() {
	if n == nil {
		return
	}
	n.left.release()
	n.right.release()
	n.left, n.right = nil, nil
}
