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

import "github.com/pkg/errors"

// Contains reports whether key is in the set.
func (s *Set[T]) Contains(key T) bool {
	return s.find(key) != nil
}

func (s *Set[T]) find(key T) *node[T] {
	n := s.root
	for n != nil {
		switch c := s.cmp(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Min returns the smallest key.
func (s *Set[T]) Min() (T, error) {
	if s.root == nil {
		var zero T
		return zero, errors.Wrap(ErrEmpty, "min")
	}
	return leftmost(s.root).key, nil
}

// Max returns the largest key.
func (s *Set[T]) Max() (T, error) {
	if s.root == nil {
		var zero T
		return zero, errors.Wrap(ErrEmpty, "max")
	}
	return rightmost(s.root).key, nil
}

// Successor returns the smallest key strictly greater than key, which must be
// in the set.
func (s *Set[T]) Successor(key T) (T, error) {
	var zero T
	var candidate *node[T]

	n := s.root
	for n != nil {
		c := s.cmp(key, n.key)
		if c == 0 {
			break
		}
		if c < 0 {
			candidate = n
			n = n.left
		} else {
			n = n.right
		}
	}

	if n == nil {
		return zero, errors.Wrapf(ErrKeyNotFound, "successor of %v", key)
	}
	if n.right != nil {
		return leftmost(n.right).key, nil
	}
	if candidate == nil || s.cmp(candidate.key, key) <= 0 {
		return zero, errors.Wrapf(ErrNoSuccessor, "successor of %v", key)
	}
	return candidate.key, nil
}

// Predecessor returns the largest key strictly less than key, which must be
// in the set.
func (s *Set[T]) Predecessor(key T) (T, error) {
	var zero T
	var candidate *node[T]

	n := s.root
	for n != nil {
		c := s.cmp(key, n.key)
		if c == 0 {
			break
		}
		if c > 0 {
			candidate = n
			n = n.right
		} else {
			n = n.left
		}
	}

	if n == nil {
		return zero, errors.Wrapf(ErrKeyNotFound, "predecessor of %v", key)
	}
	if n.left != nil {
		return rightmost(n.left).key, nil
	}
	if candidate == nil || s.cmp(candidate.key, key) >= 0 {
		return zero, errors.Wrapf(ErrNoPredecessor, "predecessor of %v", key)
	}
	return candidate.key, nil
}
