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

// Union returns a new set with the keys of s and other.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	result := NewFunc(s.cmp)
	insertAll := func(k T) bool {
		result.Insert(k)
		return true
	}
	s.WalkPreOrder(insertAll)
	other.WalkPreOrder(insertAll)
	return result
}

// Intersection returns a new set with the keys of s that are also in other.
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	result := NewFunc(s.cmp)
	s.WalkPreOrder(func(k T) bool {
		if other.Contains(k) {
			result.Insert(k)
		}
		return true
	})
	return result
}

// Difference returns a new set with the keys of s that are not in other.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	result := NewFunc(s.cmp)
	s.WalkPreOrder(func(k T) bool {
		if !other.Contains(k) {
			result.Insert(k)
		}
		return true
	})
	return result
}

// Plus is Union.
func (s *Set[T]) Plus(other *Set[T]) *Set[T] { return s.Union(other) }

// Times is Intersection.
func (s *Set[T]) Times(other *Set[T]) *Set[T] { return s.Intersection(other) }

// Minus is Difference.
func (s *Set[T]) Minus(other *Set[T]) *Set[T] { return s.Difference(other) }

// Union returns a.Union(b).
func Union[T any](a, b *Set[T]) *Set[T] { return a.Union(b) }

// Intersection returns a.Intersection(b).
func Intersection[T any](a, b *Set[T]) *Set[T] { return a.Intersection(b) }

// Difference returns a.Difference(b).
func Difference[T any](a, b *Set[T]) *Set[T] { return a.Difference(b) }
