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

// Validate checks ordering, balance, cached heights and the key count,
// returning the first violation found.
func (s *Set[T]) Validate() error {
	count, _, err := s.validate(s.root, nil, nil)
	if err != nil {
		return err
	}
	if count != s.count {
		return errors.Errorf("count is %d but tree holds %d keys", s.count, count)
	}
	return nil
}

// validate returns the number of nodes and the computed height of the
// subtree, checking that every key lies strictly between lo and hi.
func (s *Set[T]) validate(n *node[T], lo, hi *T) (int, int, error) {
	if n == nil {
		return 0, 0, nil
	}
	if lo != nil && s.cmp(n.key, *lo) <= 0 {
		return 0, 0, errors.Errorf("key %v not greater than ancestor %v", n.key, *lo)
	}
	if hi != nil && s.cmp(n.key, *hi) >= 0 {
		return 0, 0, errors.Errorf("key %v not less than ancestor %v", n.key, *hi)
	}

	lc, lh, err := s.validate(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := s.validate(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}

	h := max(lh, rh) + 1
	if n.height != h {
		return 0, 0, errors.Errorf("node %v caches height %d, actual %d", n.key, n.height, h)
	}
	if b := rh - lh; b < -1 || b > 1 {
		return 0, 0, errors.Errorf("node %v has balance factor %d", n.key, b)
	}
	return lc + rc + 1, h, nil
}
