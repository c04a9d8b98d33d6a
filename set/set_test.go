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
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mutationTestCase struct {
	Name          string
	Insert        []int
	Erase         []int
	ExpectedOrder []int // in-order after all operations
	ExpectedPre   []int // pre-order, pins the shape
}

func TestMutations(t *testing.T) {
	testCases := []mutationTestCase{
		{
			Name:          "single right rotation",
			Insert:        []int{30, 20, 10},
			ExpectedOrder: []int{10, 20, 30},
			ExpectedPre:   []int{20, 10, 30},
		},
		{
			Name:          "single left rotation",
			Insert:        []int{10, 20, 30},
			ExpectedOrder: []int{10, 20, 30},
			ExpectedPre:   []int{20, 10, 30},
		},
		{
			Name:          "right-left double rotation",
			Insert:        []int{10, 30, 20},
			ExpectedOrder: []int{10, 20, 30},
			ExpectedPre:   []int{20, 10, 30},
		},
		{
			Name:          "left-right double rotation",
			Insert:        []int{30, 10, 20},
			ExpectedOrder: []int{10, 20, 30},
			ExpectedPre:   []int{20, 10, 30},
		},
		{
			Name:          "duplicate insert is ignored",
			Insert:        []int{5, 3, 5, 8, 3},
			ExpectedOrder: []int{3, 5, 8},
			ExpectedPre:   []int{5, 3, 8},
		},
		{
			Name:          "erase leaf",
			Insert:        []int{20, 10, 30},
			Erase:         []int{30},
			ExpectedOrder: []int{10, 20},
			ExpectedPre:   []int{20, 10},
		},
		{
			Name:          "erase absent key",
			Insert:        []int{20, 10, 30},
			Erase:         []int{15},
			ExpectedOrder: []int{10, 20, 30},
			ExpectedPre:   []int{20, 10, 30},
		},
		{
			Name:          "erase node with only left child",
			Insert:        []int{20, 10, 30, 5},
			Erase:         []int{10},
			ExpectedOrder: []int{5, 20, 30},
			ExpectedPre:   []int{20, 5, 30},
		},
		{
			Name:          "erase node with two children copies successor",
			Insert:        []int{20, 10, 30, 25, 35},
			Erase:         []int{20},
			ExpectedOrder: []int{10, 25, 30, 35},
			ExpectedPre:   []int{25, 10, 30, 35},
		},
		{
			Name:          "erase with balanced heavy child takes single rotation",
			Insert:        []int{20, 10, 30, 25, 35},
			Erase:         []int{10},
			ExpectedOrder: []int{20, 25, 30, 35},
			ExpectedPre:   []int{30, 20, 25, 35},
		},
		{
			Name:          "erase needing right-left rotation",
			Insert:        []int{20, 10, 30, 25},
			Erase:         []int{10},
			ExpectedOrder: []int{20, 25, 30},
			ExpectedPre:   []int{25, 20, 30},
		},
		{
			Name:          "erase needing left-right rotation",
			Insert:        []int{20, 10, 30, 15},
			Erase:         []int{30},
			ExpectedOrder: []int{10, 15, 20},
			ExpectedPre:   []int{15, 10, 20},
		},
		{
			Name:          "erase root of single node",
			Insert:        []int{7},
			Erase:         []int{7},
			ExpectedOrder: []int{},
			ExpectedPre:   []int{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			s := New[int]()
			for _, k := range tc.Insert {
				s.Insert(k)
				require.NoError(t, s.Validate())
			}
			for _, k := range tc.Erase {
				s.Erase(k)
				require.NoError(t, s.Validate())
			}
			assert.Equal(t, tc.ExpectedOrder, s.InOrder())
			assert.Equal(t, tc.ExpectedPre, s.PreOrder())
			assert.Equal(t, len(tc.ExpectedOrder), s.Len())
		})
	}
}

func TestInsertReportsChange(t *testing.T) {
	s := New[int]()
	assert.True(t, s.Insert(1))
	assert.False(t, s.Insert(1))
	assert.True(t, s.Erase(1))
	assert.False(t, s.Erase(1))
	assert.True(t, s.Empty())
}

func TestEraseAscending(t *testing.T) {
	s := New[int]()
	for k := 1; k <= 10; k++ {
		s.Insert(k)
	}
	for k := 1; k <= 10; k++ {
		before := s.Len()
		s.Erase(k)
		require.NoError(t, s.Validate())
		require.Equal(t, before-1, s.Len())
		require.False(t, s.Contains(k))
	}
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.Height())
}

func TestOfIgnoresDuplicates(t *testing.T) {
	s := Of(4, 2, 4, 9, 2, 1)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []int{1, 2, 4, 9}, s.InOrder())
}

func TestClear(t *testing.T) {
	s := Of(1, 2, 3, 4, 5)
	s.Clear()
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.Height())
	assert.Empty(t, s.InOrder())
	assert.False(t, s.Contains(3))

	// Clearing twice is harmless and the set stays usable.
	s.Clear()
	s.Insert(9)
	assert.Equal(t, []int{9}, s.InOrder())
}

func TestCloneIsIndependent(t *testing.T) {
	a := Of(5, 3, 8, 1)
	c := a.Clone()
	require.NoError(t, c.Validate())
	assert.Equal(t, a.PreOrder(), c.PreOrder())

	a.Insert(10)
	a.Erase(3)
	c.Insert(0)

	assert.Equal(t, []int{1, 5, 8, 10}, a.InOrder())
	assert.Equal(t, []int{0, 1, 3, 5, 8}, c.InOrder())
}

func TestSwap(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(9)
	a.Swap(b)
	assert.Equal(t, []int{9}, a.InOrder())
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, []int{1, 2, 3}, b.InOrder())
	assert.Equal(t, 3, b.Len())
}

func TestNewFuncDescending(t *testing.T) {
	s := NewFunc(func(a, b string) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})
	for _, k := range []string{"pear", "apple", "fig", "kiwi"} {
		s.Insert(k)
	}
	require.NoError(t, s.Validate())
	assert.Equal(t, []string{"pear", "kiwi", "fig", "apple"}, s.InOrder())
	max, err := s.Max()
	require.NoError(t, err)
	assert.Equal(t, "apple", max)
}

// TestRandomAgainstBTree mirrors random inserts and erases into a B-tree and
// checks that both hold the same keys after every step.
func TestRandomAgainstBTree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := New[int]()
	oracle := btree.NewOrderedG[int](8)

	for i := 0; i < 5000; i++ {
		k := rng.Intn(300)
		if rng.Intn(3) == 0 {
			_, had := oracle.Delete(k)
			require.Equal(t, had, s.Erase(k), "erase %d", k)
		} else {
			_, had := oracle.ReplaceOrInsert(k)
			require.Equal(t, !had, s.Insert(k), "insert %d", k)
		}
		require.Equal(t, oracle.Len(), s.Len())

		if i%250 == 0 {
			require.NoError(t, s.Validate())
			var want []int
			oracle.Ascend(func(k int) bool {
				want = append(want, k)
				return true
			})
			got := s.InOrder()
			if len(want) == 0 {
				require.Empty(t, got)
			} else {
				require.Equal(t, want, got)
			}
		}
	}
	require.NoError(t, s.Validate())

	for k := 0; k < 300; k++ {
		assert.Equal(t, oracle.Has(k), s.Contains(k), "contains %d", k)
	}
}

func TestHeightStaysLogarithmic(t *testing.T) {
	s := New[int]()
	for k := 0; k < 1<<12; k++ {
		s.Insert(k)
	}
	require.NoError(t, s.Validate())
	// An AVL tree with n nodes is at most about 1.44*log2(n) tall.
	assert.LessOrEqual(t, s.Height(), 18)
}
