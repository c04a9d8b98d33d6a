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

package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/anacrolix/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avlset/set"
)

func newTestShell(input string, opts Options) (*Shell, *bytes.Buffer) {
	var out bytes.Buffer
	sh := New(strings.NewReader(input), &out, opts, log.Default)
	return sh, &out
}

func exec(t *testing.T, sh *Shell, line string) {
	t.Helper()
	quit, err := sh.Exec(line)
	require.NoError(t, err, line)
	require.False(t, quit, line)
}

func TestAddPrintDump(t *testing.T) {
	sh, out := newTestShell("", Options{})
	exec(t, sh, "add 30 20 10 20")
	assert.Contains(t, out.String(), "added 3 of 4")
	assert.Equal(t, []int{10, 20, 30}, sh.Active().InOrder())

	out.Reset()
	exec(t, sh, "print level")
	assert.Equal(t, "20 10 30 \n", out.String())

	out.Reset()
	exec(t, sh, "dump")
	assert.Equal(t, "┌───30\n20\n└───10\n", out.String())
}

func TestMalformedInputNeverReachesSet(t *testing.T) {
	sh, _ := newTestShell("", Options{})
	sh.Load([]int{1, 2})

	testCases := []struct {
		Name string
		Line string
		Want error
	}{
		{Name: "non-integer key", Line: "add 3 x", Want: ErrUsage},
		{Name: "missing argument", Line: "succ", Want: ErrUsage},
		{Name: "too many arguments", Line: "contains 1 2", Want: ErrUsage},
		{Name: "unknown set", Line: "use C", Want: ErrUsage},
		{Name: "bad order", Line: "print sideways", Want: ErrUsage},
		{Name: "reversed fill", Line: "fill 9 1", Want: ErrUsage},
		{Name: "fill span too large", Line: "fill 1 2000000", Want: ErrUsage},
		{Name: "fill span overflows int", Line: "fill -9223372036854775808 9223372036854775807", Want: ErrUsage},
		{Name: "unterminated quote", Line: "add \"1", Want: ErrUsage},
		{Name: "unknown command", Line: "frobnicate", Want: ErrUnknownCommand},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := sh.Exec(tc.Line)
			require.ErrorIs(t, err, tc.Want)
			assert.Equal(t, []int{1, 2}, sh.Active().InOrder())
		})
	}
}

func TestQueries(t *testing.T) {
	sh, out := newTestShell("", Options{})

	_, err := sh.Exec("min")
	assert.ErrorIs(t, err, set.ErrEmpty)

	exec(t, sh, "add 3 5 6 7 8 10 12 15 17")
	out.Reset()
	exec(t, sh, "succ 8")
	exec(t, sh, "pred 8")
	exec(t, sh, "min")
	exec(t, sh, "max")
	exec(t, sh, "size")
	assert.Equal(t, "successor of 8: 10\npredecessor of 8: 7\nmin: 3\nmax: 17\n9 keys\n", out.String())

	_, err = sh.Exec("succ 17")
	assert.ErrorIs(t, err, set.ErrNoSuccessor)
	_, err = sh.Exec("pred 4")
	assert.ErrorIs(t, err, set.ErrKeyNotFound)
}

func TestContainsAfterRemove(t *testing.T) {
	sh, out := newTestShell("", Options{})
	exec(t, sh, "add 5 6")
	exec(t, sh, "remove 5 42")
	assert.Contains(t, out.String(), "removed 1 of 2")

	out.Reset()
	exec(t, sh, "contains 5")
	exec(t, sh, "has 6")
	exec(t, sh, "contains 7")
	assert.Equal(t, "5 is not in A\n6 is in A\n7 is not in A\n", out.String())
}

func TestClearAsksForConfirmation(t *testing.T) {
	sh, out := newTestShell("n\ns\n", Options{ConfirmClear: true})
	exec(t, sh, "add 1 2 3")

	exec(t, sh, "clear")
	assert.Equal(t, 3, sh.Active().Len())
	assert.Contains(t, out.String(), "kept")

	exec(t, sh, "clear")
	assert.True(t, sh.Active().Empty())

	out.Reset()
	exec(t, sh, "contains 2")
	assert.Equal(t, "2 is not in A\n", out.String())
}

func TestTwoSets(t *testing.T) {
	sh, out := newTestShell("", Options{})
	exec(t, sh, "add 1 2 3 4")
	exec(t, sh, "copy")
	exec(t, sh, "use b")
	assert.Equal(t, "B", sh.ActiveName())
	exec(t, sh, "remove 1 2")
	exec(t, sh, "add 5 6")

	assert.Equal(t, []int{1, 2, 3, 4}, sh.Set("A").InOrder())
	assert.Equal(t, []int{3, 4, 5, 6}, sh.Set("B").InOrder())

	out.Reset()
	exec(t, sh, "union")
	exec(t, sh, "*")
	exec(t, sh, "-")
	assert.Equal(t,
		"A + B: 1 2 3 4 5 6 (6 keys)\n"+
			"A * B: 3 4 (2 keys)\n"+
			"A - B: 1 2 (2 keys)\n",
		out.String())

	exec(t, sh, "swap")
	assert.Equal(t, []int{3, 4, 5, 6}, sh.Set("A").InOrder())
	assert.Equal(t, []int{1, 2, 3, 4}, sh.Set("B").InOrder())

	// Filters travel with their sets.
	out.Reset()
	exec(t, sh, "use A")
	exec(t, sh, "contains 6")
	assert.Equal(t, "6 is in A\n", out.String())
}

func TestFill(t *testing.T) {
	sh, out := newTestShell("", Options{})
	exec(t, sh, "fill 1 100")
	assert.Equal(t, 100, sh.Active().Len())
	assert.Contains(t, out.String(), "added 100 keys")
	exec(t, sh, "check")
}

func TestRenderCache(t *testing.T) {
	sh, _ := newTestShell("", Options{})
	sh.Load([]int{2, 1, 3})
	first := sh.Render("A", "in")
	assert.Equal(t, "1 2 3 \n", first)
	assert.Equal(t, first, sh.Render("a", "in"))

	exec(t, sh, "add 4")
	assert.Equal(t, "1 2 3 4 \n", sh.Render("A", "in"))
	assert.Equal(t, "", sh.Render("A", "bogus"))
}

func TestYank(t *testing.T) {
	sh, _ := newTestShell("", Options{})
	var copied string
	sh.clip = func(s string) error {
		copied = s
		return nil
	}
	sh.Load([]int{1})
	exec(t, sh, "yank")
	assert.Equal(t, "1\n", copied)
}

func TestRun(t *testing.T) {
	sh, out := newTestShell("add 1 2 3\nbogus\nsize\nquit\nadd 4\n", Options{Prompt: "avl"})
	err := sh.Run(context.Background())
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "avl A> ")
	assert.Contains(t, text, "error: ")
	assert.Contains(t, text, "3 keys")
	// Lines after quit are not executed.
	assert.Equal(t, 3, sh.Active().Len())
}

func TestRunStopsOnCancel(t *testing.T) {
	sh, _ := newTestShell("add 1\n", Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := sh.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, sh.Active().Empty())
}

func TestHelpListsEveryCommand(t *testing.T) {
	sh, out := newTestShell("", Options{})
	exec(t, sh, "help")
	for _, c := range Commands() {
		assert.Contains(t, out.String(), c[1], "missing %q", c[0])
	}
}
