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
	"fmt"
	"strings"

	"github.com/anacrolix/log"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avlset/set"
)

// maxFill bounds the span of a single fill command.
const maxFill = 1_000_000

type command struct {
	name    string
	aliases []string
	usage   string
	summary string
	minArgs int
	maxArgs int // -1 for no limit
	quit    bool
	run     func(sh *Shell, args []string) error
}

var (
	commands     []*command
	commandIndex map[string]*command
)

func init() {
	commands = []*command{
		{name: "add", aliases: []string{"insert"}, usage: "add KEY...", summary: "insert keys into the active set", minArgs: 1, maxArgs: -1, run: cmdAdd},
		{name: "remove", aliases: []string{"rm", "erase"}, usage: "remove KEY...", summary: "erase keys from the active set", minArgs: 1, maxArgs: -1, run: cmdRemove},
		{name: "contains", aliases: []string{"has"}, usage: "contains KEY", summary: "report whether KEY is in the active set", minArgs: 1, maxArgs: 1, run: cmdContains},
		{name: "clear", usage: "clear", summary: "remove every key from the active set", run: cmdClear},
		{name: "size", aliases: []string{"len"}, usage: "size", summary: "number of keys in the active set", run: cmdSize},
		{name: "empty", usage: "empty", summary: "report whether the active set is empty", run: cmdEmpty},
		{name: "min", usage: "min", summary: "smallest key", run: cmdMin},
		{name: "max", usage: "max", summary: "largest key", run: cmdMax},
		{name: "succ", aliases: []string{"successor"}, usage: "succ KEY", summary: "next larger key", minArgs: 1, maxArgs: 1, run: cmdSuccessor},
		{name: "pred", aliases: []string{"predecessor"}, usage: "pred KEY", summary: "next smaller key", minArgs: 1, maxArgs: 1, run: cmdPredecessor},
		{name: "print", usage: "print [in|pre|post|level]", summary: "list keys in traversal order", maxArgs: 1, run: cmdPrint},
		{name: "dump", aliases: []string{"show", "tree"}, usage: "dump", summary: "draw the tree sideways", run: cmdDump},
		{name: "check", usage: "check", summary: "verify ordering and balance", run: cmdCheck},
		{name: "yank", usage: "yank", summary: "copy the tree drawing to the clipboard", run: cmdYank},
		{name: "use", usage: "use A|B", summary: "select the active set", minArgs: 1, maxArgs: 1, run: cmdUse},
		{name: "copy", usage: "copy", summary: "replace the other set with a copy of the active one", run: cmdCopy},
		{name: "swap", usage: "swap", summary: "exchange the contents of A and B", run: cmdSwap},
		{name: "union", aliases: []string{"+"}, usage: "union", summary: "print A + B", run: algebra("+", (*set.Set[int]).Union)},
		{name: "intersect", aliases: []string{"*", "intersection"}, usage: "intersect", summary: "print A * B", run: algebra("*", (*set.Set[int]).Intersection)},
		{name: "diff", aliases: []string{"-", "difference"}, usage: "diff", summary: "print A - B", run: algebra("-", (*set.Set[int]).Difference)},
		{name: "fill", usage: "fill LO HI", summary: "insert every key from LO to HI", minArgs: 2, maxArgs: 2, run: cmdFill},
		{name: "help", aliases: []string{"?"}, usage: "help", summary: "list commands", run: cmdHelp},
		{name: "quit", aliases: []string{"exit", "q"}, usage: "quit", summary: "leave the shell", quit: true},
	}

	commandIndex = make(map[string]*command)
	for _, c := range commands {
		commandIndex[c.name] = c
		for _, a := range c.aliases {
			commandIndex[a] = c
		}
	}
}

func lookupCommand(name string) (*command, bool) {
	c, ok := commandIndex[name]
	return c, ok
}

func cmdAdd(sh *Shell, args []string) error {
	keys, err := parseKeys(args)
	if err != nil {
		return err
	}
	added := 0
	for _, k := range keys {
		if sh.insert(k) {
			added++
		}
	}
	sh.changed()
	fmt.Fprintf(sh.out, "added %d of %d\n", added, len(keys))
	sh.echoTree()
	return nil
}

func cmdRemove(sh *Shell, args []string) error {
	keys, err := parseKeys(args)
	if err != nil {
		return err
	}
	removed := 0
	for _, k := range keys {
		if sh.Active().Erase(k) {
			removed++
		}
	}
	sh.changed()
	fmt.Fprintf(sh.out, "removed %d of %d\n", removed, len(keys))
	sh.echoTree()
	return nil
}

func cmdContains(sh *Shell, args []string) error {
	keys, err := parseKeys(args)
	if err != nil {
		return err
	}
	k := keys[0]
	found := false
	if sh.filters[sh.active].mayContain(k) {
		found = sh.Active().Contains(k)
	} else {
		sh.logger.Levelf(log.Debug, "filter rules out %d", k)
	}
	if found {
		fmt.Fprintf(sh.out, "%d is in %s\n", k, sh.active)
	} else {
		fmt.Fprintf(sh.out, "%d is not in %s\n", k, sh.active)
	}
	return nil
}

func cmdClear(sh *Shell, _ []string) error {
	if sh.Active().Empty() {
		fmt.Fprintf(sh.out, "%s is already empty\n", sh.active)
		return nil
	}
	if sh.opts.ConfirmClear && !sh.confirm(fmt.Sprintf("clear all %d keys of %s?", sh.Active().Len(), sh.active)) {
		fmt.Fprintln(sh.out, "kept")
		return nil
	}
	sh.Active().Clear()
	sh.filters[sh.active].reset()
	sh.changed()
	fmt.Fprintf(sh.out, "%s cleared\n", sh.active)
	return nil
}

func cmdSize(sh *Shell, _ []string) error {
	fmt.Fprintf(sh.out, "%s keys\n", humanize.Comma(int64(sh.Active().Len())))
	return nil
}

func cmdEmpty(sh *Shell, _ []string) error {
	if sh.Active().Empty() {
		fmt.Fprintf(sh.out, "%s is empty\n", sh.active)
	} else {
		fmt.Fprintf(sh.out, "%s is not empty\n", sh.active)
	}
	return nil
}

func cmdMin(sh *Shell, _ []string) error {
	k, err := sh.Active().Min()
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "min: %d\n", k)
	return nil
}

func cmdMax(sh *Shell, _ []string) error {
	k, err := sh.Active().Max()
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "max: %d\n", k)
	return nil
}

func cmdSuccessor(sh *Shell, args []string) error {
	keys, err := parseKeys(args)
	if err != nil {
		return err
	}
	k, err := sh.Active().Successor(keys[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "successor of %d: %d\n", keys[0], k)
	return nil
}

func cmdPredecessor(sh *Shell, args []string) error {
	keys, err := parseKeys(args)
	if err != nil {
		return err
	}
	k, err := sh.Active().Predecessor(keys[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "predecessor of %d: %d\n", keys[0], k)
	return nil
}

func cmdPrint(sh *Shell, args []string) error {
	view := set.OrderIn.String()
	if len(args) == 1 {
		order, err := set.ParseOrder(args[0])
		if err != nil {
			return errors.Wrap(ErrUsage, err.Error())
		}
		view = order.String()
	}
	fmt.Fprint(sh.out, sh.Render(sh.active, view))
	return nil
}

func cmdDump(sh *Shell, _ []string) error {
	fmt.Fprint(sh.out, sh.Render(sh.active, "dump"))
	return nil
}

func cmdCheck(sh *Shell, _ []string) error {
	if err := sh.Active().Validate(); err != nil {
		return errors.Wrapf(err, "set %s is corrupt", sh.active)
	}
	fmt.Fprintf(sh.out, "%s ok: %d keys, height %d\n", sh.active, sh.Active().Len(), sh.Active().Height())
	return nil
}

func cmdYank(sh *Shell, _ []string) error {
	if err := sh.clip(sh.Render(sh.active, "dump")); err != nil {
		return errors.Wrap(err, "copying to clipboard")
	}
	fmt.Fprintf(sh.out, "copied %s to clipboard\n", sh.active)
	return nil
}

func cmdUse(sh *Shell, args []string) error {
	name := strings.ToUpper(args[0])
	if _, ok := sh.sets[name]; !ok {
		return errors.Wrapf(ErrUsage, "no set named %q, choose one of %s", args[0], strings.Join(setNames, ", "))
	}
	sh.active = name
	return nil
}

func (sh *Shell) other() string {
	if sh.active == setNames[0] {
		return setNames[1]
	}
	return setNames[0]
}

func cmdCopy(sh *Shell, _ []string) error {
	dst := sh.other()
	sh.sets[dst] = sh.Active().Clone()
	sh.filters[dst].rebuild(sh.sets[dst].InOrder())
	sh.renders.invalidate(dst)
	fmt.Fprintf(sh.out, "copied %s to %s\n", sh.active, dst)
	return nil
}

func cmdSwap(sh *Shell, _ []string) error {
	a, b := setNames[0], setNames[1]
	sh.sets[a].Swap(sh.sets[b])
	sh.filters[a], sh.filters[b] = sh.filters[b], sh.filters[a]
	sh.renders.invalidate(a)
	sh.renders.invalidate(b)
	fmt.Fprintf(sh.out, "swapped %s and %s\n", a, b)
	sh.echoTree()
	return nil
}

func algebra(symbol string, op func(a, b *set.Set[int]) *set.Set[int]) func(*Shell, []string) error {
	return func(sh *Shell, _ []string) error {
		a, b := setNames[0], setNames[1]
		result := op(sh.sets[a], sh.sets[b])
		fmt.Fprintf(sh.out, "%s %s %s: ", a, symbol, b)
		if err := result.Format(sh.out, set.OrderIn); err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "(%d keys)\n", result.Len())
		return nil
	}
}

func cmdFill(sh *Shell, args []string) error {
	bounds, err := parseKeys(args)
	if err != nil {
		return err
	}
	lo, hi := bounds[0], bounds[1]
	if lo > hi {
		return errors.Wrapf(ErrUsage, "fill %d %d: LO is greater than HI", lo, hi)
	}
	// lo <= hi, so the unsigned difference is the exact span even when
	// hi-lo overflows int.
	if uint64(hi)-uint64(lo) >= maxFill {
		return errors.Wrapf(ErrUsage, "fill spans more than %s keys", humanize.Comma(maxFill))
	}

	var bar *progressbar.ProgressBar
	if sh.opts.Progress {
		bar = progressbar.NewOptions(hi-lo+1,
			progressbar.OptionSetWriter(sh.out),
			progressbar.OptionSetDescription(fmt.Sprintf("filling %s", sh.active)),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}

	added := 0
	for k := lo; ; k++ {
		if sh.insert(k) {
			added++
		}
		if bar != nil {
			bar.Add(1)
		}
		if k == hi {
			break
		}
	}
	if bar != nil {
		bar.Finish()
		fmt.Fprintln(sh.out)
	}
	sh.changed()
	fmt.Fprintf(sh.out, "added %s keys\n", humanize.Comma(int64(added)))
	sh.echoTree()
	return nil
}

func cmdHelp(sh *Shell, _ []string) error {
	for _, c := range commands {
		names := c.usage
		if len(c.aliases) > 0 {
			names = fmt.Sprintf("%s (%s)", c.usage, strings.Join(c.aliases, ", "))
		}
		fmt.Fprintf(sh.out, "  %-40s %s\n", names, c.summary)
	}
	return nil
}

// Commands lists the command names with their summaries, in help order.
func Commands() [][2]string {
	list := make([][2]string, 0, len(commands))
	for _, c := range commands {
		list = append(list, [2]string{c.usage, c.summary})
	}
	return list
}
