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

// Package shell interprets a small line-oriented command language over two
// named integer sets, A and B.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/anacrolix/log"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"

	"github.com/cybrota/avlset/set"
)

var (
	// ErrUnknownCommand is returned for a command name the shell does not know.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage is returned when a command gets the wrong number or kind of
	// arguments. Such input never reaches the set.
	ErrUsage = errors.New("bad arguments")
)

var setNames = []string{"A", "B"}

// Options tune the shell's interaction.
type Options struct {
	Prompt       string
	ConfirmClear bool          // ask before clearing the active set
	ShowTree     bool          // dump the active set after each mutation
	Progress     bool          // draw progress bars for bulk inserts
	CacheTTL     time.Duration // lifetime of rendered views
}

// Shell holds the sets and the I/O streams of one session.
type Shell struct {
	opts    Options
	in      *bufio.Scanner
	out     io.Writer
	logger  log.Logger
	parser  *shellwords.Parser
	sets    map[string]*set.Set[int]
	filters map[string]*membershipFilter
	active  string
	renders *renderCache
	clip    func(string) error
}

// New returns a shell reading commands from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options, logger log.Logger) *Shell {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	sh := &Shell{
		opts:    opts,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger.WithNames("shell"),
		parser:  shellwords.NewParser(),
		sets:    make(map[string]*set.Set[int]),
		filters: make(map[string]*membershipFilter),
		active:  setNames[0],
		renders: newRenderCache(opts.CacheTTL),
		clip:    copyToClipboard,
	}
	for _, name := range setNames {
		sh.sets[name] = set.New[int]()
		sh.filters[name] = newMembershipFilter()
	}
	return sh
}

// Active returns the set commands currently operate on.
func (sh *Shell) Active() *set.Set[int] { return sh.sets[sh.active] }

// ActiveName returns the name of the active set.
func (sh *Shell) ActiveName() string { return sh.active }

// Set returns the named set, or nil.
func (sh *Shell) Set(name string) *set.Set[int] { return sh.sets[strings.ToUpper(name)] }

// Load inserts keys into the active set without echoing.
func (sh *Shell) Load(keys []int) {
	for _, k := range keys {
		sh.insert(k)
	}
	sh.changed()
}

// Run reads and executes lines until quit, end of input or ctx is done.
func (sh *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "%s ", sh.prompt())
		if !sh.in.Scan() {
			fmt.Fprintln(sh.out)
			return sh.in.Err()
		}
		line := sh.in.Text()
		quit, err := sh.Exec(line)
		if err != nil {
			fmt.Fprintf(sh.out, "error: %v\n", err)
			sh.logger.Levelf(log.Debug, "line %q: %v", line, err)
		}
		if quit {
			return nil
		}
	}
}

func (sh *Shell) prompt() string {
	if sh.opts.Prompt == "" {
		return fmt.Sprintf("%s>", sh.active)
	}
	return fmt.Sprintf("%s %s>", sh.opts.Prompt, sh.active)
}

// Exec runs one command line. It reports whether the line asked to quit.
func (sh *Shell) Exec(line string) (bool, error) {
	words, err := sh.parser.Parse(line)
	if err != nil {
		return false, errors.Wrap(ErrUsage, err.Error())
	}
	if len(words) == 0 {
		return false, nil
	}

	name, args := strings.ToLower(words[0]), words[1:]
	cmd, ok := lookupCommand(name)
	if !ok {
		return false, errors.Wrapf(ErrUnknownCommand, "%q (try help)", words[0])
	}
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return false, errors.Wrapf(ErrUsage, "usage: %s", cmd.usage)
	}
	if cmd.quit {
		return true, nil
	}
	return false, cmd.run(sh, args)
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrapf(ErrUsage, "%q is not an integer key", a)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func (sh *Shell) insert(k int) bool {
	if !sh.Active().Insert(k) {
		return false
	}
	sh.filters[sh.active].add(k)
	return true
}

// changed invalidates cached views of the active set.
func (sh *Shell) changed() {
	sh.renders.invalidate(sh.active)
	s := sh.Active()
	sh.logger.Levelf(log.Debug, "set %s: size %d, height %d", sh.active, s.Len(), s.Height())
}

func (sh *Shell) echoTree() {
	if sh.opts.ShowTree {
		fmt.Fprint(sh.out, sh.Render(sh.active, "dump"))
	}
}

// confirm asks a yes/no question on the input stream. "s" and "y" both
// answer yes.
func (sh *Shell) confirm(question string) bool {
	fmt.Fprintf(sh.out, "%s [s/n] ", question)
	if !sh.in.Scan() {
		fmt.Fprintln(sh.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(sh.in.Text())) {
	case "s", "sim", "y", "yes":
		return true
	}
	return false
}

// Render returns a cached textual view of the named set: "dump" or one of
// the traversal orders.
func (sh *Shell) Render(name, view string) string {
	name = strings.ToUpper(name)
	if text, ok := sh.renders.get(name, view); ok {
		return text
	}
	s, ok := sh.sets[name]
	if !ok {
		return ""
	}

	var b strings.Builder
	if view == "dump" {
		s.Dump(&b)
	} else {
		order, err := set.ParseOrder(view)
		if err != nil {
			return ""
		}
		s.Format(&b, order)
		b.WriteString("\n")
	}
	text := b.String()
	sh.renders.put(name, view, text)
	return text
}
