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

package main

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avlset/set"
)

// runDemo inserts 1..count into a fresh set, drawing the tree after every
// insert unless quiet, then prints the traversals and a few queries.
func runDemo(out io.Writer, count int, quiet bool) error {
	s := set.New[int]()

	var bar *progressbar.ProgressBar
	if quiet {
		bar = progressbar.NewOptions(count,
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("🌳 Inserting keys..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
		)
	}

	for k := 1; k <= count; k++ {
		s.Insert(k)
		if bar != nil {
			bar.Add(1)
			continue
		}
		fmt.Fprintf(out, "%sinsert %d%s\n", Green, k, Reset)
		if err := s.Dump(out); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	if bar != nil {
		bar.Finish()
		fmt.Fprintln(out)
	}

	for _, o := range []set.Order{set.OrderIn, set.OrderPre, set.OrderPost, set.OrderLevel} {
		fmt.Fprintf(out, "%-6s ", o.String()+":")
		if err := s.Format(out, o); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "size: %d\n", s.Len())
	fmt.Fprintf(out, "contains 5: %v\n", s.Contains(5))
	if hi, err := s.Max(); err == nil {
		fmt.Fprintf(out, "max: %d\n", hi)
	}
	if lo, err := s.Min(); err == nil {
		fmt.Fprintf(out, "min: %d\n", lo)
	}
	return nil
}
