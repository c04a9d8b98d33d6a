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
	"runtime"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"

	"github.com/cybrota/avlset/shell"
)

// commandsMarkdown lists the shell commands as a markdown table.
func commandsMarkdown() string {
	var b strings.Builder
	b.WriteString("| Command | Does |\n|---|---|\n")
	for _, c := range shell.Commands() {
		fmt.Fprintf(&b, "| `%s` | %s |\n", strings.ReplaceAll(c[0], "|", "\\|"), c[1])
	}
	return b.String()
}

func usageMarkdown() string {
	return fmt.Sprintf(`
 **avlset %s**

An ordered set of integers backed by a self-balancing AVL tree, with an
interactive shell to add, remove and query keys and to watch the tree rebalance.

Built with Go %s

# 1. Commands
* ` + "`" + `avlset shell [KEY...]` + "`" + ` line-oriented shell (default)
* ` + "`" + `avlset tui [KEY...]` + "`" + ` full-screen shell with a live tree view
* ` + "`" + `avlset demo` + "`" + ` inserts 1..N and prints the tree after every step
* ` + "`" + `avlset stats [KEY...]` + "`" + ` nodes-per-depth dashboard
* ` + "`" + `avlset settings` + "`" + ` shows or creates ~/.avlset.yaml

# 2. Shell commands
The shell keeps two sets, A and B. Mutations and queries work on the active
one; algebra commands combine both.

%s

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), commandsMarkdown())
}

func getHelpMessage() string {
	result := markdown.Render(usageMarkdown(), 80, 3)
	return string(result)
}
