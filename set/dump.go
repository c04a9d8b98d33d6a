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
	"fmt"
	"io"
	"strings"
)

// Dump writes the tree sideways: the right subtree above a node, the left one
// below it. Each line is prefixed by connectors tracing the path from the
// root; a node with a single child shows the missing one as "#".
func (s *Set[T]) Dump(w io.Writer) error {
	var b strings.Builder
	dumpNode(&b, s.root, "")
	_, err := io.WriteString(w, b.String())
	return err
}

// path holds one byte per edge from the root, 'r' or 'l'.
func dumpNode[T any](b *strings.Builder, n *node[T], path string) {
	inner := n != nil && (n.left != nil || n.right != nil)
	if inner {
		dumpNode(b, n.right, path+"r")
	}

	for i := 0; i < len(path)-1; i++ {
		if path[i] != path[i+1] {
			b.WriteString("│   ")
		} else {
			b.WriteString("    ")
		}
	}
	if path != "" {
		if path[len(path)-1] == 'r' {
			b.WriteString("┌───")
		} else {
			b.WriteString("└───")
		}
	}

	if n == nil {
		b.WriteString("#\n")
		return
	}
	fmt.Fprintf(b, "%v\n", n.key)

	if inner {
		dumpNode(b, n.left, path+"l")
	}
}

// String returns the output of Dump.
func (s *Set[T]) String() string {
	var b strings.Builder
	dumpNode(&b, s.root, "")
	return b.String()
}
