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
	"bytes"
	"strings"
	"testing"
)

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	if err := runDemo(&buf, 7, false); err != nil {
		t.Fatalf("runDemo: %v", err)
	}
	out := buf.String()

	expected := []string{
		"insert 7",
		"in:    1 2 3 4 5 6 7 \n",
		"pre:   4 2 1 3 6 5 7 \n",
		"post:  1 3 2 5 7 6 4 \n",
		"level: 4 2 6 1 3 5 7 \n",
		"size: 7\n",
		"contains 5: true\n",
		"max: 7\n",
		"min: 1\n",
	}
	for _, want := range expected {
		if !strings.Contains(out, want) {
			t.Errorf("demo output missing %q\n%s", want, out)
		}
	}
}

func TestRunDemoQuiet(t *testing.T) {
	var buf bytes.Buffer
	if err := runDemo(&buf, 3, true); err != nil {
		t.Fatalf("runDemo: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "insert 1") {
		t.Errorf("quiet demo should not draw each step:\n%s", out)
	}
	if !strings.Contains(out, "contains 5: false") {
		t.Errorf("demo output missing query results:\n%s", out)
	}
}
