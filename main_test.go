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
	"strings"
	"testing"
)

func TestParseKeyArgs(t *testing.T) {
	keys, err := parseKeyArgs([]string{"5", "-3", "8"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 3 || keys[0] != 5 || keys[1] != -3 || keys[2] != 8 {
		t.Errorf("parseKeyArgs = %v", keys)
	}

	if _, err := parseKeyArgs([]string{"5", "five"}); err == nil {
		t.Error("expected error for non-integer key")
	}
}

func TestInitialKeysFallsBackToConfig(t *testing.T) {
	config := defaultConfig
	config.Shell.InitialKeys = []int{4, 2}
	keys := initialKeys(&config, nil)
	if len(keys) != 2 || keys[0] != 4 {
		t.Errorf("initialKeys = %v; want configured keys", keys)
	}

	keys = initialKeys(&config, []string{"9"})
	if len(keys) != 1 || keys[0] != 9 {
		t.Errorf("initialKeys = %v; want command-line keys", keys)
	}
}

func TestUsageListsShellCommands(t *testing.T) {
	md := commandsMarkdown()
	for _, name := range []string{"add KEY...", "succ KEY", "fill LO HI", "use A\\|B"} {
		if !strings.Contains(md, name) {
			t.Errorf("usage table missing %q", name)
		}
	}
	if getHelpMessage() == "" {
		t.Error("rendered help is empty")
	}
}
