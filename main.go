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
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/anacrolix/log"
	"github.com/spf13/cobra"

	"github.com/cybrota/avlset/set"
	"github.com/cybrota/avlset/shell"
)

var version = "0.3.0"

// parseKeyArgs turns command-line arguments into integer keys.
func parseKeyArgs(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer key", a)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// initialKeys prefers keys given on the command line over the configured ones.
func initialKeys(config *Config, args []string) []int {
	if len(args) == 0 {
		return config.Shell.InitialKeys
	}
	keys, err := parseKeyArgs(args)
	if err != nil {
		logger.Levelf(log.Critical, "%v", err)
		os.Exit(1)
	}
	return keys
}

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		logger.Levelf(log.Warning, "Failed to load configuration: %v. Using default settings.", err)
	}
	configureLogging(config.Log.Level)
	return config
}

func main() {
	initColors()

	asciiLogo := `
 █████╗ ██╗   ██╗██╗     ███████╗███████╗████████╗
██╔══██╗██║   ██║██║     ██╔════╝██╔════╝╚══██╔══╝
███████║██║   ██║██║     ███████╗█████╗     ██║
██╔══██║╚██╗ ██╔╝██║     ╚════██║██╔══╝     ██║
██║  ██║ ╚████╔╝ ███████╗███████║███████╗   ██║
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚══════╝╚══════╝   ╚═╝
An ordered set on a self-balancing AVL tree [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	runShell := func(cmd *cobra.Command, args []string) {
		config := loadConfigOrDefault()
		sh := shell.New(os.Stdin, os.Stdout, shell.Options{
			Prompt:       config.Shell.Prompt,
			ConfirmClear: config.Shell.ConfirmClear,
			ShowTree:     config.Shell.ShowTree,
			Progress:     true,
			CacheTTL:     config.CacheTTL(),
		}, logger)
		sh.Load(initialKeys(config, args))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		fmt.Printf("%sType help for the command list, quit to leave.%s\n", Info, Reset)
		if err := sh.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Levelf(log.Error, "shell stopped: %v", err)
		}
	}

	var cmdShell = &cobra.Command{
		Use:   "shell [KEY...]",
		Short: "Start the interactive set shell",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Shell reads commands from standard input and applies them to two sets, A and B`),
		Args:  cobra.MinimumNArgs(0),
		Run:   runShell,
	}

	var cmdTUI = &cobra.Command{
		Use:   "tui [KEY...]",
		Short: "Start the full-screen shell with a live tree view",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `TUI runs the shell commands in a terminal UI that redraws the tree after every command`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			var output bytes.Buffer
			sh := shell.New(strings.NewReader(""), &output, shell.Options{
				CacheTTL: config.CacheTTL(),
			}, logger)
			sh.Load(initialKeys(config, args))

			if err := runBubbleTeaApp(sh, &output); err != nil {
				logger.Levelf(log.Critical, "Error running TUI: %v", err)
				os.Exit(1)
			}
		},
	}

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Insert 1..N and show the tree after every step",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Demo inserts the keys 1 to N into an empty set, printing the tree as it rebalances`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			count := config.Demo.Count
			if cmd.Flags().Changed("count") {
				count, _ = cmd.Flags().GetInt("count")
			}
			quiet, _ := cmd.Flags().GetBool("quiet")
			if count <= 0 {
				logger.Levelf(log.Critical, "count must be positive, got %d", count)
				os.Exit(1)
			}
			if err := runDemo(os.Stdout, count, quiet); err != nil {
				logger.Levelf(log.Error, "demo failed: %v", err)
			}
		},
	}
	cmdDemo.Flags().Int("count", 15, "number of keys to insert")
	cmdDemo.Flags().Bool("quiet", false, "show a progress bar instead of every tree")

	var cmdStats = &cobra.Command{
		Use:   "stats [KEY...]",
		Short: "Show how keys spread over the tree levels",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Stats builds a set from the given keys (or 1..N from the demo settings) and charts nodes per depth`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			keys := initialKeys(config, args)
			if len(keys) == 0 {
				for k := 1; k <= config.Demo.Count; k++ {
					keys = append(keys, k)
				}
			}
			s := set.Of(keys...)

			if plain, _ := cmd.Flags().GetBool("plain"); plain {
				fmt.Print(statsSummary(s))
				return
			}
			if err := runStats(s); err != nil {
				logger.Levelf(log.Critical, "Error running stats view: %v", err)
				os.Exit(1)
			}
		},
	}
	cmdStats.Flags().Bool("plain", false, "print the summary without the dashboard")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlset usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avlset CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Display current configuration, creating ~/.avlset.yaml with defaults if it is missing`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlset version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlset",
		Version: version,
		Long:    asciiLogo,
		Args:    cobra.MinimumNArgs(0),
		// Default to the shell when no subcommand is provided
		Run: runShell,
	}
	rootCmd.AddCommand(cmdShell, cmdTUI, cmdDemo, cmdStats, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
