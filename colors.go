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
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
)

// ANSI escapes for plain terminal output, set by initColors.
var (
	Green, Info, Warning, Error, Reset string
)

// ColorScheme holds the termui colors of the stats dashboard.
type ColorScheme struct {
	Bar       ui.Color
	OnBar     ui.Color
	Label     ui.Color
	Border    ui.Color
	Title     ui.Color
	Text      ui.Color
	TextMuted ui.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// detectTerminalMode guesses light or dark from COLORFGBG and theme variables.
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			switch parts[len(parts)-1] {
			case "0", "8", "16":
				return TerminalModeDark
			case "15", "7", "255":
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(env))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Bar:       ui.Color(4), // Dark Blue
		OnBar:     ui.ColorWhite,
		Label:     ui.ColorBlack,
		Border:    ui.Color(8),
		Title:     ui.Color(4),
		Text:      ui.ColorBlack,
		TextMuted: ui.Color(240),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Bar:       ui.Color(6), // Cyan
		OnBar:     ui.ColorBlack,
		Label:     ui.ColorWhite,
		Border:    ui.Color(240),
		Title:     ui.Color(14), // Bright Cyan
		Text:      ui.ColorWhite,
		TextMuted: ui.Color(245),
	}
}

// initColors detects the terminal mode and sets the scheme and ANSI escapes.
func initColors() {
	detectedMode = detectTerminalMode()

	if detectedMode == TerminalModeLight {
		currentColorScheme = createLightColorScheme()
	} else {
		currentColorScheme = createDarkColorScheme()
	}
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// GetColorScheme returns the current color scheme
func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		initColors()
	}
	return currentColorScheme
}

// GetANSIColors returns escapes tuned to the detected mode: darker colors on
// light terminals, brighter ones on dark terminals.
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}

	reset = "\033[0m"
	return
}
