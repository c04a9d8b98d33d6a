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
	"strings"

	"github.com/dustin/go-humanize"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"

	"github.com/cybrota/avlset/set"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// depthCounts returns the number of nodes at each depth, root first.
func depthCounts(s *set.Set[int]) []float64 {
	levels := s.Levels()
	counts := make([]float64, len(levels))
	for i, level := range levels {
		counts[i] = float64(len(level))
	}
	return counts
}

func statsSummary(s *set.Set[int]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "keys:   %s\n", humanize.Comma(int64(s.Len())))
	fmt.Fprintf(&b, "height: %d\n", s.Height())

	lo, err := s.Min()
	if err != nil {
		b.WriteString("min:    -\nmax:    -\n")
		return b.String()
	}
	hi, _ := s.Max()
	fmt.Fprintf(&b, "min:    %s\n", humanize.Comma(int64(lo)))
	fmt.Fprintf(&b, "max:    %s\n", humanize.Comma(int64(hi)))

	counts := depthCounts(s)
	full := 0
	for depth, c := range counts {
		if int(c) == 1<<depth {
			full++
		}
	}
	fmt.Fprintf(&b, "full levels: %d of %d\n", full, len(counts))
	return b.String()
}

// runStats shows a bar chart of nodes per depth until q, Esc or Ctrl-C.
func runStats(s *set.Set[int]) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	defer ui.Close()
	DisableMouseInput()

	scheme := GetColorScheme()

	chart := widgets.NewBarChart()
	chart.Title = " Nodes per depth "
	chart.TitleStyle = ui.NewStyle(scheme.Title)
	chart.BorderStyle = ui.NewStyle(scheme.Border)
	chart.Data = depthCounts(s)
	chart.Labels = make([]string, len(chart.Data))
	for i := range chart.Labels {
		chart.Labels[i] = fmt.Sprintf("d%d", i)
	}
	chart.BarWidth = 5
	chart.BarColors = []ui.Color{scheme.Bar}
	chart.LabelStyles = []ui.Style{ui.NewStyle(scheme.Label)}
	chart.NumStyles = []ui.Style{ui.NewStyle(scheme.OnBar)}

	summary := widgets.NewParagraph()
	summary.Title = " Summary "
	summary.TitleStyle = ui.NewStyle(scheme.Title)
	summary.BorderStyle = ui.NewStyle(scheme.Border)
	summary.TextStyle = ui.NewStyle(scheme.Text)
	summary.Text = statsSummary(s)

	hint := widgets.NewParagraph()
	hint.Border = false
	hint.TextStyle = ui.NewStyle(scheme.TextMuted)
	hint.Text = "q: quit"

	grid := ui.NewGrid()
	termWidth, termHeight := ui.TerminalDimensions()
	grid.SetRect(0, 0, termWidth, termHeight)
	grid.Set(
		ui.NewRow(0.65, chart),
		ui.NewRow(0.3, summary),
		ui.NewRow(0.05, hint),
	)
	ui.Render(grid)

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<Escape>", "<C-c>":
			return nil
		case "<Resize>":
			payload := e.Payload.(ui.Resize)
			grid.SetRect(0, 0, payload.Width, payload.Height)
			ui.Clear()
			ui.Render(grid)
		}
	}
	return nil
}
