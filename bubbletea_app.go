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
	"fmt"
	"strconv"
	"strings"

	"github.com/anacrolix/log"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/avlset/shell"
)

// maxListedKeys caps the in-order list; the tree view still shows every key.
const maxListedKeys = 1000

type focusArea int

const (
	focusInput focusArea = iota
	focusKeys
	focusTree
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	input    textinput.Model
	keysList list.Model
	treeView viewport.Model

	sh     *shell.Shell
	output *bytes.Buffer
	logger log.Logger

	focus      focusArea
	status     string
	statusErr  bool
	showHelp   bool
	showOutput bool // treeView holds command output instead of the tree

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// keyItem is one row of the in-order key list.
type keyItem struct {
	key  int
	rank int
}

func (i keyItem) FilterValue() string { return strconv.Itoa(i.key) }
func (i keyItem) Title() string       { return strconv.Itoa(i.key) }
func (i keyItem) Description() string { return fmt.Sprintf("rank %d", i.rank) }

// InitialModel creates a model driving sh, whose output must go to output.
func InitialModel(sh *shell.Shell, output *bytes.Buffer) Model {
	ti := textinput.New()
	ti.Placeholder = "add 5 3 8, remove 3, succ 5, help..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 40

	keysList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	keysList.SetShowTitle(false)
	keysList.SetShowHelp(false)
	keysList.SetFilteringEnabled(false)

	treeView := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		input:           ti,
		keysList:        keysList,
		treeView:        treeView,
		sh:              sh,
		output:          output,
		logger:          logger.WithNames("tui"),
		focus:           focusInput,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.refresh()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.focus = (m.focus + 1) % 3
			if m.focus == focusInput {
				m.input.Focus()
			} else {
				m.input.Blur()
			}
			return m, nil
		case "f1":
			m.showHelp = !m.showHelp
			m.refresh()
			return m, nil
		case "ctrl+y":
			return m.execute("yank")
		case "enter":
			if m.focus == focusInput {
				line := m.input.Value()
				m.input.SetValue("")
				return m.execute(line)
			}
		}

		switch m.focus {
		case focusInput:
			m.input, cmd = m.input.Update(msg)
		case focusKeys:
			m.keysList, cmd = m.keysList.Update(msg)
		case focusTree:
			m.treeView, cmd = m.treeView.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

// execute runs a shell line and shows its output: one-line results in the
// status bar, longer ones in the tree pane until the next command.
func (m Model) execute(line string) (tea.Model, tea.Cmd) {
	m.output.Reset()
	quit, err := m.sh.Exec(line)
	if quit {
		return m, tea.Quit
	}

	text := strings.TrimRight(m.output.String(), "\n")
	m.showOutput = false
	m.statusErr = err != nil
	switch {
	case err != nil:
		m.status = err.Error()
		m.logger.Levelf(log.Debug, "command %q: %v", line, err)
	case strings.Contains(text, "\n"):
		m.status = ""
		m.showOutput = true
		m.treeView.SetContent(text)
	default:
		m.status = lastLine(text)
	}
	if !m.showOutput {
		m.refresh()
	} else {
		m.refreshKeys()
	}
	return m, nil
}

func lastLine(text string) string {
	if i := strings.LastIndex(text, "\n"); i >= 0 {
		return text[i+1:]
	}
	return text
}

// refresh reloads the key list and the tree pane from the active set.
func (m *Model) refresh() {
	m.refreshKeys()
	if m.showHelp {
		help := usageMarkdown()
		if m.glamourRenderer != nil {
			if rendered, err := m.glamourRenderer.Render(help); err == nil {
				help = rendered
			}
		}
		m.treeView.SetContent(help)
		return
	}
	m.treeView.SetContent(m.sh.Render(m.sh.ActiveName(), "dump"))
}

func (m *Model) refreshKeys() {
	keys := m.sh.Active().InOrder()
	if len(keys) > maxListedKeys {
		keys = keys[:maxListedKeys]
	}
	items := make([]list.Item, len(keys))
	for i, k := range keys {
		items[i] = keyItem{key: k, rank: i + 1}
	}
	m.keysList.SetItems(items)
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 8
	leftWidth := (m.width / 3) - 1
	rightWidth := m.width - leftWidth - 3

	m.input.Width = leftWidth - 4
	m.keysList.SetSize(leftWidth-2, listHeight-2)
	m.treeView.Width = rightWidth - 2
	m.treeView.Height = inputHeight + listHeight
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 8
	leftWidth := (m.width / 3) - 1
	rightWidth := m.width - leftWidth - 3

	boxStyle := func(area focusArea) lipgloss.Style {
		if m.focus == area {
			return m.styles.BorderFocused
		}
		return m.styles.BorderBlurred
	}

	active := m.sh.ActiveName()
	inputBox := boxStyle(focusInput).
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(fmt.Sprintf(" ⌨ Command (set %s)", active)),
			m.input.View(),
		))

	keysBox := boxStyle(focusKeys).
		Width(leftWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(" 🔢 Keys in order "),
			m.keysList.View(),
		))

	treeTitle := fmt.Sprintf(" 🌳 Set %s: %d keys, height %d ", active, m.sh.Active().Len(), m.sh.Active().Height())
	if m.showHelp {
		treeTitle = " 📖 Help "
	} else if m.showOutput {
		treeTitle = " 📋 Output "
	}
	treeBox := boxStyle(focusTree).
		Width(rightWidth).
		Height(listHeight + inputHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(treeTitle),
			m.treeView.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, keysBox),
		treeBox,
	)

	status := m.styles.SuccessMessage.Render(m.status)
	if m.statusErr {
		status = m.styles.ErrorMessage.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(status),
		m.renderHelpFooter(),
	)
}

func (m Model) renderHelpFooter() string {
	bindings := [][2]string{
		{"enter", "run command"},
		{"tab", "switch focus"},
		{"f1", "toggle help"},
		{"ctrl+y", "copy tree"},
		{"esc", "quit"},
	}

	var entries []string
	for _, b := range bindings {
		entries = append(entries, fmt.Sprintf("%s %s",
			m.styles.HelpKey.Render(b[0]),
			m.styles.HelpDesc.Render(b[1])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(entries, " • "))
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(sh *shell.Shell, output *bytes.Buffer) error {
	program := tea.NewProgram(
		InitialModel(sh, output),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
