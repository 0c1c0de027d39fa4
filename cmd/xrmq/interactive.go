package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/xrm"
	"github.com/wippyai/xrm/cache"
	"github.com/wippyai/xrm/database"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	patternStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateBrowse modelState = iota
	stateInputQuery
	stateShowResult
)

type entryInfo struct {
	pattern string
	value   string
}

type interactiveModel struct {
	err      error
	db       *database.Database
	resolver *cache.Resolver
	entries  []entryInfo
	inputs   []textinput.Model
	selected int
	focusIdx int
	result   string
	state    modelState
}

func newInteractiveModel(db *database.Database) *interactiveModel {
	return &interactiveModel{
		db:    db,
		state: stateBrowse,
	}
}

type setupMsg struct {
	err      error
	resolver *cache.Resolver
	entries  []entryInfo
}

type queryResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.setup
}

func (m *interactiveModel) setup() tea.Msg {
	resolver, err := cache.NewResolver(m.db, cache.Config{
		LifeWindow: time.Minute,
	})
	if err != nil {
		return setupMsg{err: err}
	}

	var entries []entryInfo
	m.db.Each(func(e database.Entry) bool {
		entries = append(entries, entryInfo{
			pattern: e.Pattern().String(),
			value:   e.Value(),
		})
		return true
	})

	return setupMsg{resolver: resolver, entries: entries}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, m.quit()

		case "q":
			// typing "q" in a query field must not quit
			if m.state != stateInputQuery {
				return m, m.quit()
			}

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.entries)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateBrowse:
				m.prepareInputs()
				m.state = stateInputQuery

			case stateInputQuery:
				return m, m.runQuery

			case stateShowResult:
				m.state = stateBrowse
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputQuery {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputQuery:
				m.state = stateBrowse
				m.inputs = nil
			case stateShowResult:
				m.state = stateBrowse
				m.result = ""
				m.err = nil
			}
		}

	case setupMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.resolver = msg.resolver
		m.entries = msg.entries

	case queryResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputQuery {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) quit() tea.Cmd {
	if m.resolver != nil {
		m.resolver.Close()
	}
	return tea.Quit
}

func (m *interactiveModel) prepareInputs() {
	m.inputs = make([]textinput.Model, 2)

	name := textinput.New()
	name.Placeholder = "app.window.background"
	name.Prompt = "name:  "
	name.Width = 50
	name.Focus()
	m.inputs[0] = name

	class := textinput.New()
	class.Placeholder = "App.Window.Background (optional)"
	class.Prompt = "class: "
	class.Width = 50
	m.inputs[1] = class

	m.focusIdx = 0
}

func (m *interactiveModel) runQuery() tea.Msg {
	name := strings.TrimSpace(m.inputs[0].Value())
	class := strings.TrimSpace(m.inputs[1].Value())

	res, err := m.resolver.Resolve(name, class)
	if err != nil {
		return queryResultMsg{err: err}
	}
	defer res.Close()

	var b strings.Builder
	fmt.Fprintf(&b, "value: %s\n", res.Value())
	if n := res.Int64(); n != xrm.InvalidInt {
		fmt.Fprintf(&b, "int:   %d\n", n)
	}
	fmt.Fprintf(&b, "bool:  %v", res.Bool())
	return queryResultMsg{result: b.String()}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.resolver == nil {
		return "Loading database..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("xrmq"))
	b.WriteString(fmt.Sprintf(" %d definitions\n\n", len(m.entries)))

	switch m.state {
	case stateBrowse:
		if len(m.entries) == 0 {
			b.WriteString("No definitions loaded. Pass -res to add some.\n")
		} else {
			b.WriteString("Database entries:\n\n")
			for i, e := range m.entries {
				cursor := "  "
				if i == m.selected {
					cursor = "> "
					b.WriteString(selectedStyle.Render(cursor + m.formatEntry(e)))
				} else {
					b.WriteString(cursor + m.formatEntry(e))
				}
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • enter query • q quit"))

	case stateInputQuery:
		b.WriteString("Query the database:\n\n")
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter run • esc back"))

	case stateShowResult:
		name := strings.TrimSpace(m.inputs[0].Value())
		b.WriteString(fmt.Sprintf("Result for %s:\n\n", patternStyle.Render(name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatEntry(e entryInfo) string {
	return patternStyle.Render(e.pattern) + ": " + valueStyle.Render(e.value)
}

func runInteractive(db *database.Database) error {
	p := tea.NewProgram(newInteractiveModel(db), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
