package form

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/evgfitil/cbsub/internal/template"
)

type field struct {
	name  string
	input textinput.Model
}

// Model is a bubbletea model with one text input per variable.
type Model struct {
	fields    []field
	focus     int
	theme     Theme
	labelW    int
	submitted bool
	cancelled bool
}

// NewModel creates a form asking for the given variable names, in order.
func NewModel(names []string, theme Theme) Model {
	m := Model{theme: theme}
	for _, name := range names {
		ti := textinput.New()
		ti.Prompt = theme.Prompt
		ti.Placeholder = "leave blank to keep {{" + name + "}}"
		ti.PlaceholderStyle = theme.MutedStyle()
		ti.PromptStyle = theme.LabelStyle()
		m.fields = append(m.fields, field{name: name, input: ti})
		m.labelW = max(m.labelW, len(name))
	}
	if len(m.fields) > 0 {
		m.setFocus(0)
	}
	return m
}

func (m *Model) setFocus(i int) {
	m.fields[m.focus].input.Blur()
	m.fields[m.focus].input.PromptStyle = m.theme.LabelStyle()
	m.focus = i
	m.fields[i].input.Focus()
	m.fields[i].input.PromptStyle = m.theme.FocusStyle()
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.fields) == 0 {
		m.submitted = true
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		for i := range m.fields {
			m.fields[i].input.Width = max(msg.Width-m.labelW-len(m.theme.Prompt)-4, 10)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyEnter:
			if m.focus == len(m.fields)-1 {
				m.submitted = true
				return m, tea.Quit
			}
			m.setFocus(m.focus + 1)
			return m, nil

		case tea.KeyTab, tea.KeyDown:
			m.setFocus((m.focus + 1) % len(m.fields))
			return m, nil

		case tea.KeyShiftTab, tea.KeyUp:
			m.setFocus((m.focus - 1 + len(m.fields)) % len(m.fields))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	for i, f := range m.fields {
		label := fmt.Sprintf("%-*s ", m.labelW, f.name)
		if i == m.focus {
			b.WriteString(m.theme.FocusStyle().Render(label))
		} else {
			b.WriteString(m.theme.LabelStyle().Render(label))
		}
		b.WriteString(f.input.View())
		b.WriteString("\n")
	}
	b.WriteString(m.theme.MutedStyle().Render(
		fmt.Sprintf("  %d/%d  enter next/submit · tab/shift+tab move · esc cancel", m.focus+1, len(m.fields))))
	b.WriteString("\n")
	return b.String()
}

// Result returns the outcome of the form.
func (m Model) Result() Result {
	if m.cancelled || !m.submitted {
		return CancelledResult{}
	}
	values := make(template.Mapping, len(m.fields))
	for _, f := range m.fields {
		if v := f.input.Value(); v != "" {
			values[f.name] = v
		}
	}
	return FilledResult{Values: values}
}
