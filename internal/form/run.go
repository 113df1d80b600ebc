// Package form asks for variable values in an interactive terminal form.
package form

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/evgfitil/cbsub/internal/template"
)

// ErrCancelled indicates the user left the form without submitting.
var ErrCancelled = errors.New("form cancelled")

// saveTermState saves the current terminal state from /dev/tty and returns
// a function that restores it, in case bubbletea leaves raw mode behind.
func saveTermState() func() {
	f, err := os.Open("/dev/tty")
	if err != nil {
		return func() {}
	}
	state, err := term.GetState(int(f.Fd()))
	if err != nil {
		_ = f.Close()
		return func() {}
	}
	return func() {
		_ = term.Restore(int(f.Fd()), state)
		_ = f.Close()
	}
}

// openTTY opens /dev/tty for writing and creates a lipgloss renderer from it.
// Falls back to os.Stderr when /dev/tty is unavailable; stdout may be
// carrying the preview output.
// The caller must close the returned file when tty != os.Stderr.
func openTTY(theme Theme) (*os.File, Theme) {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return os.Stderr, theme.WithRenderer(lipgloss.NewRenderer(os.Stderr))
	}
	return tty, theme.WithRenderer(lipgloss.NewRenderer(tty))
}

// Run asks for a value for each name and returns the non-blank answers.
func Run(names []string, theme Theme) (template.Mapping, error) {
	if len(names) == 0 {
		return template.Mapping{}, nil
	}

	tty, theme := openTTY(theme)
	if tty != os.Stderr {
		defer tty.Close() //nolint:errcheck
	}

	restore := saveTermState()
	p := tea.NewProgram(NewModel(names, theme), tea.WithOutput(tty), tea.WithInputTTY())

	final, err := p.Run()
	restore()
	if err != nil {
		return nil, fmt.Errorf("form error: %w", err)
	}

	model, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type: %T", final)
	}

	switch r := model.Result().(type) {
	case FilledResult:
		return r.Values, nil
	case CancelledResult:
		return nil, ErrCancelled
	default:
		return nil, fmt.Errorf("unexpected result type: %T", r)
	}
}
