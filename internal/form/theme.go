package form

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors of the form.
type Theme struct {
	Prompt   string
	LabelFg  string
	FocusFg  string
	MutedFg  string
	renderer *lipgloss.Renderer
}

// WithRenderer returns a copy of the theme with the given renderer set.
// The renderer determines which output the styles render to, so colors stay
// correct when the form draws on /dev/tty while stdout is redirected.
func (t Theme) WithRenderer(r *lipgloss.Renderer) Theme {
	t.renderer = r
	return t
}

func (t Theme) newStyle() lipgloss.Style {
	if t.renderer != nil {
		return t.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// DefaultTheme returns the default form colors.
func DefaultTheme() Theme {
	return Theme{
		Prompt:  "> ",
		LabelFg: "252",
		FocusFg: "205",
		MutedFg: "241",
	}
}

// LabelStyle returns the style for variable names of unfocused fields.
func (t Theme) LabelStyle() lipgloss.Style {
	return t.newStyle().Foreground(lipgloss.Color(t.LabelFg))
}

// FocusStyle returns the style for the focused field's name and prompt.
func (t Theme) FocusStyle() lipgloss.Style {
	return t.newStyle().Foreground(lipgloss.Color(t.FocusFg)).Bold(true)
}

// MutedStyle returns the style for help text and placeholders.
func (t Theme) MutedStyle() lipgloss.Style {
	return t.newStyle().Foreground(lipgloss.Color(t.MutedFg))
}
