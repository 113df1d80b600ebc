package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/evgfitil/cbsub/internal/template"
)

// printVariables writes the sorted variable list. Names are colored only
// when styled is set and w supports color.
func printVariables(w io.Writer, vars template.VariableSet, styled bool) {
	if len(vars) == 0 {
		fmt.Fprintln(w, "No variables found in the prompt file.")
		return
	}

	name := func(s string) string { return s }
	if styled {
		style := lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("205"))
		name = func(s string) string { return style.Render(s) }
	}

	fmt.Fprintln(w, "Found variables:")
	for _, v := range vars.Sorted() {
		fmt.Fprintf(w, " - %s\n", name(v))
	}
}
