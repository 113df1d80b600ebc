package form

import "github.com/evgfitil/cbsub/internal/template"

// Result represents the outcome of the form.
type Result interface {
	isResult()
}

// CancelledResult indicates the user left the form with Esc or Ctrl+C.
type CancelledResult struct{}

func (CancelledResult) isResult() {}

// FilledResult holds the values the user entered. Fields left blank are
// absent, so their placeholders stay in the output.
type FilledResult struct {
	Values template.Mapping
}

func (FilledResult) isResult() {}
