package template

import (
	"errors"
	"fmt"
)

// Kind classifies a substitution failure.
type Kind string

const (
	KindFormat            Kind = "format"
	KindMissingValue      Kind = "missing_value"
	KindAmbiguousSource   Kind = "ambiguous_source"
	KindNoVariables       Kind = "no_variables"
	KindMultipleVariables Kind = "multiple_variables"
	KindInputUnavailable  Kind = "input_unavailable"
)

// Error is the error type returned by the substitution core.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// InputUnavailable wraps a failure to read the document at path.
func InputUnavailable(path string, cause error) error {
	return &Error{
		Kind:    KindInputUnavailable,
		Message: fmt.Sprintf("could not read file %q", path),
		Cause:   cause,
	}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
