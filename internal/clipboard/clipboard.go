// Package clipboard places text on the system clipboard.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrUnsupported indicates no clipboard mechanism is available.
var ErrUnsupported = errors.New("no clipboard utility found (install xclip, xsel or wl-clipboard, or set clipboard.command)")

// Sink accepts text for the clipboard.
type Sink interface {
	Copy(text string) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(text string) error

func (f SinkFunc) Copy(text string) error { return f(text) }

type systemSink struct{}

func (systemSink) Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard copy failed: %w", err)
	}
	return nil
}

// commandSink pipes text into an external program.
type commandSink struct {
	name string
	args []string
}

func (c commandSink) Copy(text string) error {
	cmd := exec.Command(c.name, c.args...)
	cmd.Stdin = strings.NewReader(text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("clipboard copy via %s failed: %w: %s", c.name, err, msg)
		}
		return fmt.Errorf("clipboard copy via %s failed: %w", c.name, err)
	}
	return nil
}

func (c commandSink) String() string {
	return strings.Join(append([]string{c.name}, c.args...), " ")
}

// candidates are tried in order when the system clipboard library is unusable.
var candidates = []commandSink{
	{name: "pbcopy"},
	{name: "wl-copy"},
	{name: "xclip", args: []string{"-selection", "clipboard"}},
	{name: "xsel", args: []string{"--clipboard", "--input"}},
	{name: "clip"},
}

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// New selects a Sink. A non-empty command overrides detection and is split
// on whitespace into program and arguments.
func New(command string) (Sink, error) {
	if fields := strings.Fields(command); len(fields) > 0 {
		if _, err := lookPath(fields[0]); err != nil {
			return nil, fmt.Errorf("clipboard command %q: %w", fields[0], err)
		}
		return commandSink{name: fields[0], args: fields[1:]}, nil
	}

	if !clipboard.Unsupported {
		return systemSink{}, nil
	}

	for _, c := range candidates {
		if _, err := lookPath(c.name); err == nil {
			return c, nil
		}
	}
	return nil, ErrUnsupported
}

// Describe returns a short name for the sink, for logs.
func Describe(s Sink) string {
	switch v := s.(type) {
	case systemSink:
		return "system"
	case commandSink:
		return v.String()
	default:
		return fmt.Sprintf("%T", s)
	}
}
