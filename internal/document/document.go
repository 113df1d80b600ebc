// Package document reads the prompt text either from a file or from stdin.
package document

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/evgfitil/cbsub/internal/template"
)

// StdinPath is the path argument that selects stdin.
const StdinPath = "-"

const maxStdinSize = 4 << 20 // 4MB

// ErrTooLarge indicates piped input exceeds the size limit.
var ErrTooLarge = errors.New("stdin input too large (max 4MB)")

// Reader reads documents from files or from its stdin.
type Reader struct {
	stdin io.Reader
}

// New creates a Reader that uses stdin for the "-" path.
// Pass os.Stdin for normal operation.
func New(stdin io.Reader) *Reader {
	return &Reader{stdin: stdin}
}

// IsPiped returns true if stdin is not a terminal.
func (r *Reader) IsPiped() bool {
	if r.stdin == nil {
		return false
	}
	if f, ok := r.stdin.(*os.File); ok {
		return !term.IsTerminal(int(f.Fd()))
	}
	return true
}

// Read returns the document at path, or stdin content when path is "-".
// The text is returned unmodified.
func (r *Reader) Read(path string) (string, error) {
	if path == StdinPath {
		text, err := r.readStdin()
		if err != nil {
			return "", template.InputUnavailable("<stdin>", err)
		}
		return text, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", template.InputUnavailable(path, err)
	}
	return string(data), nil
}

func (r *Reader) readStdin() (string, error) {
	if r.stdin == nil {
		return "", errors.New("stdin is not available")
	}

	limited := io.LimitReader(r.stdin, int64(maxStdinSize)+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return "", err
	}
	if len(data) > maxStdinSize {
		return "", ErrTooLarge
	}
	return string(data), nil
}
