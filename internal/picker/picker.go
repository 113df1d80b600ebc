package picker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/evgfitil/cbsub/internal/template"
)

// ErrAborted indicates user cancelled selection
var ErrAborted = errors.New("selection aborted")

// ErrNoPrompts indicates the prompts directory has no files to pick from.
var ErrNoPrompts = errors.New("no prompt files found")

// find is replaced in tests.
var find = func(items []string, opts ...fuzzyfinder.Option) (int, error) {
	return fuzzyfinder.Find(items, func(i int) string { return items[i] }, opts...)
}

// List returns the prompt files under dir as slash-separated paths
// relative to dir, sorted. Hidden files and directories are skipped.
func List(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return relErr
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w in %s", ErrNoPrompts, dir)
		}
		return nil, fmt.Errorf("listing prompts: %w", err)
	}
	slices.Sort(files)
	return files, nil
}

// Pick displays an fzf-style picker over the prompt files in dir and
// returns the full path of the selected file.
func Pick(dir string) (string, error) {
	files, err := List(dir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoPrompts, dir)
	}

	if len(files) == 1 {
		return filepath.Join(dir, filepath.FromSlash(files[0])), nil
	}

	idx, err := find(files,
		fuzzyfinder.WithPromptString("prompt> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i < 0 {
				return ""
			}
			return preview(filepath.Join(dir, filepath.FromSlash(files[i])))
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", ErrAborted
		}
		return "", err
	}

	return filepath.Join(dir, filepath.FromSlash(files[idx])), nil
}

// preview renders the variable list followed by the file content.
func preview(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("cannot read %s: %v", path, err)
	}
	text := string(data)

	vars := template.Extract(text).Sorted()
	header := "variables: none"
	if len(vars) > 0 {
		header = "variables: " + strings.Join(vars, ", ")
	}
	return header + "\n\n" + text
}
