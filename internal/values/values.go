// Package values loads keyed substitutions from a YAML file.
//
// The file is a flat mapping of variable names to scalar values:
//
//	name: Alice
//	code: "0042"
//	date: 2024-01-31
//
// Scalars are taken exactly as written, so 0042 stays "0042".
package values

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/evgfitil/cbsub/internal/template"
)

// Load reads the values file at path.
func Load(path string) (template.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, template.InputUnavailable(path, err)
	}
	m, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("values file %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a values document from r.
func Parse(r io.Reader) (template.Mapping, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return template.Mapping{}, nil
		}
		return nil, &template.Error{Kind: template.KindFormat, Message: "invalid YAML", Cause: err}
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return template.Mapping{}, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, &template.Error{
			Kind:    template.KindFormat,
			Message: fmt.Sprintf("line %d: expected a mapping of variable names to values", root.Line),
		}
	}

	m := make(template.Mapping, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		key, value, err := entry(k, v)
		if err != nil {
			return nil, err
		}
		m[key] = value
	}
	return m, nil
}

// entry converts one key/value pair, reusing the key=value parser so file
// entries obey the same rules as -s flags.
func entry(k, v *yaml.Node) (string, string, error) {
	if k.Kind != yaml.ScalarNode || strings.Contains(k.Value, "=") {
		return "", "", &template.Error{
			Kind:    template.KindFormat,
			Message: fmt.Sprintf("line %d: invalid variable name %q", k.Line, k.Value),
		}
	}
	if v.Kind != yaml.ScalarNode {
		return "", "", &template.Error{
			Kind:    template.KindFormat,
			Message: fmt.Sprintf("line %d: value for %q must be a scalar", v.Line, k.Value),
		}
	}

	value := v.Value
	if v.Tag == "!!null" {
		value = ""
	}
	return template.ParseEntry(k.Value + "=" + value)
}
