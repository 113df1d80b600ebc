// Package template extracts and substitutes {{variable}} placeholders.
//
// Variable names are case-insensitive: they are lower-cased on extraction
// and on lookup. Placeholders without a value in the mapping are left in the
// output exactly as written.
package template

import (
	"regexp"
	"slices"
	"strings"
)

// space is the Unicode White_Space set. RE2's \s only covers ASCII.
const space = `[\t\n\v\f\r \x{85}\x{A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}]`

// placeholderPattern matches {{ name }} with optional inner whitespace.
var placeholderPattern = regexp.MustCompile(`\{\{` + space + `*([A-Za-z0-9_]+)` + space + `*\}\}`)

// VariableSet holds distinct lower-cased variable names.
type VariableSet map[string]struct{}

// NewVariableSet builds a set from the given names, folding their case.
func NewVariableSet(names ...string) VariableSet {
	s := make(VariableSet, len(names))
	for _, n := range names {
		s[fold(n)] = struct{}{}
	}
	return s
}

// Sorted returns the names in lexical order.
func (s VariableSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Mapping maps lower-cased variable names to replacement values.
type Mapping map[string]string

// Missing returns the variables in vars that have no entry in m, sorted.
func (m Mapping) Missing(vars VariableSet) []string {
	var missing []string
	for _, name := range vars.Sorted() {
		if _, ok := m[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

func fold(name string) string {
	return strings.ToLower(name)
}

// Extract returns the set of variables referenced in text.
func Extract(text string) VariableSet {
	vars := make(VariableSet)
	for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		vars[fold(m[1])] = struct{}{}
	}
	return vars
}

// Process replaces every placeholder that has a value in mapping.
// Values are inserted literally and are not scanned again.
func Process(text string, mapping Mapping) string {
	matches := placeholderPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, loc := range matches {
		start, end := loc[0], loc[1]
		name := fold(text[loc[2]:loc[3]])

		b.WriteString(text[last:start])
		if value, ok := mapping[name]; ok {
			b.WriteString(value)
		} else {
			b.WriteString(text[start:end])
		}
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}
