package template

import "strings"

// ParseEntry parses a key=value substitution. Only the first '=' separates
// key from value, so the value may itself contain '='.
func ParseEntry(raw string) (key, value string, err error) {
	k, v, ok := strings.Cut(raw, "=")
	if !ok {
		return "", "", newError(KindFormat, "invalid substitution format %q: use key=value", raw)
	}
	key = fold(k)
	if v == "" {
		return "", "", newError(KindMissingValue, "missing value for variable %q", key)
	}
	return key, v, nil
}

// ParseEntries parses raw key=value entries into a mapping.
// A later entry for the same key overrides an earlier one.
func ParseEntries(raw []string) (Mapping, error) {
	m := make(Mapping, len(raw))
	for _, r := range raw {
		key, value, err := ParseEntry(r)
		if err != nil {
			return nil, err
		}
		m[key] = value
	}
	return m, nil
}

// Reconcile decides where substitution values come from. Keyed entries and
// a positional value are mutually exclusive; a positional value is only
// accepted when the document has exactly one distinct variable.
// A nil positional means none was given.
func Reconcile(vars VariableSet, keyed Mapping, positional *string) (Mapping, error) {
	if positional == nil {
		if keyed == nil {
			return Mapping{}, nil
		}
		return keyed, nil
	}

	switch {
	case len(keyed) > 0:
		return nil, newError(KindAmbiguousSource, "cannot use a positional value and keyed substitutions together")
	case len(vars) == 0:
		return nil, newError(KindNoVariables, "no variables found in the prompt file to substitute")
	case len(vars) > 1:
		return nil, newError(KindMultipleVariables,
			"more than one variable found in the prompt file (%s): use -s to give a value for each",
			strings.Join(vars.Sorted(), ", "))
	}

	var name string
	for n := range vars {
		name = n
	}
	if *positional == "" {
		return nil, newError(KindMissingValue, "missing value for variable %q", name)
	}
	return Mapping{name: *positional}, nil
}
