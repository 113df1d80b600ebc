package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "no placeholders", text: "This is a test with no variables.", want: []string{}},
		{name: "empty text", text: "", want: []string{}},
		{name: "repeated variable", text: "Hello {{name}}, your code is {{code}}. Again, hi {{name}}!", want: []string{"code", "name"}},
		{name: "case folded", text: "{{Name}} {{NAME}} {{name}}", want: []string{"name"}},
		{name: "inner whitespace", text: "{{  user_id\t}} and {{\nx1 }}", want: []string{"user_id", "x1"}},
		{name: "single braces ignored", text: "{name} and {{ }} and {{a-b}}", want: []string{}},
		{name: "triple braces match inner pair", text: "{{{name}}}", want: []string{"name"}},
		{name: "vertical tab", text: "{{\vname}}", want: []string{"name"}},
		{name: "no-break space", text: "{{\u00a0name\u00a0}}", want: []string{"name"}},
		{name: "ideographic space", text: "{{\u3000name}}", want: []string{"name"}},
		{name: "zero-width space is not whitespace", text: "{{\u200bname}}", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			assert.Equal(t, tt.want, got.Sorted())
		})
	}
}

func TestNewVariableSet(t *testing.T) {
	vars := NewVariableSet("Name", "code", "NAME")

	assert.Equal(t, []string{"code", "name"}, vars.Sorted())
}

func TestProcess(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		mapping Mapping
		want    string
	}{
		{
			name:    "complete",
			text:    "Hello {{name}}, your code is {{code}}.",
			mapping: Mapping{"name": "Alice", "code": "9876"},
			want:    "Hello Alice, your code is 9876.",
		},
		{
			name:    "partial keeps unmapped placeholder",
			text:    "Hello {{name}}, your code is {{code}}.",
			mapping: Mapping{"name": "Alice"},
			want:    "Hello Alice, your code is {{code}}.",
		},
		{
			name:    "case insensitive",
			text:    "Hello {{Name}}, your code is {{CoDe}}.",
			mapping: Mapping{"name": "Alice", "code": "9876"},
			want:    "Hello Alice, your code is 9876.",
		},
		{
			name:    "unmapped keeps casing and whitespace",
			text:    "Hello {{Name}}, your code is {{ CoDe  }}.",
			mapping: Mapping{"name": "Alice"},
			want:    "Hello Alice, your code is {{ CoDe  }}.",
		},
		{
			name:    "value is not expanded again",
			text:    "{{a}} {{b}}",
			mapping: Mapping{"a": "{{b}}", "b": "B"},
			want:    "{{b}} B",
		},
		{
			name:    "value with regex replacement syntax is literal",
			text:    "cost: {{price}}",
			mapping: Mapping{"price": "$1 ${1} \\1"},
			want:    "cost: $1 ${1} \\1",
		},
		{
			name:    "nil mapping",
			text:    "keep {{this}}",
			mapping: nil,
			want:    "keep {{this}}",
		},
		{
			name:    "no placeholders",
			text:    "plain text\nwith lines",
			mapping: Mapping{"x": "y"},
			want:    "plain text\nwith lines",
		},
		{
			name:    "unicode whitespace inside braces",
			text:    "a={{\vA}} b={{\u00a0b\u00a0}} c={{\u3000c\u2028}}",
			mapping: Mapping{"a": "1", "b": "2", "c": "3"},
			want:    "a=1 b=2 c=3",
		},
		{
			name:    "unmapped no-break space placeholder kept verbatim",
			text:    "hi {{\u00a0who\u00a0}}",
			mapping: Mapping{"other": "x"},
			want:    "hi {{\u00a0who\u00a0}}",
		},
		{
			name:    "adjacent placeholders",
			text:    "{{a}}{{B}}{{a}}",
			mapping: Mapping{"a": "1", "b": "2"},
			want:    "121",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Process(tt.text, tt.mapping))
		})
	}
}

func TestProcess_FullMappingLeavesNoPlaceholders(t *testing.T) {
	texts := []string{
		"Hello {{Name}}, your code is {{CoDe}}.",
		"{{ a }}{{b}}\n{{ C_1 }} {{a}}",
		"nothing here",
	}

	for _, text := range texts {
		mapping := Mapping{}
		for name := range Extract(text) {
			mapping[name] = "value"
		}

		got := Process(text, mapping)
		assert.Empty(t, Extract(got), "output %q still has placeholders", got)
	}
}

func TestMapping_Missing(t *testing.T) {
	vars := NewVariableSet("name", "code", "date")
	m := Mapping{"name": "Alice"}

	assert.Equal(t, []string{"code", "date"}, m.Missing(vars))
	assert.Empty(t, Mapping{"name": "a", "code": "b", "date": "c"}.Missing(vars))
}

func TestKindOf_ThroughWrapping(t *testing.T) {
	_, _, err := ParseEntry("invalid")
	require.Error(t, err)

	wrapped := InputUnavailable("prompt.txt", err)
	assert.Equal(t, KindInputUnavailable, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindInputUnavailable))
	assert.ErrorIs(t, wrapped, err)
	assert.Contains(t, wrapped.Error(), `could not read file "prompt.txt"`)

	assert.Equal(t, Kind(""), KindOf(nil))
	assert.False(t, IsKind(nil, KindFormat))
}
