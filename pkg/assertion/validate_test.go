package assertion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name string
		defs []Definition
		want []string
	}{
		{
			name: "valid",
			defs: []Definition{
				{Type: "less_than", Target: "n", Value: 3},
				{Type: "one_of", Target: "s", Values: []any{"a"}},
				{Type: "close_to", Target: "f", Value: "1.5", Tolerance: 0.1},
				{Type: "matches", Target: "id", Value: "[a-z]+"},
				{Type: "empty", Target: "e"},
			},
		},
		{
			name: "unknown and missing types",
			defs: []Definition{{Target: "n"}, {Type: "bogus"}},
			want: []string{
				"definitions[0].type: type is required",
				"definitions[1].type: unknown assertion type: bogus",
			},
		},
		{
			name: "unusable operands",
			defs: []Definition{
				{Type: "one_of"},
				{Type: "close_to", Value: "x"},
				{Type: "size", Value: 1.5},
				{Type: "matches", Value: "("},
				{Type: "equal"},
			},
			want: []string{
				"definitions[0].values: at least one value is required",
				"definitions[1].value: not a number: x",
				"definitions[1].tolerance: not a number: <nil>",
				"definitions[2].value: not an integer: 1.5",
				"definitions[3].value: invalid pattern: error parsing regexp: missing closing ): `(`",
				"definitions[4].value: value is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, err := range Validate(e, tt.defs) {
				got = append(got, err.Error())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidationError_WithoutIndex(t *testing.T) {
	err := ValidationError{Field: "file", Message: "unreadable", Index: -1}
	assert.Equal(t, "file: unreadable", err.Error())
}
