package message

import (
	"fmt"
	"reflect"
)

// ExpectedKind is the shape of an expected-value descriptor.
type ExpectedKind int

const (
	// ExpectValue describes a single expected value.
	ExpectValue ExpectedKind = iota
	// ExpectValues describes a set of possible values.
	ExpectValues
	// ExpectType describes a type constraint.
	ExpectType
	// ExpectRange describes a reference value with a tolerance.
	ExpectRange
)

// Expected describes what a check expected. It renders the second
// half of a failure message.
type Expected struct {
	Kind ExpectedKind

	// Value is the expected value, or the reference of a range.
	Value any

	// Values holds the possible values of an ExpectValues
	// descriptor.
	Values []any

	// Type is the expected type of an ExpectType descriptor.
	Type reflect.Type

	// Tolerance is the range half-width of an ExpectRange
	// descriptor.
	Tolerance any

	// Comparison is the word used when the check is not negated
	// (e.g. "less than").
	Comparison string

	// NegatedComparison is the word used when the check is
	// negated (e.g. "more than or equal to").
	NegatedComparison string

	// Count, when positive, renders "N possible values" after the
	// comparison word.
	Count int

	// Label overrides the default "expected value" wording.
	Label string
}

// Value returns a descriptor for a single expected value.
func Value(v any, comparison, negated string) *Expected {
	return &Expected{
		Kind:              ExpectValue,
		Value:             v,
		Comparison:        comparison,
		NegatedComparison: negated,
	}
}

// Values returns a descriptor for a list of possible values.
func Values(values []any, comparison, negated string) *Expected {
	return &Expected{
		Kind:              ExpectValues,
		Values:            values,
		Comparison:        comparison,
		NegatedComparison: negated,
		Count:             len(values),
	}
}

// Type returns a descriptor for a type constraint.
func Type(t reflect.Type, comparison, negated string) *Expected {
	return &Expected{
		Kind:              ExpectType,
		Type:              t,
		Comparison:        comparison,
		NegatedComparison: negated,
	}
}

// Range returns a descriptor for "reference ± tolerance".
func Range(reference, tolerance any, comparison, negated string) *Expected {
	return &Expected{
		Kind:              ExpectRange,
		Value:             reference,
		Tolerance:         tolerance,
		Comparison:        comparison,
		NegatedComparison: negated,
	}
}

// label returns the noun used for the expected side.
func (e *Expected) label() string {
	if e.Label != "" {
		return e.Label
	}
	switch e.Kind {
	case ExpectType:
		return "expected type"
	case ExpectValues:
		return "expected value(s)"
	}
	return "expected value"
}

// comparison picks the word matching the negation state.
func (e *Expected) comparison(negated bool) string {
	word := e.Comparison
	if negated {
		word = e.NegatedComparison
	}
	if e.Kind == ExpectValues && e.Count > 0 && word != "" {
		word = fmt.Sprintf("%s %d possible values", word, e.Count)
	}
	return word
}

// payload renders the bracketed body of the expected block.
func (e *Expected) payload(maxLen int, withType bool) string {
	switch e.Kind {
	case ExpectType:
		if e.Type == nil {
			return "[nil]"
		}
		return "[" + e.Type.String() + "]"
	case ExpectValues:
		return "[" + FormatValue(e.Values, maxLen) + "]"
	case ExpectRange:
		return "[" + FormatValue(e.Value, maxLen) + " ± " +
			FormatValue(e.Tolerance, maxLen) + "]"
	}

	body := "[" + FormatValue(e.Value, maxLen) + "]"
	if withType {
		body += " of type: [" + TypeName(e.Value) + "]"
	}
	return body
}
