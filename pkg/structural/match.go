// Package structural compares two values member by member. It
// walks both object graphs in lock-step, guards against reference
// cycles, limits the traversal depth and reports one FieldMatch
// per compared member in a deterministic order.
package structural

// Kind classifies a FieldMatch.
type Kind int

const (
	// Match means both sides hold equal values.
	Match Kind = iota
	// ValueMismatch means both sides exist but differ.
	ValueMismatch
	// TypeMismatch means the two members cannot be compared.
	TypeMismatch
	// MissingOnActual means the member only exists on the
	// expected side.
	MissingOnActual
	// MissingOnExpected means the member only exists on the
	// actual side.
	MissingOnExpected
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Match:
		return "match"
	case ValueMismatch:
		return "value mismatch"
	case TypeMismatch:
		return "type mismatch"
	case MissingOnActual:
		return "missing on actual"
	case MissingOnExpected:
		return "missing on expected"
	}
	return "unknown"
}

// FieldMatch is the comparison result for one member.
type FieldMatch struct {
	// Path is the dotted path from the root, e.g.
	// "Address.City" or "Items[2].Name". The root is "".
	Path string

	Actual   any
	Expected any

	ActualFound   bool
	ExpectedFound bool

	Kind Kind
}

// Match reports whether both sides hold equal values.
func (f FieldMatch) Match() bool {
	return f.Kind == Match
}

// Template returns the message template describing the result,
// using the {checked} and {expected} placeholders.
func (f FieldMatch) Template() string {
	subject := "The {checked}"
	if f.Path != "" {
		subject = "The {checked}'s member '" + f.Path + "'"
	}

	switch f.Kind {
	case Match:
		return subject + " has the same value in the {expected}."
	case ValueMismatch:
		return subject + " does not have the expected value."
	case TypeMismatch:
		return subject + " is of a different type than in the {expected}."
	case MissingOnActual:
		return "The {checked} is missing the member '" + f.Path +
			"' found in the {expected}."
	case MissingOnExpected:
		return "The {checked} has an extra member '" + f.Path +
			"' absent from the {expected}."
	}
	return subject + " could not be compared."
}
