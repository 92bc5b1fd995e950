// Package assertion evaluates declarative check definitions, such
// as ones loaded from a YAML file, with the fluent check engine.
// It ships with built-in evaluators for the check catalogue and
// supports custom evaluator registration.
package assertion

// Definition describes a single check to run against a named
// value.
type Definition struct {
	// Type is the evaluator type (e.g., "equal", "less_than",
	// "contains").
	Type string `json:"type" yaml:"type"`

	// Target is the name of the value to check. It also names the
	// value in failure messages ("checked <target>").
	Target string `json:"target" yaml:"target"`

	// Value is the expected value for single-value checks.
	Value any `json:"value,omitempty" yaml:"value,omitempty"`

	// Values holds expected values for multi-value checks (e.g.,
	// "one_of").
	Values []any `json:"values,omitempty" yaml:"values,omitempty"`

	// Tolerance is the half-width of "close_to" ranges.
	Tolerance any `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`

	// Not negates the check.
	Not bool `json:"not,omitempty" yaml:"not,omitempty"`

	// Message is a human-readable reason emitted as the first
	// line of the failure message.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Result captures the outcome of evaluating a single definition.
type Result struct {
	// Type is the evaluator type that was run.
	Type string `json:"type"`

	// Target is the name of the value checked.
	Target string `json:"target"`

	// Expected is the value the check expected.
	Expected any `json:"expected,omitempty"`

	// Actual is the value that was observed.
	Actual any `json:"actual,omitempty"`

	// Negated reports whether the check was negated.
	Negated bool `json:"negated,omitempty"`

	// Passed indicates whether the check succeeded.
	Passed bool `json:"passed"`

	// Message is the failure message, or a short confirmation
	// when the check passed.
	Message string `json:"message"`
}

// expected returns what a definition expected, for reporting.
func (d Definition) expected() any {
	if d.Value != nil {
		return d.Value
	}
	if len(d.Values) > 0 {
		return d.Values
	}
	return nil
}
