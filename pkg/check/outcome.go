package check

import "digital.vasic.fluent/pkg/message"

// Outcome is the decision of one check.
type Outcome struct {
	passed   bool
	message  string
	expected *message.Expected
}

// Passed reports whether the check passed.
func (o Outcome) Passed() bool {
	return o.passed
}

// Failed reports whether the check failed.
func (o Outcome) Failed() bool {
	return !o.passed
}

// Message returns the failure message, empty when passed.
func (o Outcome) Message() string {
	return o.message
}

// Expected returns the expected-value descriptor of a failure, if
// the check defined one.
func (o Outcome) Expected() *message.Expected {
	return o.expected
}

// Test is the handle given to Analyze callbacks. Only the first
// failure is kept.
type Test struct {
	failed    bool
	template  string
	options   message.Option
	customize []func(*message.Builder)
	expected  *message.Expected
	index     int
	hasIndex  bool
}

// Fail marks the check as intrinsically failed with template. It
// does nothing when the check already failed.
func (t *Test) Fail(template string, opts ...message.Option) {
	t.FailWith(template, nil, opts...)
}

// FailWith is Fail with a hook run on the failure message only.
func (t *Test) FailWith(template string, customize func(*message.Builder), opts ...message.Option) {
	if t.failed {
		return
	}
	t.failed = true
	t.template = template
	t.options = combine(opts)
	if customize != nil {
		t.customize = append(t.customize, customize)
	}
}

// Failed reports whether a previous step failed.
func (t *Test) Failed() bool {
	return t.failed
}

// DefineExpected replaces the expected-value descriptor of the
// check, for both the failure and the negated message.
func (t *Test) DefineExpected(e *message.Expected) {
	t.expected = e
}

// SetValuesIndex records the position of the first faulty element
// of a collection.
func (t *Test) SetValuesIndex(i int) {
	if t.hasIndex {
		return
	}
	t.index = i
	t.hasIndex = true
}
