package check

import (
	"fmt"
	"reflect"

	"digital.vasic.fluent/pkg/logging"
	"digital.vasic.fluent/pkg/message"
)

// DefaultNegatedTemplate is used when a negated check passes
// intrinsically and no OnNegate template was registered.
const DefaultNegatedTemplate = "The {checked} should not match the {expected}."

// DefaultNullTemplate is the message of FailIfNull when given an
// empty template.
const DefaultNullTemplate = "The {checked} is null."

type state int

const (
	stateNotStarted state = iota
	statePredicatesEvaluated
	stateDecided
	stateReported
)

func (s state) String() string {
	switch s {
	case stateNotStarted:
		return "not started"
	case statePredicatesEvaluated:
		return "predicates evaluated"
	case stateDecided:
		return "decided"
	case stateReported:
		return "reported"
	}
	return "unknown"
}

type step[T any] struct {
	predicate func(T) bool
	analyze   func(T, *Test)
	template  string
	options   message.Option
}

// Logic decides one check on a Value. Predicates describe when the
// subject fails intrinsically; EndCheck applies negation, composes
// the message and reports the failure. A Logic is used once.
type Logic[T any] struct {
	value Value[T]
	name  string
	state state

	nullGuard    bool
	nullTemplate string
	steps        []step[T]

	negTemplate string
	negOptions  message.Option

	expected      *message.Expected
	expectedLabel string
	sutName       string
	customize     []func(*message.Builder)

	test Test
}

// For starts a check on v.
func For[T any](v Value[T]) *Logic[T] {
	return &Logic[T]{value: v, name: "check"}
}

// CheckName names the check in logs, metrics and contract errors.
func (l *Logic[T]) CheckName(name string) *Logic[T] {
	l.name = name
	return l
}

// Value returns the wrapped subject.
func (l *Logic[T]) Value() Value[T] {
	return l.value
}

func (l *Logic[T]) mustBuild(op string) {
	if l.state != stateNotStarted {
		panic(violation(l.name, fmt.Sprintf("%s called while %s", op, l.state)))
	}
}

// FailIfNull fails the check when the subject is nil, before any
// other predicate runs. Nil covers typed nil pointers, maps,
// slices, channels, functions and interfaces.
func (l *Logic[T]) FailIfNull(template string) *Logic[T] {
	l.mustBuild("FailIfNull")
	if template == "" {
		template = DefaultNullTemplate
	}
	l.nullGuard = true
	l.nullTemplate = template
	return l
}

// FailWhen registers a failure predicate. Predicates run in
// registration order and the first returning true decides the
// message; later ones are not invoked.
func (l *Logic[T]) FailWhen(pred func(T) bool, template string, opts ...message.Option) *Logic[T] {
	l.mustBuild("FailWhen")
	l.steps = append(l.steps, step[T]{
		predicate: pred,
		template:  template,
		options:   combine(opts),
	})
	return l
}

// Analyze registers a multi-step analysis. It runs in registration
// order with the predicates and is skipped once the check failed.
func (l *Logic[T]) Analyze(fn func(sut T, test *Test)) *Logic[T] {
	l.mustBuild("Analyze")
	l.steps = append(l.steps, step[T]{analyze: fn})
	return l
}

// OnNegate sets the message used when the check is negated and the
// subject passed intrinsically.
func (l *Logic[T]) OnNegate(template string, opts ...message.Option) *Logic[T] {
	l.mustBuild("OnNegate")
	l.negTemplate = template
	l.negOptions = combine(opts)
	return l
}

// DefineExpected attaches an expected-value descriptor.
func (l *Logic[T]) DefineExpected(e *message.Expected) *Logic[T] {
	l.expected = e
	return l
}

// DefineExpectedValue describes a single expected value.
func (l *Logic[T]) DefineExpectedValue(v any, comparison, negatedComparison string) *Logic[T] {
	return l.DefineExpected(message.Value(v, comparison, negatedComparison))
}

// DefinePossibleValues describes a set of acceptable values.
func (l *Logic[T]) DefinePossibleValues(values []any, comparison, negatedComparison string) *Logic[T] {
	return l.DefineExpected(message.Values(values, comparison, negatedComparison))
}

// DefineExpectedType describes an expected type.
func (l *Logic[T]) DefineExpectedType(t reflect.Type, comparison, negatedComparison string) *Logic[T] {
	return l.DefineExpected(message.Type(t, comparison, negatedComparison))
}

// DefineExpectedRange describes "reference ± tolerance".
func (l *Logic[T]) DefineExpectedRange(reference, tolerance any, comparison, negatedComparison string) *Logic[T] {
	return l.DefineExpected(message.Range(reference, tolerance, comparison, negatedComparison))
}

// ExpectedLabel overrides the noun of the expected side.
func (l *Logic[T]) ExpectedLabel(label string) *Logic[T] {
	l.expectedLabel = label
	return l
}

// SutNameIs overrides the noun of the checked side unless the
// caller already named the value.
func (l *Logic[T]) SutNameIs(name string) *Logic[T] {
	l.sutName = name
	return l
}

// Customize registers a hook run on every message of the check.
func (l *Logic[T]) Customize(fn func(*message.Builder)) *Logic[T] {
	l.customize = append(l.customize, fn)
	return l
}

// CantBeNegated panics with a *ContractError when the value is
// negated. Call it first in checks without a sensible opposite.
func (l *Logic[T]) CantBeNegated(checkName string) *Logic[T] {
	if l.value.negated {
		panic(violation(checkName, "the check cannot be negated"))
	}
	return l
}

// EndCheck runs the predicates, applies negation and reports a
// failure to the value's reporter. Calling it twice is a contract
// violation.
func (l *Logic[T]) EndCheck() Outcome {
	if l.state >= stateDecided {
		panic(violation(l.name, "EndCheck called while "+l.state.String()))
	}
	l.evaluate()

	s := current()
	outcome := l.decide(s)
	s.metrics.RecordCheck(l.name, l.value.negated, outcome.Passed())
	l.state = stateReported

	if outcome.Failed() {
		s.logger.Debug("check failed",
			logging.StringField("check", l.name),
			logging.StringField("sut", l.checkedName()),
			logging.BoolField("negated", l.value.negated),
		)
		l.value.Reporter().Report(&Failure{
			Check:   l.name,
			Message: outcome.Message(),
		})
	}
	return outcome
}

// End decides the check and returns the continuation.
func (l *Logic[T]) End() And[T] {
	l.EndCheck()
	return And[T]{value: l.value}
}

func (l *Logic[T]) evaluate() {
	l.state = statePredicatesEvaluated

	if l.nullGuard && IsNil(l.value.sut) {
		l.test.Fail(l.nullTemplate)
		return
	}

	for _, s := range l.steps {
		if l.test.failed {
			return
		}
		if s.analyze != nil {
			s.analyze(l.value.sut, &l.test)
			continue
		}
		if s.predicate(l.value.sut) {
			l.test.Fail(s.template, s.options)
		}
	}
}

func (l *Logic[T]) decide(s *settings) Outcome {
	l.state = stateDecided
	negated := l.value.negated

	switch {
	case l.test.failed && !negated:
		return l.compose(s, l.test.template, l.test.options, l.test.customize)
	case l.test.failed, !negated:
		return Outcome{passed: true}
	}

	template := l.negTemplate
	if template == "" {
		template = DefaultNegatedTemplate
	}
	return l.compose(s, template, l.negOptions, nil)
}

func (l *Logic[T]) compose(s *settings, template string, opts message.Option, extra []func(*message.Builder)) Outcome {
	b := message.New(template).
		For(l.checkedName()).
		Checked(any(l.value.sut)).
		Negated(l.value.negated).
		Because(l.value.custom).
		With(opts).
		MaxValueLength(s.cfg.MaxValueLength)

	e := l.descriptor()
	if e != nil {
		b.Expected(e)
	}
	for _, fn := range l.customize {
		fn(b)
	}
	for _, fn := range extra {
		fn(b)
	}
	if l.test.failed && l.test.hasIndex && !l.value.negated {
		b.Append(fmt.Sprintf("The first faulty element is at index %d.", l.test.index))
	}

	return Outcome{message: b.String(), expected: e}
}

// descriptor returns a copy of the expected descriptor with the
// label override applied.
func (l *Logic[T]) descriptor() *message.Expected {
	e := l.expected
	if l.test.expected != nil {
		e = l.test.expected
	}
	if e == nil {
		return nil
	}
	c := *e
	if l.expectedLabel != "" {
		c.Label = l.expectedLabel
	}
	return &c
}

// checkedName returns the noun of the checked side.
func (l *Logic[T]) checkedName() string {
	if l.value.name == "" && l.sutName != "" {
		return l.sutName
	}
	return l.value.Name()
}

// GetSutProperty derives a Value for a member of the subject. The
// derived value keeps negation, custom message and reporter. A nil
// subject yields the zero value of U without calling get.
func GetSutProperty[T, U any](l *Logic[T], get func(T) U, name string) Value[U] {
	var u U
	if !IsNil(l.value.sut) {
		u = get(l.value.sut)
	}
	return Value[U]{
		sut:      u,
		name:     name,
		negated:  l.value.negated,
		custom:   l.value.custom,
		reporter: l.value.Reporter(),
	}
}

// IsNil reports whether v is nil or a typed nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func combine(opts []message.Option) message.Option {
	var o message.Option
	for _, opt := range opts {
		o |= opt
	}
	return o
}
