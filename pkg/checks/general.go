// Package checks is the catalogue of ready-made checks. Each check
// is a function taking a check.Value and returning the continuation
// of the fluent expression, so checks compose:
//
//	checks.IsLessThan(check.That(t, n), 10).And()
package checks

import (
	"fmt"
	"reflect"

	"digital.vasic.fluent/pkg/check"
	"digital.vasic.fluent/pkg/message"
	"digital.vasic.fluent/pkg/structural"
)

// IsEqualTo checks that the subject equals expected. Strings are
// described with a difference window; other values are compared
// member by member.
func IsEqualTo[T any](v check.Value[T], expected T) check.And[T] {
	criteria := strictCriteria()

	return check.For(v).CheckName("IsEqualTo").
		Analyze(func(sut T, test *check.Test) {
			s, actualText := any(sut).(string)
			e, expectedText := any(expected).(string)
			if actualText && expectedText {
				if s != e {
					test.FailWith("", func(b *message.Builder) {
						message.Describe(b, s, e)
					})
				}
				return
			}

			f, failed := firstMismatch("IsEqualTo", sut, expected, criteria)
			if !failed {
				return
			}
			test.FailWith("The {checked} is different from the {expected}.",
				func(b *message.Builder) {
					if f.Path != "" {
						b.Append(fmt.Sprintf("The first difference is at member '%s'.", f.Path))
					}
				})
		}).
		OnNegate("The {checked} is equal to the {expected} whereas it must not.").
		DefineExpectedValue(expected, "", "different from").
		End()
}

// IsNil checks that the subject is nil or a typed nil.
func IsNil[T any](v check.Value[T]) check.And[T] {
	return check.For(v).CheckName("IsNil").
		FailWhen(func(sut T) bool { return !check.IsNil(sut) },
			"The {checked} must be null.").
		OnNegate("The {checked} must not be null.").
		End()
}

// IsNotNil checks that the subject is not nil.
func IsNotNil[T any](v check.Value[T]) check.And[T] {
	return IsNil(v.Not())
}

// IsInstanceOf checks that the subject holds a U.
func IsInstanceOf[U, T any](v check.Value[T]) check.And[T] {
	expected := reflect.TypeOf((*U)(nil)).Elem()

	return check.For(v).CheckName("IsInstanceOf").
		FailWhen(func(sut T) bool {
			_, ok := any(sut).(U)
			return !ok
		}, "The {checked} is not an instance of the {expected}.").
		OnNegate("The {checked} is an instance of the {expected} whereas it must not.").
		DefineExpectedType(expected, "an instance of", "an instance of a different type than").
		End()
}

// IsOneOf checks that the subject equals one of values.
func IsOneOf[T any](v check.Value[T], values ...T) check.And[T] {
	criteria := strictCriteria()
	possible := make([]any, len(values))
	for i, val := range values {
		possible[i] = val
	}

	return check.For(v).CheckName("IsOneOf").
		FailWhen(func(sut T) bool {
			for _, val := range values {
				if same("IsOneOf", sut, val, criteria) {
					return false
				}
			}
			return true
		}, "The {checked} is not one of the {expected}.").
		OnNegate("The {checked} is one of the {expected} whereas it must not.").
		DefinePossibleValues(possible, "one of", "none of").
		End()
}

// HasFieldsWithSameValues compares the subject with expected member
// by member under criteria. Members are matched by name, so
// expected may be of another type.
func HasFieldsWithSameValues[T any](v check.Value[T], expected any, criteria structural.Criteria) check.And[T] {
	return check.For(v).CheckName("HasFieldsWithSameValues").
		FailIfNull("").
		Analyze(func(sut T, test *check.Test) {
			mismatches, err := structural.Mismatches(sut, expected, criteria)
			if err != nil {
				panic(&check.ContractError{Check: "HasFieldsWithSameValues", Reason: err.Error()})
			}
			if len(mismatches) == 0 {
				return
			}
			test.FailWith(mismatches[0].Template(), func(b *message.Builder) {
				b.Append(describeMismatches(mismatches)...)
			})
		}).
		OnNegate("The {checked} has all its members equal to the {expected} whereas it must not.").
		DefineExpectedValue(expected, "", "different from").
		End()
}

// HasMembersOf checks that the subject declares every member of the
// struct type t.
func HasMembersOf[T any](v check.Value[T], t reflect.Type) check.And[T] {
	criteria := check.CurrentConfig().Criteria()

	return check.For(v).CheckName("HasMembersOf").
		FailIfNull("").
		Analyze(func(sut T, test *check.Test) {
			results, err := structural.ScanType(sut, t, criteria)
			if err != nil {
				panic(&check.ContractError{Check: "HasMembersOf", Reason: err.Error()})
			}
			for _, r := range results {
				if r.Kind == structural.MissingOnActual || r.Kind == structural.TypeMismatch {
					test.Fail(r.Template())
					return
				}
			}
		}).
		OnNegate("The {checked} has all the members of the {expected} whereas it must not.").
		DefineExpectedType(t, "with the members of", "without all the members of").
		End()
}

func describeMismatches(mismatches []structural.FieldMatch) []string {
	lines := []string{"Differences:"}
	for _, m := range mismatches {
		path := m.Path
		if path == "" {
			path = "(root)"
		}
		switch m.Kind {
		case structural.MissingOnActual:
			lines = append(lines, fmt.Sprintf("\t%s: missing, expected [%s]",
				path, message.FormatValue(m.Expected, 0)))
		case structural.MissingOnExpected:
			lines = append(lines, fmt.Sprintf("\t%s: unexpected [%s]",
				path, message.FormatValue(m.Actual, 0)))
		default:
			lines = append(lines, fmt.Sprintf("\t%s: %s, [%s] instead of [%s]",
				path, m.Kind, message.FormatValue(m.Actual, 0),
				message.FormatValue(m.Expected, 0)))
		}
	}
	return lines
}

func firstMismatch(name string, actual, expected any, c structural.Criteria) (structural.FieldMatch, bool) {
	f, failed, err := structural.FirstMismatch(actual, expected, c)
	if err != nil {
		panic(&check.ContractError{Check: name, Reason: err.Error()})
	}
	return f, failed
}

func same(name string, actual, expected any, c structural.Criteria) bool {
	_, failed := firstMismatch(name, actual, expected, c)
	return !failed
}

// strictCriteria is the configured criteria where values of
// different types are never equal.
func strictCriteria() structural.Criteria {
	c := check.CurrentConfig().Criteria()
	c.StrictTypes = true
	return c
}
