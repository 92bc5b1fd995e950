package checks

import (
	"errors"
	"fmt"

	"digital.vasic.fluent/pkg/check"
	"digital.vasic.fluent/pkg/message"
)

// IsError checks that target is in the chain of the subject, as
// errors.Is reports it.
func IsError(v check.Value[error], target error) check.And[error] {
	return check.For(v).CheckName("IsError").
		SutNameIs("error").
		FailIfNull("The {checked} is null whereas an error was expected.").
		FailWhen(func(sut error) bool { return !errors.Is(sut, target) },
			"The {checked} does not wrap the {expected}.").
		OnNegate("The {checked} wraps the {expected} whereas it must not.").
		DefineExpectedValue(target, "wrapping", "not wrapping").
		End()
}

// Panics checks that calling the subject panics.
func Panics(v check.Value[func()]) check.And[func()] {
	return check.For(v).CheckName("Panics").
		SutNameIs("code").
		FailIfNull("").
		Analyze(func(sut func(), test *check.Test) {
			if _, ok := panicOf(sut); !ok {
				test.Fail("The {checked} did not panic.", message.NoCheckedBlock)
			}
		}).
		OnNegate("The {checked} panicked whereas it must not.", message.NoCheckedBlock).
		End()
}

// DoesNotPanic checks that calling the subject returns normally.
// The message carries the recovered value.
func DoesNotPanic(v check.Value[func()]) check.And[func()] {
	return check.For(v).CheckName("DoesNotPanic").
		SutNameIs("code").
		FailIfNull("").
		Analyze(func(sut func(), test *check.Test) {
			if recovered, ok := panicOf(sut); ok {
				test.FailWith("The {checked} panicked.", func(b *message.Builder) {
					b.Append(fmt.Sprintf("The recovered value:\n\t[%s]",
						message.FormatValue(recovered, 0)))
				}, message.NoCheckedBlock)
			}
		}).
		OnNegate("The {checked} did not panic whereas it must.", message.NoCheckedBlock).
		End()
}

func panicOf(fn func()) (recovered any, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			recovered, panicked = r, true
		}
	}()
	fn()
	return nil, false
}
