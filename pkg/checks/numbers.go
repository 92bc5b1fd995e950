package checks

import (
	"math"

	"golang.org/x/exp/constraints"

	"digital.vasic.fluent/pkg/check"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsLessThan checks that the subject is strictly less than ref.
func IsLessThan[T constraints.Ordered](v check.Value[T], ref T) check.And[T] {
	return check.For(v).CheckName("IsLessThan").
		FailWhen(func(sut T) bool { return !(sut < ref) },
			"The {checked} is greater than or equal to the {expected}.").
		OnNegate("The {checked} is less than the {expected}.").
		DefineExpectedValue(ref, "less than", "more than or equal to").
		End()
}

// IsGreaterThan checks that the subject is strictly greater than
// ref.
func IsGreaterThan[T constraints.Ordered](v check.Value[T], ref T) check.And[T] {
	return check.For(v).CheckName("IsGreaterThan").
		FailWhen(func(sut T) bool { return !(sut > ref) },
			"The {checked} is less than or equal to the {expected}.").
		OnNegate("The {checked} is greater than the {expected}.").
		DefineExpectedValue(ref, "greater than", "less than or equal to").
		End()
}

// IsCloseTo checks that the subject lies within ref ± tolerance.
func IsCloseTo[T Number](v check.Value[T], ref, tolerance T) check.And[T] {
	return check.For(v).CheckName("IsCloseTo").
		FailWhen(func(sut T) bool {
			return math.Abs(float64(sut)-float64(ref)) > float64(tolerance)
		}, "The {checked} is outside the {expected} range.").
		OnNegate("The {checked} is within the {expected} range whereas it must not.").
		DefineExpectedRange(ref, tolerance, "close to", "far from").
		End()
}

// IsZero checks that the subject equals zero.
func IsZero[T Number](v check.Value[T]) check.And[T] {
	return check.For(v).CheckName("IsZero").
		FailWhen(func(sut T) bool { return sut != 0 },
			"The {checked} is different from zero.").
		OnNegate("The {checked} is equal to zero whereas it must not.").
		End()
}

// IsPositive checks that the subject is strictly positive.
func IsPositive[T Number](v check.Value[T]) check.And[T] {
	return check.For(v).CheckName("IsPositive").
		FailWhen(func(sut T) bool { return sut <= 0 },
			"The {checked} is not strictly positive.").
		OnNegate("The {checked} is strictly positive whereas it must not.").
		End()
}

// IsNegative checks that the subject is strictly negative.
func IsNegative[T Number](v check.Value[T]) check.And[T] {
	return check.For(v).CheckName("IsNegative").
		FailWhen(func(sut T) bool { return sut >= 0 },
			"The {checked} is not strictly negative.").
		OnNegate("The {checked} is strictly negative whereas it must not.").
		End()
}
