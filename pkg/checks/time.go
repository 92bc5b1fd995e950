package checks

import (
	"time"

	"digital.vasic.fluent/pkg/check"
)

// IsBefore checks that the subject is strictly before ref.
func IsBefore(v check.Value[time.Time], ref time.Time) check.And[time.Time] {
	return check.For(v).CheckName("IsBefore").
		FailWhen(func(sut time.Time) bool { return !sut.Before(ref) },
			"The {checked} is not before the {expected}.").
		OnNegate("The {checked} is before the {expected} whereas it must not.").
		DefineExpectedValue(ref, "before", "after or equal to").
		End()
}

// IsAfter checks that the subject is strictly after ref.
func IsAfter(v check.Value[time.Time], ref time.Time) check.And[time.Time] {
	return check.For(v).CheckName("IsAfter").
		FailWhen(func(sut time.Time) bool { return !sut.After(ref) },
			"The {checked} is not after the {expected}.").
		OnNegate("The {checked} is after the {expected} whereas it must not.").
		DefineExpectedValue(ref, "after", "before or equal to").
		End()
}

// IsCloseToTime checks that the subject lies within ref ±
// tolerance.
func IsCloseToTime(v check.Value[time.Time], ref time.Time, tolerance time.Duration) check.And[time.Time] {
	return check.For(v).CheckName("IsCloseToTime").
		FailWhen(func(sut time.Time) bool {
			d := sut.Sub(ref)
			if d < 0 {
				d = -d
			}
			return d > tolerance
		}, "The {checked} is outside the {expected} range.").
		OnNegate("The {checked} is within the {expected} range whereas it must not.").
		DefineExpectedRange(ref, tolerance, "close to", "far from").
		End()
}
