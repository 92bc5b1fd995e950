package checks

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"

	"digital.vasic.fluent/pkg/check"
	"digital.vasic.fluent/pkg/message"
)

// IsEmpty checks that a string, slice, array, map or channel holds
// no item. Other kinds are a contract violation.
func IsEmpty[T any](v check.Value[T]) check.And[T] {
	return check.For(v).CheckName("IsEmpty").
		FailWhen(func(sut T) bool { return length("IsEmpty", sut) != 0 },
			"The {checked} is not empty.", message.WithCount).
		OnNegate("The {checked} is empty whereas it must not.").
		End()
}

// HasSize checks that the subject holds exactly n items.
func HasSize[T any](v check.Value[T], n int) check.And[T] {
	return check.For(v).CheckName("HasSize").
		FailIfNull("").
		FailWhen(func(sut T) bool { return length("HasSize", sut) != n },
			"The {checked} has a size different from the {expected}.", message.WithCount).
		OnNegate("The {checked} has a size equal to the {expected} whereas it must not.", message.WithCount).
		DefineExpectedValue(n, "", "different from").
		ExpectedLabel("expected size").
		End()
}

// ContainsElements checks that the subject holds every one of
// elements, in any order.
func ContainsElements[E any](v check.Value[[]E], elements ...E) check.And[[]E] {
	criteria := strictCriteria()

	return check.For(v).CheckName("ContainsElements").
		FailIfNull("").
		Analyze(func(sut []E, test *check.Test) {
			var missing []E
			for _, want := range elements {
				found := false
				for _, have := range sut {
					if same("ContainsElements", have, want, criteria) {
						found = true
						break
					}
				}
				if !found {
					missing = append(missing, want)
				}
			}
			if len(missing) > 0 {
				test.Fail("The {checked} does not contain the expected value(s): "+
					message.FormatValue(missing, 0), message.WithCount)
			}
		}).
		OnNegate("The {checked} contains all the given values whereas it must not.", message.WithCount).
		DefineExpectedValue(elements, "containing", "not containing").
		End()
}

// IsInAscendingOrder checks that every element is greater than or
// equal to its predecessor.
func IsInAscendingOrder[E constraints.Ordered](v check.Value[[]E]) check.And[[]E] {
	return check.For(v).CheckName("IsInAscendingOrder").
		Analyze(func(sut []E, test *check.Test) {
			for i := 1; i < len(sut); i++ {
				if sut[i] < sut[i-1] {
					test.SetValuesIndex(i)
					test.Fail("The {checked} is not in ascending order.", message.WithCount)
					return
				}
			}
		}).
		OnNegate("The {checked} is in ascending order whereas it must not.").
		End()
}

// IsInDescendingOrder checks that every element is less than or
// equal to its predecessor.
func IsInDescendingOrder[E constraints.Ordered](v check.Value[[]E]) check.And[[]E] {
	return check.For(v).CheckName("IsInDescendingOrder").
		Analyze(func(sut []E, test *check.Test) {
			for i := 1; i < len(sut); i++ {
				if sut[i] > sut[i-1] {
					test.SetValuesIndex(i)
					test.Fail("The {checked} is not in descending order.", message.WithCount)
					return
				}
			}
		}).
		OnNegate("The {checked} is in descending order whereas it must not.").
		End()
}

// VerifyAll runs verify on every element and fails with all the
// element failures at once. It cannot be negated.
func VerifyAll[E any](v check.Value[[]E], verify func(element check.Value[E])) check.And[[]E] {
	return check.For(v).CheckName("VerifyAll").
		CantBeNegated("VerifyAll").
		FailIfNull("").
		Analyze(func(sut []E, test *check.Test) {
			rec := check.NewRecorder()
			b := check.OpenBatch(rec, "")
			for i, e := range sut {
				verify(check.With(b, e).Named(fmt.Sprintf("element [%d]", i)))
			}
			_ = b.Close()

			f := rec.Last()
			if f == nil {
				return
			}
			test.FailWith("Some elements of the {checked} failed verification.",
				func(b *message.Builder) { b.Append(f.Message) },
				message.WithCount)
		}).
		End()
}

func length(name string, v any) int {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len()
	case reflect.Invalid, reflect.Pointer:
		if check.IsNil(v) {
			return 0
		}
		return length(name, rv.Elem().Interface())
	}
	panic(&check.ContractError{
		Check:  name,
		Reason: fmt.Sprintf("%T has no length", v),
	})
}
