package checks

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"digital.vasic.fluent/pkg/check"
	"digital.vasic.fluent/pkg/structural"
)

type person struct {
	Name string
	Age  int
}

func TestIsEqualTo_Values(t *testing.T) {
	assert.Empty(t, run(t, func(r check.Reporter) {
		IsEqualTo(check.With(r, person{"Ada", 30}), person{"Ada", 30})
	}))

	msg := run(t, func(r check.Reporter) {
		IsEqualTo(check.With(r, person{"Ada", 31}), person{"Ada", 30})
	})
	assert.Contains(t, msg, "The checked value is different from the expected value.")
	assert.Contains(t, msg, "The first difference is at member 'Age'.")

	msg = run(t, func(r check.Reporter) {
		IsEqualTo(check.With(r, person{"Ada", 30}).Not(), person{"Ada", 30})
	})
	assert.Contains(t, msg, "whereas it must not")
	assert.Contains(t, msg, "The expected value: different from")
}

func TestIsEqualTo_DifferentTypesShowTypes(t *testing.T) {
	msg := run(t, func(r check.Reporter) {
		IsEqualTo[any](check.With[any](r, int64(1)), 1)
	})
	assert.Equal(t,
		"The checked value is different from the expected value.\n"+
			"The checked value:\n\t[1] of type: [int64]\n"+
			"The expected value:\n\t[1] of type: [int]",
		msg)
}

func TestIsNil(t *testing.T) {
	var p *person

	assert.Empty(t, run(t, func(r check.Reporter) { IsNil(check.With(r, p)) }))
	assert.Empty(t, run(t, func(r check.Reporter) { IsNotNil(check.With(r, &person{})) }))

	assert.Equal(t, "The checked value must be null.\nThe checked value:\n\t[3]",
		run(t, func(r check.Reporter) { IsNil(check.With(r, 3)) }))
	assert.Equal(t, "The checked value must not be null.\nThe checked value:\n\t[null]",
		run(t, func(r check.Reporter) { IsNotNil(check.With(r, p)) }))
}

type statusError struct{ status int }

func (e *statusError) Error() string { return "status" }

func TestIsNil_TypedNilError(t *testing.T) {
	var err error = (*statusError)(nil)

	assert.Empty(t, run(t, func(r check.Reporter) { IsNil(check.With(r, err)) }))
	assert.Equal(t, "The checked value must not be null.\nThe checked value:\n\t[null]",
		run(t, func(r check.Reporter) { IsNotNil(check.With(r, err)) }))
}

func TestIsInstanceOf(t *testing.T) {
	assert.Empty(t, run(t, func(r check.Reporter) {
		IsInstanceOf[int](check.With[any](r, 3))
	}))

	msg := run(t, func(r check.Reporter) {
		IsInstanceOf[int](check.With[any](r, "x"))
	})
	assert.Equal(t,
		"The checked value is not an instance of the expected type.\n"+
			"The checked value:\n\t[\"x\"] of type: [string]\n"+
			"The expected type: an instance of\n\t[int]",
		msg)

	msg = run(t, func(r check.Reporter) {
		IsInstanceOf[error](check.With[any](r, "x").Not())
	})
	assert.Empty(t, msg)
}

func TestIsOneOf(t *testing.T) {
	assert.Empty(t, run(t, func(r check.Reporter) { IsOneOf(check.With(r, 2), 1, 2, 3) }))

	assert.Equal(t,
		"The checked value is not one of the expected value(s).\n"+
			"The checked value:\n\t[4]\n"+
			"The expected value(s): one of 3 possible values\n\t[{1, 2, 3}]",
		run(t, func(r check.Reporter) { IsOneOf(check.With(r, 4), 1, 2, 3) }))

	msg := run(t, func(r check.Reporter) { IsOneOf(check.With(r, 2).Not(), 1, 2, 3) })
	assert.Contains(t, msg, "The expected value(s): none of 3 possible values")
}

func TestHasFieldsWithSameValues(t *testing.T) {
	dto := struct {
		Name string
		Age  int
	}{"Ada", 30}

	assert.Empty(t, run(t, func(r check.Reporter) {
		HasFieldsWithSameValues(check.With(r, person{"Ada", 30}), dto, structural.DefaultCriteria())
	}))

	msg := run(t, func(r check.Reporter) {
		HasFieldsWithSameValues(check.With(r, person{"Ada", 31}), dto, structural.DefaultCriteria())
	})
	assert.Contains(t, msg, "The checked value's member 'Age' does not have the expected value.")
	assert.Contains(t, msg, "Differences:\n\tAge: value mismatch, [31] instead of [30]")

	assert.Empty(t, run(t, func(r check.Reporter) {
		HasFieldsWithSameValues(check.With(r, person{"Ada", 31}), dto,
			structural.DefaultCriteria().Excluding("Age"))
	}))
}

func TestHasFieldsWithSameValues_MissingMember(t *testing.T) {
	expected := struct {
		Name  string
		Email string
	}{Name: "Ada"}

	msg := run(t, func(r check.Reporter) {
		HasFieldsWithSameValues(check.With(r, person{Name: "Ada"}), expected, structural.DefaultCriteria())
	})
	assert.Contains(t, msg, "The checked value is missing the member 'Email' found in the expected value.")
	assert.Contains(t, msg, "\tEmail: missing, expected [\"\"]")
	assert.Contains(t, msg, "\tAge: unexpected [0]")
}

func TestHasFieldsWithSameValues_InvalidCriteria(t *testing.T) {
	ce := contractViolation(t, func() {
		HasFieldsWithSameValues(check.With(check.NewRecorder(), person{}), person{},
			structural.DefaultCriteria().WithMaxDepth(-1))
	})
	assert.Equal(t, "HasFieldsWithSameValues", ce.Check)
	assert.Contains(t, ce.Reason, "negative max depth")
}

func TestHasMembersOf(t *testing.T) {
	shape := reflect.TypeOf(struct {
		Name  string
		Email string
	}{})

	assert.Empty(t, run(t, func(r check.Reporter) {
		HasMembersOf(check.With(r, person{}), reflect.TypeOf(person{}))
	}))

	msg := run(t, func(r check.Reporter) {
		HasMembersOf(check.With(r, person{}), shape)
	})
	assert.Contains(t, msg, "The checked value is missing the member 'Email' found in the expected type.")

	assert.Empty(t, run(t, func(r check.Reporter) {
		HasMembersOf(check.With(r, person{}).Not(), shape)
	}))
}
