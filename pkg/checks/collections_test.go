package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"digital.vasic.fluent/pkg/check"
)

func TestIsEmpty(t *testing.T) {
	var nilMap map[string]int

	assert.Empty(t, run(t, func(r check.Reporter) { IsEmpty(check.With(r, []int{})) }))
	assert.Empty(t, run(t, func(r check.Reporter) { IsEmpty(check.With(r, nilMap)) }))

	assert.Equal(t,
		"The checked value is not empty.\nThe checked value:\n\t[{1}] (1 item)",
		run(t, func(r check.Reporter) { IsEmpty(check.With(r, []int{1})) }))

	assert.Equal(t,
		"The checked value is empty whereas it must not.\nThe checked value:\n\t[{}]",
		run(t, func(r check.Reporter) { IsEmpty(check.With(r, []int{}).Not()) }))
}

func TestIsEmpty_UnmeasurableIsContractViolation(t *testing.T) {
	ce := contractViolation(t, func() {
		IsEmpty(check.With(check.NewRecorder(), 42))
	})
	assert.Equal(t, "IsEmpty", ce.Check)
	assert.Equal(t, "int has no length", ce.Reason)
}

func TestHasSize(t *testing.T) {
	assert.Empty(t, run(t, func(r check.Reporter) {
		HasSize(check.With(r, map[string]int{"a": 1}), 1)
	}))

	assert.Equal(t,
		"The checked value has a size different from the expected size.\n"+
			"The checked value:\n\t[{1, 2}] (2 items)\n"+
			"The expected size:\n\t[3]",
		run(t, func(r check.Reporter) { HasSize(check.With(r, []int{1, 2}), 3) }))

	assert.Equal(t,
		"The checked value has a size equal to the expected size whereas it must not.\n"+
			"The checked value:\n\t[{1, 2}] (2 items)\n"+
			"The expected size: different from\n\t[2]",
		run(t, func(r check.Reporter) { HasSize(check.With(r, []int{1, 2}).Not(), 2) }))
}

func TestContainsElements(t *testing.T) {
	assert.Empty(t, run(t, func(r check.Reporter) {
		ContainsElements(check.With(r, []string{"a", "b"}), "b", "a")
	}))

	msg := run(t, func(r check.Reporter) {
		ContainsElements(check.With(r, []string{"a", "b"}), "b", "c")
	})
	assert.Contains(t, msg, `The checked value does not contain the expected value(s): {"c"}`)
	assert.Contains(t, msg, `[{"a", "b"}] (2 items)`)

	assert.Empty(t, run(t, func(r check.Reporter) {
		ContainsElements(check.With(r, []person{{"Ada", 30}}), person{"Ada", 30})
	}))
}

func TestOrderChecks(t *testing.T) {
	assert.Empty(t, run(t, func(r check.Reporter) {
		IsInAscendingOrder(check.With(r, []int{1, 2, 2, 5}))
	}))
	assert.Empty(t, run(t, func(r check.Reporter) {
		IsInDescendingOrder(check.With(r, []string{"c", "b", "b", "a"}))
	}))

	msg := run(t, func(r check.Reporter) {
		IsInAscendingOrder(check.With(r, []int{1, 3, 2}))
	})
	assert.Equal(t,
		"The checked value is not in ascending order.\n"+
			"The checked value:\n\t[{1, 3, 2}] (3 items)\n"+
			"The first faulty element is at index 2.",
		msg)

	msg = run(t, func(r check.Reporter) {
		IsInAscendingOrder(check.With(r, []int{1, 2, 3}).Not())
	})
	assert.Equal(t,
		"The checked value is in ascending order whereas it must not.\n"+
			"The checked value:\n\t[{1, 2, 3}]",
		msg)

	msg = run(t, func(r check.Reporter) {
		IsInDescendingOrder(check.With(r, []int{3, 4}))
	})
	assert.Contains(t, msg, "The first faulty element is at index 1.")
}

func TestVerifyAll(t *testing.T) {
	positive := func(v check.Value[int]) { IsPositive(v) }

	assert.Empty(t, run(t, func(r check.Reporter) {
		VerifyAll(check.With(r, []int{1, 2, 3}), positive)
	}))

	msg := run(t, func(r check.Reporter) {
		VerifyAll(check.With(r, []int{1, -2, 3, -4}), positive)
	})
	assert.Contains(t, msg, "Some elements of the checked value failed verification.")
	assert.Contains(t, msg, "The checked element [1] is not strictly positive.")
	assert.Contains(t, msg, check.BatchDelimiter+"The checked element [3] is not strictly positive.")
	assert.NotContains(t, msg, "element [0]")
}

func TestVerifyAll_CannotBeNegated(t *testing.T) {
	rec := check.NewRecorder()

	ce := contractViolation(t, func() {
		VerifyAll(check.With(rec, []int{1}).Not(), func(check.Value[int]) {})
	})
	assert.Equal(t, "VerifyAll", ce.Check)
	assert.False(t, rec.Failed())
}
