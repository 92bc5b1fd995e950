package checks

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.fluent/pkg/check"
)

func TestIsLessThan_Examples(t *testing.T) {
	assert.Equal(t,
		"The checked value is greater than or equal to the expected value.\n"+
			"The checked value:\n\t[5]\n"+
			"The expected value: less than\n\t[3]",
		run(t, func(r check.Reporter) { IsLessThan(check.With(r, 5), 3) }))

	assert.Empty(t, run(t, func(r check.Reporter) {
		IsLessThan(check.With(r, 5).Not(), 3)
	}))

	assert.Equal(t,
		"The checked value is less than the expected value.\n"+
			"The checked value:\n\t[5]\n"+
			"The expected value: more than or equal to\n\t[10]",
		run(t, func(r check.Reporter) { IsLessThan(check.With(r, 5).Not(), 10) }))
}

func TestIsLessThan_DirectPanicsWithFailure(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, check.ErrCheckFailed))
	}()
	IsLessThan(check.Expect(5), 3)
}

func TestNumberChecks_NegationSymmetry(t *testing.T) {
	tests := []struct {
		name  string
		check func(v check.Value[float64])
	}{
		{"IsLessThan", func(v check.Value[float64]) { IsLessThan(v, 1) }},
		{"IsGreaterThan", func(v check.Value[float64]) { IsGreaterThan(v, 1) }},
		{"IsCloseTo", func(v check.Value[float64]) { IsCloseTo(v, 1, 0.5) }},
		{"IsZero", func(v check.Value[float64]) { IsZero(v) }},
		{"IsPositive", func(v check.Value[float64]) { IsPositive(v) }},
		{"IsNegative", func(v check.Value[float64]) { IsNegative(v) }},
	}

	for _, tt := range tests {
		for _, sut := range []float64{-2, -0.5, 0, 0.7, 1, 1.4, 3} {
			t.Run(tt.name, func(t *testing.T) {
				symmetric(t, func(r func() check.Reporter, negate bool) {
					v := check.With(r(), sut)
					if negate {
						v = v.Not()
					}
					tt.check(v)
				})
			})
		}
	}
}

func TestIsGreaterThan(t *testing.T) {
	msg := run(t, func(r check.Reporter) { IsGreaterThan(check.With(r, 2), 2) })
	assert.Equal(t,
		"The checked value is less than or equal to the expected value.\n"+
			"The checked value:\n\t[2]\n"+
			"The expected value: greater than\n\t[2]",
		msg)

	assert.Empty(t, run(t, func(r check.Reporter) {
		IsGreaterThan(check.With(r, "b"), "a")
	}))
}

func TestIsCloseTo(t *testing.T) {
	assert.Empty(t, run(t, func(r check.Reporter) {
		IsCloseTo(check.With(r, 10.2), 10, 0.5)
	}))

	msg := run(t, func(r check.Reporter) { IsCloseTo(check.With(r, 11.0), 10, 0.5) })
	assert.Equal(t,
		"The checked value is outside the expected value range.\n"+
			"The checked value:\n\t[11]\n"+
			"The expected value: close to\n\t[10 ± 0.5]",
		msg)

	msg = run(t, func(r check.Reporter) { IsCloseTo(check.With(r, 10.2).Not(), 10, 0.5) })
	assert.Contains(t, msg, "The expected value: far from\n\t[10 ± 0.5]")
}

func TestNumberChecks_Continuation(t *testing.T) {
	msg := run(t, func(r check.Reporter) {
		IsPositive(check.With(r, 4).Named("count")).And().Not()
		IsLessThan(IsPositive(check.With(r, 4)).And(), 5)
	})
	assert.Empty(t, msg)

	msg = run(t, func(r check.Reporter) {
		IsNegative(IsZero(check.With(r, 0).Named("delta")).And())
	})
	assert.Equal(t, "The checked delta is not strictly negative.\nThe checked delta:\n\t[0]", msg)
}
