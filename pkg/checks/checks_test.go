package checks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"digital.vasic.fluent/pkg/check"
)

// run executes fn against a fresh recorder and returns the message
// of the single failure, or "" when the check passed.
func run(t *testing.T, fn func(r check.Reporter)) string {
	t.Helper()
	rec := check.NewRecorder()
	fn(rec)
	failures := rec.Failures()
	require.LessOrEqual(t, len(failures), 1)
	if len(failures) == 0 {
		return ""
	}
	return failures[0].Message
}

// symmetric runs fn with and without negation and requires exactly
// one of the two forms to fail.
func symmetric(t *testing.T, fn func(v func() check.Reporter, negate bool)) {
	t.Helper()
	plain, negated := check.NewRecorder(), check.NewRecorder()
	fn(func() check.Reporter { return plain }, false)
	fn(func() check.Reporter { return negated }, true)
	require.NotEqual(t, plain.Failed(), negated.Failed())
}

func contractViolation(t *testing.T, fn func()) *check.ContractError {
	t.Helper()
	var ce *check.ContractError
	func() {
		defer func() {
			r := recover()
			var ok bool
			ce, ok = r.(*check.ContractError)
			require.True(t, ok, "expected *check.ContractError, got %T: %v", r, r)
		}()
		fn()
	}()
	return ce
}
