package checks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"digital.vasic.fluent/pkg/check"
)

func TestTimeChecks(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, run(t, func(r check.Reporter) { IsBefore(check.With(r, t0), t0.Add(time.Hour)) }))
	assert.Empty(t, run(t, func(r check.Reporter) { IsAfter(check.With(r, t0.Add(time.Hour)), t0) }))
	assert.Empty(t, run(t, func(r check.Reporter) {
		IsCloseToTime(check.With(r, t0.Add(500*time.Millisecond)), t0, time.Second)
	}))

	msg := run(t, func(r check.Reporter) { IsAfter(check.With(r, t0), t0) })
	assert.Equal(t,
		"The checked value is not after the expected value.\n"+
			"The checked value:\n\t[2024-01-01 00:00:00 +0000 UTC]\n"+
			"The expected value: after\n\t[2024-01-01 00:00:00 +0000 UTC]",
		msg)

	msg = run(t, func(r check.Reporter) {
		IsCloseToTime(check.With(r, t0.Add(2*time.Second)), t0, time.Second)
	})
	assert.Contains(t, msg, "The expected value: close to\n\t[2024-01-01 00:00:00 +0000 UTC ± 1s]")
}
