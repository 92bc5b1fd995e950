// Package check is the execution engine of fluent checks. A Value
// wraps the subject under test, a Logic decides one check against
// it honouring negation, and the resulting failure is sent to the
// Value's Reporter: a Batch collecting several failures, a
// testing.TB, a Recorder, or Direct which panics.
package check

import (
	"context"
	"testing"

	"digital.vasic.fluent/pkg/message"
)

// Value is the subject under test with the state of one fluent
// expression. Values are immutable: Not, Named and Because return
// modified copies.
type Value[T any] struct {
	sut      T
	name     string
	negated  bool
	custom   string
	reporter Reporter
}

// That wraps sut for checks failing t.
func That[T any](t testing.TB, sut T) Value[T] {
	t.Helper()
	return Value[T]{sut: sut, reporter: TB(t)}
}

// Expect wraps sut for checks panicking with *Failure.
func Expect[T any](sut T) Value[T] {
	return Value[T]{sut: sut, reporter: Direct}
}

// With wraps sut for checks reporting to r. A *Batch is a valid r.
func With[T any](r Reporter, sut T) Value[T] {
	if r == nil {
		r = Direct
	}
	return Value[T]{sut: sut, reporter: r}
}

// ThatCtx wraps sut for checks reporting to the reporter carried by
// ctx.
func ThatCtx[T any](ctx context.Context, sut T) Value[T] {
	return Value[T]{sut: sut, reporter: ReporterFromContext(ctx)}
}

// Not returns a copy with the negation flag flipped.
func (v Value[T]) Not() Value[T] {
	v.negated = !v.negated
	return v
}

// Named returns a copy describing the subject as name in messages
// ("checked <name>").
func (v Value[T]) Named(name string) Value[T] {
	v.name = name
	return v
}

// Because returns a copy whose failure messages start with msg.
func (v Value[T]) Because(msg string) Value[T] {
	v.custom = msg
	return v
}

// Sut returns the subject under test.
func (v Value[T]) Sut() T {
	return v.sut
}

// Name returns the noun describing the subject.
func (v Value[T]) Name() string {
	if v.name == "" {
		return message.DefaultSutName
	}
	return v.name
}

// Negated reports whether checks on v are inverted.
func (v Value[T]) Negated() bool {
	return v.negated
}

// Message returns the custom message set with Because.
func (v Value[T]) Message() string {
	return v.custom
}

// Reporter returns the reporter receiving failures of v.
func (v Value[T]) Reporter() Reporter {
	if v.reporter == nil {
		return Direct
	}
	return v.reporter
}

// And continues a fluent expression on the same subject after a
// check passed. Negation does not carry over.
type And[T any] struct {
	value Value[T]
}

// And returns the subject for the next check.
func (a And[T]) And() Value[T] {
	v := a.value
	v.negated = false
	return v
}
