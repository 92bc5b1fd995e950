package check

import (
	"testing"
)

// isLessThan is a minimal numeric check used to drive the engine.
func isLessThan(v Value[int], ref int) And[int] {
	return For(v).CheckName("IsLessThan").
		FailWhen(func(sut int) bool { return sut >= ref },
			"The {checked} is greater than or equal to the {expected}.").
		OnNegate("The {checked} is less than the {expected}.").
		DefineExpectedValue(ref, "less than", "more than or equal to").
		End()
}

func isPositive(v Value[int]) And[int] {
	return For(v).CheckName("IsPositive").
		FailWhen(func(sut int) bool { return sut <= 0 },
			"The {checked} is not strictly positive.").
		OnNegate("The {checked} is strictly positive.").
		End()
}

// fakeTB records what a testing.TB reporter does to it.
type fakeTB struct {
	testing.TB
	errors  []string
	stopped bool
}

func (f *fakeTB) Helper() {}

func (f *fakeTB) Error(args ...any) {
	for _, a := range args {
		f.errors = append(f.errors, a.(string))
	}
}

func (f *fakeTB) FailNow() {
	f.stopped = true
}

func failureOf(t *testing.T, fn func()) (f *Failure) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		var ok bool
		f, ok = r.(*Failure)
		if !ok {
			t.Fatalf("expected *Failure, got %T: %v", r, r)
		}
	}()
	fn()
	return nil
}
