package check

import (
	"context"
	"sync"
	"testing"
)

// Reporter receives the failures of decided checks.
type Reporter interface {
	Report(f *Failure)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(f *Failure)

// Report calls fn(f).
func (fn ReporterFunc) Report(f *Failure) {
	fn(f)
}

// Direct panics with the failure. It is the reporter of values
// built with Expect and the parent of batches opened without one.
var Direct Reporter = directReporter{}

type directReporter struct{}

func (directReporter) Report(f *Failure) {
	panic(f)
}

// TB returns a reporter failing t: the message is logged with
// t.Error and the test stops with t.FailNow.
func TB(t testing.TB) Reporter {
	return tbReporter{t: t}
}

type tbReporter struct {
	t testing.TB
}

func (r tbReporter) Report(f *Failure) {
	r.t.Helper()
	r.t.Error(f.Message)
	r.t.FailNow()
}

// Recorder collects failures without interrupting the caller.
// It is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	failures []*Failure
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Report records f.
func (r *Recorder) Report(f *Failure) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, f)
}

// Failures returns a copy of the recorded failures in order.
func (r *Recorder) Failures() []*Failure {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Failure(nil), r.failures...)
}

// Failed reports whether anything was recorded.
func (r *Recorder) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.failures) > 0
}

// Last returns the most recent failure, or nil.
func (r *Recorder) Last() *Failure {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.failures) == 0 {
		return nil
	}
	return r.failures[len(r.failures)-1]
}

// Reset forgets every recorded failure.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = nil
}

type reporterKey struct{}

// NewContext returns a copy of ctx carrying r. Values built with
// ThatCtx report to it.
func NewContext(ctx context.Context, r Reporter) context.Context {
	return context.WithValue(ctx, reporterKey{}, r)
}

// ReporterFromContext returns the reporter carried by ctx, or
// Direct when there is none.
func ReporterFromContext(ctx context.Context) Reporter {
	if ctx != nil {
		if r, ok := ctx.Value(reporterKey{}).(Reporter); ok && r != nil {
			return r
		}
	}
	return Direct
}
