// Package metrics records counters about check executions. The
// engine reports to a Recorder installed through its
// configuration; the default discards everything.
package metrics

// Recorder defines the interface for recording check metrics.
type Recorder interface {
	// RecordCheck records one decided check.
	RecordCheck(check string, negated, passed bool)
	// RecordBatch records a batch flush and the number of
	// failures it collected.
	RecordBatch(failures int)
}

// NoopRecorder is a no-op implementation of Recorder useful for
// testing or when metrics collection is disabled.
type NoopRecorder struct{}

func (NoopRecorder) RecordCheck(_ string, _, _ bool) {}
func (NoopRecorder) RecordBatch(_ int)                {}
