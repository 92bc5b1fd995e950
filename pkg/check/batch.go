package check

import (
	"strings"
	"sync"

	"digital.vasic.fluent/pkg/logging"
)

// BatchDelimiter separates the messages of an aggregated failure.
const BatchDelimiter = "\n** And **\n"

// Batch collects the failures of several checks and reports them
// to its parent as one failure when closed. A *Batch is a Reporter,
// so batches nest: a closed inner batch is one entry of its parent.
type Batch struct {
	parent Reporter
	scope  string

	mu       sync.Mutex
	failures []*Failure
	closed   bool
}

// OpenBatch starts collecting failures for parent. A nil parent
// means Direct. scope, when not empty, is the first line of the
// aggregated message.
func OpenBatch(parent Reporter, scope string) *Batch {
	if parent == nil {
		parent = Direct
	}
	return &Batch{parent: parent, scope: scope}
}

// Report collects f. Failures reported after Close go straight to
// the parent.
func (b *Batch) Report(f *Failure) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		b.parent.Report(f)
		return
	}
	b.failures = append(b.failures, f)
	b.mu.Unlock()
}

// Len returns the number of collected failures.
func (b *Batch) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.failures)
}

// Close ends the batch. The first call reports the aggregated
// failure to the parent when anything was collected and returns
// it; later calls do nothing and return nil.
func (b *Batch) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	failures := b.failures
	b.mu.Unlock()

	s := current()
	s.metrics.RecordBatch(len(failures))
	if len(failures) == 0 {
		return nil
	}

	f := b.aggregate(failures)
	s.logger.Info("batch failed",
		logging.StringField("scope", b.scope),
		logging.IntField("failures", len(failures)),
	)
	b.parent.Report(f)
	return f
}

func (b *Batch) aggregate(failures []*Failure) *Failure {
	messages := make([]string, len(failures))
	for i, f := range failures {
		messages[i] = f.Message
	}

	text := strings.Join(messages, BatchDelimiter)
	if b.scope != "" {
		text = b.scope + "\n" + text
	}

	return &Failure{
		Check:    "batch",
		Message:  text,
		Failures: failures,
	}
}

// discard closes the batch without reporting.
func (b *Batch) discard() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
}

// RunBatch runs body with an open batch and closes it afterwards,
// also when body panics or stops the test with t.FailNow. A
// contract violation raised by body is propagated as is and the
// collected failures are dropped. Any other panic is propagated
// after the batch reported to parent.
func RunBatch(parent Reporter, scope string, body func(b *Batch)) {
	b := OpenBatch(parent, scope)
	defer func() {
		r := recover()
		if r == nil {
			b.Close()
			return
		}
		if _, ok := r.(*ContractError); ok {
			b.discard()
			panic(r)
		}
		b.Close()
		panic(r)
	}()
	body(b)
}
