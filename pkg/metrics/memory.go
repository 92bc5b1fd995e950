package metrics

import (
	"sort"
	"sync"
)

// CheckCount is the snapshot of the counters for one check name.
type CheckCount struct {
	Check   string `json:"check"`
	Passed  int    `json:"passed"`
	Failed  int    `json:"failed"`
	Negated int    `json:"negated"`
}

// InMemoryRecorder implements Recorder with in-process counters.
// It is safe for concurrent use.
type InMemoryRecorder struct {
	mu            sync.Mutex
	checks        map[string]*CheckCount
	batches       int
	batchFailures int
}

// NewInMemoryRecorder creates an empty InMemoryRecorder.
func NewInMemoryRecorder() *InMemoryRecorder {
	return &InMemoryRecorder{
		checks: make(map[string]*CheckCount),
	}
}

func (m *InMemoryRecorder) RecordCheck(check string, negated, passed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.checks[check]
	if !ok {
		c = &CheckCount{Check: check}
		m.checks[check] = c
	}
	if passed {
		c.Passed++
	} else {
		c.Failed++
	}
	if negated {
		c.Negated++
	}
}

func (m *InMemoryRecorder) RecordBatch(failures int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.batches++
	m.batchFailures += failures
}

// Count returns the counters recorded for check.
func (m *InMemoryRecorder) Count(check string) CheckCount {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.checks[check]; ok {
		return *c
	}
	return CheckCount{Check: check}
}

// Snapshot returns all counters ordered by check name.
func (m *InMemoryRecorder) Snapshot() []CheckCount {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]CheckCount, 0, len(m.checks))
	for _, c := range m.checks {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Check < out[j].Check
	})
	return out
}

// Batches returns how many batches were flushed and the total
// number of failures they collected.
func (m *InMemoryRecorder) Batches() (flushed, failures int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.batches, m.batchFailures
}
