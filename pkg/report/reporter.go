// Package report renders the results of declarative check suites
// as JSON, plain text and Markdown summaries.
package report

import (
	"io"
	"time"

	"digital.vasic.fluent/pkg/assertion"
)

// Suite is a named run of declarative checks.
type Suite struct {
	Name      string             `json:"name"`
	StartTime time.Time          `json:"start_time"`
	EndTime   time.Time          `json:"end_time"`
	Results   []assertion.Result `json:"results"`
}

// Passed reports whether every check of the suite passed. An empty
// suite passes.
func (s *Suite) Passed() bool {
	return s.PassedCount() == len(s.Results)
}

// PassedCount returns the number of passed checks.
func (s *Suite) PassedCount() int {
	n := 0
	for _, r := range s.Results {
		if r.Passed {
			n++
		}
	}
	return n
}

// Duration is the wall time of the suite.
func (s *Suite) Duration() time.Duration {
	if s.EndTime.Before(s.StartTime) {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

// Status is "passed" or "failed".
func (s *Suite) Status() string {
	if s.Passed() {
		return StatusPassed
	}
	return StatusFailed
}

// Suite statuses.
const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

// Reporter defines the interface for generating suite reports.
type Reporter interface {
	// GenerateReport creates a report for a single suite.
	GenerateReport(suite *Suite) ([]byte, error)

	// GenerateMasterSummary creates a summary of all suites.
	GenerateMasterSummary(suites []*Suite) ([]byte, error)

	// WriteReport writes a report to the specified writer.
	WriteReport(w io.Writer, suite *Suite) error
}
