package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// TextReporter renders suites as plain text. Failure messages are
// indented under their check.
type TextReporter struct{}

// NewTextReporter creates a new text reporter.
func NewTextReporter() *TextReporter {
	return &TextReporter{}
}

// GenerateReport creates a text report for a single suite.
func (r *TextReporter) GenerateReport(suite *Suite) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.WriteReport(&buf, suite); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteReport writes a text report to the specified writer.
func (r *TextReporter) WriteReport(w io.Writer, suite *Suite) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s: %s (%d/%d checks passed, %v)\n",
		suite.Name, strings.ToUpper(suite.Status()),
		suite.PassedCount(), len(suite.Results), suite.Duration())

	for _, res := range suite.Results {
		mark := "PASS"
		if !res.Passed {
			mark = "FAIL"
		}
		name := res.Type
		if res.Negated {
			name = "not " + name
		}
		fmt.Fprintf(&sb, "  [%s] %s %s\n", mark, res.Target, name)
		if !res.Passed {
			for _, line := range strings.Split(res.Message, "\n") {
				sb.WriteString("      " + line + "\n")
			}
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// GenerateMasterSummary creates a text summary of all suites.
func (r *TextReporter) GenerateMasterSummary(suites []*Suite) ([]byte, error) {
	s := BuildSummary(suites)

	var sb strings.Builder
	for _, suite := range s.Suites {
		fmt.Fprintf(&sb, "%-6s %s (%d/%d)\n",
			strings.ToUpper(suite.Status), suite.Name,
			suite.ChecksPassed, suite.ChecksTotal)
	}
	fmt.Fprintf(&sb, "%d suites, %d checks, %d failed, pass rate %.0f%%\n",
		s.TotalSuites, s.TotalChecks, s.FailedChecks, s.PassRate*100)

	return []byte(sb.String()), nil
}
