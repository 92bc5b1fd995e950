package report

import (
	"encoding/json"
	"io"
)

// jsonReportMarshal is replaced in tests.
var jsonReportMarshal = json.Marshal

// JSONReporter generates JSON reports from suites.
type JSONReporter struct {
	pretty bool
}

// NewJSONReporter creates a new JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(pretty bool) *JSONReporter {
	return &JSONReporter{pretty: pretty}
}

// GenerateReport creates a JSON report for a single suite.
func (r *JSONReporter) GenerateReport(suite *Suite) ([]byte, error) {
	return r.marshal(suite)
}

// GenerateMasterSummary creates a JSON summary of all suites.
func (r *JSONReporter) GenerateMasterSummary(suites []*Suite) ([]byte, error) {
	return r.marshal(BuildSummary(suites))
}

// WriteReport writes a JSON report to the specified writer.
func (r *JSONReporter) WriteReport(w io.Writer, suite *Suite) error {
	data, err := r.GenerateReport(suite)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (r *JSONReporter) marshal(v any) ([]byte, error) {
	if r.pretty {
		return jsonMarshalIndent(v, "", "  ")
	}
	return jsonReportMarshal(v)
}
