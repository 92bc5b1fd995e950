package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONReporter_GenerateReport(t *testing.T) {
	data, err := NewJSONReporter(false).GenerateReport(makeSuite())
	require.NoError(t, err)

	var decoded Suite
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "api", decoded.Name)
	require.Len(t, decoded.Results, 2)
	assert.True(t, decoded.Results[1].Negated)
	assert.NotContains(t, string(data), "\n  ")
}

func TestJSONReporter_Pretty(t *testing.T) {
	data, err := NewJSONReporter(true).GenerateReport(makeSuite())
	require.NoError(t, err)

	assert.Contains(t, string(data), "\n  \"name\": \"api\"")
}

func TestJSONReporter_GenerateMasterSummary(t *testing.T) {
	data, err := NewJSONReporter(true).GenerateMasterSummary(
		[]*Suite{makeSuite(), makePassingSuite()},
	)
	require.NoError(t, err)

	var decoded Summary
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 2, decoded.TotalSuites)
	assert.Equal(t, 1, decoded.FailedChecks)
	assert.Len(t, decoded.Failures, 1)
}

func TestJSONReporter_WriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONReporter(false).WriteReport(&buf, makePassingSuite()))

	assert.Contains(t, buf.String(), `"name":"db"`)
}
