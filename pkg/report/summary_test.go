package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummary(t *testing.T) {
	s := BuildSummary([]*Suite{makeSuite(), makePassingSuite()})

	assert.Equal(t, 2, s.TotalSuites)
	assert.Equal(t, 1, s.PassedSuites)
	assert.Equal(t, 1, s.FailedSuites)
	assert.Equal(t, 3, s.TotalChecks)
	assert.Equal(t, 2, s.PassedChecks)
	assert.Equal(t, 1, s.FailedChecks)
	assert.InDelta(t, 2.0/3.0, s.PassRate, 1e-9)
	require.Len(t, s.Suites, 2)
	assert.Equal(t, SuiteSummary{
		Name:         "api",
		Status:       StatusFailed,
		Duration:     s.Suites[0].Duration,
		ChecksPassed: 1,
		ChecksTotal:  2,
	}, s.Suites[0])
	require.Len(t, s.Failures, 1)
	assert.Contains(t, s.Failures[0], "api/body (contains): The checked body contains")
}

func TestBuildSummary_Empty(t *testing.T) {
	s := BuildSummary(nil)

	assert.Zero(t, s.TotalSuites)
	assert.Zero(t, s.PassRate)
	assert.Empty(t, s.Failures)
	assert.NotNil(t, s.Suites)
}

func TestSummaryMarkdown(t *testing.T) {
	md := SummaryMarkdown(BuildSummary([]*Suite{makeSuite()}))

	assert.Contains(t, md, "# Check Summary")
	assert.Contains(t, md, "| api | FAILED | 5s | 1/2 |")
	assert.Contains(t, md, "| Pass Rate | 50% |")
	assert.Contains(t, md, "## Failures")
}

func TestSummaryMarkdown_NoFailures(t *testing.T) {
	md := SummaryMarkdown(BuildSummary([]*Suite{makePassingSuite()}))

	assert.NotContains(t, md, "## Failures")
	assert.Contains(t, md, "| Pass Rate | 100% |")
}

func TestSaveSummary(t *testing.T) {
	dir := t.TempDir()
	summary := BuildSummary([]*Suite{makeSuite()})

	require.NoError(t, SaveSummary(summary, dir))

	data, err := os.ReadFile(filepath.Join(dir, "latest_summary.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"total_checks": 2`)

	md, err := os.ReadFile(filepath.Join(dir, "latest_summary.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "# Check Summary")
}

func TestSaveSummary_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	require.NoError(t, SaveSummary(BuildSummary(nil), dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}
