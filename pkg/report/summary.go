package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// jsonMarshalIndent is replaced in tests.
var jsonMarshalIndent = json.MarshalIndent

// Summary aggregates the results of several suites.
type Summary struct {
	GeneratedAt  time.Time      `json:"generated_at"`
	Suites       []SuiteSummary `json:"suites"`
	TotalSuites  int            `json:"total_suites"`
	PassedSuites int            `json:"passed_suites"`
	FailedSuites int            `json:"failed_suites"`
	TotalChecks  int            `json:"total_checks"`
	PassedChecks int            `json:"passed_checks"`
	FailedChecks int            `json:"failed_checks"`
	// PassRate is PassedChecks / TotalChecks, or 0 without checks.
	PassRate      float64       `json:"pass_rate"`
	TotalDuration time.Duration `json:"total_duration"`
	// Failures holds "suite/target (type): message" lines in run
	// order.
	Failures []string `json:"failures,omitempty"`
}

// SuiteSummary summarizes one suite.
type SuiteSummary struct {
	Name         string        `json:"name"`
	Status       string        `json:"status"`
	Duration     time.Duration `json:"duration"`
	ChecksPassed int           `json:"checks_passed"`
	ChecksTotal  int           `json:"checks_total"`
}

// BuildSummary aggregates suites.
func BuildSummary(suites []*Suite) *Summary {
	summary := &Summary{
		GeneratedAt: time.Now(),
		Suites:      make([]SuiteSummary, 0, len(suites)),
	}

	for _, s := range suites {
		passed := s.PassedCount()

		summary.Suites = append(summary.Suites, SuiteSummary{
			Name:         s.Name,
			Status:       s.Status(),
			Duration:     s.Duration(),
			ChecksPassed: passed,
			ChecksTotal:  len(s.Results),
		})
		summary.TotalSuites++
		summary.TotalDuration += s.Duration()
		summary.TotalChecks += len(s.Results)
		summary.PassedChecks += passed

		if s.Passed() {
			summary.PassedSuites++
		} else {
			summary.FailedSuites++
		}

		for _, r := range s.Results {
			if !r.Passed {
				summary.Failures = append(summary.Failures,
					fmt.Sprintf("%s/%s (%s): %s", s.Name, r.Target, r.Type, r.Message))
			}
		}
	}

	summary.FailedChecks = summary.TotalChecks - summary.PassedChecks
	if summary.TotalChecks > 0 {
		summary.PassRate = float64(summary.PassedChecks) /
			float64(summary.TotalChecks)
	}

	return summary
}

// SaveSummary writes the summary as JSON and Markdown files into
// outputDir and points latest_summary.{json,md} at them.
func SaveSummary(summary *Summary, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf(
			"failed to create output directory: %w", err,
		)
	}

	ts := summary.GeneratedAt.Format("20060102_150405")

	jsonPath := filepath.Join(
		outputDir, fmt.Sprintf("summary_%s.json", ts),
	)
	jsonData, err := jsonMarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return fmt.Errorf(
			"failed to write JSON summary: %w", err,
		)
	}

	mdPath := filepath.Join(
		outputDir, fmt.Sprintf("summary_%s.md", ts),
	)
	if err := os.WriteFile(
		mdPath, []byte(SummaryMarkdown(summary)), 0644,
	); err != nil {
		return fmt.Errorf(
			"failed to write Markdown summary: %w", err,
		)
	}

	latestJSON := filepath.Join(outputDir, "latest_summary.json")
	latestMD := filepath.Join(outputDir, "latest_summary.md")

	_ = os.Remove(latestJSON)
	_ = os.Remove(latestMD)
	_ = os.Symlink(filepath.Base(jsonPath), latestJSON)
	_ = os.Symlink(filepath.Base(mdPath), latestMD)

	return nil
}

// SummaryMarkdown renders a summary as a Markdown document.
func SummaryMarkdown(summary *Summary) string {
	var sb strings.Builder

	sb.WriteString("# Check Summary\n\n")
	fmt.Fprintf(&sb, "**Generated:** %s\n\n",
		summary.GeneratedAt.Format(time.RFC3339))

	sb.WriteString("## Suites\n\n")
	sb.WriteString("| Suite | Status | Duration | Checks |\n")
	sb.WriteString("|-------|--------|----------|--------|\n")
	for _, s := range summary.Suites {
		fmt.Fprintf(&sb, "| %s | %s | %v | %d/%d |\n",
			s.Name, strings.ToUpper(s.Status), s.Duration,
			s.ChecksPassed, s.ChecksTotal)
	}

	sb.WriteString("\n## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	fmt.Fprintf(&sb, "| Suites | %d |\n", summary.TotalSuites)
	fmt.Fprintf(&sb, "| Checks | %d |\n", summary.TotalChecks)
	fmt.Fprintf(&sb, "| Passed | %d |\n", summary.PassedChecks)
	fmt.Fprintf(&sb, "| Failed | %d |\n", summary.FailedChecks)
	fmt.Fprintf(&sb, "| Pass Rate | %.0f%% |\n", summary.PassRate*100)
	fmt.Fprintf(&sb, "| Total Duration | %v |\n", summary.TotalDuration)

	if len(summary.Failures) > 0 {
		sb.WriteString("\n## Failures\n\n")
		for _, f := range summary.Failures {
			sb.WriteString("```\n" + f + "\n```\n\n")
		}
	}

	return sb.String()
}
