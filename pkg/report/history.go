package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonMarshal is replaced in tests.
var jsonMarshal = json.Marshal

// HistoricalEntry is one suite run in the history log.
type HistoricalEntry struct {
	Timestamp    time.Time `json:"timestamp"`
	Suite        string    `json:"suite"`
	Status       string    `json:"status"`
	Duration     string    `json:"duration"`
	ChecksPassed int       `json:"checks_passed"`
	ChecksTotal  int       `json:"checks_total"`
}

// AppendToHistory adds an entry for suite to the log stored at
// historyPath. Each entry is a single JSON line.
func AppendToHistory(historyPath string, suite *Suite) error {
	entry := HistoricalEntry{
		Timestamp:    suite.EndTime,
		Suite:        suite.Name,
		Status:       suite.Status(),
		Duration:     suite.Duration().String(),
		ChecksPassed: suite.PassedCount(),
		ChecksTotal:  len(suite.Results),
	}

	data, err := jsonMarshal(entry)
	if err != nil {
		return fmt.Errorf(
			"failed to marshal history entry: %w", err,
		)
	}

	file, err := os.OpenFile(
		historyPath,
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to open history file: %w", err,
		)
	}
	defer func() { _ = file.Close() }()

	_, err = fmt.Fprintln(file, string(data))
	return err
}
