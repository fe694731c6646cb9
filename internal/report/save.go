package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jestkent/Suspicious-Connection-Monitor/internal/pipeline"
)

// Saver persists one CSV report per run under Dir.
type Saver struct {
	Dir string
}

// Save creates the report directory if needed and writes the rows to
// connscan-<timestamp>-<id>.csv, timestamp in UTC. Returns the written path.
func (s Saver) Save(rows []pipeline.Row, runID string, capturedAt time.Time) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	name := fmt.Sprintf("connscan-%s-%s.csv",
		capturedAt.UTC().Format("20060102-150405"), shortID(runID))
	path := filepath.Join(s.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		return "", fmt.Errorf("write report file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report file: %w", err)
	}
	return path, nil
}

func shortID(runID string) string {
	if len(runID) > 8 {
		return runID[:8]
	}
	return runID
}
