package report

import (
	"fmt"
	"io"

	"github.com/jestkent/Suspicious-Connection-Monitor/internal/classify"
	"github.com/jestkent/Suspicious-Connection-Monitor/internal/pipeline"
)

// Summary is the operator's closing view of a run: counts plus the first
// topN flagged rows for quick review.
type Summary struct {
	Total   int
	Flagged int
	Top     []pipeline.Row
}

// BuildSummary counts flags and collects the leading flagged rows. Rows
// arrive pipeline-ordered, so the flagged ones form a prefix.
func BuildSummary(rows []pipeline.Row, topN int) Summary {
	s := Summary{Total: len(rows)}
	for _, r := range rows {
		if r.Flagged() {
			s.Flagged++
		}
	}
	for _, r := range rows {
		if !r.Flagged() || len(s.Top) == topN {
			break
		}
		s.Top = append(s.Top, r)
	}
	return s
}

func WriteSummary(w io.Writer, s Summary) error {
	if _, err := fmt.Fprintf(w, "scan complete: %d connections, %d flagged\n",
		s.Total, s.Flagged); err != nil {
		return err
	}
	if len(s.Top) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, "top flagged:"); err != nil {
		return err
	}
	for _, r := range s.Top {
		if _, err := fmt.Fprintf(w, "  [PID %d] %s  %s -> %s  %s  flags: %s\n",
			r.Conn.PID,
			r.Owner.Name,
			r.Conn.LocalEndpoint(),
			r.Conn.RemoteEndpoint(),
			r.Conn.State,
			classify.Join(r.Flags),
		); err != nil {
			return err
		}
	}
	return nil
}
