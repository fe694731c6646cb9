// Package report renders classified rows for the operator: a fixed-width
// screen table, a per-run CSV file, an optional JSON export, and the closing
// summary. Rendering never reorders rows; ordering belongs to the pipeline.
package report

import (
	"fmt"
	"io"

	"github.com/jestkent/Suspicious-Connection-Monitor/internal/classify"
	"github.com/jestkent/Suspicious-Connection-Monitor/internal/pipeline"
)

const nameWidth = 22

// WriteTable prints the snapshot as a fixed-width table. Flagged rows carry
// a "!" marker in the first column and arrive first from the pipeline.
func WriteTable(w io.Writer, rows []pipeline.Row) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "no tcp connections to report")
		return err
	}

	if _, err := fmt.Fprintf(w, "%-2s %-22s %-7s %-13s %-22s %-22s %-9s %s\n",
		"", "PROCESS", "PID", "STATE", "LOCAL", "REMOTE", "SCOPE", "FLAGS"); err != nil {
		return err
	}

	for _, r := range rows {
		marker := "-"
		if r.Flagged() {
			marker = "!"
		}
		if _, err := fmt.Fprintf(w, "%-2s %-22s %-7d %-13s %-22s %-22s %-9s %s\n",
			marker,
			trimName(r.Owner.Name, nameWidth),
			r.Conn.PID,
			r.Conn.State,
			r.Conn.LocalEndpoint(),
			r.Conn.RemoteEndpoint(),
			classify.RemoteScope(r.Conn.RemoteAddr),
			classify.Join(r.Flags),
		); err != nil {
			return err
		}
	}
	return nil
}

func trimName(name string, max int) string {
	if len(name) <= max {
		return name
	}
	if max <= 3 {
		return name[:max]
	}
	return name[:max-3] + "..."
}
