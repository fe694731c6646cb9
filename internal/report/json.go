package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jestkent/Suspicious-Connection-Monitor/internal/classify"
	"github.com/jestkent/Suspicious-Connection-Monitor/internal/pipeline"
)

// Export is the machine-readable form of one scan.
type Export struct {
	CapturedAt time.Time   `json:"captured_at"`
	RunID      string      `json:"run_id"`
	Total      int         `json:"total"`
	Flagged    int         `json:"flagged"`
	Rows       []ExportRow `json:"connections"`
}

type ExportRow struct {
	Process string   `json:"process"`
	PID     int      `json:"pid"`
	Path    string   `json:"path,omitempty"`
	State   string   `json:"state"`
	Local   string   `json:"local"`
	Remote  string   `json:"remote"`
	Scope   string   `json:"scope"`
	Flags   []string `json:"flags,omitempty"`
}

// NewExport builds the export document for one classified snapshot.
func NewExport(rows []pipeline.Row, runID string, capturedAt time.Time) Export {
	ex := Export{
		CapturedAt: capturedAt.UTC(),
		RunID:      runID,
		Total:      len(rows),
		Rows:       make([]ExportRow, 0, len(rows)),
	}

	for _, r := range rows {
		var flags []string
		for _, f := range r.Flags {
			flags = append(flags, f.String())
		}
		if r.Flagged() {
			ex.Flagged++
		}
		ex.Rows = append(ex.Rows, ExportRow{
			Process: r.Owner.Name,
			PID:     r.Conn.PID,
			Path:    r.Owner.Path,
			State:   r.Conn.State.String(),
			Local:   r.Conn.LocalEndpoint(),
			Remote:  r.Conn.RemoteEndpoint(),
			Scope:   classify.RemoteScope(r.Conn.RemoteAddr).String(),
			Flags:   flags,
		})
	}
	return ex
}

// EncodeJSON writes the export document to w.
func EncodeJSON(w io.Writer, ex Export, pretty bool) error {
	var (
		out []byte
		err error
	)
	if pretty {
		out, err = json.MarshalIndent(ex, "", "  ")
	} else {
		out, err = json.Marshal(ex)
	}
	if err != nil {
		return err
	}

	if _, err := w.Write(out); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// WriteJSON writes the export to path. An empty path is a no-op and "-"
// targets stdout.
func WriteJSON(path string, ex Export, pretty bool) error {
	if path == "" {
		return nil
	}
	if path == "-" {
		return EncodeJSON(os.Stdout, ex, pretty)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open json export: %w", err)
	}
	if err := EncodeJSON(f, ex, pretty); err != nil {
		f.Close()
		return fmt.Errorf("write json export: %w", err)
	}
	return f.Close()
}
