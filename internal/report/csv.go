package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jestkent/Suspicious-Connection-Monitor/internal/classify"
	"github.com/jestkent/Suspicious-Connection-Monitor/internal/pipeline"
)

var csvHeader = []string{
	"Process", "PID", "ProcessPath", "State", "LocalEndpoint", "RemoteEndpoint", "Flags",
}

// WriteCSV writes the snapshot as CSV, header first. An empty snapshot still
// produces the header so every saved report file is a parseable document.
func WriteCSV(w io.Writer, rows []pipeline.Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range rows {
		record := []string{
			r.Owner.Name,
			strconv.Itoa(r.Conn.PID),
			r.Owner.Path,
			r.Conn.State.String(),
			r.Conn.LocalEndpoint(),
			r.Conn.RemoteEndpoint(),
			classify.Join(r.Flags),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
