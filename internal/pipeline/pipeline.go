// Package pipeline turns a raw connection snapshot into the ordered,
// owner-attributed rows the report sink and viewer consume.
package pipeline

import (
	"sort"
	"strings"

	"github.com/jestkent/Suspicious-Connection-Monitor/internal/classify"
	"github.com/jestkent/Suspicious-Connection-Monitor/internal/netsnap"
	"github.com/jestkent/Suspicious-Connection-Monitor/internal/procdir"
)

// Row is one classified connection: the snapshot row, the process that owns
// it, and the heuristic flags that fired.
type Row struct {
	Conn  netsnap.Connection
	Owner procdir.Identity
	Flags []classify.Flag
}

// Flagged reports whether any rule fired for this row.
func (r Row) Flagged() bool { return len(r.Flags) > 0 }

// Run filters, enriches, classifies, and orders a snapshot.
//
// Rows without a local port are malformed reads and are dropped. Every
// surviving row is attributed via dir, classified against the watchlist, and
// kept even when the owner has vanished (degraded identity, still
// classified). The final order is stable: flagged rows first, then process
// name ascending case-insensitively.
func Run(conns []netsnap.Connection, dir procdir.Directory, ports map[int]struct{}) []Row {
	rows := make([]Row, 0, len(conns))
	for _, conn := range conns {
		if conn.LocalPort == 0 {
			continue
		}
		owner := dir.Lookup(conn.PID)
		rows = append(rows, Row{
			Conn:  conn,
			Owner: owner,
			Flags: classify.Evaluate(conn, ports),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Flagged() != rows[j].Flagged() {
			return rows[i].Flagged()
		}
		return strings.ToLower(rows[i].Owner.Name) < strings.ToLower(rows[j].Owner.Name)
	})

	return rows
}
