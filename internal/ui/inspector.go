package ui

import (
	"fmt"
	"strings"

	"github.com/jestkent/Suspicious-Connection-Monitor/internal/classify"
)

func drawInspector(st *viewState) {
	s := st.screen
	s.Clear()

	w, h := s.Size()

	putString(s, 0, 0,
		truncateToWidth(fmt.Sprintf("snapshot UTC: %s", st.capturedAt.UTC().Format("2006-01-02 15:04:05")), w),
	)

	if st.selected < 0 || st.selected >= len(st.rows) {
		putString(s, 0, 2, "Nothing selected. Press ESC.")
		return
	}
	r := st.rows[st.selected]

	y := 2
	title := fmt.Sprintf(" %s (PID %d) ", r.Owner.Name, r.Conn.PID)
	sep := strings.Repeat("─", minInt(len(title), w))

	putString(s, 0, y, sep)
	y++
	putString(s, 0, y, truncateToWidth(title, w))
	y++
	putString(s, 0, y, sep)
	y += 2

	putString(s, 0, y, "Process:")
	y++
	path := r.Owner.Path
	if path == "" {
		path = "(unknown)"
	}
	putString(s, 2, y, truncateToWidth(fmt.Sprintf("Path: %s", path), w-2))
	y += 2

	putString(s, 0, y, "Connection:")
	y++
	putString(s, 2, y, truncateToWidth(fmt.Sprintf("Local:  %s", r.Conn.LocalEndpoint()), w-2))
	y++
	putString(s, 2, y, truncateToWidth(fmt.Sprintf("Remote: %s", r.Conn.RemoteEndpoint()), w-2))
	y++
	putString(s, 2, y, fmt.Sprintf("State:  %s", r.Conn.State))
	y++
	putString(s, 2, y, fmt.Sprintf("Scope:  %s", classify.RemoteScope(r.Conn.RemoteAddr)))
	y += 2

	if len(r.Flags) == 0 {
		putString(s, 0, y, "Flags: none")
	} else {
		putString(s, 0, y, "Flags:")
		y++
		for _, f := range r.Flags {
			if y >= h-2 {
				break
			}
			putString(s, 2, y, truncateToWidth(fmt.Sprintf("%s: %s", f, f.Reason()), w-2))
			y++
		}
	}

	putString(s, 0, h-1, "ESC return | q quit")
}
