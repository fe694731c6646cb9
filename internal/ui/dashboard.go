package ui

import (
	"fmt"

	"github.com/jestkent/Suspicious-Connection-Monitor/internal/classify"
)

func drawList(st *viewState) {
	s := st.screen
	s.Clear()

	w, h := s.Size()

	putString(s, 0, 0,
		truncateToWidth(fmt.Sprintf("snapshot UTC: %s", st.capturedAt.UTC().Format("2006-01-02 15:04:05")), w),
	)
	putString(s, 0, 2,
		truncateToWidth("UP/DOWN select | ENTER inspect | q quit", w),
	)

	y := 4
	if len(st.rows) == 0 {
		putString(s, 0, y, "no tcp connections to display")
		return
	}

	putString(s, 0, y,
		fmt.Sprintf("%-1s %-1s %-7s %-22s %-13s %-22s %-9s %s",
			" ", " ", "PID", "PROCESS", "STATE", "REMOTE", "SCOPE", "FLAGS"),
	)
	y++
	putString(s, 0, y,
		fmt.Sprintf("%-1s %-1s %-7s %-22s %-13s %-22s %-9s %s",
			" ", " ", "------", "---------------------", "------------", "---------------------", "--------", "-----"),
	)
	y++

	visible := h - y
	st.clampWindow(visible)

	for i := st.first; i < len(st.rows) && y < h; i++ {
		r := st.rows[i]

		arrow := " "
		if i == st.selected {
			arrow = ">"
		}
		marker := " "
		if r.Flagged() {
			marker = "!"
		}

		line := fmt.Sprintf("%-1s %-1s %-7d %-22s %-13s %-22s %-9s %s",
			arrow,
			marker,
			r.Conn.PID,
			truncateToWidth(r.Owner.Name, 22),
			r.Conn.State,
			truncateToWidth(r.Conn.RemoteEndpoint(), 22),
			classify.RemoteScope(r.Conn.RemoteAddr),
			classify.Join(r.Flags),
		)

		putString(s, 0, y, truncateToWidth(line, w))
		y++
	}
}
