package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jestkent/Suspicious-Connection-Monitor/internal/pipeline"
)

type viewMode int

const (
	modeList viewMode = iota
	modeInspect
)

// viewState is the browser's mutable state over one frozen snapshot. The
// rows never change after Run starts; only selection and mode do.
type viewState struct {
	screen     tcell.Screen
	rows       []pipeline.Row
	capturedAt time.Time

	mode     viewMode
	selected int
	first    int // index of the first visible list row
}

/* ---------- helpers ---------- */

func putString(s tcell.Screen, x, y int, text string) {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, tcell.StyleDefault)
		col++
	}
}

func truncateToWidth(s string, w int) string {
	if w <= 0 || len(s) <= w {
		return s
	}
	if w <= 3 {
		return s[:w]
	}
	return s[:w-3] + "..."
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// clampWindow keeps the selected row inside the visible window.
func (st *viewState) clampWindow(visible int) {
	if visible < 1 {
		visible = 1
	}
	if st.selected < st.first {
		st.first = st.selected
	}
	if st.selected >= st.first+visible {
		st.first = st.selected - visible + 1
	}
	if st.first < 0 {
		st.first = 0
	}
}
