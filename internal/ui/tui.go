// Package ui is an interactive browser over one classified snapshot: a list
// of connections and a per-connection detail view. It never rescans and
// never touches the processes it shows; leaving and rerunning the scan is
// the only way to get fresh data.
package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jestkent/Suspicious-Connection-Monitor/internal/pipeline"
)

// Run owns the terminal until the operator quits with q or Ctrl-C.
func Run(rows []pipeline.Row, capturedAt time.Time) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	st := &viewState{
		screen:     s,
		rows:       rows,
		capturedAt: capturedAt,
		mode:       modeList,
	}

	for {
		switch st.mode {
		case modeList:
			drawList(st)
		case modeInspect:
			drawInspector(st)
		}
		s.Show()

		switch ev := s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()

		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}

			switch st.mode {
			case modeList:
				switch ev.Key() {
				case tcell.KeyUp:
					if st.selected > 0 {
						st.selected--
					}
				case tcell.KeyDown:
					if st.selected < len(st.rows)-1 {
						st.selected++
					}
				case tcell.KeyEnter:
					if st.selected >= 0 && st.selected < len(st.rows) {
						st.mode = modeInspect
					}
				}

			case modeInspect:
				if ev.Key() == tcell.KeyEscape {
					st.mode = modeList
				}
			}
		}
	}
}
