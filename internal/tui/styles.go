package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/xonecas/bench/internal/highlight"
)

// colors are the chrome colors, derived from the syntax theme palette.
type colors struct {
	paneBg       string
	paneFg       string
	title        cellStyle
	titleFocused cellStyle
	titleArmed   cellStyle
	caret        cellStyle
	status       cellStyle
	prompt       cellStyle
}

func newColors(p highlight.Palette) colors {
	return colors{
		paneBg:       p.Bg,
		paneFg:       p.Fg,
		title:        cellStyle{fg: p.Muted, bg: p.Border},
		titleFocused: cellStyle{fg: p.Bg, bg: p.Accent},
		titleArmed:   cellStyle{fg: p.Fg, bg: p.Dim},
		caret:        cellStyle{fg: p.Bg, bg: p.Fg},
		status:       cellStyle{fg: p.Muted, bg: p.Bg},
		prompt:       cellStyle{fg: p.Fg, bg: p.Border},
	}
}

// cellStyle is a foreground/background pair. Empty strings leave the
// terminal default in place.
type cellStyle struct {
	fg, bg string
}

// lipgloss returns the style used to render a run of cells.
func (s cellStyle) lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.fg != "" {
		st = st.Foreground(lipgloss.Color(s.fg))
	}
	if s.bg != "" {
		st = st.Background(lipgloss.Color(s.bg))
	}
	return st
}
