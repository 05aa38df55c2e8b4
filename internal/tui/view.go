package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/bench/internal/buffer"
	"github.com/xonecas/bench/internal/pane"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() tea.View {
	v := tea.NewView(m.renderContent())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	v.WindowTitle = "bench"
	return v
}

// renderContent produces the styled string content for the view.
func (m Model) renderContent() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	return m.paint().render()
}

// renderPlain is renderContent without colors.
func (m Model) renderPlain() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	return m.paint().plain()
}

// paint draws every pane bottom first, then the status line.
func (m Model) paint() *canvas {
	c := newCanvas(m.width, m.height)
	focused, _ := m.ws.Focused()
	armed := m.ws.DragTarget()
	for _, p := range m.ws.Panes() {
		m.paintPane(c, p, p == focused, p.ID == armed)
	}
	m.paintStatus(c, m.height-statusRows)
	return c
}

// plainMarker flags a pane whose highlighter failed and is drawn in the
// default color.
const plainMarker = "[plain]"

func (m Model) paintPane(c *canvas, p *pane.Pane, focused, armed bool) {
	win := p.Window
	body := cellStyle{fg: m.colors.paneFg, bg: m.colors.paneBg}

	title := m.colors.title
	switch {
	case focused:
		title = m.colors.titleFocused
	case armed:
		title = m.colors.titleArmed
	}
	bar := p.TitleBar()
	label := " " + p.Title
	if p.HighlightFailed() {
		label += " " + plainMarker
	}
	c.fill(bar.X, bar.Y, bar.W, bar.H, title)
	c.text(bar.X, bar.Y, fit(label, bar.W), bar.W, title)

	c.fill(win.X, win.Y, win.W, win.H, body)

	lh := p.LineHeight()
	off := p.Offset()
	for r := 0; r < win.H; r++ {
		y := off.Y + r
		if y < 0 || y%lh != 0 {
			continue
		}
		row := y / lh
		if row >= p.LineCount() {
			break
		}
		line := p.Line(row)
		for x := 0; x < win.W; x++ {
			col := off.X + x
			if col < 0 || col >= len(line) {
				continue
			}
			fg := p.ColorAt(buffer.Pos{Row: row, Col: col})
			c.set(win.X+x, win.Y+r, line[col], cellStyle{fg: fg, bg: m.colors.paneBg})
		}
	}

	if focused && !m.ws.PromptFocused() {
		cur := p.Cursor()
		x := cur.Col - off.X
		y := cur.Row*lh - off.Y
		if x >= 0 && x < win.W && y >= 0 && y < win.H {
			c.restyle(win.X+x, win.Y+y, m.colors.caret)
		}
	}
}
