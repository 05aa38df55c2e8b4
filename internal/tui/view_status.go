package tui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
)

const promptPrefix = "> "

// paintStatus writes the status line, or the command prompt while it has
// focus, on row y.
func (m Model) paintStatus(c *canvas, y int) {
	if m.ws.PromptFocused() {
		text, cursor := m.ws.PromptText()
		line := promptPrefix + text
		c.fill(0, y, c.w, statusRows, m.colors.prompt)
		c.text(0, y, fit(line, c.w), c.w, m.colors.prompt)
		c.restyle(len(promptPrefix)+cursor, y, m.colors.caret)
		return
	}

	// -- Right: focused pane and cursor --
	right := ""
	if p, ok := m.ws.Focused(); ok {
		cur := p.Cursor()
		right = fmt.Sprintf("%s %d:%d ", p.Title, cur.Row+1, cur.Col+1)
	}

	// -- Left: last status message, truncated to what is left --
	left := " " + m.ws.Status()
	room := c.w - ansi.StringWidth(right)
	if room < 1 {
		right = ""
		room = c.w
	}

	c.fill(0, y, c.w, statusRows, m.colors.status)
	c.text(0, y, fit(left, room)+right, c.w, m.colors.status)
}
