package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/bench/internal/workspace"
)

// ---------------------------------------------------------------------------
// Mouse filter: throttle high-frequency events at program level.
// ---------------------------------------------------------------------------

var lastMotionEvent time.Time

// MouseEventFilter rate-limits motion events (15 ms). Pass to tea.WithFilter.
// Never drops clicks, releases or wheel notches: drag deltas are measured
// between frames, so a dropped motion event loses nothing.
func MouseEventFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); ok {
		now := time.Now()
		if now.Sub(lastMotionEvent) < 15*time.Millisecond {
			return nil
		}
		lastMotionEvent = now
	}
	return msg
}

// mouseXY extracts the pointer cell from any mouse message.
func mouseXY(msg tea.MouseMsg) workspace.Point {
	m := msg.Mouse()
	return workspace.Point{X: m.X, Y: m.Y}
}

// mouse folds one mouse event into the pending frame.
func (c *collector) mouse(msg tea.MouseMsg) {
	c.pointer = mouseXY(msg)
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button == tea.MouseLeft {
			c.buttonPressed = true
			c.buttonDown = true
			c.lastPointer = c.pointer
		}
	case tea.MouseReleaseMsg:
		if msg.Button == tea.MouseLeft || msg.Button == tea.MouseNone {
			c.buttonDown = false
		}
	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelUp:
			c.wheel.Y--
		case tea.MouseWheelDown:
			c.wheel.Y++
		case tea.MouseWheelLeft:
			c.wheel.X--
		case tea.MouseWheelRight:
			c.wheel.X++
		}
	}
}
