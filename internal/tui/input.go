package tui

import (
	"maps"

	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/bench/internal/workspace"
)

// collector accumulates terminal events between frames and hands them to
// the workspace as one workspace.Input per tick.
type collector struct {
	pressed []string
	held    map[string]bool
	chars   []rune // at most one is delivered per frame

	pointer       workspace.Point
	lastPointer   workspace.Point
	buttonPressed bool
	buttonDown    bool
	wheel         workspace.Point

	// releases is set once the terminal reports a key release. Until then
	// keys count as held only for the frame they were pressed in.
	releases bool
}

func newCollector() *collector {
	return &collector{held: make(map[string]bool)}
}

// keyPress records one key. Enter and backspace become the characters the
// buffer and prompt interpret; printable text is queued as characters;
// everything else is a named key.
func (c *collector) keyPress(msg tea.KeyPressMsg) {
	k := msg.Keystroke()
	c.held[k] = true

	switch {
	case msg.Code == tea.KeyEnter && msg.Mod == 0:
		c.chars = append(c.chars, '\r')
	case msg.Code == tea.KeyBackspace && msg.Mod == 0:
		c.chars = append(c.chars, '\b')
	case msg.Code == tea.KeyTab:
		c.pressed = append(c.pressed, k)
	case msg.Text != "" && !msg.Mod.Contains(tea.ModCtrl) && !msg.Mod.Contains(tea.ModAlt):
		c.chars = append(c.chars, []rune(msg.Text)...)
	default:
		c.pressed = append(c.pressed, k)
	}
}

func (c *collector) keyRelease(msg tea.KeyReleaseMsg) {
	c.releases = true
	delete(c.held, msg.Key().Keystroke())
}

// paste queues pasted text as characters, newlines as carriage returns.
func (c *collector) paste(s string) {
	for _, r := range s {
		switch r {
		case '\r':
		case '\n':
			c.chars = append(c.chars, '\r')
		default:
			c.chars = append(c.chars, r)
		}
	}
}

// frame returns the input gathered since the last call and starts a new
// frame. Queued characters beyond the first carry over.
func (c *collector) frame() workspace.Input {
	in := workspace.Input{
		Pressed:       c.pressed,
		Held:          maps.Clone(c.held),
		Pointer:       c.pointer,
		PointerDelta:  c.pointer.Sub(c.lastPointer),
		ButtonPressed: c.buttonPressed,
		ButtonHeld:    c.buttonDown || c.buttonPressed,
		Wheel:         c.wheel,
	}
	if len(c.chars) > 0 {
		in.Char, in.HasChar = c.chars[0], true
		c.chars = c.chars[1:]
	}

	c.pressed = nil
	c.buttonPressed = false
	c.wheel = workspace.Point{}
	c.lastPointer = c.pointer
	if !c.releases {
		clear(c.held)
	}
	return in
}
