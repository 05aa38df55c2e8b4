package workspace

import "charm.land/bubbles/v2/key"

// Point is a screen cell or a delta between two cells.
type Point struct {
	X, Y int
}

// IsZero reports whether p is the origin.
func (p Point) IsZero() bool { return p.X == 0 && p.Y == 0 }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Input is one frame's worth of polled input.
type Input struct {
	// Pressed lists keys newly pressed this frame, in arrival order.
	// Keys that produce characters arrive through Char instead.
	Pressed []string
	// Held is the set of keys currently down.
	Held map[string]bool
	// Char is the single character delivered this frame, if HasChar.
	Char    rune
	HasChar bool

	Pointer       Point
	PointerDelta  Point
	ButtonPressed bool // left button went down this frame
	ButtonHeld    bool // left button is down
	Wheel         Point
}

// held reports whether any key of b is down.
func (in Input) held(b key.Binding) bool {
	if !b.Enabled() {
		return false
	}
	for _, k := range b.Keys() {
		if in.Held[k] {
			return true
		}
	}
	return false
}
