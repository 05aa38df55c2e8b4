// Package viewport tracks the scroll offset of a pane.
package viewport

// Offset is a scroll vector in rows (Y) and columns (X).
type Offset struct {
	X int
	Y int
}

// Scroller owns one pane's scroll offset. Y is kept within the content
// extent; X only accumulates.
type Scroller struct {
	Offset     Offset
	LineHeight int
}

// New returns a scroller at the origin. lineHeight below 1 is treated as 1.
func New(lineHeight int) Scroller {
	return Scroller{LineHeight: max(lineHeight, 1)}
}

func (s *Scroller) lineHeight() int {
	return max(s.LineHeight, 1)
}

// MaxY is the largest valid vertical offset for the given content.
func (s *Scroller) MaxY(lines, windowHeight int) int {
	return max(0, lines*s.lineHeight()-windowHeight)
}

// Scroll adds (dx, dy) to the offset and clamps Y.
func (s *Scroller) Scroll(dx, dy, lines, windowHeight int) {
	// TODO: clamp X against the longest line once pane width tracks it.
	s.Offset.X += dx
	s.Offset.Y += dy
	s.Clamp(lines, windowHeight)
}

// Clamp pulls Y back into [0, MaxY].
func (s *Scroller) Clamp(lines, windowHeight int) {
	s.Offset.Y = min(max(s.Offset.Y, 0), s.MaxY(lines, windowHeight))
}

// FollowCursor scrolls the minimum distance needed to show the cursor row:
// up to put its top edge at the top of the window, or down to put its bottom
// edge at the bottom.
func (s *Scroller) FollowCursor(row, lines, windowHeight int) {
	lh := s.lineHeight()
	effective := row*lh - s.Offset.Y
	switch {
	case effective < 0:
		s.Offset.Y += effective
	// Bottom edge: the whole caret row must fit, not just its top.
	case effective+lh > windowHeight:
		s.Offset.Y += effective - (windowHeight - lh)
	}
	s.Clamp(lines, windowHeight)
}

// FirstRow is the first buffer row visible in the window.
func (s *Scroller) FirstRow() int {
	return s.Offset.Y / s.lineHeight()
}
