package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type cell struct {
	r     rune
	style cellStyle
}

// canvas is a fixed grid of cells that panes are painted onto back to front.
// Writes outside the grid are clipped.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: max(w, 0), h: max(h, 0)}
	c.cells = make([]cell, c.w*c.h)
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	return c
}

func (c *canvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return nil
	}
	return &c.cells[y*c.w+x]
}

func (c *canvas) set(x, y int, r rune, st cellStyle) {
	if cl := c.at(x, y); cl != nil {
		*cl = cell{r: r, style: st}
	}
}

// fill paints a w×h block with spaces.
func (c *canvas) fill(x, y, w, h int, st cellStyle) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.set(col, row, ' ', st)
		}
	}
}

// text writes s starting at (x, y), one rune per cell, stopping at limit
// cells.
func (c *canvas) text(x, y int, s string, limit int, st cellStyle) {
	i := 0
	for _, r := range s {
		if i >= limit {
			return
		}
		c.set(x+i, y, r, st)
		i++
	}
}

// restyle changes the style of one cell, keeping its rune.
func (c *canvas) restyle(x, y int, st cellStyle) {
	if cl := c.at(x, y); cl != nil {
		cl.style = st
	}
}

// render returns the grid as styled lines, one lipgloss render per run of
// equally styled cells.
func (c *canvas) render() string {
	var b strings.Builder
	var run strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := c.cells[y*c.w : (y+1)*c.w]
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].style == row[start].style {
				continue
			}
			run.Reset()
			for _, cl := range row[start:x] {
				run.WriteRune(cl.r)
			}
			if st := row[start].style; st == (cellStyle{}) {
				b.WriteString(run.String())
			} else {
				b.WriteString(st.lipgloss().Render(run.String()))
			}
			start = x
		}
	}
	return b.String()
}

// plain returns the grid without any styling.
func (c *canvas) plain() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, cl := range c.cells[y*c.w : (y+1)*c.w] {
			b.WriteRune(cl.r)
		}
	}
	return b.String()
}

// fit pads or truncates s to exactly w cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > w {
		s = ansi.Truncate(s, w, "…")
	}
	return s + strings.Repeat(" ", max(0, w-ansi.StringWidth(s)))
}
