// Package overlay converts highlighter events into colored spans addressed
// by buffer position, and resolves the color of a single glyph.
package overlay

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/xonecas/bench/internal/buffer"
	"github.com/xonecas/bench/internal/highlight"
)

// Span colors the half-open range [Start, End).
type Span struct {
	Start buffer.Pos
	End   buffer.Pos
	Color string
}

// Contains reports whether p lies in [Start, End).
func (s Span) Contains(p buffer.Pos) bool {
	return !p.Less(s.Start) && p.Less(s.End)
}

// ColorFunc maps a style name to a color. ok is false when the style has no
// color of its own.
type ColorFunc func(style string) (color string, ok bool)

// Build emits one span per Source event, in event order, colored with the
// style active when the range started. StyleEnd returns to def. Any range
// outside text, or an unknown event, fails the whole pass.
func Build(text string, events []highlight.Event, colorOf ColorFunc, def string) ([]Span, error) {
	idx := newLineIndex(text)
	spans := make([]Span, 0, len(events))
	color := def
	for i, ev := range events {
		switch ev.Kind {
		case highlight.StyleStart:
			color = def
			if c, ok := colorOf(ev.Style); ok {
				color = c
			}
		case highlight.StyleEnd:
			color = def
		case highlight.Source:
			if ev.Start < 0 || ev.End > len(text) || ev.Start > ev.End {
				return nil, fmt.Errorf("event %d: range [%d,%d) outside text of %d bytes", i, ev.Start, ev.End, len(text))
			}
			spans = append(spans, Span{
				Start: idx.pos(ev.Start),
				End:   idx.pos(ev.End),
				Color: color,
			})
		default:
			return nil, fmt.Errorf("event %d: unknown kind %v", i, ev.Kind)
		}
	}
	return spans, nil
}

// Derive runs h over text and builds spans with theme colors. The default
// color is the theme foreground.
func Derive(h highlight.Highlighter, language, text string, theme highlight.Theme) ([]Span, error) {
	events, err := h.Highlight(language, text)
	if err != nil {
		return nil, err
	}
	return Build(text, events, theme.Color, theme.Palette.Fg)
}

// ColorAt returns the color of the first span, in emission order, that
// contains p, or def when none does. Earlier spans win over later ones even
// when a later span is narrower.
func ColorAt(spans []Span, p buffer.Pos, def string) string {
	for _, s := range spans {
		if s.Contains(p) {
			return s.Color
		}
	}
	return def
}

// lineIndex maps byte offsets to positions.
type lineIndex struct {
	text   string
	starts []int // byte offset where each line begins
}

func newLineIndex(text string) lineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return lineIndex{text: text, starts: starts}
}

// pos counts the newlines before off and the code points between the last
// of them and off.
func (l lineIndex) pos(off int) buffer.Pos {
	row := sort.SearchInts(l.starts, off+1) - 1
	return buffer.Pos{
		Row: row,
		Col: utf8.RuneCountInString(l.text[l.starts[row]:off]),
	}
}
