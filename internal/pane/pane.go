// Package pane composes one editable buffer with its highlight spans, its
// scroll state and its window rectangle on screen.
package pane

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/bench/internal/buffer"
	"github.com/xonecas/bench/internal/highlight"
	"github.com/xonecas/bench/internal/keymap"
	"github.com/xonecas/bench/internal/overlay"
	"github.com/xonecas/bench/internal/viewport"
)

// Untitled is the title of a pane with no backing file.
const Untitled = "[untitled]"

// TitleHeight is the number of rows the title bar occupies above the body.
const TitleHeight = 1

// ID identifies a pane. Panes are only ever looked up by ID.
type ID string

// NewID returns a fresh random ID.
func NewID() ID { return ID(uuid.NewString()) }

// Rect is a screen rectangle in cells.
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Options configure how a pane highlights and scrolls.
type Options struct {
	Highlighter highlight.Highlighter
	Theme       highlight.Theme
	Keys        keymap.KeyMap
	LineHeight  int
}

// Pane is one editable text surface.
type Pane struct {
	ID       ID
	Title    string
	Path     string
	Language string
	Window   Rect

	buf      *buffer.Buffer
	spans    []overlay.Span
	scroll   viewport.Scroller
	opts     Options
	hlFor    uint64 // buffer version the spans were derived from
	hlFailed bool
}

// New creates a pane over lines. path may be empty for a scratch buffer.
func New(id ID, path string, lines []string, window Rect, opts Options) *Pane {
	p := &Pane{
		ID:     id,
		Window: window,
		buf:    buffer.New(lines),
		scroll: viewport.New(opts.LineHeight),
		opts:   opts,
	}
	p.bind(path)
	return p
}

// bind points the pane at path and re-derives the language and spans.
func (p *Pane) bind(path string) {
	p.Path = path
	p.Title = path
	if path == "" {
		p.Title = Untitled
	}
	p.Language = highlight.DetectLanguage(path)
	p.rehighlight()
}

// SetPath rebinds the pane to a new file, as after "save as".
func (p *Pane) SetPath(path string) { p.bind(path) }

// SetTitle overrides the displayed title without touching Path.
func (p *Pane) SetTitle(title string) { p.Title = title }

// ---------------------------------------------------------------------------
// Read-only views for the renderer
// ---------------------------------------------------------------------------

func (p *Pane) Lines() []string { return p.buf.Lines() }
func (p *Pane) Line(row int) []rune { return p.buf.Line(row) }
func (p *Pane) LineCount() int { return p.buf.LineCount() }
func (p *Pane) Cursor() buffer.Pos { return p.buf.Cursor() }
func (p *Pane) Text() string { return p.buf.Text() }
func (p *Pane) Spans() []overlay.Span { return p.spans }
func (p *Pane) Offset() viewport.Offset { return p.scroll.Offset }
func (p *Pane) FirstRow() int { return p.scroll.FirstRow() }
func (p *Pane) HighlightFailed() bool { return p.hlFailed }
func (p *Pane) Theme() highlight.Theme { return p.opts.Theme }

// LineHeight is the number of screen rows per buffer line.
func (p *Pane) LineHeight() int { return max(p.scroll.LineHeight, 1) }

// TitleBar is the row directly above the window body.
func (p *Pane) TitleBar() Rect {
	return Rect{X: p.Window.X, Y: p.Window.Y - TitleHeight, W: p.Window.W, H: TitleHeight}
}

// Contains reports whether (x, y) hits the body or the title bar.
func (p *Pane) Contains(x, y int) bool {
	return p.Window.Contains(x, y) || p.TitleBar().Contains(x, y)
}

// ColorAt resolves the glyph color at pos.
func (p *Pane) ColorAt(pos buffer.Pos) string {
	return overlay.ColorAt(p.spans, pos, p.opts.Theme.Palette.Fg)
}

// ---------------------------------------------------------------------------
// Mutation, reached only through the workspace manager
// ---------------------------------------------------------------------------

// HandleKey applies a non-character key: arrows move, tab indents.
func (p *Pane) HandleKey(k string) {
	km := p.opts.Keys
	switch {
	case keymap.Matches(k, km.Up):
		p.buf.Move(buffer.Up)
	case keymap.Matches(k, km.Down):
		p.buf.Move(buffer.Down)
	case keymap.Matches(k, km.Left):
		p.buf.Move(buffer.Left)
	case keymap.Matches(k, km.Right):
		p.buf.Move(buffer.Right)
	case keymap.Matches(k, km.Indent):
		p.buf.InsertText(buffer.Indent)
	default:
		return
	}
	p.afterEdit()
}

// HandleChar applies one character of input to the buffer.
func (p *Pane) HandleChar(c rune) {
	p.buf.InsertChar(c)
	p.afterEdit()
}

// Scroll moves the viewport by (dx, dy).
func (p *Pane) Scroll(dx, dy int) {
	p.scroll.Scroll(dx, dy, p.buf.LineCount(), p.Window.H)
}

// MoveWindow translates the window rectangle.
func (p *Pane) MoveWindow(dx, dy int) {
	p.Window = p.Window.Translate(dx, dy)
}

func (p *Pane) afterEdit() {
	if p.buf.Version() != p.hlFor {
		p.rehighlight()
	}
	p.scroll.FollowCursor(p.buf.Cursor().Row, p.buf.LineCount(), p.Window.H)
}

// rehighlight derives spans from scratch. On failure the pane renders in
// the default color until the next successful pass.
func (p *Pane) rehighlight() {
	p.hlFor = p.buf.Version()
	if p.opts.Highlighter == nil {
		p.spans = nil
		return
	}
	spans, err := overlay.Derive(p.opts.Highlighter, p.Language, p.buf.Text(), p.opts.Theme)
	if err != nil {
		log.Warn().Err(err).Str("pane", p.Title).Str("lang", p.Language).Msg("highlight failed, rendering plain text")
		p.spans = nil
		p.hlFailed = true
		return
	}
	p.spans = spans
	p.hlFailed = false
}
