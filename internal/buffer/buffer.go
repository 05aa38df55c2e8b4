// Package buffer holds the editable text of a pane: an ordered list of lines
// and a cursor. Every operation leaves the cursor inside the text.
package buffer

import "strings"

// Pos is a (row, column) coordinate into the line grid. Columns count code
// points, not bytes.
type Pos struct {
	Row int
	Col int
}

// Compare orders positions row first, then column.
func (p Pos) Compare(o Pos) int {
	switch {
	case p.Row < o.Row:
		return -1
	case p.Row > o.Row:
		return 1
	case p.Col < o.Col:
		return -1
	case p.Col > o.Col:
		return 1
	}
	return 0
}

// Less reports whether p sorts before o.
func (p Pos) Less(o Pos) bool { return p.Compare(o) < 0 }

// Direction is a cursor movement.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Indent is what the tab key inserts.
const Indent = "    "

// Buffer is the document state of one pane.
type Buffer struct {
	lines   [][]rune
	cursor  Pos
	version uint64
}

// New creates a buffer from lines. An empty slice yields a single empty line.
func New(lines []string) *Buffer {
	b := &Buffer{}
	for _, l := range lines {
		b.lines = append(b.lines, []rune(l))
	}
	if len(b.lines) == 0 {
		b.lines = [][]rune{{}}
	}
	return b
}

// FromText splits text on newlines. A trailing "\r" on each line is dropped.
func FromText(text string) *Buffer {
	raw := strings.Split(text, "\n")
	for i, l := range raw {
		raw[i] = strings.TrimSuffix(l, "\r")
	}
	return New(raw)
}

// Text joins the lines with single newline separators.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Lines returns a copy of the lines as strings.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// Line returns row as runes. The slice must not be modified.
func (b *Buffer) Line(row int) []rune {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row]
}

func (b *Buffer) LineCount() int { return len(b.lines) }

func (b *Buffer) Cursor() Pos { return b.cursor }

// Version increases on every content change. Cursor moves leave it alone.
func (b *Buffer) Version() uint64 { return b.version }

// SetCursor moves the cursor to p, clamped into the text.
func (b *Buffer) SetCursor(p Pos) {
	b.cursor = p
	b.clampCursor()
}

// Move shifts the cursor by one step. The column is re-clamped against the
// destination line on every move; no preferred column is remembered.
func (b *Buffer) Move(d Direction) {
	switch d {
	case Up:
		if b.cursor.Row > 0 {
			b.cursor.Row--
		}
	case Down:
		b.cursor.Row++
	case Left:
		if b.cursor.Col > 0 {
			b.cursor.Col--
		}
	case Right:
		b.cursor.Col++
	}
	b.clampCursor()
}

func (b *Buffer) currentLine() []rune { return b.lines[b.cursor.Row] }

func (b *Buffer) clampCursor() {
	if b.cursor.Row < 0 {
		b.cursor.Row = 0
	}
	if b.cursor.Row >= len(b.lines) {
		b.cursor.Row = len(b.lines) - 1
	}
	if b.cursor.Col < 0 {
		b.cursor.Col = 0
	}
	if n := len(b.currentLine()); b.cursor.Col > n {
		b.cursor.Col = n
	}
}
