package buffer

// ---------------------------------------------------------------------------
// Editing operations
// ---------------------------------------------------------------------------

const (
	charBackspace = '\b'
	charTab       = '\t'
	charReturn    = '\r'
)

// InsertText inserts s at the cursor on the current line only and advances
// the column by its length. s is expected to contain no newlines.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		return
	}
	ins := []rune(s)
	line := b.currentLine()
	newLine := make([]rune, 0, len(line)+len(ins))
	newLine = append(newLine, line[:b.cursor.Col]...)
	newLine = append(newLine, ins...)
	newLine = append(newLine, line[b.cursor.Col:]...)
	b.lines[b.cursor.Row] = newLine
	b.cursor.Col += len(ins)
	b.version++
	b.clampCursor()
}

// InsertChar applies one character of input. Backspace and carriage return
// are editing commands, tab is ignored (the tab key inserts Indent), and
// anything outside printable ASCII is dropped.
func (b *Buffer) InsertChar(c rune) {
	switch {
	case c == charBackspace:
		b.Backspace()
	case c == charReturn:
		b.Newline()
	case c == charTab:
	case Printable(c):
		b.InsertText(string(c))
	}
}

// Printable reports whether c is a visible ASCII character or space.
func Printable(c rune) bool { return c >= 0x20 && c < 0x7f }

// Backspace deletes the character before the cursor. At column zero the
// current line is joined onto the previous one.
func (b *Buffer) Backspace() {
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col > 0:
		line := b.currentLine()
		newLine := make([]rune, 0, len(line)-1)
		newLine = append(newLine, line[:col-1]...)
		newLine = append(newLine, line[col:]...)
		b.lines[row] = newLine
		b.cursor.Col--
	case row > 0:
		prev := b.lines[row-1]
		joined := make([]rune, 0, len(prev)+len(b.lines[row]))
		joined = append(joined, prev...)
		joined = append(joined, b.lines[row]...)
		b.lines[row-1] = joined
		b.lines = append(b.lines[:row], b.lines[row+1:]...)
		b.cursor = Pos{Row: row - 1, Col: len(prev)}
	default:
		return
	}
	b.version++
	b.clampCursor()
}

// Newline splits the current line at the cursor. The tail becomes a new line
// below and the cursor moves to its start.
func (b *Buffer) Newline() {
	line := b.currentLine()
	head := make([]rune, b.cursor.Col)
	copy(head, line[:b.cursor.Col])
	tail := make([]rune, len(line)-b.cursor.Col)
	copy(tail, line[b.cursor.Col:])

	newLines := make([][]rune, 0, len(b.lines)+1)
	newLines = append(newLines, b.lines[:b.cursor.Row]...)
	newLines = append(newLines, head, tail)
	newLines = append(newLines, b.lines[b.cursor.Row+1:]...)
	b.lines = newLines
	b.cursor = Pos{Row: b.cursor.Row + 1}
	b.version++
	b.clampCursor()
}
