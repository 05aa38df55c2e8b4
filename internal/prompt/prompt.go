// Package prompt is the single-line command input and its tiny grammar.
package prompt

import (
	"strings"

	"github.com/xonecas/bench/internal/buffer"
	"github.com/xonecas/bench/internal/keymap"
)

// InvalidCommand is the status text for anything the grammar rejects.
const InvalidCommand = "Invalid command"

// Command is the result of a submitted line. nil means no command.
type Command any

// OpenFile opens Path in a new pane.
type OpenFile struct{ Path string }

// CloseActive closes the focused pane.
type CloseActive struct{}

// SaveActive writes the focused pane to its own path.
type SaveActive struct{}

// SaveAs writes the focused pane to Path and rebinds it there.
type SaveAs struct{ Path string }

// OpenHelp opens the help pane.
type OpenHelp struct{}

// Status shows Text on the status line.
type Status struct{ Text string }

// Prompt holds the text being typed and its cursor.
type Prompt struct {
	text   []rune
	cursor int
	keys   keymap.KeyMap
}

// New returns an empty prompt using keys for cursor movement.
func New(keys keymap.KeyMap) *Prompt {
	return &Prompt{keys: keys}
}

// Text returns the current input.
func (p *Prompt) Text() string { return string(p.text) }

// Cursor returns the cursor offset into Text, in runes.
func (p *Prompt) Cursor() int { return p.cursor }

// HandleKey applies a non-character key. Only left and right do anything.
func (p *Prompt) HandleKey(k string) {
	switch {
	case keymap.Matches(k, p.keys.Left):
		if p.cursor > 0 {
			p.cursor--
		}
	case keymap.Matches(k, p.keys.Right):
		if p.cursor < len(p.text) {
			p.cursor++
		}
	}
}

// HandleChar applies one character. On carriage return the line is parsed,
// the input is cleared and submitted is true; cmd may still be nil when the
// line was empty.
func (p *Prompt) HandleChar(c rune) (cmd Command, submitted bool) {
	switch {
	case c == '\r':
		cmd = Parse(string(p.text))
		p.Reset()
		return cmd, true
	case c == '\b':
		if p.cursor == 0 {
			return nil, false
		}
		p.text = append(p.text[:p.cursor-1], p.text[p.cursor:]...)
		p.cursor--
	case buffer.Printable(c):
		p.text = append(p.text[:p.cursor], append([]rune{c}, p.text[p.cursor:]...)...)
		p.cursor++
	}
	return nil, false
}

// Reset clears the input.
func (p *Prompt) Reset() {
	p.text = p.text[:0]
	p.cursor = 0
}

// Parse turns a submitted line into a command. Tokens are separated by
// single spaces. open takes the first argument only; save joins the rest,
// so "save a  b" saves to "a  b".
func Parse(line string) Command {
	if line == "" {
		return nil
	}
	tokens := strings.Split(line, " ")
	args := tokens[1:]
	switch tokens[0] {
	case "open":
		if len(args) == 0 || args[0] == "" {
			return Status{Text: InvalidCommand}
		}
		return OpenFile{Path: args[0]}
	case "close":
		return CloseActive{}
	case "save":
		path := strings.Join(args, " ")
		if path == "" {
			return SaveActive{}
		}
		return SaveAs{Path: path}
	case "help":
		return OpenHelp{}
	default:
		return Status{Text: InvalidCommand}
	}
}
