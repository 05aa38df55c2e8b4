// Package highlight turns source text into a flat stream of style events
// and maps style names to theme colors. The renderer never talks to a lexer
// directly; it consumes events through the overlay package.
package highlight

import "fmt"

// PlainText is the language tag for files with no known lexer.
const PlainText = "text"

// EventKind distinguishes the three highlight events.
type EventKind int

const (
	// StyleStart makes Style the active style for following Source events.
	StyleStart EventKind = iota
	// Source covers the byte range [Start, End) of the input text.
	Source
	// StyleEnd returns to the default text color.
	StyleEnd
)

func (k EventKind) String() string {
	switch k {
	case StyleStart:
		return "start"
	case Source:
		return "source"
	case StyleEnd:
		return "end"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one item of highlighter output.
type Event struct {
	Kind  EventKind
	Style string // StyleStart only
	Start int    // Source only, byte offset
	End   int    // Source only, byte offset (exclusive)
}

// Start returns a StyleStart event.
func Start(style string) Event { return Event{Kind: StyleStart, Style: style} }

// Range returns a Source event.
func Range(start, end int) Event { return Event{Kind: Source, Start: start, End: end} }

// End returns a StyleEnd event.
func End() Event { return Event{Kind: StyleEnd} }

// Highlighter produces events for text in the given language.
type Highlighter interface {
	Highlight(language, text string) ([]Event, error)
}

// HighlighterFunc adapts a function to Highlighter.
type HighlighterFunc func(language, text string) ([]Event, error)

func (f HighlighterFunc) Highlight(language, text string) ([]Event, error) {
	return f(language, text)
}

// Router dispatches to a per-language highlighter, falling back to a
// default for every other language.
type Router struct {
	fallback Highlighter
	byLang   map[string]Highlighter
}

// NewRouter returns a Router that uses fallback for unregistered languages.
func NewRouter(fallback Highlighter) *Router {
	return &Router{fallback: fallback, byLang: make(map[string]Highlighter)}
}

// Register routes language to h.
func (r *Router) Register(language string, h Highlighter) {
	r.byLang[language] = h
}

func (r *Router) Highlight(language, text string) ([]Event, error) {
	if h, ok := r.byLang[language]; ok {
		return h.Highlight(language, text)
	}
	return r.fallback.Highlight(language, text)
}

// plain is the output for text without highlighting: one unstyled range.
func plain(text string) []Event {
	if text == "" {
		return nil
	}
	return []Event{Range(0, len(text))}
}
