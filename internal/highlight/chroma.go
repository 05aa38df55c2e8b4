package highlight

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Chroma highlights with Chroma's regex lexers. Each non-text token becomes
// a StyleStart/Source/StyleEnd triple named after its token type.
type Chroma struct{}

func (Chroma) Highlight(language, text string) ([]Event, error) {
	if language == "" || language == PlainText {
		return plain(text), nil
	}
	lex := lexers.Get(language)
	if lex == nil {
		return plain(text), nil
	}
	lex = chroma.Coalesce(lex)
	it, err := lex.Tokenise(nil, text)
	if err != nil {
		return nil, fmt.Errorf("tokenise %s: %w", language, err)
	}

	var events []Event
	off := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		start := off
		off += len(tok.Value)
		// Lexers configured with EnsureNL append a newline the text never had.
		end := min(off, len(text))
		if start >= end {
			continue
		}
		if isPlainToken(tok.Type) {
			events = append(events, Range(start, end))
			continue
		}
		events = append(events, Start(tok.Type.String()), Range(start, end), End())
	}
	return events, nil
}

func isPlainToken(tt chroma.TokenType) bool {
	return tt == chroma.Text || tt == chroma.TextWhitespace
}
