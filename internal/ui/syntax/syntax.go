// Package syntax colors JSON bodies for the timeline detail panel.
package syntax

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/hartl/internal/timeline"
	"github.com/sadopc/hartl/internal/ui/theme"
)

// Highlighter tokenizes JSON with chroma and maps token types to theme
// colors.
type Highlighter struct {
	lexer chroma.Lexer
	theme theme.Theme
}

var _ timeline.Highlighter = (*Highlighter)(nil)

// New returns a JSON highlighter drawing with t.
func New(t theme.Theme) *Highlighter {
	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &Highlighter{lexer: chroma.Coalesce(lexer), theme: t}
}

// SetTheme switches the colors used by later calls.
func (h *Highlighter) SetTheme(t theme.Theme) {
	h.theme = t
}

// Highlight splits text into colored spans. Adjacent tokens of the same
// color are merged.
func (h *Highlighter) Highlight(text string) []timeline.Span {
	it, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		return []timeline.Span{{Text: text, Color: h.theme.Text}}
	}

	var spans []timeline.Span
	// Some lexers append a trailing newline; never emit more than the input.
	left := len(text)
	for _, tok := range it.Tokens() {
		val := tok.Value
		if len(val) > left {
			val = val[:left]
		}
		if val == "" {
			continue
		}
		left -= len(val)
		col := h.color(tok.Type)
		if n := len(spans); n > 0 && spans[n-1].Color == col {
			spans[n-1].Text += val
			continue
		}
		spans = append(spans, timeline.Span{Text: val, Color: col})
	}
	return spans
}

func (h *Highlighter) color(tt chroma.TokenType) lipgloss.Color {
	switch {
	case tt == chroma.NameTag:
		return h.theme.SyntaxKey
	case tt.InSubCategory(chroma.LiteralString):
		return h.theme.SyntaxString
	case tt.InSubCategory(chroma.LiteralNumber):
		return h.theme.SyntaxNumber
	case tt.InCategory(chroma.Keyword):
		return h.theme.SyntaxLiteral
	case tt == chroma.Punctuation:
		return h.theme.SyntaxPunct
	default:
		return h.theme.Text
	}
}
