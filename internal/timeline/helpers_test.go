package timeline

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/hartl/internal/har"
	"github.com/sadopc/hartl/internal/ui/theme"
)

const (
	glyphWidth = 8.0
	lineHeight = 20.0
)

type drawCall struct {
	kind  string
	rect  Rect
	from  Vec2
	to    Vec2
	width float64
	color lipgloss.Color
	text  string
}

// recorder is a Canvas that remembers every call.
type recorder struct {
	calls []drawCall
}

func (r *recorder) FillRect(rect Rect, c lipgloss.Color) {
	r.calls = append(r.calls, drawCall{kind: "fill", rect: rect, color: c})
}

func (r *recorder) StrokeRect(rect Rect, lw float64, c lipgloss.Color) {
	r.calls = append(r.calls, drawCall{kind: "stroke", rect: rect, width: lw, color: c})
}

func (r *recorder) Line(from, to Vec2, w float64, c lipgloss.Color) {
	r.calls = append(r.calls, drawCall{kind: "line", from: from, to: to, width: w, color: c})
}

func (r *recorder) Circle(center Vec2, radius float64, c lipgloss.Color) {
	r.calls = append(r.calls, drawCall{kind: "circle", from: center, width: radius, color: c})
}

func (r *recorder) MeasureText(_ Font, text string) Vec2 {
	lines := strings.Split(text, "\n")
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	return Vec2{X: float64(w) * glyphWidth, Y: float64(len(lines)) * lineHeight}
}

func (r *recorder) DrawText(f Font, text string, pos Vec2, c lipgloss.Color) Vec2 {
	r.calls = append(r.calls, drawCall{kind: "text", from: pos, text: text, color: c})
	return r.MeasureText(f, text)
}

func (r *recorder) ofKind(kind string) []drawCall {
	var out []drawCall
	for _, c := range r.calls {
		if c.kind == kind {
			out = append(out, c)
		}
	}
	return out
}

func (r *recorder) texts() string {
	var b strings.Builder
	for _, c := range r.ofKind("text") {
		b.WriteString(c.text)
	}
	return b.String()
}

func makeEntry(t *testing.T, started string, elapsed float64, status int) Entry {
	t.Helper()
	e, err := NewEntry(har.Entry{
		StartedDateTime: started,
		Time:            har.Number(elapsed),
		Request:         har.Request{Method: "GET", URL: "https://example.com/" + started},
		Response:        har.Response{Status: har.Number(status)},
	})
	require.NoError(t, err)
	return e
}

func testEngine() *Engine {
	return NewEngine(NewProgress(PlaceholderLabel), Options{Theme: theme.Paper})
}

func screenInput(mouse Vec2) Input {
	return Input{
		FrameTime: 1.0 / 60,
		Mouse:     mouse,
		Screen:    Vec2{X: 1200, Y: 800},
	}
}
