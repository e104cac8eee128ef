package timeline

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/hartl/internal/har"
	"github.com/sadopc/hartl/internal/ui/theme"
)

// rowY is the top of row i when no row above it is expanded.
func rowY(i int) float64 {
	return stripHeight + stripGap + float64(i)*rowHeight
}

func threeStatusDataset(t *testing.T) *Dataset {
	return NewDataset("three.har", []Entry{
		makeEntry(t, "2024-01-01T00:00:00.000Z", 100, 200),
		makeEntry(t, "2024-01-01T00:00:00.500Z", 200, 301),
		makeEntry(t, "2024-01-01T00:00:01.000Z", 300, 500),
	})
}

// barColors returns the colors of the duration bars in draw order.
func barColors(r *recorder) []lipgloss.Color {
	var out []lipgloss.Color
	for _, c := range r.ofKind("fill") {
		if c.rect.H == rowHeight-2*barInset {
			out = append(out, c.color)
		}
	}
	return out
}

func click(mouse Vec2) Input {
	in := screenInput(mouse)
	in.Pressed[ButtonLeft] = true
	in.Down[ButtonLeft] = true
	return in
}

func TestEngine_EmptyDatasetShowsPlaceholder(t *testing.T) {
	en := testEngine()
	rec := &recorder{}

	en.Frame(rec, screenInput(Vec2{}), nil, false)

	assert.Contains(t, rec.texts(), PlaceholderLabel)
	assert.Empty(t, barColors(rec))
	assert.Nil(t, en.Hovered())
}

func TestEngine_StatusColors(t *testing.T) {
	en := testEngine()
	rec := &recorder{}

	en.Frame(rec, screenInput(Vec2{X: -10, Y: -10}), threeStatusDataset(t), false)

	th := theme.Paper
	assert.Equal(t, []lipgloss.Color{th.Green, th.Orange, th.Red}, barColors(rec))

	var stripLines []lipgloss.Color
	for _, c := range rec.ofKind("line") {
		if c.from.Y == 0 && c.to.Y == stripHeight {
			stripLines = append(stripLines, c.color)
		}
	}
	assert.Equal(t, []lipgloss.Color{th.Green, th.Orange, th.Red}, stripLines)
}

func TestEngine_MissingStatusIsMagenta(t *testing.T) {
	en := testEngine()
	rec := &recorder{}
	d := NewDataset("x.har", []Entry{makeEntry(t, "2024-01-01T00:00:00Z", 10, 0)})

	en.Frame(rec, screenInput(Vec2{}), d, false)

	assert.Equal(t, []lipgloss.Color{theme.Paper.Magenta}, barColors(rec))
}

func TestEngine_ClickTogglesOnlyThatRow(t *testing.T) {
	en := testEngine()
	d := threeStatusDataset(t)

	en.Frame(&recorder{}, click(Vec2{X: 600, Y: rowY(1) + 10}), d, false)

	assert.False(t, en.Row(0).Collapsed)
	assert.True(t, en.Row(1).Collapsed)
	assert.False(t, en.Row(2).Collapsed)
	assert.True(t, en.Row(1).Hovered)
	require.NotNil(t, en.Hovered())
	assert.Equal(t, d.Entries[1].URL, en.Hovered().URL)

	// Holding the button does not toggle again.
	held := screenInput(Vec2{X: 600, Y: rowY(1) + 10})
	held.Down[ButtonLeft] = true
	en.Frame(&recorder{}, held, d, false)
	assert.True(t, en.Row(1).Collapsed)

	en.Frame(&recorder{}, click(Vec2{X: 600, Y: rowY(1) + 10}), d, false)
	assert.False(t, en.Row(1).Collapsed)
}

func TestEngine_HoverOutline(t *testing.T) {
	en := testEngine()
	rec := &recorder{}

	en.Frame(rec, screenInput(Vec2{X: 5, Y: rowY(2) + 1}), threeStatusDataset(t), false)

	var widths []float64
	for _, c := range rec.ofKind("stroke") {
		if c.rect.H == rowHeight-1 {
			widths = append(widths, c.width)
		}
	}
	assert.Equal(t, []float64{1, 1, 3}, widths)
}

func TestEngine_CollapsedRowDrawsDetail(t *testing.T) {
	en := testEngine()
	e, err := NewEntry(har.Entry{
		StartedDateTime: "2024-01-01T00:00:00Z",
		Time:            42,
		Request: har.Request{
			Method:   "POST",
			URL:      "https://example.com/api",
			PostData: &har.PostData{MimeType: "application/json", Text: `{"a":1}`},
		},
		Response: har.Response{Status: 201},
	})
	require.NoError(t, err)
	d := NewDataset("post.har", []Entry{e, makeEntry(t, "2024-01-01T00:00:01Z", 10, 200)})

	en.Frame(&recorder{}, click(Vec2{X: 10, Y: rowY(0) + 5}), d, false)
	require.True(t, en.Row(0).Collapsed)

	rec := &recorder{}
	en.Frame(rec, screenInput(Vec2{X: -1, Y: -1}), d, false)

	out := rec.texts()
	assert.Contains(t, out, ">>> info:")
	assert.Contains(t, out, ">>> timings: blocked 0ms, dns 0ms")
	assert.Contains(t, out, ">>> REQUEST: ")
	assert.Contains(t, out, "{\n    \"a\": 1\n}")
	assert.NotContains(t, out, `{"a":1}`)
	assert.Contains(t, out, ">>> RESPONSE: ")
	assert.Contains(t, out, "<EMPTY>")

	// Collapsed band is filled and its label uses the inverted color.
	var label drawCall
	for _, c := range rec.ofKind("text") {
		if strings.HasPrefix(c.text, "POST 201") {
			label = c
		}
	}
	assert.Equal(t, theme.Paper.TextInverted, label.color)

	// The second row is pushed below the detail panel.
	bars := 0
	for _, c := range rec.ofKind("fill") {
		if c.rect.H == rowHeight-2*barInset {
			bars++
			if bars == 2 {
				assert.Greater(t, c.rect.Y, rowY(1)+barInset)
			}
		}
	}
	assert.Equal(t, 2, bars)

	rules := 0
	for _, c := range rec.ofKind("line") {
		if c.from.X == c.to.X && c.from.Y == rowY(0) {
			rules++
		}
	}
	assert.Equal(t, 2, rules, "one vertical rule per content section")
}

func TestEngine_ReloadDropsRowState(t *testing.T) {
	en := testEngine()
	first := threeStatusDataset(t)

	en.Frame(&recorder{}, click(Vec2{X: 10, Y: rowY(1) + 5}), first, false)
	require.True(t, en.Row(1).Collapsed)

	second := threeStatusDataset(t)
	en.Frame(&recorder{}, screenInput(Vec2{X: -1, Y: -1}), second, false)

	for i := range second.Entries {
		assert.False(t, en.Row(i).Collapsed, "row %d", i)
	}
}

func TestEngine_CullsRowsBelowScreen(t *testing.T) {
	en := testEngine()
	var entries []Entry
	for i := 0; i < 100; i++ {
		entries = append(entries, makeEntry(t, "2024-01-01T00:00:00Z", 10, 200))
	}
	rec := &recorder{}

	in := screenInput(Vec2{})
	en.Frame(rec, in, NewDataset("many.har", entries), false)

	drawn := len(barColors(rec))
	assert.Less(t, drawn, 100)
	assert.Greater(t, drawn, int(in.Screen.Y/rowHeight)-2)
}

func TestEngine_RowsAboveScreenKeepLayout(t *testing.T) {
	en := testEngine()
	d := threeStatusDataset(t)
	en.View.SetContentHeight(1000)
	en.View.Pan.Y = -rowY(1) - 1

	rec := &recorder{}
	en.Frame(rec, screenInput(Vec2{X: -1, Y: -1}), d, false)

	bars := rec.ofKind("fill")
	var ys []float64
	for _, c := range bars {
		if c.rect.H == rowHeight-2*barInset {
			ys = append(ys, c.rect.Y)
		}
	}
	// Rows 0 and 1 start above the top; row 2 keeps its place.
	require.Len(t, ys, 1)
	assert.Equal(t, rowY(2)-rowY(1)-1+barInset, ys[0])
}

func TestEngine_OffscreenMarkers(t *testing.T) {
	en := testEngine()
	en.View.Pan.X = 5000

	rec := &recorder{}
	en.Frame(rec, screenInput(Vec2{X: -1, Y: -1}), threeStatusDataset(t), false)

	circles := rec.ofKind("circle")
	require.Len(t, circles, 3)
	for _, c := range circles {
		assert.Equal(t, 1200.0, c.from.X)
	}
}

func TestEngine_LoadingBandOverDataset(t *testing.T) {
	en := testEngine()
	en.Progress.SetLabel("Loading har... 1/2")

	rec := &recorder{}
	en.Frame(rec, screenInput(Vec2{}), threeStatusDataset(t), true)
	assert.Contains(t, rec.texts(), "Loading har... 1/2")

	rec = &recorder{}
	en.Frame(rec, screenInput(Vec2{}), threeStatusDataset(t), false)
	assert.NotContains(t, rec.texts(), "Loading har... 1/2")
}

func TestLabel(t *testing.T) {
	e, err := NewEntry(har.Entry{
		StartedDateTime: "2024-01-01T00:00:00Z",
		Time:            150,
		Request:         har.Request{Method: "GET", URL: "https://example.com/a"},
		Response:        har.Response{Status: 404, BodySize: 2048, Error: "boom"},
	})
	require.NoError(t, err)

	got := Label(&e)
	assert.True(t, strings.HasPrefix(got, "GET 404 [duration: 150ms, size: 2.0 KiB, at: "), got)
	assert.True(t, strings.HasSuffix(got, "] ERROR: boom https://example.com/a"), got)
}

type upperHighlighter struct{}

func (upperHighlighter) Highlight(text string) []Span {
	half := len(text) / 2
	return []Span{
		{Text: text[:half], Color: "#111111"},
		{Text: text[half:], Color: "#222222"},
	}
}

func TestEngine_HighlightedBody(t *testing.T) {
	en := NewEngine(NewProgress(""), Options{Theme: theme.Paper, Highlighter: upperHighlighter{}})
	e, err := NewEntry(har.Entry{
		StartedDateTime: "2024-01-01T00:00:00Z",
		Request: har.Request{
			Method:   "POST",
			PostData: &har.PostData{MimeType: "application/json", Text: `{"a":1,"b":2}`},
		},
	})
	require.NoError(t, err)
	d := NewDataset("hl.har", []Entry{e})

	en.Frame(&recorder{}, click(Vec2{X: 1, Y: rowY(0) + 1}), d, false)
	rec := &recorder{}
	en.Frame(rec, screenInput(Vec2{X: -1, Y: -1}), d, false)

	colors := map[lipgloss.Color]bool{}
	for _, c := range rec.ofKind("text") {
		colors[c.color] = true
	}
	assert.True(t, colors["#111111"])
	assert.True(t, colors["#222222"])
}
