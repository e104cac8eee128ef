package timeline

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const (
	rowHeight   = 40.0
	barInset    = 4.0
	cullMargin  = 150.0
	markerSize  = 5.0
	labelIndent = 5.0
	detailInset = 3.0
	bodyIndent  = 15.0

	localLayout = "2006-01-02 15:04:05.000"
)

// RowState is the interaction state of one row.
type RowState struct {
	Collapsed bool
	Hovered   bool
}

// RowStates is the side table of per-row UI state. It belongs to the render
// loop and is rebuilt whenever a dataset with a different ID is shown.
type RowStates struct {
	generation string
	rows       []RowState
}

// Sync resets the table if d is not the dataset it was built for.
func (s *RowStates) Sync(d *Dataset) {
	if d == nil {
		s.generation = ""
		s.rows = nil
		return
	}
	if d.ID == s.generation && len(s.rows) == len(d.Entries) {
		return
	}
	s.generation = d.ID
	s.rows = make([]RowState, len(d.Entries))
}

// At returns the state of row i.
func (s *RowStates) At(i int) *RowState {
	return &s.rows[i]
}

// Label returns the one-line summary drawn on a row.
func Label(e *Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d [duration: %s, size: %s, at: %s]",
		e.Method, e.Status, e.Duration, humanize.IBytes(uint64(max(e.BodySize, 0))),
		e.StartedAt.Local().Format(localLayout))
	if e.Error != "" {
		b.WriteString(" ERROR: " + e.Error)
	}
	b.WriteString(" " + e.URL)
	return b.String()
}

// drawRow draws one entry inside the row band b and returns the vertical
// space it consumed.
func (en *Engine) drawRow(c Canvas, in Input, e *Entry, st *RowState, b Rect, startX, width float64) float64 {
	height := rowHeight
	st.Hovered = false

	if b.Y > in.Screen.Y+cullMargin {
		return 0
	}
	if b.Y < 0 {
		return height
	}

	band := Rect{X: 0, Y: b.Y, W: in.Screen.X, H: height - 1}
	st.Hovered = band.Contains(in.Mouse)
	if st.Hovered && in.IsPressed(ButtonLeft) {
		st.Collapsed = !st.Collapsed
	}

	th := en.theme
	if st.Collapsed {
		c.FillRect(band, th.Band)
	} else {
		lw := 1.0
		if st.Hovered {
			lw = 3
		}
		c.StrokeRect(band, lw, th.Band)
	}

	bar := Rect{X: startX, Y: b.Y + barInset, W: max(width, MinEntryWidth), H: height - 2*barInset}
	c.FillRect(bar, th.StatusColor(e.Status))

	textColor := th.Text
	if st.Collapsed {
		textColor = th.TextInverted
	}
	m := drawTextStart(c, en.font, Label(e),
		Rect{X: bar.X + labelIndent, Y: bar.Y, W: bar.W - labelIndent, H: bar.H}, textColor)

	if bar.X+m.X < 0 {
		c.Circle(Vec2{X: 0, Y: b.Y + height/2}, markerSize, th.Marker)
	}
	if startX > in.Screen.X {
		c.Circle(Vec2{X: in.Screen.X, Y: b.Y + height/2}, markerSize, th.Marker)
	}

	if st.Collapsed {
		height += en.drawDetail(c, e, bar.X, b.Y, height)
	}
	return height
}

// drawDetail draws the expanded panel under a row starting at y+top and
// returns its height.
func (en *Engine) drawDetail(c Canvas, e *Entry, x, y, top float64) float64 {
	th := en.theme
	f := en.font
	h := top

	info := fmt.Sprintf(">>> info: \nstarted at %s (localtime)\nstarted at %s (UTC)\n",
		e.StartedAt.Local().Format(localLayout), e.StartedAt.UTC().Format(localLayout))
	h += c.DrawText(f, info, Vec2{X: x + detailInset, Y: y + h}, th.Text).Y

	t := e.Timings
	timings := fmt.Sprintf(">>> timings: blocked %gms, dns %gms, connect %gms, ssl %gms, send %gms, wait %gms, receive %gms\n",
		t.Blocked, t.DNS, t.Connect, t.TLS, t.Send, t.Wait, t.Receive)
	h += c.DrawText(f, timings, Vec2{X: x + detailInset, Y: y + h}, th.Text).Y

	for _, section := range []struct {
		title string
		body  Content
	}{
		{">>> REQUEST: ", e.RequestBody},
		{">>> RESPONSE: ", e.ResponseBody},
	} {
		h += c.DrawText(f, section.title, Vec2{X: x + detailInset, Y: y + h}, th.Text).Y
		h += en.drawBody(c, section.body, Vec2{X: x + bodyIndent, Y: y + h})
		c.Line(Vec2{X: x, Y: y}, Vec2{X: x, Y: y + h}, 1, th.Rule)
	}

	return h - top
}

// drawBody draws a resolved body, highlighted when it is JSON and a
// highlighter is configured, and returns its height.
func (en *Engine) drawBody(c Canvas, body Content, pos Vec2) float64 {
	text := body.String() + "\n"
	if body.Kind != ContentJSON || en.highlighter == nil {
		return c.DrawText(en.font, text, pos, en.theme.Text).Y
	}

	lineHeight := c.MeasureText(en.font, "").Y
	cur := pos
	for _, span := range en.highlighter.Highlight(text) {
		lines := strings.Split(span.Text, "\n")
		for i, line := range lines {
			if i > 0 {
				cur = Vec2{X: pos.X, Y: cur.Y + lineHeight}
			}
			if line == "" {
				continue
			}
			cur.X += c.DrawText(en.font, line, cur, span.Color).X
		}
	}
	return c.MeasureText(en.font, text).Y
}

// drawStrip draws the overview strip: one line per entry at its start time.
func (en *Engine) drawStrip(c Canvas, d *Dataset, l Layout, b Rect) float64 {
	th := en.theme
	c.FillRect(Rect{X: b.X, Y: b.Y, W: b.W, H: stripHeight}, th.Strip)
	c.StrokeRect(Rect{X: b.X, Y: b.Y, W: b.W, H: stripHeight}, 1, th.Band)

	for i := range d.Entries {
		e := &d.Entries[i]
		x := l.X(e.StartedAt)
		c.Line(Vec2{X: x, Y: b.Y}, Vec2{X: x, Y: b.Y + stripHeight}, 3, th.StatusColor(e.Status))
	}
	return stripHeight + stripGap
}

func drawTextStart(c Canvas, f Font, text string, r Rect, col lipgloss.Color) Vec2 {
	m := c.MeasureText(f, text)
	return c.DrawText(f, text, Vec2{X: r.X, Y: r.Y + r.H/2 - m.Y/2}, col)
}

func drawTextCentered(c Canvas, f Font, text string, r Rect, col lipgloss.Color) Vec2 {
	m := c.MeasureText(f, text)
	return c.DrawText(f, text, Vec2{X: r.X + r.W/2 - m.X/2, Y: r.Y + r.H/2 - m.Y/2}, col)
}
