package timeline

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/hartl/internal/ui/theme"
)

// PlaceholderLabel is shown on the progress bar while nothing is loaded.
const PlaceholderLabel = "Drag&Drop .har"

const (
	stripHeight  = 30.0
	stripGap     = 5.0
	loaderMargin = 30.0
	loaderHeight = 60.0
)

// Span is a run of text drawn in one color.
type Span struct {
	Text  string
	Color lipgloss.Color
}

// Highlighter splits a JSON body into colored spans. Concatenating the
// span texts must give back the input.
type Highlighter interface {
	Highlight(text string) []Span
}

// Options configure an Engine.
type Options struct {
	Theme       theme.Theme
	Font        Font
	Highlighter Highlighter
}

// Engine draws one frame of the timeline: it feeds input to the viewport,
// lays entries out on the track and draws rows, the overview strip and the
// progress bar. It is used from the render loop only.
type Engine struct {
	View     *Viewport
	Progress *Progress

	rows        RowStates
	theme       theme.Theme
	font        Font
	highlighter Highlighter
	hovered     *Entry
}

// NewEngine returns an engine drawing with opts. progress is shared with the
// ingestion pipeline.
func NewEngine(progress *Progress, opts Options) *Engine {
	if opts.Font == (Font{}) {
		opts.Font = DefaultFont
	}
	return &Engine{
		View:        NewViewport(),
		Progress:    progress,
		theme:       opts.Theme,
		font:        opts.Font,
		highlighter: opts.Highlighter,
	}
}

// SetTheme switches colors for subsequent frames.
func (en *Engine) SetTheme(t theme.Theme) {
	en.theme = t
}

// Hovered returns the entry under the pointer in the last frame, or nil.
func (en *Engine) Hovered() *Entry {
	return en.hovered
}

// Row returns the UI state of row i of the dataset drawn last.
func (en *Engine) Row(i int) RowState {
	return *en.rows.At(i)
}

// Frame processes one frame of input and draws d. loading reports whether
// an ingestion is in flight.
func (en *Engine) Frame(c Canvas, in Input, d *Dataset, loading bool) {
	en.View.Update(in)
	en.Progress.Step(in.FrameTime)
	en.rows.Sync(d)
	en.hovered = nil

	screen := Rect{W: in.Screen.X, H: in.Screen.Y}
	if d.Len() == 0 {
		en.drawLoader(c, Rect{
			X: screen.X + loaderMargin,
			Y: screen.Y + screen.H/2 - loaderHeight/2,
			W: screen.W - 2*loaderMargin,
			H: loaderHeight,
		})
		en.View.SetContentHeight(0)
		return
	}

	en.View.SetContentHeight(en.render(c, in, d, screen))

	if loading {
		en.drawLoader(c, Rect{
			X: screen.X + loaderMargin,
			Y: screen.H - loaderHeight - stripGap,
			W: screen.W - 2*loaderMargin,
			H: loaderHeight,
		})
	}
}

func (en *Engine) render(c Canvas, in Input, d *Dataset, b Rect) float64 {
	off := en.View.Offset()
	l := Layout{Bounds: d.Bounds, Offset: off, ScaleX: en.View.Scale.X, Track: b}

	y := b.Y + stripHeight + stripGap
	for i := range d.Entries {
		e := &d.Entries[i]
		st := en.rows.At(i)
		row := Rect{X: b.X + off.X, Y: y + off.Y, W: b.W * l.ScaleX, H: rowHeight}
		y += en.drawRow(c, in, e, st, row, l.X(e.StartedAt), l.Width(e.Elapsed))
		if st.Hovered {
			en.hovered = e
		}
	}

	return y + en.drawStrip(c, d, l, b)
}

func (en *Engine) drawLoader(c Canvas, r Rect) {
	c.FillRect(r, en.theme.Background)
	en.Progress.Draw(c, en.font, en.theme, r)
}
