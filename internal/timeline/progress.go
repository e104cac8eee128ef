package timeline

import (
	"math"
	"sync/atomic"

	"github.com/sadopc/hartl/internal/ui/theme"
)

// progressEpsilon is the gap below which the bar stops animating.
const progressEpsilon = 0.02

// Progress is an animated progress bar. Label and target are written by the
// ingestion goroutine; current is advanced by the render loop only.
type Progress struct {
	label   atomic.Pointer[string]
	target  atomic.Uint64
	current float64
}

// NewProgress returns a bar at zero with the given title.
func NewProgress(label string) *Progress {
	p := &Progress{}
	p.SetLabel(label)
	return p
}

// SetLabel replaces the title. Safe for concurrent use.
func (p *Progress) SetLabel(label string) {
	p.label.Store(&label)
}

// Label returns the current title.
func (p *Progress) Label() string {
	if l := p.label.Load(); l != nil {
		return *l
	}
	return ""
}

// SetTarget sets the fraction the bar animates toward, clamped to [0, 1].
// Safe for concurrent use.
func (p *Progress) SetTarget(f float64) {
	f = math.Min(math.Max(f, 0), 1)
	p.target.Store(math.Float64bits(f))
}

// Target returns the fraction the bar animates toward.
func (p *Progress) Target() float64 {
	return math.Float64frombits(p.target.Load())
}

// Current returns the displayed fraction.
func (p *Progress) Current() float64 {
	return p.current
}

// Step advances the displayed fraction by one frame. The step is
// proportional to the target, not to the remaining gap, and never passes
// the target.
func (p *Progress) Step(frameTime float64) {
	target := p.Target()
	if math.Abs(p.current-target) <= progressEpsilon {
		return
	}
	step := target * frameTime * 3
	if p.current < target {
		p.current += step
	} else {
		p.current -= step
	}
	p.current = math.Min(p.current, target)
}

// Draw renders the bar and its centered title inside r.
func (p *Progress) Draw(c Canvas, f Font, th theme.Theme, r Rect) {
	c.FillRect(Rect{X: r.X, Y: r.Y, W: r.W * p.current, H: r.H}, th.ProgressFill)
	c.StrokeRect(r, 2, th.Band)
	drawTextCentered(c, f, p.Label(), r, th.Text)
}
