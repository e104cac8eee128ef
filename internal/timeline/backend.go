package timeline

import "github.com/charmbracelet/lipgloss"

// Vec2 is a point or size in virtual pixels.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in virtual pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Font is the text resource handle threaded through everything that
// measures or draws text.
type Font struct {
	Size    float64
	Spacing float64
}

// DefaultFont matches the metrics the row layout was designed around.
var DefaultFont = Font{Size: 20, Spacing: 0.4}

// Canvas is the set of drawing primitives a backend provides.
type Canvas interface {
	FillRect(r Rect, c lipgloss.Color)
	StrokeRect(r Rect, lineWidth float64, c lipgloss.Color)
	Line(from, to Vec2, width float64, c lipgloss.Color)
	Circle(center Vec2, radius float64, c lipgloss.Color)
	MeasureText(f Font, text string) Vec2
	// DrawText draws text with its top-left corner at pos and returns the
	// measured size.
	DrawText(f Font, text string, pos Vec2, c lipgloss.Color) Vec2
}

// Button identifies a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	buttonCount
)

// Input is the per-frame snapshot of backend state.
type Input struct {
	// FrameTime is the time since the previous frame, in seconds.
	FrameTime float64
	Mouse     Vec2
	Pressed   [buttonCount]bool
	Released  [buttonCount]bool
	Down      [buttonCount]bool
	// Wheel holds the horizontal and vertical wheel movement of this frame.
	// Positive Y scrolls up.
	Wheel    Vec2
	Modifier bool
	Screen   Vec2
}

// IsPressed reports whether b went down this frame.
func (in Input) IsPressed(b Button) bool { return in.Pressed[b] }

// IsReleased reports whether b went up this frame.
func (in Input) IsReleased(b Button) bool { return in.Released[b] }

// IsDown reports whether b is currently held.
func (in Input) IsDown(b Button) bool { return in.Down[b] }
