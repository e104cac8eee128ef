package timeline

import "math"

const (
	// maxPan is the furthest content may be dragged right or down.
	maxPan = 250.0
	// wheelScroll is the vertical distance of one wheel notch.
	wheelScroll = 140.0
	// zoomStep divides wheel movement into a scale change.
	zoomStep = 8.0

	minScale         = 0.05
	minModifierScale = 0.2
	initialScale     = 0.2
)

// Viewport owns the pan offset, horizontal scale and right-button drag.
// Dragging is previewed through Offset and only committed to Pan on
// release, where the clamps apply.
type Viewport struct {
	Pan   Vec2
	Scale Vec2

	dragging bool
	anchor   Vec2
	delta    Vec2

	contentHeight float64
}

// NewViewport returns a viewport at the initial zoom level.
func NewViewport() *Viewport {
	return &Viewport{Scale: Vec2{X: initialScale, Y: 1}}
}

// Dragging reports whether a pan gesture is in progress.
func (v *Viewport) Dragging() bool { return v.dragging }

// Offset is the pan offset to draw with, including the uncommitted drag.
func (v *Viewport) Offset() Vec2 {
	return Vec2{X: v.Pan.X - v.delta.X, Y: v.Pan.Y - v.delta.Y}
}

// SetContentHeight records the height rendered by the last frame; the next
// Update keeps vertical panning within it.
func (v *Viewport) SetContentHeight(h float64) {
	v.contentHeight = h
}

// Update applies one frame of input.
func (v *Viewport) Update(in Input) {
	if in.IsReleased(ButtonMiddle) {
		v.Reset()
	}

	if in.Wheel.X != 0 || in.Wheel.Y != 0 {
		if in.Modifier {
			w := in.Wheel.Y
			if math.Abs(in.Wheel.X) > math.Abs(w) {
				w = in.Wheel.X
			}
			v.Scale.X = math.Max(v.Scale.X+w/zoomStep, minModifierScale)
		} else {
			v.Zoom(in.Wheel.X)
			v.Scroll(in.Wheel.Y)
		}
	}

	if in.IsPressed(ButtonRight) {
		v.dragging = true
		v.anchor = in.Mouse
	}
	if v.dragging && in.IsDown(ButtonRight) {
		v.delta = Vec2{X: v.anchor.X - in.Mouse.X, Y: v.anchor.Y - in.Mouse.Y}
	}
	if in.IsReleased(ButtonRight) {
		v.Pan.X -= v.delta.X
		v.Pan.Y -= v.delta.Y
		v.delta = Vec2{}
		v.dragging = false
		v.clampPan()
	}

	if -v.Pan.Y > v.contentHeight {
		v.Pan.Y = -v.contentHeight
	}
}

// Zoom changes the horizontal scale by wheel notches.
func (v *Viewport) Zoom(notches float64) {
	v.Scale.X = math.Max(v.Scale.X+notches/zoomStep, minScale)
}

// Scroll moves the view vertically by wheel notches; positive scrolls up.
// The view cannot scroll above the top.
func (v *Viewport) Scroll(notches float64) {
	v.Pan.Y -= -notches * wheelScroll
	v.Pan.Y = math.Min(v.Pan.Y, 0)
}

// PanBy shifts the committed horizontal offset.
func (v *Viewport) PanBy(dx float64) {
	v.Pan.X += dx
	v.clampPan()
}

// Reset recenters the view and restores unit scale.
func (v *Viewport) Reset() {
	v.Pan = Vec2{}
	v.Scale.X = 1
}

func (v *Viewport) clampPan() {
	v.Pan.X = math.Min(v.Pan.X, maxPan)
	v.Pan.Y = math.Min(v.Pan.Y, maxPan)
}
