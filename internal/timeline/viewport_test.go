package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func wheel(x, y float64, modifier bool) Input {
	return Input{Wheel: Vec2{X: x, Y: y}, Modifier: modifier}
}

func TestViewport_Initial(t *testing.T) {
	v := NewViewport()
	assert.Equal(t, Vec2{}, v.Pan)
	assert.Equal(t, Vec2{X: initialScale, Y: 1}, v.Scale)
	assert.False(t, v.Dragging())
}

func TestViewport_ZoomClamps(t *testing.T) {
	v := NewViewport()
	v.Update(wheel(-100, 0, false))
	assert.Equal(t, minScale, v.Scale.X)

	v.Update(wheel(8, 0, false))
	assert.InDelta(t, minScale+1, v.Scale.X, 1e-9)

	v.Update(wheel(0, -100, true))
	assert.Equal(t, minModifierScale, v.Scale.X)

	v.Update(wheel(0, 4, true))
	assert.InDelta(t, minModifierScale+0.5, v.Scale.X, 1e-9)
}

func TestViewport_ModifierUsesDominantAxis(t *testing.T) {
	v := NewViewport()
	v.Scale.X = 1
	v.Update(wheel(8, 1, true))
	assert.InDelta(t, 2, v.Scale.X, 1e-9)
	assert.Equal(t, 0.0, v.Pan.Y, "modifier wheel does not scroll")
}

func TestViewport_Scroll(t *testing.T) {
	v := NewViewport()
	v.SetContentHeight(10000)

	v.Update(wheel(0, -2, false))
	assert.Equal(t, -280.0, v.Pan.Y)

	v.Update(wheel(0, 1, false))
	assert.Equal(t, -140.0, v.Pan.Y)

	v.Update(wheel(0, 5, false))
	assert.Equal(t, 0.0, v.Pan.Y, "cannot scroll above the top")
}

func TestViewport_ScrollClampedToContentHeight(t *testing.T) {
	v := NewViewport()
	v.SetContentHeight(300)

	v.Update(wheel(0, -10, false))
	assert.Equal(t, -300.0, v.Pan.Y)
}

func TestViewport_DragPreviewAndCommit(t *testing.T) {
	v := NewViewport()
	v.SetContentHeight(10000)

	in := Input{Mouse: Vec2{X: 100, Y: 100}}
	in.Pressed[ButtonRight] = true
	in.Down[ButtonRight] = true
	v.Update(in)
	assert.True(t, v.Dragging())

	in = Input{Mouse: Vec2{X: 60, Y: 80}}
	in.Down[ButtonRight] = true
	v.Update(in)
	assert.Equal(t, Vec2{}, v.Pan, "pan is not committed mid-drag")
	assert.Equal(t, Vec2{X: -40, Y: -20}, v.Offset())

	in = Input{Mouse: Vec2{X: 60, Y: 80}}
	in.Released[ButtonRight] = true
	v.Update(in)
	assert.False(t, v.Dragging())
	assert.Equal(t, Vec2{X: -40, Y: -20}, v.Pan)
	assert.Equal(t, v.Pan, v.Offset())
}

func TestViewport_DragClampsPositiveOffset(t *testing.T) {
	v := NewViewport()
	v.SetContentHeight(10000)

	press := Input{Mouse: Vec2{X: 0, Y: 0}}
	press.Pressed[ButtonRight] = true
	press.Down[ButtonRight] = true
	v.Update(press)

	move := Input{Mouse: Vec2{X: 1000, Y: 900}}
	move.Down[ButtonRight] = true
	v.Update(move)
	assert.Equal(t, Vec2{X: 1000, Y: 900}, v.Offset(), "preview is unclamped")

	release := Input{Mouse: Vec2{X: 1000, Y: 900}}
	release.Released[ButtonRight] = true
	v.Update(release)
	assert.Equal(t, Vec2{X: maxPan, Y: maxPan}, v.Pan)

	// No lower clamp on X.
	v.PanBy(-5000)
	assert.Equal(t, maxPan-5000, v.Pan.X)
}

func TestViewport_MiddleReleaseResets(t *testing.T) {
	v := NewViewport()
	v.Pan = Vec2{X: -300, Y: -200}
	v.Scale.X = 3

	in := Input{}
	in.Released[ButtonMiddle] = true
	v.Update(in)

	assert.Equal(t, Vec2{}, v.Pan)
	assert.Equal(t, 1.0, v.Scale.X)
}
