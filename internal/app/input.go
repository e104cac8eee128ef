package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/hartl/internal/timeline"
)

// inputState accumulates mouse events between frames and hands the engine
// one snapshot per frame.
type inputState struct {
	mouse    timeline.Vec2
	down     [3]bool
	pressed  [3]bool
	released [3]bool
	wheel    timeline.Vec2
	modifier bool
}

var mouseButtons = map[tea.MouseButton]timeline.Button{
	tea.MouseButtonLeft:   timeline.ButtonLeft,
	tea.MouseButtonRight:  timeline.ButtonRight,
	tea.MouseButtonMiddle: timeline.ButtonMiddle,
}

// handleMouse records one mouse event. toPixel converts a cell to the
// virtual pixel at its center.
func (s *inputState) handleMouse(ev tea.MouseEvent, toPixel func(col, row int) timeline.Vec2) {
	s.mouse = toPixel(ev.X, ev.Y)
	s.modifier = ev.Shift || ev.Ctrl || ev.Alt

	switch ev.Button {
	case tea.MouseButtonWheelUp:
		s.wheel.Y++
		return
	case tea.MouseButtonWheelDown:
		s.wheel.Y--
		return
	case tea.MouseButtonWheelRight:
		s.wheel.X++
		return
	case tea.MouseButtonWheelLeft:
		s.wheel.X--
		return
	}

	switch ev.Action {
	case tea.MouseActionPress:
		if b, ok := mouseButtons[ev.Button]; ok {
			s.pressed[b] = true
			s.down[b] = true
		}
	case tea.MouseActionRelease:
		b, ok := mouseButtons[ev.Button]
		if !ok {
			// Legacy encodings do not say which button went up.
			for i := range s.down {
				s.release(timeline.Button(i))
			}
			return
		}
		s.release(b)
	}
}

func (s *inputState) release(b timeline.Button) {
	if s.down[b] {
		s.released[b] = true
	}
	s.down[b] = false
}

// snapshot returns the input of the frame that just ended and clears the
// per-frame edges.
func (s *inputState) snapshot(frameTime float64, screen timeline.Vec2) timeline.Input {
	in := timeline.Input{
		FrameTime: frameTime,
		Mouse:     s.mouse,
		Wheel:     s.wheel,
		Modifier:  s.modifier,
		Screen:    screen,
	}
	copy(in.Pressed[:], s.pressed[:])
	copy(in.Released[:], s.released[:])
	copy(in.Down[:], s.down[:])

	s.pressed = [3]bool{}
	s.released = [3]bool{}
	s.wheel = timeline.Vec2{}
	return in
}

// idle returns an input that only advances time, used while an overlay has
// the pointer.
func (s *inputState) idle(frameTime float64, screen timeline.Vec2) timeline.Input {
	s.pressed = [3]bool{}
	s.released = [3]bool{}
	s.wheel = timeline.Vec2{}
	return timeline.Input{
		FrameTime: frameTime,
		Mouse:     timeline.Vec2{X: -1, Y: -1},
		Screen:    screen,
	}
}
