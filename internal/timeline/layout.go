package timeline

import "time"

const (
	// padding keeps the first and last entries off the track edges.
	padding = 1000.0 // ms
	// MinEntryWidth keeps zero-length entries visible and clickable.
	MinEntryWidth = 3.0
)

// Layout maps time onto the horizontal track for one frame.
type Layout struct {
	Bounds Bounds
	// Offset is the effective pan offset, drag preview included.
	Offset Vec2
	ScaleX float64
	Track  Rect
}

// X returns the screen position of the absolute time t.
func (l Layout) X(t time.Time) float64 {
	ms := float64(t.Sub(l.Bounds.MinStart)) / float64(time.Millisecond)
	span := float64(l.Bounds.Span()) / float64(time.Millisecond)
	left := l.Track.X + l.Offset.X
	return mapRange(ms, -padding, span+padding, left, left+l.Track.W*l.ScaleX)
}

// Width returns the on-screen width of a duration given in milliseconds,
// never less than MinEntryWidth.
func (l Layout) Width(ms float64) float64 {
	span := float64(l.Bounds.Span()) / float64(time.Millisecond)
	w := mapRange(ms, 0, span+2*padding, 0, l.Track.W*l.ScaleX)
	if !(w >= MinEntryWidth) {
		return MinEntryWidth
	}
	return w
}

// mapRange maps x linearly; an empty input range maps everything to outMin.
func mapRange(x, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}
