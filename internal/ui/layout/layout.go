package layout

// ScreenLayout holds calculated dimensions for the timeline screen.
type ScreenLayout struct {
	Width  int
	Height int

	CanvasCols int
	CanvasRows int // height minus status bar

	StatusBarVisible bool
}

const (
	statusBarHeight = 1
	minStatusHeight = 4
)

// Calculate computes the screen layout from terminal dimensions. The status
// bar is dropped on very short terminals.
func Calculate(width, height int, statusBar bool) ScreenLayout {
	l := ScreenLayout{
		Width:            max(width, 0),
		Height:           max(height, 0),
		StatusBarVisible: statusBar && height >= minStatusHeight,
	}

	l.CanvasCols = l.Width
	l.CanvasRows = l.Height
	if l.StatusBarVisible {
		l.CanvasRows -= statusBarHeight
	}
	l.CanvasCols = clamp(l.CanvasCols, 1, l.CanvasCols)
	l.CanvasRows = clamp(l.CanvasRows, 1, l.CanvasRows)

	return l
}

func clamp(v, min, max int) int {
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}
