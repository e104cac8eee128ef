// Package canvas rasterizes timeline drawing calls onto a grid of terminal
// cells. Every cell covers a fixed block of virtual pixels; shapes snap to
// the nearest cell edge.
package canvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/sadopc/hartl/internal/timeline"
)

// Default cell size in virtual pixels.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 20
)

// continuation marks the right half of a double-width rune.
const continuation rune = -1

type boxSet struct {
	h, v, tl, tr, bl, br rune
}

var (
	lightBox = boxSet{'─', '│', '┌', '┐', '└', '┘'}
	heavyBox = boxSet{'━', '┃', '┏', '┓', '┗', '┛'}
)

const (
	dotRune    = '·'
	circleRune = '●'
)

// Cell is one terminal cell.
type Cell struct {
	Rune rune
	FG   lipgloss.Color
	BG   lipgloss.Color
}

// Canvas is a cell raster implementing timeline.Canvas.
type Canvas struct {
	cols, rows   int
	cellW, cellH float64
	bg, fg       lipgloss.Color
	cells        []Cell
	styles       map[[2]lipgloss.Color]lipgloss.Style
}

var _ timeline.Canvas = (*Canvas)(nil)

// New returns a cleared canvas of cols x rows cells.
func New(cols, rows int, cellW, cellH float64, bg, fg lipgloss.Color) *Canvas {
	if cellW <= 0 {
		cellW = DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = DefaultCellHeight
	}
	c := &Canvas{
		cellW:  cellW,
		cellH:  cellH,
		bg:     bg,
		fg:     fg,
		styles: make(map[[2]lipgloss.Color]lipgloss.Style),
	}
	c.Resize(cols, rows)
	return c
}

// Resize changes the grid size and clears it.
func (c *Canvas) Resize(cols, rows int) {
	c.cols = max(cols, 0)
	c.rows = max(rows, 0)
	c.cells = make([]Cell, c.cols*c.rows)
	c.Clear()
}

// SetColors changes the default background and foreground. It takes effect
// on the next Clear.
func (c *Canvas) SetColors(bg, fg lipgloss.Color) {
	c.bg, c.fg = bg, fg
	clear(c.styles)
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', FG: c.fg, BG: c.bg}
	}
}

// Cols returns the grid width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the grid height in cells.
func (c *Canvas) Rows() int { return c.rows }

// Size returns the grid size in virtual pixels.
func (c *Canvas) Size() timeline.Vec2 {
	return timeline.Vec2{X: float64(c.cols) * c.cellW, Y: float64(c.rows) * c.cellH}
}

// ToPixel returns the virtual pixel at the center of a cell.
func (c *Canvas) ToPixel(col, row int) timeline.Vec2 {
	return timeline.Vec2{
		X: (float64(col) + 0.5) * c.cellW,
		Y: (float64(row) + 0.5) * c.cellH,
	}
}

// Cell returns the cell at col, row. Out of range positions return a blank
// cell.
func (c *Canvas) Cell(col, row int) Cell {
	if !c.inside(col, row) {
		return Cell{Rune: ' ', FG: c.fg, BG: c.bg}
	}
	return c.cells[row*c.cols+col]
}

func (c *Canvas) inside(col, row int) bool {
	return col >= 0 && col < c.cols && row >= 0 && row < c.rows
}

func (c *Canvas) at(col, row int) *Cell {
	if !c.inside(col, row) {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

func (c *Canvas) col(x float64) int { return snap(x / c.cellW) }
func (c *Canvas) row(y float64) int { return snap(y / c.cellH) }

func snap(v float64) int {
	v = math.Floor(v + 0.5)
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int(v)
}

// span converts [from, from+size) to a cell range, at least one cell wide
// when size is positive.
func span(from, size, unit float64) (int, int) {
	a := snap(from / unit)
	b := snap((from + size) / unit)
	if size > 0 && b <= a {
		b = a + 1
	}
	return a, b
}

func (c *Canvas) cellRect(r timeline.Rect) (x0, y0, x1, y1 int) {
	x0, x1 = span(r.X, r.W, c.cellW)
	y0, y1 = span(r.Y, r.H, c.cellH)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, c.cols), min(y1, c.rows)
	return x0, y0, x1, y1
}

// FillRect paints the background of every cell r covers and erases their
// content.
func (c *Canvas) FillRect(r timeline.Rect, col lipgloss.Color) {
	x0, y0, x1, y1 := c.cellRect(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.cells[y*c.cols+x] = Cell{Rune: ' ', FG: c.fg, BG: col}
		}
	}
}

// StrokeRect draws a box along the border cells of r. Widths of 2 or more
// use heavy box characters.
func (c *Canvas) StrokeRect(r timeline.Rect, lineWidth float64, col lipgloss.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	box := lightBox
	if lineWidth >= 2 {
		box = heavyBox
	}
	x0, x1 := span(r.X, r.W, c.cellW)
	y0, y1 := span(r.Y, r.H, c.cellH)
	right, bottom := x1-1, y1-1

	switch {
	case x0 == right:
		for y := max(y0, 0); y <= min(bottom, c.rows-1); y++ {
			c.put(x0, y, box.v, col)
		}
		return
	case y0 == bottom:
		for x := max(x0, 0); x <= min(right, c.cols-1); x++ {
			c.put(x, y0, box.h, col)
		}
		return
	}

	for x := max(x0+1, 0); x < min(right, c.cols); x++ {
		c.put(x, y0, box.h, col)
		c.put(x, bottom, box.h, col)
	}
	for y := max(y0+1, 0); y < min(bottom, c.rows); y++ {
		c.put(x0, y, box.v, col)
		c.put(right, y, box.v, col)
	}
	c.put(x0, y0, box.tl, col)
	c.put(right, y0, box.tr, col)
	c.put(x0, bottom, box.bl, col)
	c.put(right, bottom, box.br, col)
}

// Line draws a segment. Axis-aligned segments use box characters, anything
// else is traced with dots. Lines pass behind text.
func (c *Canvas) Line(from, to timeline.Vec2, width float64, col lipgloss.Color) {
	box := lightBox
	if width >= 2 {
		box = heavyBox
	}
	x0, y0 := c.col(from.X), c.row(from.Y)
	x1, y1 := c.col(to.X), c.row(to.Y)

	switch {
	case x0 == x1:
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		// The end point is exclusive so a segment ending on a cell edge
		// does not bleed into the next row.
		if y1 == y0 {
			y1++
		}
		for y := max(y0, 0); y < min(y1, c.rows); y++ {
			c.rule(x0, y, box.v, col)
		}
	case y0 == y1:
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		for x := max(x0, 0); x <= min(x1, c.cols-1); x++ {
			c.rule(x, y0, box.h, col)
		}
	default:
		c.trace(x0, y0, x1, y1, col)
	}
}

// trace walks the cells between two points with Bresenham's algorithm.
func (c *Canvas) trace(x0, y0, x1, y1 int, col lipgloss.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.rule(x0, y0, dotRune, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Circle marks the cell holding center. Centers outside the grid are
// clamped to its edge so off-screen markers stay visible.
func (c *Canvas) Circle(center timeline.Vec2, _ float64, col lipgloss.Color) {
	if c.cols == 0 || c.rows == 0 {
		return
	}
	x := min(max(c.col(center.X-c.cellW/2), 0), c.cols-1)
	y := min(max(c.row(center.Y-c.cellH/2), 0), c.rows-1)
	c.put(x, y, circleRune, col)
}

// MeasureText returns the size of text in virtual pixels: the widest line
// in cells times the cell width, and one cell height per line.
func (c *Canvas) MeasureText(_ timeline.Font, text string) timeline.Vec2 {
	lines := strings.Split(text, "\n")
	w := 0
	for _, l := range lines {
		w = max(w, runewidth.StringWidth(l))
	}
	return timeline.Vec2{X: float64(w) * c.cellW, Y: float64(len(lines)) * c.cellH}
}

// DrawText writes text with its top-left corner at pos. Cells keep their
// background.
func (c *Canvas) DrawText(f timeline.Font, text string, pos timeline.Vec2, col lipgloss.Color) timeline.Vec2 {
	x0, y := c.col(pos.X), c.row(pos.Y)
	for _, line := range strings.Split(text, "\n") {
		if y >= c.rows {
			break
		}
		x := x0
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if x >= c.cols {
				break
			}
			c.put(x, y, r, col)
			if w == 2 {
				c.put(x+1, y, continuation, col)
			}
			x += w
		}
		y++
	}
	return c.MeasureText(f, text)
}

// rule puts a line cell unless the cell already holds text.
func (c *Canvas) rule(x, y int, r rune, col lipgloss.Color) {
	if cell := c.at(x, y); cell != nil && isText(cell.Rune) {
		return
	}
	c.put(x, y, r, col)
}

func isText(r rune) bool {
	switch {
	case r == ' ', r == dotRune, r == circleRune:
		return false
	case r >= 0x2500 && r <= 0x257f: // box drawing
		return false
	}
	return true
}

func (c *Canvas) put(x, y int, r rune, col lipgloss.Color) {
	cell := c.at(x, y)
	if cell == nil {
		return
	}
	// A wide rune cut in half by a later write leaves a blank behind.
	if r != continuation {
		if left := c.at(x-1, y); cell.Rune == continuation && left != nil {
			left.Rune = ' '
		}
		if right := c.at(x+1, y); right != nil && right.Rune == continuation {
			right.Rune = ' '
		}
	}
	cell.Rune = r
	cell.FG = col
}

// Render returns the grid as styled text, one line per row. Adjacent cells
// sharing colors are rendered as one run.
func (c *Canvas) Render() string {
	var b strings.Builder
	var run strings.Builder
	for y := 0; y < c.rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		var fg, bg lipgloss.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(c.style(fg, bg).Render(run.String()))
			run.Reset()
		}
		for x := 0; x < c.cols; x++ {
			cell := c.cells[y*c.cols+x]
			if cell.Rune == continuation {
				continue
			}
			if cell.FG != fg || cell.BG != bg {
				flush()
				fg, bg = cell.FG, cell.BG
			}
			run.WriteRune(cell.Rune)
		}
		flush()
	}
	return b.String()
}

// String returns the grid without colors.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < c.cols; x++ {
			if r := c.cells[y*c.cols+x].Rune; r != continuation {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func (c *Canvas) style(fg, bg lipgloss.Color) lipgloss.Style {
	key := [2]lipgloss.Color{fg, bg}
	if s, ok := c.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(fg).Background(bg)
	c.styles[key] = s
	return s
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
