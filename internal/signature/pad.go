package signature

import (
	"image"
	"image/color"
)

// Pad is a freehand drawing surface laid over a grid of terminal cells.
// Strokes are recorded in cell coordinates and rasterised onto the fixed
// CanvasWidth x CanvasHeight canvas.
type Pad struct {
	cols, rows int
	strokes    [][]image.Point
	drawing    bool
}

var ink = color.NRGBA{A: 0xff}

const brush = 2

// NewPad creates an empty pad with the given cell grid size.
func NewPad(cols, rows int) *Pad {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Pad{cols: cols, rows: rows}
}

// Begin starts a stroke at a cell. Points outside the grid are ignored.
func (p *Pad) Begin(col, row int) bool {
	if !p.inside(col, row) {
		return false
	}
	p.strokes = append(p.strokes, []image.Point{{X: col, Y: row}})
	p.drawing = true
	return true
}

// Extend continues the current stroke, clamping to the grid edge.
func (p *Pad) Extend(col, row int) {
	if !p.drawing || len(p.strokes) == 0 {
		return
	}
	pt := image.Point{X: clamp(col, 0, p.cols-1), Y: clamp(row, 0, p.rows-1)}
	last := len(p.strokes) - 1
	s := p.strokes[last]
	if s[len(s)-1] == pt {
		return
	}
	p.strokes[last] = append(s, pt)
}

// End finishes the current stroke.
func (p *Pad) End() {
	p.drawing = false
}

// Clear removes every stroke.
func (p *Pad) Clear() {
	p.strokes = nil
	p.drawing = false
}

// Empty reports whether nothing has been drawn.
func (p *Pad) Empty() bool {
	return len(p.strokes) == 0
}

// Cells returns the inked cells, indexed [row][col].
func (p *Pad) Cells() [][]bool {
	cells := make([][]bool, p.rows)
	for r := range cells {
		cells[r] = make([]bool, p.cols)
	}
	for _, s := range p.strokes {
		walk(s, func(x, y int) {
			if p.inside(x, y) {
				cells[y][x] = true
			}
		})
	}
	return cells
}

// Image rasterises the strokes onto a transparent canvas with black ink.
func (p *Pad) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	for _, s := range p.strokes {
		px := make([]image.Point, len(s))
		for i, pt := range s {
			px[i] = p.toPixel(pt)
		}
		walk(px, func(x, y int) {
			for dy := 0; dy < brush; dy++ {
				for dx := 0; dx < brush; dx++ {
					if image.Pt(x+dx, y+dy).In(img.Rect) {
						img.SetNRGBA(x+dx, y+dy, ink)
					}
				}
			}
		})
	}
	return img
}

// Capture returns the pad's raster, or nil when nothing visible was drawn.
func Capture(p *Pad) image.Image {
	if p == nil || p.Empty() {
		return nil
	}
	img := p.Image()
	if IsBlank(img) {
		return nil
	}
	return img
}

func (p *Pad) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < p.cols && row < p.rows
}

// toPixel maps a cell to the pixel at its centre.
func (p *Pad) toPixel(pt image.Point) image.Point {
	cw := CanvasWidth / p.cols
	ch := CanvasHeight / p.rows
	return image.Point{
		X: pt.X*CanvasWidth/p.cols + cw/2,
		Y: pt.Y*CanvasHeight/p.rows + ch/2,
	}
}

// walk visits every point on the polyline through pts (Bresenham).
func walk(pts []image.Point, visit func(x, y int)) {
	if len(pts) == 0 {
		return
	}
	visit(pts[0].X, pts[0].Y)
	for i := 1; i < len(pts); i++ {
		line(pts[i-1], pts[i], visit)
	}
}

func line(a, b image.Point, visit func(x, y int)) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	x, y := a.X, a.Y
	for {
		visit(x, y)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
