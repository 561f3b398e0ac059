package render

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// Projector maps world pixels onto a terminal cell grid
// The world origin lands on the centre cell of the canvas area
type Projector struct {
	CellW, CellH float64

	originX, originY int
	cols, rows       int
}

// NewProjector creates a projector for the given cell size in world pixels
func NewProjector(cellW, cellH float64) *Projector {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &Projector{CellW: cellW, CellH: cellH}
}

// Resize sets the canvas area in cells
func (p *Projector) Resize(x, y, cols, rows int) {
	p.originX, p.originY = x, y
	p.cols, p.rows = max(cols, 0), max(rows, 0)
}

// Bounds returns the canvas area
func (p *Projector) Bounds() (x, y, cols, rows int) {
	return p.originX, p.originY, p.cols, p.rows
}

// Cell returns the screen cell for a world point, ok is false when it falls outside the canvas
func (p *Projector) Cell(x, y float64) (col, row int, ok bool) {
	col = p.originX + p.cols/2 + int(math.Floor(x/p.CellW+0.5))
	row = p.originY + p.rows/2 - int(math.Floor(y/p.CellH+0.5))
	ok = col >= p.originX && col < p.originX+p.cols &&
		row >= p.originY && row < p.originY+p.rows
	return col, row, ok
}

// Fits reports whether r starting at col stays inside the canvas
// Zero-width runes never fit, wide runes need their second cell
func (p *Projector) Fits(r rune, col int) bool {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return false
	}
	return col+w <= p.originX+p.cols
}
