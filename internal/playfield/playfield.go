package playfield

import (
	"fmt"

	"go-tetris/internal/shape"
)

// Cell is one grid position. Empty is the zero value; any other value is the
// color of the piece that filled it.
type Cell uint8

const Empty Cell = 0

// Playfield is a fixed-size grid of cells indexed as cells[y][x], row 0 at
// the top. Its dimensions never change after construction.
type Playfield struct {
	width  int
	height int
	cells  [][]Cell
}

// New creates an empty playfield. Non-positive dimensions panic.
func New(width, height int) *Playfield {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("playfield: invalid dimensions %dx%d", width, height))
	}
	p := &Playfield{width: width, height: height}
	p.cells = make([][]Cell, height)
	for y := range p.cells {
		p.cells[y] = make([]Cell, width)
	}
	return p
}

func (p *Playfield) Width() int  { return p.width }
func (p *Playfield) Height() int { return p.height }

// At returns the cell at (x, y). Coordinates must be in bounds.
func (p *Playfield) At(x, y int) Cell {
	return p.cells[y][x]
}

// Set writes c at (x, y). Coordinates must be in bounds.
func (p *Playfield) Set(x, y int, c Cell) {
	p.cells[y][x] = c
}

// Rows returns a copy of the grid contents.
func (p *Playfield) Rows() [][]Cell {
	rows := make([][]Cell, p.height)
	for y := range p.cells {
		rows[y] = append([]Cell(nil), p.cells[y]...)
	}
	return rows
}

// Reset empties every cell.
func (p *Playfield) Reset() {
	for y := range p.cells {
		clear(p.cells[y])
	}
}

// IsLegal reports whether mask placed with its top-left corner at (ax, ay)
// fits: every filled cell must be inside the side walls and above the floor,
// and must not overlap an occupied cell. Cells above row 0 are allowed; that
// is the spawn buffer.
func (p *Playfield) IsLegal(mask shape.Mask, ax, ay int) bool {
	for _, c := range mask.Cells() {
		x, y := ax+c.X, ay+c.Y
		if x < 0 || x >= p.width || y >= p.height {
			return false
		}
		if y >= 0 && p.cells[y][x] != Empty {
			return false
		}
	}
	return true
}

// Lock writes color into every visible cell covered by mask at (ax, ay).
// The caller must have checked IsLegal first. Cells still in the spawn
// buffer are not stored.
func (p *Playfield) Lock(mask shape.Mask, ax, ay int, color Cell) {
	for _, c := range mask.Cells() {
		y := ay + c.Y
		if y < 0 {
			continue
		}
		p.cells[y][ax+c.X] = color
	}
}
