package piece

import (
	"go-tetris/internal/playfield"
	"go-tetris/internal/shape"
)

// Direction selects a rotation sense.
type Direction int

const (
	Clockwise Direction = iota
	Counterclockwise
)

// Active is the falling piece: its shape, its current rotation mask and the
// grid position of the mask's top-left corner. Y is negative while the piece
// is still in the spawn buffer.
type Active struct {
	Shape shape.Definition
	Mask  shape.Mask
	X, Y  int
}

// Spawn returns a new piece of def in its canonical rotation at (x, y).
func Spawn(def shape.Definition, x, y int) *Active {
	return &Active{Shape: def, Mask: def.Mask, X: x, Y: y}
}

// Color is the cell value the piece leaves when locked.
func (a *Active) Color() playfield.Cell {
	return playfield.Cell(a.Shape.Color)
}

// Fits reports whether the piece is at a legal position on f.
func (a *Active) Fits(f *playfield.Playfield) bool {
	return f.IsLegal(a.Mask, a.X, a.Y)
}

func (a *Active) TryMoveLeft(f *playfield.Playfield) bool {
	return a.tryShift(f, -1, 0)
}

func (a *Active) TryMoveRight(f *playfield.Playfield) bool {
	return a.tryShift(f, 1, 0)
}

// TryDown moves the piece one row down. It returns false, leaving the piece
// where it was, when the piece has landed.
func (a *Active) TryDown(f *playfield.Playfield) bool {
	return a.tryShift(f, 0, 1)
}

func (a *Active) tryShift(f *playfield.Playfield, dx, dy int) bool {
	if !f.IsLegal(a.Mask, a.X+dx, a.Y+dy) {
		return false
	}
	a.X += dx
	a.Y += dy
	return true
}

// TryRotate turns the piece in place. There is no wall kick: a rotation that
// does not fit at the current anchor is discarded.
func (a *Active) TryRotate(f *playfield.Playfield, dir Direction) bool {
	var next shape.Mask
	if dir == Clockwise {
		next = shape.RotateClockwise(a.Mask)
	} else {
		next = shape.RotateCounterclockwise(a.Mask)
	}
	if !f.IsLegal(next, a.X, a.Y) {
		return false
	}
	a.Mask = next
	return true
}

// DropDistance is how many rows the piece can fall before landing.
func (a *Active) DropDistance(f *playfield.Playfield) int {
	n := 0
	for f.IsLegal(a.Mask, a.X, a.Y+n+1) {
		n++
	}
	return n
}

// HardDrop moves the piece straight down as far as it can go and returns the
// number of rows travelled.
func (a *Active) HardDrop(f *playfield.Playfield) int {
	n := a.DropDistance(f)
	a.Y += n
	return n
}

// Lock writes the piece into f.
func (a *Active) Lock(f *playfield.Playfield) {
	f.Lock(a.Mask, a.X, a.Y, a.Color())
}

// AboveTop reports whether any filled cell is still in the spawn buffer.
func (a *Active) AboveTop() bool {
	for _, c := range a.Mask.Cells() {
		if a.Y+c.Y < 0 {
			return true
		}
	}
	return false
}
