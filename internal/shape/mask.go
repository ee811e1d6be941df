package shape

import "fmt"

// Size is the edge length of every piece mask.
const Size = 4

// Mask is a 4x4 occupancy grid indexed as m[row][col], row 0 at the top.
type Mask [Size][Size]bool

// Point is a cell offset inside a mask.
type Point struct {
	X, Y int
}

// NewMask builds a mask from four rows of four cells each, where 'X' or '#'
// marks a filled cell and '.' or ' ' an empty one. Anything else panics.
func NewMask(rows ...string) Mask {
	if len(rows) != Size {
		panic(fmt.Sprintf("shape: mask needs %d rows, got %d", Size, len(rows)))
	}
	var m Mask
	for y, row := range rows {
		cells := []rune(row)
		if len(cells) != Size {
			panic(fmt.Sprintf("shape: mask row %d needs %d cells, got %q", y, Size, row))
		}
		for x, c := range cells {
			switch c {
			case 'X', '#':
				m[y][x] = true
			case '.', ' ':
			default:
				panic(fmt.Sprintf("shape: invalid mask cell %q in row %d", c, y))
			}
		}
	}
	return m
}

// RotateClockwise returns the mask turned 90 degrees clockwise.
func RotateClockwise(m Mask) Mask {
	var r Mask
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			r[y][x] = m[Size-1-x][y]
		}
	}
	return r
}

// RotateCounterclockwise returns the mask turned 90 degrees counterclockwise.
func RotateCounterclockwise(m Mask) Mask {
	var r Mask
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			r[y][x] = m[x][Size-1-y]
		}
	}
	return r
}

// Cells returns the offsets of all filled cells, row by row.
func (m Mask) Cells() []Point {
	pts := make([]Point, 0, Size)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if m[y][x] {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// Count returns the number of filled cells.
func (m Mask) Count() int {
	return len(m.Cells())
}

// Bounds returns the smallest rectangle holding every filled cell.
// ok is false for an empty mask.
func (m Mask) Bounds() (minX, minY, maxX, maxY int, ok bool) {
	minX, minY = Size, Size
	maxX, maxY = -1, -1
	for _, p := range m.Cells() {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY, maxX >= 0
}

// String renders the mask as four lines of 'X' and '.'.
func (m Mask) String() string {
	b := make([]byte, 0, Size*(Size+1))
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if m[y][x] {
				b = append(b, 'X')
			} else {
				b = append(b, '.')
			}
		}
		if y < Size-1 {
			b = append(b, '\n')
		}
	}
	return string(b)
}
