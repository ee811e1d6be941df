package shape

import "fmt"

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	I Kind = iota
	O
	T
	S
	Z
	L
	J
)

// Count is the number of distinct tetrominoes.
const Count = 7

func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case L:
		return "L"
	case J:
		return "J"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Color tags the cells a piece leaves behind. Zero is reserved for empty
// playfield cells, so every shape color is non-zero.
type Color uint8

const (
	Aqua Color = iota + 1
	Yellow
	Purple
	Green
	Red
	Orange
	DarkBlue
)

// Definition is the immutable description of a tetromino.
type Definition struct {
	Kind  Kind
	Color Color
	Mask  Mask
}

var table = [Count]Definition{
	{Kind: I, Color: Aqua, Mask: NewMask(
		".X..",
		".X..",
		".X..",
		".X..",
	)},
	{Kind: O, Color: Yellow, Mask: NewMask(
		"....",
		".XX.",
		".XX.",
		"....",
	)},
	{Kind: T, Color: Purple, Mask: NewMask(
		"....",
		"XXX.",
		".X..",
		"....",
	)},
	{Kind: S, Color: Green, Mask: NewMask(
		"....",
		".XX.",
		"XX..",
		"....",
	)},
	{Kind: Z, Color: Red, Mask: NewMask(
		"....",
		"XX..",
		".XX.",
		"....",
	)},
	{Kind: L, Color: Orange, Mask: NewMask(
		".X..",
		".X..",
		".XX.",
		"....",
	)},
	{Kind: J, Color: DarkBlue, Mask: NewMask(
		".XX.",
		".X..",
		".X..",
		"....",
	)},
}

// Table returns all seven definitions in Kind order.
func Table() [Count]Definition {
	return table
}

// Get returns the definition for k. Unknown kinds panic.
func Get(k Kind) Definition {
	if int(k) >= Count {
		panic(fmt.Sprintf("shape: unknown kind %d", uint8(k)))
	}
	return table[k]
}
