package game

// Command is a discrete player input.
type Command int

const (
	MoveLeft Command = iota
	MoveRight
	RotateCW
	RotateCCW
	HardDrop
	Hold
	ResetIfGameOver
)

func (c Command) String() string {
	switch c {
	case MoveLeft:
		return "moveLeft"
	case MoveRight:
		return "moveRight"
	case RotateCW:
		return "rotateCW"
	case RotateCCW:
		return "rotateCCW"
	case HardDrop:
		return "hardDrop"
	case Hold:
		return "hold"
	case ResetIfGameOver:
		return "reset"
	}
	return "unknown"
}
