package game

// EventKind names something the presentation layer may want to react to,
// such as playing a sound or flashing a banner.
type EventKind int

const (
	EventRotated EventKind = iota
	EventHold
	EventRowsCleared
	// EventTetris accompanies EventRowsCleared when four rows go at once.
	// It carries no extra points.
	EventTetris
	EventLevelUp
	EventGameOver
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventRotated:
		return "rotated"
	case EventHold:
		return "hold"
	case EventRowsCleared:
		return "rowsCleared"
	case EventTetris:
		return "tetris"
	case EventLevelUp:
		return "levelUp"
	case EventGameOver:
		return "gameOver"
	case EventReset:
		return "reset"
	}
	return "unknown"
}

// Event is a queued notification. Rows is set for EventRowsCleared and
// Level for EventLevelUp.
type Event struct {
	Kind  EventKind
	Rows  int
	Level int
}
