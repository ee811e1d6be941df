package game

import (
	"context"
	"time"

	"go-tetris/internal/piece"
	"go-tetris/internal/shape"
	"go-tetris/internal/state"
)

// HandleCommand applies one player command and reports whether it changed
// anything. Illegal moves are rejected without side effects. While the game
// is over only ResetIfGameOver is accepted.
func (s *Session) HandleCommand(cmd Command) bool {
	if s.machine.Is(state.GameOver) {
		if cmd == ResetIfGameOver {
			return s.Reset()
		}
		return false
	}

	switch cmd {
	case MoveLeft:
		return s.current.TryMoveLeft(s.field)
	case MoveRight:
		return s.current.TryMoveRight(s.field)
	case RotateCW:
		return s.rotate(piece.Clockwise)
	case RotateCCW:
		return s.rotate(piece.Counterclockwise)
	case HardDrop:
		s.current.HardDrop(s.field)
		s.land()
		return true
	case Hold:
		return s.hold()
	}
	return false
}

// Advance feeds elapsed time to gravity. Each full drop interval moves the
// piece down one row or lands it.
func (s *Session) Advance(elapsed time.Duration) {
	if elapsed <= 0 || !s.machine.Is(state.Playing) {
		return
	}
	s.elapsed += elapsed
	for s.elapsed >= s.dropInterval && s.machine.Is(state.Playing) {
		s.elapsed -= s.dropInterval
		if !s.current.TryDown(s.field) {
			s.land()
		}
	}
}

// Step resolves cmds in order and then advances gravity, so a move made in
// the same frame as a fall is applied before the fall is checked.
func (s *Session) Step(elapsed time.Duration, cmds ...Command) {
	for _, c := range cmds {
		s.HandleCommand(c)
	}
	s.Advance(elapsed)
}

func (s *Session) rotate(dir piece.Direction) bool {
	if !s.current.TryRotate(s.field, dir) {
		return false
	}
	s.emit(Event{Kind: EventRotated})
	return true
}

// hold swaps the falling piece with the hold slot. The incoming piece starts
// again at the spawn point; the gravity timer keeps running. A swap whose
// incoming piece would not fit is refused.
func (s *Session) hold() bool {
	if !s.Rules.HoldEnabled {
		return false
	}
	in := s.supplier.Incoming()
	if !s.field.IsLegal(in.Mask, s.Rules.SpawnColumn(), s.Rules.SpawnRow) {
		return false
	}
	out := s.current.Shape
	s.current = piece.Spawn(s.supplier.HoldSwap(out), s.Rules.SpawnColumn(), s.Rules.SpawnRow)
	s.emit(Event{Kind: EventHold})
	s.logger.Debug("hold", "held", out.Kind, "current", s.current.Shape.Kind)
	return true
}

// land locks the falling piece, clears rows, scores them and brings in the
// next piece. A piece that is already overlapping the stack, or that locks
// with a cell above the top row, ends the game.
func (s *Session) land() {
	s.leveledUp = false
	p := s.current

	if !p.Fits(s.field) {
		s.topOut("blocked")
		return
	}
	p.Lock(s.field)
	s.logger.Debug("piece landed", "kind", p.Shape.Kind, "x", p.X, "y", p.Y)
	if p.AboveTop() {
		s.topOut("locked above top")
		return
	}

	if rows := s.field.ClearFullRows(); rows > 0 {
		s.scoreRows(rows)
	}
	s.spawn(s.supplier.Next())
}

func (s *Session) scoreRows(rows int) {
	delta, up := s.score.ApplyClear(rows)
	s.emit(Event{Kind: EventRowsCleared, Rows: rows})
	if rows == 4 {
		s.emit(Event{Kind: EventTetris, Rows: rows})
	}
	s.logger.Debug("rows cleared", "rows", rows, "delta", delta, "score", s.score.CurrentScore)

	if !up {
		return
	}
	s.leveledUp = true
	s.dropInterval = s.Rules.NextInterval(s.dropInterval)
	s.emit(Event{Kind: EventLevelUp, Level: s.score.Level})
	s.logger.Info("level up", "level", s.score.Level, "dropInterval", s.dropInterval)
}

// spawn places def at the spawn point. If it does not fit the game is over.
func (s *Session) spawn(def shape.Definition) {
	s.current = piece.Spawn(def, s.Rules.SpawnColumn(), s.Rules.SpawnRow)
	if !s.current.Fits(s.field) {
		s.topOut("no room to spawn")
	}
}

func (s *Session) topOut(reason string) {
	s.logger.Debug("top out", "reason", reason, "kind", s.current.Shape.Kind)
	s.machine.TopOut(context.Background())
}
