package game

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go-tetris/internal/config"
	"go-tetris/internal/logger"
	"go-tetris/internal/piece"
	"go-tetris/internal/playfield"
	"go-tetris/internal/scoring"
	"go-tetris/internal/shape"
	"go-tetris/internal/state"
	"go-tetris/internal/supplier"
)

// Session owns one game: the playfield, the falling piece, the piece
// supply, the score and the Playing/GameOver state. It is driven from a
// single goroutine through HandleCommand and Advance.
type Session struct {
	Rules config.Rules

	field    *playfield.Playfield
	current  *piece.Active
	supplier *supplier.Supplier
	score    *scoring.Scoring
	machine  *state.Machine
	logger   *slog.Logger

	leveledUp    bool
	dropInterval time.Duration
	elapsed      time.Duration
	events       []Event
}

// NewSession validates rules and starts a game in the Playing state. rng is
// kept for the lifetime of the session and is not reseeded on reset. A nil
// log discards output.
func NewSession(rules config.Rules, rng supplier.Source, log *slog.Logger) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("random source is required")
	}
	if log == nil {
		log = logger.Discard()
	}

	s := &Session{
		Rules:        rules,
		field:        playfield.New(rules.Width, rules.Height),
		supplier:     supplier.New(rng),
		score:        scoring.InitScoring(rules.PointsPerRow, rules.LevelThreshold),
		logger:       log,
		dropInterval: rules.DropInterval,
	}
	s.machine = state.NewMachine(state.Hooks{
		OnGameOver: s.onGameOver,
		OnReset:    s.restart,
	})
	s.spawn(s.supplier.Next())

	s.logger.Info("session started",
		"width", rules.Width, "height", rules.Height, "dropInterval", rules.DropInterval)
	return s, nil
}

// Reset starts over after a game over. It does nothing while Playing and
// reports whether a reset happened.
func (s *Session) Reset() bool {
	// No cancellation here; transitions are synchronous.
	return s.machine.Reset(context.Background())
}

// restart runs on the GameOver -> Playing transition. The random source is
// left alone so the piece stream simply continues.
func (s *Session) restart() {
	s.field.Reset()
	s.score.Reset()
	s.supplier.Reset()
	s.leveledUp = false
	s.dropInterval = s.Rules.DropInterval
	s.elapsed = 0
	s.emit(Event{Kind: EventReset})
	s.logger.Info("session reset")

	// The grid is empty and the rules guarantee room at the spawn point.
	s.current = piece.Spawn(s.supplier.Next(), s.Rules.SpawnColumn(), s.Rules.SpawnRow)
}

func (s *Session) onGameOver() {
	s.emit(Event{Kind: EventGameOver})
	s.logger.Info("game over",
		"score", s.score.CurrentScore, "level", s.score.Level, "lines", s.score.Lines)
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// DrainEvents returns the events queued since the last call and clears the
// queue.
func (s *Session) DrainEvents() []Event {
	ev := s.events
	s.events = nil
	return ev
}

// Field returns a copy of the playfield contents, indexed [y][x].
func (s *Session) Field() [][]playfield.Cell {
	return s.field.Rows()
}

// Current returns a copy of the falling piece.
func (s *Session) Current() piece.Active {
	return *s.current
}

// Next returns the lookahead piece.
func (s *Session) Next() shape.Definition {
	return s.supplier.Peek()
}

// Held returns the piece in the hold slot, if any.
func (s *Session) Held() (shape.Definition, bool) {
	return s.supplier.Held()
}

func (s *Session) Score() int { return s.score.CurrentScore }
func (s *Session) Level() int { return s.score.Level }
func (s *Session) Lines() int { return s.score.Lines }

// LeveledUp is true from a landing that raised the level until the next
// landing.
func (s *Session) LeveledUp() bool { return s.leveledUp }

func (s *Session) State() state.GameState { return s.machine.Current() }

// DropInterval is the current gravity period.
func (s *Session) DropInterval() time.Duration { return s.dropInterval }

// GhostY is the anchor row the current piece would land at if hard dropped.
func (s *Session) GhostY() int {
	return s.current.Y + s.current.DropDistance(s.field)
}
