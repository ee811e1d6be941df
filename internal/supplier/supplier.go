// Package supplier hands out tetrominoes: a uniformly random stream with one
// piece of lookahead and a single hold slot.
package supplier

import (
	"go-tetris/internal/shape"
)

// Source yields integers in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Supplier draws pieces from a Source. The Source is owned by the caller and
// is never reseeded here, so resetting a session continues the same stream.
type Supplier struct {
	rng  Source
	next shape.Definition
	held *shape.Definition
}

// New creates a Supplier and fills its lookahead.
func New(rng Source) *Supplier {
	s := &Supplier{rng: rng}
	s.next = s.draw()
	return s
}

func (s *Supplier) draw() shape.Definition {
	return shape.Get(shape.Kind(s.rng.IntN(shape.Count)))
}

// Next returns the lookahead piece and refills the lookahead.
func (s *Supplier) Next() shape.Definition {
	d := s.next
	s.next = s.draw()
	return d
}

// Peek returns the lookahead piece without consuming it.
func (s *Supplier) Peek() shape.Definition {
	return s.next
}

// Held returns the piece in the hold slot, if any.
func (s *Supplier) Held() (shape.Definition, bool) {
	if s.held == nil {
		return shape.Definition{}, false
	}
	return *s.held, true
}

// Incoming returns the piece HoldSwap would hand back: the held piece, or
// the lookahead piece when the hold slot is empty.
func (s *Supplier) Incoming() shape.Definition {
	if s.held != nil {
		return *s.held
	}
	return s.next
}

// HoldSwap puts current into the hold slot and returns the piece that takes
// its place. With an empty slot the lookahead piece is promoted and the
// lookahead is refilled.
func (s *Supplier) HoldSwap(current shape.Definition) shape.Definition {
	if s.held == nil {
		s.held = &current
		return s.Next()
	}
	out := *s.held
	s.held = &current
	return out
}

// Reset empties the hold slot and draws a fresh lookahead piece.
func (s *Supplier) Reset() {
	s.held = nil
	s.next = s.draw()
}
