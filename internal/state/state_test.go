package state

import (
	"context"
	"testing"
)

func TestMachine_StartsPlaying(t *testing.T) {
	m := NewMachine(Hooks{})
	if m.Current() != Playing {
		t.Errorf("expected %s, got %s", Playing, m.Current())
	}
	if !m.Is(Playing) || m.Is(GameOver) {
		t.Error("Is() disagrees with Current()")
	}
}

func TestMachine_TopOutAndReset(t *testing.T) {
	ctx := context.Background()
	var overCalls, resetCalls int
	m := NewMachine(Hooks{
		OnGameOver: func() { overCalls++ },
		OnReset:    func() { resetCalls++ },
	})

	if !m.TopOut(ctx) {
		t.Fatal("expected topOut to move Playing to GameOver")
	}
	if m.Current() != GameOver {
		t.Errorf("expected %s, got %s", GameOver, m.Current())
	}
	if overCalls != 1 {
		t.Errorf("expected game over hook once, got %d", overCalls)
	}

	if !m.Reset(ctx) {
		t.Fatal("expected reset to move GameOver to Playing")
	}
	if m.Current() != Playing {
		t.Errorf("expected %s, got %s", Playing, m.Current())
	}
	if resetCalls != 1 {
		t.Errorf("expected reset hook once, got %d", resetCalls)
	}
}

func TestMachine_InvalidEventsAreNoOps(t *testing.T) {
	ctx := context.Background()
	var resetCalls, overCalls int
	m := NewMachine(Hooks{
		OnGameOver: func() { overCalls++ },
		OnReset:    func() { resetCalls++ },
	})

	tests := []struct {
		name  string
		fire  func() bool
		state GameState
	}{
		{"reset while playing", func() bool { return m.Reset(ctx) }, Playing},
		{"top out", func() bool { return m.TopOut(ctx) }, GameOver},
		{"top out while over", func() bool { return m.TopOut(ctx) }, GameOver},
	}

	expectFired := []bool{false, true, false}
	for i, tt := range tests {
		if got := tt.fire(); got != expectFired[i] {
			t.Errorf("%s: fired=%v, expected %v", tt.name, got, expectFired[i])
		}
		if m.Current() != tt.state {
			t.Errorf("%s: expected state %s, got %s", tt.name, tt.state, m.Current())
		}
	}

	if resetCalls != 0 {
		t.Errorf("reset hook should not run for a rejected reset, ran %d times", resetCalls)
	}
	if overCalls != 1 {
		t.Errorf("game over hook should run once, ran %d times", overCalls)
	}
}
