package state

import (
	"context"
	"errors"

	"github.com/looplab/fsm"
)

// GameState is the coarse play state of a session.
type GameState string

const (
	Playing  GameState = "playing"
	GameOver GameState = "gameOver"
)

// Event names understood by the machine.
const (
	EventTopOut = "topOut"
	EventReset  = "reset"
)

// Hooks run when the machine enters a state. Either may be nil.
type Hooks struct {
	OnGameOver func()
	OnReset    func()
}

// Machine wraps the Playing/GameOver state machine.
type Machine struct {
	FSM *fsm.FSM
}

// NewMachine returns a machine in the Playing state.
func NewMachine(h Hooks) *Machine {
	return &Machine{
		FSM: fsm.NewFSM(
			string(Playing),
			getStateTransitions(),
			getStateCallbacks(h),
		),
	}
}

func (m *Machine) Current() GameState {
	return GameState(m.FSM.Current())
}

func (m *Machine) Is(s GameState) bool {
	return m.FSM.Is(string(s))
}

// TopOut moves Playing to GameOver. It reports whether the transition
// happened; it is a no-op when already over.
func (m *Machine) TopOut(ctx context.Context) bool {
	return fire(ctx, m.FSM, EventTopOut)
}

// Reset moves GameOver back to Playing. It is a no-op while Playing.
func (m *Machine) Reset(ctx context.Context) bool {
	return fire(ctx, m.FSM, EventReset)
}

// fire sends event and treats "not valid in this state" as a rejected
// command rather than an error.
func fire(ctx context.Context, f *fsm.FSM, event string) bool {
	err := f.Event(ctx, event)
	if err == nil {
		return true
	}
	var invalid fsm.InvalidEventError
	if errors.As(err, &invalid) {
		return false
	}
	// The machine has no async transitions or cancelling callbacks, so any
	// other error is a wiring bug.
	panic(err)
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: EventTopOut, Src: []string{string(Playing)}, Dst: string(GameOver)},
		{Name: EventReset, Src: []string{string(GameOver)}, Dst: string(Playing)},
	}
}

func getStateCallbacks(h Hooks) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_" + string(GameOver): func(_ context.Context, _ *fsm.Event) {
			if h.OnGameOver != nil {
				h.OnGameOver()
			}
		},
		"enter_" + string(Playing): func(_ context.Context, _ *fsm.Event) {
			if h.OnReset != nil {
				h.OnReset()
			}
		},
	}
}
