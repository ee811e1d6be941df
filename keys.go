package main

import (
	"go-tetris/internal/game"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	RotateCW  key.Binding
	RotateCCW key.Binding
	Drop      key.Binding
	Hold      key.Binding
	Reset     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap(holdEnabled bool) keyMap {
	k := keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		RotateCW: key.NewBinding(
			key.WithKeys("up", "x", "d"),
			key.WithHelp("↑/x", "rotate"),
		),
		RotateCCW: key.NewBinding(
			key.WithKeys("z", "a"),
			key.WithHelp("z", "rotate back"),
		),
		Drop: key.NewBinding(
			key.WithKeys(" ", "down", "j"),
			key.WithHelp("space", "drop"),
		),
		Hold: key.NewBinding(
			key.WithKeys("c", "shift+tab"),
			key.WithHelp("c", "hold"),
		),
		Reset: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter", "play again"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	k.Hold.SetEnabled(holdEnabled)
	return k
}

// ShortHelp is shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.RotateCW, k.Drop, k.Help, k.Quit}
}

// FullHelp is shown when help is expanded.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Drop},
		{k.RotateCW, k.RotateCCW, k.Hold},
		{k.Reset, k.Help, k.Quit},
	}
}

// command maps a key press to a session command.
func (k keyMap) command(msg tea.KeyMsg) (game.Command, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return game.MoveLeft, true
	case key.Matches(msg, k.Right):
		return game.MoveRight, true
	case key.Matches(msg, k.RotateCW):
		return game.RotateCW, true
	case key.Matches(msg, k.RotateCCW):
		return game.RotateCCW, true
	case key.Matches(msg, k.Drop):
		return game.HardDrop, true
	case key.Matches(msg, k.Hold):
		return game.Hold, true
	case key.Matches(msg, k.Reset):
		return game.ResetIfGameOver, true
	}
	return 0, false
}
