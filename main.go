package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"go-tetris/internal/config"
	"go-tetris/internal/game"
	"go-tetris/internal/logger"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const frameInterval = 33 * time.Millisecond

type LocalState struct {
	Session *game.Session
	keys    keyMap
	help    help.Model
	log     *slog.Logger

	lastTick   time.Time
	banner     string
	bannerLeft time.Duration
}

type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func initialModel(rules config.Rules, log *slog.Logger) (*LocalState, error) {
	seed := rules.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	// One generator for the whole process; resets keep drawing from it.
	rng := rand.New(rand.NewPCG(seed, seed>>32|seed<<32))

	sess, err := game.NewSession(rules, rng, log)
	if err != nil {
		return nil, err
	}
	log.Info("seeded piece stream", "seed", seed)

	return &LocalState{
		Session: sess,
		keys:    defaultKeyMap(rules.HoldEnabled),
		help:    help.New(),
		log:     log,
	}, nil
}

func (s *LocalState) Init() tea.Cmd {
	return tickCmd()
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		now := time.Time(msg)
		if !s.lastTick.IsZero() {
			elapsed := now.Sub(s.lastTick)
			s.Session.Advance(elapsed)
			s.bannerLeft -= elapsed
		}
		s.lastTick = now
		s.consumeEvents()
		return s, tickCmd()
	case tea.WindowSizeMsg:
		s.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Quit):
			return s, tea.Quit
		case key.Matches(msg, s.keys.Help):
			s.help.ShowAll = !s.help.ShowAll
			return s, nil
		}
		if cmd, ok := s.keys.command(msg); ok {
			s.Session.HandleCommand(cmd)
			s.consumeEvents()
		}
	}
	return s, nil
}

// consumeEvents turns session events into the transient banner.
func (s *LocalState) consumeEvents() {
	for _, e := range s.Session.DrainEvents() {
		switch e.Kind {
		case game.EventTetris:
			s.showBanner("TETRIS!")
		case game.EventLevelUp:
			s.showBanner(fmt.Sprintf("LEVEL %d", e.Level))
		case game.EventReset:
			s.banner, s.bannerLeft = "", 0
		}
	}
}

func (s *LocalState) showBanner(text string) {
	s.banner = text
	s.bannerLeft = 1500 * time.Millisecond
}

func main() {
	var rulesPath string
	var logPath string
	var seed uint64
	var noHold bool

	flag.StringVar(&rulesPath, "rules", "", "Load rules from a YAML file")
	flag.StringVar(&logPath, "log", "", "Write debug logs to this file")
	flag.Uint64Var(&seed, "seed", 0, "Seed for the piece stream (0 = random)")
	flag.BoolVar(&noHold, "nohold", false, "Disable the hold slot")
	flag.BoolVar(&noHold, "nh", false, "Disable the hold slot (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "       --rules=FILE    Load rules from a YAML file\n")
		fmt.Fprintf(os.Stderr, "       --seed=N        Seed for the piece stream (0 = random)\n")
		fmt.Fprintf(os.Stderr, "       --log=FILE      Write debug logs to FILE\n")
		fmt.Fprintf(os.Stderr, "   -nh, --nohold       Disable the hold slot\n")
		fmt.Fprintf(os.Stderr, "    -h, --help         Show this help message\n")
	}

	flag.Parse()

	rules := config.Default()
	if rulesPath != "" {
		var err error
		rules, err = config.Load(rulesPath)
		if err != nil {
			fmt.Printf("Error loading rules: %v\n", err)
			os.Exit(1)
		}
	}
	if seed != 0 {
		rules.Seed = seed
	}
	if noHold {
		rules.HoldEnabled = false
	}

	log := logger.Discard()
	if logPath != "" {
		l, closer, err := logger.OpenFile(logPath)
		if err != nil {
			fmt.Printf("Error opening log: %v\n", err)
			os.Exit(1)
		}
		defer closeQuietly(closer)
		log = l
	}

	model, err := initialModel(rules, log)
	if err != nil {
		fmt.Printf("Error initializing model: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error starting the program: %v\n", err)
	}

	fmt.Println(finalMessage(model.Session))
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
