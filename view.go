package main

import (
	"fmt"
	"strings"

	"go-tetris/internal/game"
	"go-tetris/internal/playfield"
	"go-tetris/internal/shape"
	"go-tetris/internal/state"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const cellWidth = 2

var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	boldStyle   = lipgloss.NewStyle().Bold(true)
	ghostStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	boardBorder = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 0)
	sideStyle   = lipgloss.NewStyle().Padding(0, 2)
)

// cellColors maps piece colors to terminal colors.
var cellColors = map[playfield.Cell]lipgloss.Color{
	playfield.Cell(shape.Aqua):     lipgloss.Color("14"),
	playfield.Cell(shape.Yellow):   lipgloss.Color("11"),
	playfield.Cell(shape.Purple):   lipgloss.Color("13"),
	playfield.Cell(shape.Green):    lipgloss.Color("10"),
	playfield.Cell(shape.Red):      lipgloss.Color("9"),
	playfield.Cell(shape.Orange):   lipgloss.Color("208"),
	playfield.Cell(shape.DarkBlue): lipgloss.Color("12"),
}

func block(c playfield.Cell) string {
	return lipgloss.NewStyle().Foreground(cellColors[c]).Render(strings.Repeat("█", cellWidth))
}

func (s *LocalState) RenderBoard() string {
	sess := s.Session
	rows := sess.Field()
	cur := sess.Current()
	playing := sess.State() == state.Playing

	// Overlay the ghost first so the live piece wins where they meet.
	overlay := map[[2]int]string{}
	if playing {
		ghostY := sess.GhostY()
		for _, c := range cur.Mask.Cells() {
			overlay[[2]int{cur.X + c.X, ghostY + c.Y}] = ghostStyle.Render(strings.Repeat("░", cellWidth))
		}
		for _, c := range cur.Mask.Cells() {
			overlay[[2]int{cur.X + c.X, cur.Y + c.Y}] = block(cur.Color())
		}
	}

	var b strings.Builder
	for y, row := range rows {
		for x, c := range row {
			switch {
			case overlay[[2]int{x, y}] != "":
				b.WriteString(overlay[[2]int{x, y}])
			case c != playfield.Empty:
				b.WriteString(block(c))
			default:
				b.WriteString(emptyStyle.Render(" ."))
			}
		}
		if y < len(rows)-1 {
			b.WriteByte('\n')
		}
	}
	return boardBorder.Render(b.String())
}

// renderPreview draws a shape in its canonical rotation, trimmed to its
// filled rows.
func renderPreview(def shape.Definition) string {
	_, minY, _, maxY, ok := def.Mask.Bounds()
	if !ok {
		return ""
	}
	var lines []string
	for y := minY; y <= maxY; y++ {
		var b strings.Builder
		for x := 0; x < shape.Size; x++ {
			if def.Mask[y][x] {
				b.WriteString(block(playfield.Cell(def.Color)))
			} else {
				b.WriteString(strings.Repeat(" ", cellWidth))
			}
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func (s *LocalState) renderSide() string {
	sess := s.Session
	var parts []string

	parts = append(parts,
		scoreStyle.Render("SCORE: "+humanize.Comma(int64(sess.Score()))),
		scoreStyle.Render(fmt.Sprintf("LEVEL: %d", sess.Level())),
		scoreStyle.Render("LINES: "+humanize.Comma(int64(sess.Lines()))),
		"",
		boldStyle.Render("Next block:"),
		renderPreview(sess.Next()),
	)

	if sess.Rules.HoldEnabled {
		parts = append(parts, "", boldStyle.Render("Hold:"))
		if held, ok := sess.Held(); ok {
			parts = append(parts, renderPreview(held))
		} else {
			parts = append(parts, emptyStyle.Render("(empty)"))
		}
	}

	if s.banner != "" && s.bannerLeft > 0 {
		parts = append(parts, "", greenStyle.Render(s.banner))
	} else if sess.LeveledUp() {
		parts = append(parts, "", greenStyle.Render("Level up!"))
	}

	if sess.State() == state.GameOver {
		parts = append(parts, "",
			redStyle.Render("GAME OVER !!"),
			"Press <ENTER> to play again.")
	}

	return sideStyle.Render(strings.Join(parts, "\n"))
}

func (s *LocalState) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, s.RenderBoard(), s.renderSide())
	return body + "\n" + s.help.View(s.keys)
}

func finalMessage(sess *game.Session) string {
	return fmt.Sprintf("Final score: %s (level %d, %s lines)",
		humanize.Comma(int64(sess.Score())), sess.Level(), humanize.Comma(int64(sess.Lines())))
}
