package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skybird/internal/core"
)

// maxNameLength caps the name typed in the game over dialog.
const maxNameLength = 12

var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("208")).
			Padding(1, 3).
			Align(lipgloss.Center)

	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	modalScoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	modalErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// nameModal is the game over dialog asking for a name.
type nameModal struct {
	input textinput.Model
	open  bool
	score int
	err   string
}

func newNameModal() nameModal {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = maxNameLength
	ti.Width = maxNameLength + 1
	ti.Prompt = "> "
	return nameModal{input: ti}
}

// openFor shows the dialog for a final score.
func (n *nameModal) openFor(score int, name string) {
	n.open = true
	n.score = score
	n.err = ""
	n.input.SetValue(name)
	n.input.CursorEnd()
	n.input.Focus()
}

func (n *nameModal) close() {
	n.open = false
	n.err = ""
	n.input.Blur()
	n.input.Reset()
}

// View renders the dialog box.
func (n nameModal) View() string {
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render("GAME OVER"))
	b.WriteString("\n\n")
	b.WriteString("Final score: ")
	b.WriteString(modalScoreStyle.Render(fmt.Sprintf("%d", n.score)))
	b.WriteString("\n\n")
	b.WriteString(n.input.View())
	b.WriteString("\n")
	if n.err != "" {
		b.WriteString(modalErrStyle.Render(n.err))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter save  esc skip, then space to play again"))
	return modalStyle.Render(b.String())
}

// instructions shown before the first run.
var instructions = []string{
	"S K Y B I R D",
	"",
	"Hold SPACE to climb, release to fall.",
	"Dodge clouds, hawks, flocks and lightning.",
	"Stay clear of the spikes below.",
	"",
	"Press SPACE to start",
}

// drawInstructions draws the start overlay into the screen buffer.
func drawInstructions(s *core.Screen) {
	w := 0
	for _, line := range instructions {
		w = max(w, len([]rune(line)))
	}
	w += 4
	h := len(instructions) + 2

	if s.Width() < w || s.Height() < h {
		s.DrawTextCentered(s.Height()/2, "Press SPACE to start", core.ColorBrightWhite)
		return
	}

	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2
	s.FillRect(x, y, w, h, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, h, core.ColorBrightWhite)

	for i, line := range instructions {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightYellow
		}
		s.DrawTextCentered(y+1+i, line, c)
	}
}
