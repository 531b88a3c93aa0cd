package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skybird/internal/leaderboard"
)

// Leaderboard panel layout
const (
	panelWidth       = 36 // Outer width including border
	minWidthForPanel = 80 // Below this the panel is hidden
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// rankLabel shows a medal for the top three and the position otherwise.
func rankLabel(i int) string {
	if m := leaderboard.Medal(i); m != "" {
		return m
	}
	return fmt.Sprintf("%d.", i+1)
}

// boardRows converts entries to table rows.
func boardRows(entries []leaderboard.Entry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{rankLabel(i), e.Name, fmt.Sprintf("%d", e.Score), e.Date}
	}
	return rows
}

// newBoardTable creates the leaderboard table sized for the panel.
func newBoardTable(height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: 10},
		{Title: "Score", Width: 6},
		{Title: "Date", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selectable in the panel
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// renderPanel draws the leaderboard panel with the given inner height.
func renderPanel(t table.Model, entries []leaderboard.Entry, height int) string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("HIGH SCORES"))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(emptyStyle.Render("No records yet.\nBe the first!"))
	} else {
		b.WriteString(t.View())
	}

	return panelStyle.
		Width(panelWidth - 2).
		Height(max(0, height-2)).
		Render(b.String())
}
