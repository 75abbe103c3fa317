package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-tui/internal/config"
)

// LevelsTable renders the difficulty table as a static bubbles table.
func LevelsTable(cfg config.FlappyConfig) string {
	columns := []table.Column{
		{Title: "Level", Width: 6},
		{Title: "Name", Width: 16},
		{Title: "Score", Width: 7},
		{Title: "Gap", Width: 6},
		{Title: "Speed", Width: 6},
		{Title: "Spawn", Width: 8},
		{Title: "Gravity", Width: 8},
	}

	rows := make([]table.Row, 0, cfg.MaxLevel())
	for level := 1; level <= cfg.MaxLevel(); level++ {
		p := cfg.Profile(level)
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", level),
			p.Name,
			fmt.Sprintf("%d+", (level-1)*cfg.Scoring.PointsPerLevel),
			fmt.Sprintf("%.0f", p.Gap),
			fmt.Sprintf("%.1f", p.Speed),
			p.SpawnInterval.String(),
			fmt.Sprintf("%.2f", p.Gravity),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+3), // Header and its border take two lines
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// No row is highlighted in a static listing
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	var b strings.Builder
	b.WriteString(titleStyle.Render("DIFFICULTY LEVELS"))
	b.WriteString("\n")
	b.WriteString(t.View())
	b.WriteString("\n")
	return b.String()
}
