package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tracker/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#33cf69")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff881e"))
)

func trackerName(t models.Tracker) string {
	if t.Color == "" {
		return t.Name
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color)).Render(t.Name)
}

func checkbox(done bool) string {
	if done {
		return doneStyle.Render("[x]")
	}
	return "[ ]"
}
