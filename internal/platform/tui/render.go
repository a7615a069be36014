package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilemerge/internal/core"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208")).
			MarginBottom(1)

	boardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// RenderScreen converts the board screen to a styled string.
// The whole buffer shares one style; game over switches it to the alert color.
func RenderScreen(s *core.Screen, gameOver bool) string {
	if gameOver {
		return gameOverStyle.Render(s.String())
	}
	return boardStyle.Render(s.String())
}
