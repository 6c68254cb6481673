package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplay/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all sections of a
// screen so that boxes line up.
func ContentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 72)
}

// CabinetFrame wraps content in a double-border frame, centred in the
// given dimensions.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(max(cw-2, 0)).
		Align(lipgloss.Center).
		Padding(0, 2).
		Render(content)
}

// Banner renders a one-line coloured message centred at width cw.
func Banner(text string, style lipgloss.Style, cw int) string {
	return style.Width(cw).Align(lipgloss.Center).Render(text)
}
