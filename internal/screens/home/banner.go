package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplay/internal/ui/theme"
)

const titleFull = ` ███╗   ███╗ █████╗ ████████╗██╗  ██╗██████╗ ██╗      █████╗ ██╗   ██╗
 ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║██╔══██╗██║     ██╔══██╗╚██╗ ██╔╝
 ██╔████╔██║███████║   ██║   ███████║██████╔╝██║     ███████║ ╚████╔╝
 ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║██╔═══╝ ██║     ██╔══██║  ╚██╔╝
 ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║██║     ███████╗██║  ██║   ██║
 ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝╚═╝     ╚══════╝╚═╝  ╚═╝   ╚═╝`

const titleCompact = "M · A · T · H · P · L · A · Y"

// titleFullWidth is the column width of titleFull.
const titleFullWidth = 70

// renderTitle returns the block-letter title, or the compact one when cw is
// too narrow for it.
func renderTitle(cw int) string {
	style := lipgloss.NewStyle().Foreground(theme.KidYellow).Bold(true)
	art := titleFull
	if cw < titleFullWidth {
		art = titleCompact
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(style.Render(art))
}

// renderStats renders the session counters in a double-bordered box.
func renderStats(streak, wins int, tier string, cw int) string {
	streakStyle := lipgloss.NewStyle().Foreground(theme.KidYellow).Bold(true)
	winStyle := lipgloss.NewStyle().Foreground(theme.KidGreen).Bold(true)
	tierStyle := lipgloss.NewStyle().Foreground(theme.KidBlue).Bold(true)

	stats := fmt.Sprintf("%s  %s  %s",
		streakStyle.Render(fmt.Sprintf("⭐ Chuỗi %d", streak)),
		winStyle.Render(fmt.Sprintf("✔ Đúng %d", wins)),
		tierStyle.Render("Độ khó: "+tier),
	)
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.KidBlue).
		Width(cw - 2).
		Align(lipgloss.Center).
		Render(stats)
}
