package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplay/internal/ui/theme"
)

// ProgressBar shows a running total against a target. Overshooting turns
// the bar red.
type ProgressBar struct {
	Label  string
	Value  int
	Target int
	Width  int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, value, target, width int) ProgressBar {
	return ProgressBar{Label: label, Value: value, Target: target, Width: width}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string
	if p.Label != "" {
		result += theme.Body.Render(p.Label) + "  "
	}

	counter := fmt.Sprintf("  %d/%d", p.Value, p.Target)
	barWidth := max(p.Width-lipgloss.Width(result)-len(counter), 4)

	filled := barWidth
	if p.Target > 0 && p.Value < p.Target {
		filled = barWidth * max(p.Value, 0) / p.Target
	}

	fill := theme.ProgressFilled
	if p.Value > p.Target {
		fill = theme.ProgressOver
	}
	result += fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	return result + lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)
}
