package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, bright crayon colours for young players
var (
	KidYellow = lipgloss.Color("#FFD93D")
	KidOrange = lipgloss.Color("#FF8E3C")
	KidRed    = lipgloss.Color("#FF6B6B")
	KidBlue   = lipgloss.Color("#4D96FF")
	KidGreen  = lipgloss.Color("#6BCB77")
	KidPurple = lipgloss.Color("#A66CFF")
	KidCream  = lipgloss.Color("#FFF5E4")

	Primary   = KidPurple
	Secondary = KidBlue
	Accent    = KidOrange
	Success   = KidGreen
	Error     = KidRed
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// GradeColor returns the accent colour of a grade section.
func GradeColor(grade int) lipgloss.Style {
	colors := []string{"#6BCB77", "#4D96FF", "#A66CFF", "#FF8E3C", "#FF6B6B"}
	i := min(max(grade-1, 0), len(colors)-1)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i])).Bold(true)
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(KidYellow).
		Align(lipgloss.Center)

	Question = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Primary).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(KidYellow).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Picked = lipgloss.NewStyle().
		Foreground(KidBlue).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressOver = lipgloss.NewStyle().
			Background(Error)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
