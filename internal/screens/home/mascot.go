package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplay/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default purple
	MascotHappy                            // Green, after the first win
	MascotCelebrating                      // Gold, star eyes on a hot streak
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ +−× │
└─────┘`

const mascotHappy = `┌─────┐
│ ^ ^ │
│  ▽  │
│ +−× │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ +−× │
└─╥═╥─┘
  ╚═╝`

// MascotFor picks the variant for the current streak.
func MascotFor(streak, celebrateAt int) MascotVariant {
	switch {
	case streak > celebrateAt:
		return MascotCelebrating
	case streak > 0:
		return MascotHappy
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.KidYellow
	case MascotHappy:
		art = mascotHappy
		fg = theme.KidGreen
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
