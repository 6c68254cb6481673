package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathplay/internal/ui/layout"
)

// Screen is one page of the player: the game list, a mini-game, the tower
// or an info panel.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface for screens that show their own
// footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
