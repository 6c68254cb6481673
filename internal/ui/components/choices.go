package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplay/internal/ui/theme"
)

// Mark is the feedback state of one tile.
type Mark int

const (
	MarkNone Mark = iota
	MarkPicked
	MarkCorrect
	MarkWrong
)

// PickedMsg is emitted when the player picks a tile.
type PickedMsg struct {
	Index int
}

// Tile is one option of a Choices grid.
type Tile struct {
	Label string
	Color string // optional hex foreground
	Mark  Mark
}

// ChoiceKeys are the bindings Choices reacts to. Digits 1-9 pick directly.
type ChoiceKeys struct {
	Prev key.Binding
	Next key.Binding
	Pick key.Binding
}

// DefaultChoiceKeys returns arrow/vi navigation with enter to pick.
func DefaultChoiceKeys() ChoiceKeys {
	return ChoiceKeys{
		Prev: key.NewBinding(key.WithKeys("left", "up", "h", "k"), key.WithHelp("←→", "Chọn")),
		Next: key.NewBinding(key.WithKeys("right", "down", "l", "j")),
		Pick: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter/1-9", "Trả lời")),
	}
}

// Choices is a row or grid of numbered option tiles.
type Choices struct {
	Tiles   []Tile
	Cursor  int
	Columns int // 0 lays every tile on one row
	Keys    ChoiceKeys
}

// NewChoices creates a picker over tiles.
func NewChoices(tiles []Tile, columns int) Choices {
	return Choices{Tiles: tiles, Columns: columns, Keys: DefaultChoiceKeys()}
}

// Update moves the cursor and emits PickedMsg on a pick.
func (c Choices) Update(msg tea.Msg) (Choices, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(c.Tiles) == 0 {
		return c, nil
	}

	if s := kmsg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		if i := int(s[0] - '1'); i < len(c.Tiles) {
			c.Cursor = i
			return c, pick(i)
		}
		return c, nil
	}

	switch {
	case key.Matches(kmsg, c.Keys.Prev):
		c.Cursor = (c.Cursor - 1 + len(c.Tiles)) % len(c.Tiles)
	case key.Matches(kmsg, c.Keys.Next):
		c.Cursor = (c.Cursor + 1) % len(c.Tiles)
	case key.Matches(kmsg, c.Keys.Pick):
		return c, pick(c.Cursor)
	}
	return c, nil
}

func pick(i int) tea.Cmd {
	return func() tea.Msg { return PickedMsg{Index: i} }
}

// View renders the tiles, wrapping rows at Columns.
func (c Choices) View() string {
	tiles := make([]string, len(c.Tiles))
	for i, t := range c.Tiles {
		tiles[i] = c.renderTile(i, t)
	}

	cols := c.Columns
	if cols <= 0 {
		cols = len(tiles)
	}
	var rows []string
	for start := 0; start < len(tiles); start += cols {
		end := min(start+cols, len(tiles))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles[start:end]...))
	}
	return strings.Join(rows, "\n")
}

func (c Choices) renderTile(i int, t Tile) string {
	border := theme.Border
	label := lipgloss.NewStyle().Foreground(theme.Text)
	if t.Color != "" {
		label = label.Foreground(lipgloss.Color(t.Color))
	}

	switch t.Mark {
	case MarkPicked:
		border = theme.KidBlue
		label = label.Bold(true)
	case MarkCorrect:
		border = theme.Success
		label = theme.Correct
	case MarkWrong:
		border = theme.Error
		label = theme.Incorrect.Strikethrough(true)
	}
	if i == c.Cursor {
		border = theme.KidYellow
	}

	number := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d", i+1))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		MarginRight(1).
		Render(number + " " + label.Render(t.Label))
}
