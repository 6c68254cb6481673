package info

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplay/internal/catalog"
	"github.com/abhisek/mathplay/internal/router"
	"github.com/abhisek/mathplay/internal/screen"
	"github.com/abhisek/mathplay/internal/ui/layout"
	"github.com/abhisek/mathplay/internal/ui/theme"
)

// InfoScreen shows how a game is played.
type InfoScreen struct {
	game    catalog.Descriptor
	start   func() screen.Screen // nil when opened from inside the game
	playKey key.Binding
}

var _ screen.Screen = (*InfoScreen)(nil)
var _ screen.KeyHintProvider = (*InfoScreen)(nil)

// New creates an info panel for game. When start is non-nil, Enter replaces
// the panel with the screen it returns.
func New(game catalog.Descriptor, start func() screen.Screen) *InfoScreen {
	return &InfoScreen{
		game:    game,
		start:   start,
		playKey: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Chơi ngay")),
	}
}

func (s *InfoScreen) Init() tea.Cmd { return nil }
func (s *InfoScreen) Title() string { return "Hướng dẫn" }

func (s *InfoScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && s.start != nil && key.Matches(kmsg, s.playKey) {
		return s, router.Replace(s.start())
	}
	return s, nil
}

func (s *InfoScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Esc", Description: "Quay lại"}}
	if s.start != nil {
		hints = append(layout.HintsFor(s.playKey), hints...)
	}
	return hints
}

func (s *InfoScreen) View(width, height int) string {
	g := s.game
	cw := min(width-8, 64)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.KidYellow).
		Bold(true).
		Render(fmt.Sprintf("%s  %s", g.Icon, g.Name)))
	b.WriteString("\n")
	b.WriteString(theme.GradeColor(g.Grade).Render(fmt.Sprintf("Lớp %d", g.Grade)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(" · " + g.Category.DisplayName()))
	b.WriteString("\n\n")

	section := func(label, text string) {
		if text == "" {
			return
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(label))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(text))
		b.WriteString("\n\n")
	}
	section("Luật chơi", g.Rules)
	section("Mục tiêu", g.Goal)
	section("Ví dụ", g.Example)
	section("Cấp độ", g.Leveling)

	return layout.Center(theme.Panel.Render(strings.TrimRight(b.String(), "\n")), width, height)
}
