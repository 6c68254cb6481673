package minigame

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplay/internal/problemgen"
	"github.com/abhisek/mathplay/internal/ui/components"
	"github.com/abhisek/mathplay/internal/ui/layout"
	"github.com/abhisek/mathplay/internal/ui/theme"
)

var themeIcons = map[string]string{
	"underwater": "🌊",
	"farm":       "🌾",
	"forest":     "🌲",
	"river":      "🏞️",
	"shop":       "🏪",
	"island":     "🏝️",
	"mountain":   "⛰️",
	"maze":       "🧱",
}

func (s *MiniGameScreen) View(width, height int) string {
	l := s.round.Level()
	cw := components.ContentWidth(width)

	var sections []string

	question := l.Question
	if icon, ok := themeIcons[l.BackgroundTheme]; ok {
		question = icon + "  " + question
	}
	sections = append(sections, components.Card(theme.Question.Render(question), cw))

	if l.Hint != "" {
		sections = append(sections, components.Banner("💡 "+l.Hint, theme.Hint, cw))
	}

	sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(s.choices.View()))

	if l.Mode == problemgen.ModeCollection {
		bar := components.NewProgressBar("Đã chọn", s.round.Sum(), l.Target, min(cw, 50))
		sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(bar.View()))
	}

	sections = append(sections, s.statusLine(cw))

	return layout.Center(strings.Join(sections, "\n\n"), width, height)
}

func (s *MiniGameScreen) statusLine(cw int) string {
	switch {
	case s.round.Won():
		cheer := s.cheer
		if cheer == "" {
			cheer = "🎉"
		}
		return components.Banner(cheer, theme.Correct, cw) + "\n" +
			components.Banner("Nhấn Enter hoặc N để chơi tiếp", theme.Hint, cw)
	case s.round.Status() == "":
		return ""
	case s.round.Level().Mode == problemgen.ModeSingleChoice:
		return components.Banner(s.round.Status(), theme.Incorrect, cw)
	default:
		return components.Banner(s.round.Status(), theme.Picked, cw)
	}
}
