package home

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathplay/internal/catalog"
	"github.com/abhisek/mathplay/internal/router"
	"github.com/abhisek/mathplay/internal/screen"
	"github.com/abhisek/mathplay/internal/screens"
	"github.com/abhisek/mathplay/internal/screens/info"
	"github.com/abhisek/mathplay/internal/screens/minigame"
	"github.com/abhisek/mathplay/internal/screens/tower"
	"github.com/abhisek/mathplay/internal/ui/components"
	"github.com/abhisek/mathplay/internal/ui/layout"
	"github.com/abhisek/mathplay/internal/ui/theme"
)

type keyMap struct {
	Info key.Binding
	Quit key.Binding
}

// HomeScreen lists every game grouped by grade.
type HomeScreen struct {
	env   *screens.Env
	menu  components.Menu
	games []catalog.Descriptor // parallel to menu.Items, zero for headers
	keys  keyMap
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *screens.Env) *HomeScreen {
	h := &HomeScreen{
		env: env,
		keys: keyMap{
			Info: key.NewBinding(key.WithKeys("?", "i"), key.WithHelp("?", "Hướng dẫn")),
			Quit: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Thoát")),
		},
	}

	var items []components.MenuItem
	for _, grade := range catalog.Grades() {
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("Lớp %d", grade),
			Header: true,
			Style:  theme.GradeColor(grade),
		})
		h.games = append(h.games, catalog.Descriptor{})

		for _, g := range catalog.ByGrade(grade) {
			items = append(items, components.MenuItem{
				Label:  g.Icon + " " + g.Name,
				Action: func() tea.Cmd { return router.Push(h.start(g)) },
			})
			h.games = append(h.games, g)
		}
	}
	h.menu = components.NewMenu(items)
	return h
}

// start builds the play screen for a game.
func (h *HomeScreen) start(g catalog.Descriptor) screen.Screen {
	if g.IsTower() {
		return tower.New(h.env, g)
	}
	return minigame.New(h.env, g)
}

// Selected returns the highlighted game.
func (h *HomeScreen) Selected() (catalog.Descriptor, bool) {
	i := h.menu.Selected
	if i < 0 || i >= len(h.games) || h.menu.Items[i].Header {
		return catalog.Descriptor{}, false
	}
	return h.games[i], true
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(kmsg, h.keys.Quit):
			return h, tea.Quit
		case key.Matches(kmsg, h.keys.Info):
			g, ok := h.Selected()
			if !ok {
				return h, nil
			}
			return h, router.Push(info.New(g, func() screen.Screen { return h.start(g) }))
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFor(h.menu.Keys.Up, h.menu.Keys.Select, h.keys.Info, h.keys.Quit)
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height+8)
	cw := components.ContentWidth(width)

	var sections []string
	used := 0

	title := renderTitle(cw)
	sections = append(sections, title)
	used += strings.Count(title, "\n") + 2

	if !compact {
		mascot := RenderMascot(MascotFor(h.env.Session.Streak(), h.env.Dispatcher.Policy().StreakThreshold))
		sections = append(sections, components.Banner(mascot, theme.Body, cw))
		used += strings.Count(mascot, "\n") + 2
	}

	stats := renderStats(h.env.Session.Streak(), h.env.Session.Wins(), h.env.Session.Tier().DisplayName(), cw)
	sections = append(sections, stats)
	used += strings.Count(stats, "\n") + 2

	if g, ok := h.Selected(); ok && !compact {
		goal := theme.Hint.Width(cw).Render(g.Goal)
		sections = append(sections, goal)
		used += strings.Count(goal, "\n") + 2
	}

	// Whatever is left goes to the game list, never fewer than five rows.
	rows := max(height-used-2, 5)
	sections = append(sections, components.Card(h.menu.View(rows), cw))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Trang chủ"
}
