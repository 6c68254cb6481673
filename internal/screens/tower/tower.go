package tower

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplay/internal/catalog"
	"github.com/abhisek/mathplay/internal/difficulty"
	"github.com/abhisek/mathplay/internal/play"
	"github.com/abhisek/mathplay/internal/router"
	"github.com/abhisek/mathplay/internal/screen"
	"github.com/abhisek/mathplay/internal/screens"
	"github.com/abhisek/mathplay/internal/screens/info"
	"github.com/abhisek/mathplay/internal/ui/components"
	"github.com/abhisek/mathplay/internal/ui/layout"
	"github.com/abhisek/mathplay/internal/ui/theme"
)

type keyMap struct {
	Pop   key.Binding
	Reset key.Binding
	Next  key.Binding
	Tier  key.Binding
	Info  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Pop:   key.NewBinding(key.WithKeys("backspace", "u"), key.WithHelp("⌫", "Gỡ khối")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("R", "Xếp lại")),
		Next:  key.NewBinding(key.WithKeys("n"), key.WithHelp("N", "Tháp mới")),
		Tier:  key.NewBinding(key.WithKeys("t"), key.WithHelp("T", "Độ khó")),
		Info:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Hướng dẫn")),
	}
}

// TowerScreen plays the stacking game.
type TowerScreen struct {
	env   *screens.Env
	game  catalog.Descriptor
	keys  keyMap
	tier  difficulty.Tier
	round *play.TowerRound
	bag   components.Choices
	cheer string
	won   bool
}

var _ screen.Screen = (*TowerScreen)(nil)
var _ screen.KeyHintProvider = (*TowerScreen)(nil)

// New creates the tower screen. Each tower game starts easy.
func New(env *screens.Env, game catalog.Descriptor) *TowerScreen {
	env.Session.ResetStreak()
	s := &TowerScreen{env: env, game: game, keys: defaultKeys(), tier: env.Session.Tier()}
	s.newTower()
	return s
}

func (s *TowerScreen) newTower() {
	s.round = play.NewTowerRound(s.env.Dispatcher.GenerateTowerLevel(s.env.Rand, s.tier))
	s.cheer = ""
	s.won = false
	s.bag = components.NewChoices(nil, 0)
	s.refreshBag()
}

func (s *TowerScreen) refreshBag() {
	blocks := s.round.Level().Blocks
	tiles := make([]components.Tile, len(blocks))
	for i, b := range blocks {
		tiles[i] = components.Tile{Label: fmt.Sprintf("%s %d", strings.Repeat("▮", b), b)}
		if s.round.Used(i) {
			tiles[i].Mark = components.MarkPicked
		}
	}
	s.bag.Tiles = tiles
	s.bag.Columns = 4
}

func (s *TowerScreen) Init() tea.Cmd { return nil }
func (s *TowerScreen) Title() string { return s.game.Icon + " " + s.game.Name }

// Round exposes the tower in play.
func (s *TowerScreen) Round() *play.TowerRound { return s.round }

// Tier is the difficulty of the current tower.
func (s *TowerScreen) Tier() difficulty.Tier { return s.tier }

func (s *TowerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screens.CheerMsg:
		s.cheer = msg.Phrase
		return s, nil

	case components.PickedMsg:
		if s.won || !s.round.Push(msg.Index) {
			return s, nil
		}
		s.refreshBag()
		return s, s.checkWin()

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, s.keys.Info):
			return s, router.Push(info.New(s.game, nil))
		case key.Matches(msg, s.keys.Next), s.won && msg.String() == "enter":
			s.newTower()
			return s, nil
		case key.Matches(msg, s.keys.Tier):
			s.tier = nextTier(s.tier)
			s.newTower()
			return s, nil
		case key.Matches(msg, s.keys.Reset):
			s.round.Reset()
			s.won = false
			s.refreshBag()
			return s, nil
		case key.Matches(msg, s.keys.Pop):
			if !s.won && s.round.Pop() {
				s.refreshBag()
			}
			return s, nil
		}
	}

	if s.won {
		return s, nil
	}
	var cmd tea.Cmd
	s.bag, cmd = s.bag.Update(msg)
	return s, cmd
}

func (s *TowerScreen) checkWin() tea.Cmd {
	if !s.round.Won() {
		return nil
	}
	s.won = true
	s.env.Session.RecordWin()
	return s.env.CheerCmd(s.game.Name)
}

func nextTier(t difficulty.Tier) difficulty.Tier {
	tiers := difficulty.AllTiers()
	for i, x := range tiers {
		if x == t {
			return tiers[(i+1)%len(tiers)]
		}
	}
	return difficulty.Easy
}

func (s *TowerScreen) KeyHints() []layout.KeyHint {
	hints := layout.HintsFor(s.bag.Keys.Pick, s.keys.Pop, s.keys.Reset, s.keys.Next, s.keys.Tier, s.keys.Info)
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Thoát"})
}

func (s *TowerScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	lvl := s.round.Level()

	header := theme.Question.Render(fmt.Sprintf("Xây tháp cao đúng %d tầng!", lvl.Target)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("   "+s.tier.DisplayName())

	stack := s.renderStack(lvl.Target, max(height-16, 4))
	bar := components.NewProgressBar("Chiều cao", s.round.Height(), lvl.Target, min(cw, 50))

	statusStyle := theme.Picked
	switch s.round.State() {
	case play.TowerOverload:
		statusStyle = theme.Incorrect
	case play.TowerExact:
		statusStyle = theme.Correct
	}
	status := components.Banner(s.round.Status(), statusStyle, cw)
	if s.won && s.cheer != "" {
		status += "\n" + components.Banner(s.cheer, theme.Correct, cw)
	}

	sections := []string{
		components.Card(header, cw),
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(stack),
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(bar.View()),
		status,
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(s.bag.View()),
	}
	return layout.Center(strings.Join(sections, "\n\n"), width, height)
}

// renderStack draws stacked blocks top first, one row per block.
func (s *TowerScreen) renderStack(target, maxRows int) string {
	blocks := s.round.Stack()
	if len(blocks) == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("(chưa có khối nào)")
	}

	colors := []string{"#FF6B6B", "#FFD93D", "#6BCB77", "#4D96FF", "#A66CFF", "#FF8E3C"}
	rows := make([]string, 0, len(blocks))
	for i := len(blocks) - 1; i >= 0 && len(rows) < maxRows; i-- {
		b := blocks[i]
		style := lipgloss.NewStyle().Background(lipgloss.Color(colors[i%len(colors)])).Foreground(theme.BgDark)
		rows = append(rows, style.Render(fmt.Sprintf(" %-*d", b*2, b)))
	}
	if s.round.Height() > target {
		rows = append([]string{theme.Incorrect.Render("⚠")}, rows...)
	}
	return strings.Join(rows, "\n")
}
