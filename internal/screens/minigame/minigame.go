package minigame

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathplay/internal/catalog"
	"github.com/abhisek/mathplay/internal/play"
	"github.com/abhisek/mathplay/internal/problemgen"
	"github.com/abhisek/mathplay/internal/router"
	"github.com/abhisek/mathplay/internal/screen"
	"github.com/abhisek/mathplay/internal/screens"
	"github.com/abhisek/mathplay/internal/screens/info"
	"github.com/abhisek/mathplay/internal/ui/components"
	"github.com/abhisek/mathplay/internal/ui/layout"
)

type keyMap struct {
	Next    key.Binding
	Restart key.Binding
	Info    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("n"), key.WithHelp("N", "Câu mới")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("R", "Làm lại")),
		Info:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Hướng dẫn")),
	}
}

// MiniGameScreen plays levels of one catalog game.
type MiniGameScreen struct {
	env     *screens.Env
	game    catalog.Descriptor
	keys    keyMap
	round   *play.Round
	choices components.Choices
	cheer   string
}

var _ screen.Screen = (*MiniGameScreen)(nil)
var _ screen.KeyHintProvider = (*MiniGameScreen)(nil)

// New creates the screen and generates its first level.
func New(env *screens.Env, game catalog.Descriptor) *MiniGameScreen {
	env.Session.ResetStreak()
	s := &MiniGameScreen{env: env, game: game, keys: defaultKeys()}
	s.nextLevel()
	return s
}

func (s *MiniGameScreen) nextLevel() {
	l := s.env.Dispatcher.GenerateLevel(s.env.Rand, s.game.ID, s.env.Session.Tier())
	s.round = play.NewRound(l)
	s.cheer = ""
	s.choices = components.NewChoices(tiles(l), columns(s.game.Layout, l))
}

func (s *MiniGameScreen) Init() tea.Cmd { return nil }
func (s *MiniGameScreen) Title() string { return s.game.Icon + " " + s.game.Name }

// Round exposes the round in play.
func (s *MiniGameScreen) Round() *play.Round { return s.round }

func (s *MiniGameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screens.CheerMsg:
		s.cheer = msg.Phrase
		return s, nil

	case components.PickedMsg:
		return s, s.pick(msg.Index)

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, s.keys.Info):
			return s, router.Push(info.New(s.game, nil))
		case key.Matches(msg, s.keys.Next):
			s.nextLevel()
			return s, nil
		case key.Matches(msg, s.keys.Restart):
			s.round.Reset()
			s.cheer = ""
			s.choices = components.NewChoices(tiles(s.round.Level()), s.choices.Columns)
			return s, nil
		case s.round.Won() && msg.String() == "enter":
			s.nextLevel()
			return s, nil
		}
	}

	if s.round.Won() {
		return s, nil
	}
	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	return s, cmd
}

func (s *MiniGameScreen) pick(i int) tea.Cmd {
	l := s.round.Level()
	if i < 0 || i >= len(l.Options) {
		return nil
	}
	opt := l.Options[i]

	var outcome play.Outcome
	if l.Mode == problemgen.ModeCollection {
		outcome = s.round.Toggle(opt.ID)
		for j, o := range l.Options {
			s.choices.Tiles[j].Mark = components.MarkNone
			if s.round.Selected(o.ID) {
				s.choices.Tiles[j].Mark = components.MarkPicked
			}
		}
	} else {
		outcome = s.round.Choose(opt.ID)
	}

	switch outcome {
	case play.Won:
		for j := range s.choices.Tiles {
			if l.Options[j].IsCorrect || s.round.Selected(l.Options[j].ID) {
				s.choices.Tiles[j].Mark = components.MarkCorrect
			}
		}
		s.env.Session.RecordWin()
		return s.env.CheerCmd(s.game.Name)
	case play.Wrong:
		s.choices.Tiles[i].Mark = components.MarkWrong
		s.env.Session.RecordMiss()
	}
	return nil
}

func (s *MiniGameScreen) KeyHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if !s.round.Won() {
		hints = layout.HintsFor(s.choices.Keys.Prev, s.choices.Keys.Pick)
	}
	hints = append(hints, layout.HintsFor(s.keys.Next, s.keys.Restart, s.keys.Info)...)
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Thoát"})
}

// tiles turns level options into picker tiles.
func tiles(l problemgen.Level) []components.Tile {
	out := make([]components.Tile, len(l.Options))
	for i, o := range l.Options {
		label := o.Value.String()
		if o.Content != "" {
			label = o.Content + " " + label
		}
		out[i] = components.Tile{Label: label, Color: o.Style}
	}
	return out
}

func columns(lay catalog.Layout, l problemgen.Level) int {
	switch lay {
	case catalog.LayoutStack:
		return 1
	case catalog.LayoutGrid:
		if len(l.Options) <= 4 {
			return 2
		}
		return 3
	default:
		return 0
	}
}
