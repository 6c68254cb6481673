package minigame

import (
	"io"
	"slices"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/abhisek/mathplay/internal/catalog"
	"github.com/abhisek/mathplay/internal/difficulty"
	"github.com/abhisek/mathplay/internal/encourage"
	"github.com/abhisek/mathplay/internal/play"
	"github.com/abhisek/mathplay/internal/problemgen"
	"github.com/abhisek/mathplay/internal/router"
	"github.com/abhisek/mathplay/internal/screens"
	"github.com/abhisek/mathplay/internal/ui/components"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testEnv() *screens.Env {
	logger := log.New(io.Discard)
	rng := problemgen.NewRand(11)
	return &screens.Env{
		Dispatcher: catalog.NewDispatcher(difficulty.DefaultPolicy(), logger),
		Cheer:      encourage.NewCheerleader(nil, encourage.DefaultCheerConfig(), rng, logger),
		Session:    play.NewSession(difficulty.DefaultPolicy()),
		Rand:       rng,
	}
}

func testScreen(t *testing.T, gameID string) (*MiniGameScreen, *screens.Env) {
	t.Helper()
	game, err := catalog.Get(gameID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env := testEnv()
	return New(env, game), env
}

// press feeds a key and then any message its command produces.
func press(s *MiniGameScreen, msg tea.KeyPressMsg) tea.Cmd {
	_, cmd := s.Update(msg)
	if cmd == nil {
		return nil
	}
	out := cmd()
	if _, ok := out.(components.PickedMsg); ok {
		_, cmd = s.Update(out)
	}
	return cmd
}

func indexOf(l problemgen.Level, pred func(problemgen.Option) bool) int {
	return slices.IndexFunc(l.Options, pred)
}

func TestMiniGameScreen_Title(t *testing.T) {
	s, _ := testScreen(t, "gift_box")
	if s.Title() != "🎁 Đóng Hộp Quà" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestMiniGameScreen_NewGameStartsEasy(t *testing.T) {
	env := testEnv()
	for range 4 {
		env.Session.RecordWin()
	}
	if env.Session.Tier() != difficulty.Medium {
		t.Fatalf("tier before switching games = %s, want medium", env.Session.Tier())
	}
	game, err := catalog.Get("gift_box")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := New(env, game)
	if got := s.Round().Level().Tier; got != difficulty.Easy {
		t.Errorf("first level tier = %s, want easy", got)
	}
	if env.Session.Streak() != 0 || env.Session.Wins() != 4 {
		t.Errorf("streak=%d wins=%d, want 0/4", env.Session.Streak(), env.Session.Wins())
	}
}

func TestMiniGameScreen_WrongThenRight(t *testing.T) {
	s, env := testScreen(t, "gift_box")
	l := s.Round().Level()

	wrong := indexOf(l, func(o problemgen.Option) bool { return !o.IsCorrect })
	press(s, keyPress(rune('1'+wrong)))
	if s.Round().Won() {
		t.Fatal("wrong pick should not win")
	}
	if s.choices.Tiles[wrong].Mark != components.MarkWrong {
		t.Error("wrong tile should be marked")
	}
	if s.Round().Status() != play.WrongMessage {
		t.Errorf("status = %q", s.Round().Status())
	}

	right := indexOf(l, func(o problemgen.Option) bool { return o.IsCorrect })
	cmd := press(s, keyPress(rune('1'+right)))
	if !s.Round().Won() {
		t.Fatal("correct pick should win")
	}
	if env.Session.Streak() != 1 || env.Session.Misses() != 1 {
		t.Errorf("streak=%d misses=%d", env.Session.Streak(), env.Session.Misses())
	}
	if cmd == nil {
		t.Fatal("win should request a cheer")
	}
	msg, ok := cmd().(screens.CheerMsg)
	if !ok || !slices.Contains(encourage.Phrases, msg.Phrase) {
		t.Fatalf("unexpected cheer %#v", msg)
	}
	s.Update(msg)
	if s.cheer != msg.Phrase {
		t.Error("cheer should be shown")
	}
	if s.View(90, 30) == "" {
		t.Error("expected non-empty view")
	}
}

func TestMiniGameScreen_EnterAfterWinLoadsNextLevel(t *testing.T) {
	s, _ := testScreen(t, "bubble_pop")
	first := s.Round().Level()
	right := indexOf(first, func(o problemgen.Option) bool { return o.IsCorrect })
	press(s, keyPress(rune('1'+right)))

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.Round().Won() || s.Round().Level().ID == first.ID {
		t.Error("enter after a win should start a new level")
	}
}

func TestMiniGameScreen_Collection(t *testing.T) {
	s, _ := testScreen(t, "farm_harvest")
	l := s.Round().Level()
	if l.Mode != problemgen.ModeCollection {
		t.Fatalf("farm_harvest mode = %q", l.Mode)
	}

	for i, o := range l.Options {
		if o.InSolution {
			press(s, keyPress(rune('1'+i)))
		}
	}
	if !s.Round().Won() {
		t.Fatalf("selecting the solution should win (sum %d, target %d)", s.Round().Sum(), l.Target)
	}
	if s.View(100, 32) == "" {
		t.Error("expected non-empty view")
	}

	s.Update(keyPress('r'))
	if s.Round().Won() || s.Round().Sum() != 0 {
		t.Error("restart should clear the round")
	}
}

func TestMiniGameScreen_InfoKey(t *testing.T) {
	s, _ := testScreen(t, "maze_calc")
	_, cmd := s.Update(keyPress('?'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("? should push the info panel")
	}
}

func TestMiniGameScreen_KeyHints(t *testing.T) {
	s, _ := testScreen(t, "color_match")
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}
