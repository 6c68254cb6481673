package tower

import (
	"io"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/abhisek/mathplay/internal/catalog"
	"github.com/abhisek/mathplay/internal/difficulty"
	"github.com/abhisek/mathplay/internal/encourage"
	"github.com/abhisek/mathplay/internal/play"
	"github.com/abhisek/mathplay/internal/problemgen"
	"github.com/abhisek/mathplay/internal/screens"
	"github.com/abhisek/mathplay/internal/ui/components"
)

func testScreen(t *testing.T) (*TowerScreen, *screens.Env) {
	t.Helper()
	logger := log.New(io.Discard)
	rng := problemgen.NewRand(21)
	env := &screens.Env{
		Dispatcher: catalog.NewDispatcher(difficulty.DefaultPolicy(), logger),
		Cheer:      encourage.NewCheerleader(nil, encourage.DefaultCheerConfig(), rng, logger),
		Session:    play.NewSession(difficulty.DefaultPolicy()),
		Rand:       rng,
	}
	game, err := catalog.Get(catalog.TowerBuilderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return New(env, game), env
}

// stackSolution pushes the generated solution blocks through PickedMsg.
func stackSolution(t *testing.T, s *TowerScreen) tea.Cmd {
	t.Helper()
	lvl := s.Round().Level()
	used := make([]bool, len(lvl.Blocks))
	var cmd tea.Cmd
	for _, want := range lvl.Solution {
		for i, b := range lvl.Blocks {
			if !used[i] && b == want {
				used[i] = true
				_, cmd = s.Update(components.PickedMsg{Index: i})
				break
			}
		}
	}
	return cmd
}

func TestTowerScreen_StartsEasy(t *testing.T) {
	s, _ := testScreen(t)
	if s.Tier() != difficulty.Easy {
		t.Errorf("tier = %s, want easy", s.Tier())
	}
	target := s.Round().Level().Target
	if target < 5 || target > 10 {
		t.Errorf("easy target %d outside [5,10]", target)
	}
}

func TestTowerScreen_StreakFromOtherGameIgnored(t *testing.T) {
	_, env := testScreen(t)
	for range 6 {
		env.Session.RecordWin()
	}
	game, err := catalog.Get(catalog.TowerBuilderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := New(env, game)
	if s.Tier() != difficulty.Easy {
		t.Errorf("tier = %s, want easy", s.Tier())
	}
	if env.Session.Streak() != 0 || env.Session.Wins() != 6 {
		t.Errorf("streak=%d wins=%d, want 0/6", env.Session.Streak(), env.Session.Wins())
	}
}

func TestTowerScreen_StackSolutionWins(t *testing.T) {
	s, env := testScreen(t)
	cmd := stackSolution(t, s)
	if !s.Round().Won() {
		t.Fatalf("height %d, target %d", s.Round().Height(), s.Round().Level().Target)
	}
	if cmd == nil {
		t.Fatal("win should request a cheer")
	}
	if env.Session.Streak() != 1 {
		t.Errorf("streak = %d, want 1", env.Session.Streak())
	}
	s.Update(cmd())
	if s.cheer == "" {
		t.Error("cheer should be set")
	}
	if s.View(90, 40) == "" {
		t.Error("expected non-empty view")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.Round().Height() != 0 || s.won {
		t.Error("enter after a win should start a new tower")
	}
}

func TestTowerScreen_PopAndReset(t *testing.T) {
	s, _ := testScreen(t)
	s.round = play.NewTowerRound(problemgen.TowerLevel{Target: 10, Blocks: []int{1, 2, 3}})
	s.refreshBag()
	s.Update(components.PickedMsg{Index: 0})
	s.Update(components.PickedMsg{Index: 1})
	h := s.Round().Height()
	if h != 3 {
		t.Fatalf("height = %d, want 3", h)
	}

	s.Update(tea.KeyPressMsg{Code: 'u', Text: "u"})
	if s.Round().Height() >= h {
		t.Error("u should pop the top block")
	}
	s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if s.Round().Height() != 0 {
		t.Error("r should clear the tower")
	}
}

func TestTowerScreen_TierCycles(t *testing.T) {
	s, _ := testScreen(t)
	s.Update(tea.KeyPressMsg{Code: 't', Text: "t"})
	if s.Tier() != difficulty.Medium {
		t.Fatalf("tier = %s, want medium", s.Tier())
	}
	target := s.Round().Level().Target
	if target < 11 || target > 20 {
		t.Errorf("medium target %d outside [11,20]", target)
	}
	s.Update(tea.KeyPressMsg{Code: 't', Text: "t"})
	s.Update(tea.KeyPressMsg{Code: 't', Text: "t"})
	if s.Tier() != difficulty.Easy {
		t.Errorf("tier should wrap to easy, got %s", s.Tier())
	}
}

func TestTowerScreen_DigitPushes(t *testing.T) {
	s, _ := testScreen(t)
	_, cmd := s.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	if cmd == nil {
		t.Fatal("digit should pick a block")
	}
	s.Update(cmd())
	if !s.Round().Used(0) {
		t.Error("block 0 should be stacked")
	}
}
