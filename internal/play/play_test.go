package play

import (
	"testing"

	"github.com/abhisek/mathplay/internal/difficulty"
	"github.com/abhisek/mathplay/internal/problemgen"
)

func intPtr(v int) *int { return &v }

func choiceLevel() problemgen.Level {
	return problemgen.Level{
		ID:       "l1",
		Mode:     problemgen.ModeSingleChoice,
		Question: "Kết quả: 2 + 3 = ?",
		Options: []problemgen.Option{
			{ID: "5", Value: problemgen.Number(5), IsCorrect: true},
			{ID: "4", Value: problemgen.Number(4)},
			{ID: "6", Value: problemgen.Number(6)},
		},
	}
}

func collectionLevel() problemgen.Level {
	return problemgen.Level{
		ID:       "l2",
		Mode:     problemgen.ModeCollection,
		Question: "Thu hoạch đủ 5 nhé!",
		Target:   5,
		Options: []problemgen.Option{
			{ID: "a", Value: problemgen.Emoji("🥕🥕"), NumericValue: intPtr(2), InSolution: true},
			{ID: "b", Value: problemgen.Emoji("🥕🥕🥕"), NumericValue: intPtr(3), InSolution: true},
			{ID: "c", Value: problemgen.Emoji("🥕🥕🥕🥕"), NumericValue: intPtr(4)},
		},
	}
}

func TestRound_Choose(t *testing.T) {
	r := NewRound(choiceLevel())

	if got := r.Choose("4"); got != Wrong {
		t.Errorf("Choose(4) = %v, want wrong", got)
	}
	if r.Status() != WrongMessage {
		t.Errorf("Status() = %q", r.Status())
	}
	if got := r.Choose("nope"); got != Ignored {
		t.Errorf("Choose(nope) = %v, want ignored", got)
	}
	if got := r.Choose("5"); got != Won {
		t.Errorf("Choose(5) = %v, want won", got)
	}
	if !r.Won() || r.Status() != "" {
		t.Errorf("round should be won with empty status, got %q", r.Status())
	}
	if got := r.Choose("4"); got != Ignored {
		t.Errorf("moves after a win should be ignored, got %v", got)
	}
}

func TestRound_ToggleIgnoredOnChoiceLevel(t *testing.T) {
	r := NewRound(choiceLevel())
	if got := r.Toggle("5"); got != Ignored {
		t.Errorf("Toggle on choice level = %v", got)
	}
}

func TestRound_Toggle(t *testing.T) {
	r := NewRound(collectionLevel())

	steps := []struct {
		id     string
		want   Outcome
		sum    int
		status string
	}{
		{"a", Progress, 2, "Đang có 2. Còn thiếu 3 nữa."},
		{"c", TooMuch, 6, "Vượt quá rồi! Đang có 6/5."},
		{"c", Progress, 2, "Đang có 2. Còn thiếu 3 nữa."},
		{"b", Won, 5, ""},
	}
	for i, s := range steps {
		got := r.Toggle(s.id)
		if got != s.want {
			t.Fatalf("step %d: Toggle(%s) = %v, want %v", i, s.id, got, s.want)
		}
		if r.Sum() != s.sum {
			t.Errorf("step %d: Sum() = %d, want %d", i, r.Sum(), s.sum)
		}
		if r.Status() != s.status {
			t.Errorf("step %d: Status() = %q, want %q", i, r.Status(), s.status)
		}
	}
	if !r.Selected("a") || r.Selected("c") {
		t.Error("selection not tracked")
	}

	r.Reset()
	if r.Won() || r.Sum() != 0 || r.Selected("a") {
		t.Error("Reset should clear the round")
	}
}

func TestRound_ChooseIgnoredOnCollection(t *testing.T) {
	r := NewRound(collectionLevel())
	if got := r.Choose("a"); got != Ignored {
		t.Errorf("Choose on collection level = %v", got)
	}
}

func TestRound_PlaysGeneratedCollection(t *testing.T) {
	l := problemgen.Collection(problemgen.NewRand(3), problemgen.CollectionParams{PoolBound: 8})
	r := NewRound(l)
	var last Outcome
	for _, o := range l.Options {
		if o.InSolution {
			last = r.Toggle(o.ID)
		}
	}
	if last != Won {
		t.Errorf("selecting the solution should win, got %v (sum %d, target %d)", last, r.Sum(), l.Target)
	}
}

func TestTowerRound(t *testing.T) {
	r := NewTowerRound(problemgen.TowerLevel{Target: 5, Blocks: []int{2, 4, 3, 1}})

	if r.Status() != "Còn thiếu 5 tầng." {
		t.Errorf("Status() = %q", r.Status())
	}
	r.Push(0)
	if r.Push(0) {
		t.Error("pushing a used block should fail")
	}
	if r.Push(9) {
		t.Error("pushing out of range should fail")
	}
	r.Push(1)
	if r.State() != TowerOverload || r.Status() != "Cao quá rồi! Nguy hiểm!" {
		t.Errorf("state = %v, status = %q", r.State(), r.Status())
	}

	r.Pop()
	if r.Used(1) || r.Height() != 2 {
		t.Errorf("Pop should return the block, height %d", r.Height())
	}
	r.Push(2)
	if !r.Won() || r.Status() != "Chuẩn rồi!" {
		t.Errorf("expected exact tower, status %q", r.Status())
	}
	if got := r.Stack(); len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("Stack() = %v", got)
	}

	r.Reset()
	if r.Height() != 0 || r.Pop() || r.Used(0) {
		t.Error("Reset should empty the tower")
	}
}

func TestSession_Tier(t *testing.T) {
	s := NewSession(difficulty.DefaultPolicy())
	for range 3 {
		s.RecordWin()
	}
	if s.Tier() != difficulty.Easy {
		t.Errorf("streak 3 should stay easy, got %s", s.Tier())
	}
	s.RecordMiss()
	s.RecordWin()
	if s.Tier() != difficulty.Medium {
		t.Errorf("streak 4 should be medium, got %s", s.Tier())
	}
	if s.Wins() != 4 || s.Misses() != 1 || s.Streak() != 4 {
		t.Errorf("wins=%d misses=%d streak=%d", s.Wins(), s.Misses(), s.Streak())
	}
}

func TestSession_ResetStreak(t *testing.T) {
	s := NewSession(difficulty.DefaultPolicy())
	for range 4 {
		s.RecordWin()
	}
	s.RecordMiss()
	if s.Tier() != difficulty.Medium {
		t.Fatalf("streak 4 should be medium, got %s", s.Tier())
	}
	s.ResetStreak()
	if s.Tier() != difficulty.Easy || s.Streak() != 0 {
		t.Errorf("after reset: tier=%s streak=%d, want easy/0", s.Tier(), s.Streak())
	}
	if s.Wins() != 4 || s.Misses() != 1 {
		t.Errorf("totals should survive reset: wins=%d misses=%d", s.Wins(), s.Misses())
	}
}

func TestOutcome_String(t *testing.T) {
	if TooMuch.String() != "too_much" || Outcome(42).String() != "outcome(42)" {
		t.Error("unexpected Outcome strings")
	}
}
