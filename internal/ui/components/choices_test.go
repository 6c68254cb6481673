package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testChoices() Choices {
	return NewChoices([]Tile{{Label: "3"}, {Label: "4"}, {Label: "5"}}, 0)
}

func pickedIndex(t *testing.T, cmd tea.Cmd) int {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a pick command")
	}
	msg, ok := cmd().(PickedMsg)
	if !ok {
		t.Fatalf("expected PickedMsg, got %T", cmd())
	}
	return msg.Index
}

func TestChoices_DigitPicks(t *testing.T) {
	c, cmd := testChoices().Update(keyPress('2'))
	if got := pickedIndex(t, cmd); got != 1 {
		t.Errorf("picked %d, want 1", got)
	}
	if c.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", c.Cursor)
	}

	if _, cmd := testChoices().Update(keyPress('9')); cmd != nil {
		t.Error("digit beyond the tiles should not pick")
	}
}

func TestChoices_NavigateAndEnter(t *testing.T) {
	c := testChoices()
	c, _ = c.Update(specialKey(tea.KeyLeft))
	if c.Cursor != 2 {
		t.Errorf("left from 0 should wrap to 2, got %d", c.Cursor)
	}
	c, _ = c.Update(specialKey(tea.KeyRight))
	c, _ = c.Update(specialKey(tea.KeyRight))
	_, cmd := c.Update(specialKey(tea.KeyEnter))
	if got := pickedIndex(t, cmd); got != 1 {
		t.Errorf("picked %d, want 1", got)
	}
}

func TestChoices_View(t *testing.T) {
	c := testChoices()
	c.Tiles[0].Mark = MarkWrong
	c.Columns = 2
	if c.View() == "" {
		t.Error("expected non-empty view")
	}
}

func TestProgressBar_View(t *testing.T) {
	for _, p := range []ProgressBar{
		NewProgressBar("Đã có", 3, 5, 30),
		NewProgressBar("", 7, 5, 30),
		NewProgressBar("", 0, 0, 2),
	} {
		if p.View() == "" {
			t.Errorf("empty view for %+v", p)
		}
	}
}

func TestMenu_SkipsHeaders(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Lớp 1", Header: true},
		{Label: "a"},
		{Label: "Lớp 2", Header: true},
		{Label: "b"},
	})
	if m.Selected != 1 {
		t.Fatalf("first selectable should be 1, got %d", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("down should skip header, got %d", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyUp))
	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.Selected != 1 {
		t.Errorf("up should stop at first item, got %d", m.Selected)
	}
}

func TestMenu_SelectRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "a", Action: func() tea.Cmd { ran = true; return nil }}})
	m.Update(specialKey(tea.KeyEnter))
	if !ran {
		t.Error("enter should run the selected action")
	}
}

func TestMenu_ViewWindow(t *testing.T) {
	items := make([]MenuItem, 20)
	for i := range items {
		items[i] = MenuItem{Label: string(rune('a' + i))}
	}
	m := NewMenu(items)
	m.Selected = 15
	view := m.View(5)
	if got := len(strings.Split(view, "\n")); got != 5 {
		t.Errorf("window should show 5 lines, got %d", got)
	}
}
