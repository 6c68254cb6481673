package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplay/internal/ui/theme"
)

// MenuItem is one row of a Menu. Header rows are section titles and cannot
// be selected.
type MenuItem struct {
	Label  string
	Header bool
	Style  lipgloss.Style // header colour
	Action func() tea.Cmd
}

// MenuKeys are the bindings a Menu reacts to.
type MenuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

// DefaultMenuKeys returns arrow/vi navigation with enter to select.
func DefaultMenuKeys() MenuKeys {
	return MenuKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Chọn")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Select: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Chơi")),
	}
}

// Menu is a vertical navigation menu with section headers.
type Menu struct {
	Items    []MenuItem
	Selected int
	Keys     MenuKeys
}

// NewMenu creates a menu with the first selectable item highlighted.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1, Keys: DefaultMenuKeys()}
	for i, item := range items {
		if !item.Header {
			m.Selected = i
			break
		}
	}
	return m
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, m.Keys.Up):
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Header {
				m.Selected = i
				break
			}
		}
	case key.Matches(kmsg, m.Keys.Down):
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Header {
				m.Selected = i
				break
			}
		}
	case key.Matches(kmsg, m.Keys.Select):
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			if item := m.Items[m.Selected]; item.Action != nil {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the menu. When height is positive only a window of rows
// around the selection is shown.
func (m Menu) View(height int) string {
	start, end := 0, len(m.Items)
	if height > 0 && len(m.Items) > height {
		start = min(max(m.Selected-height/2, 0), len(m.Items)-height)
		end = start + height
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		item := m.Items[i]
		switch {
		case item.Header:
			lines = append(lines, item.Style.Render(item.Label))
		case i == m.Selected:
			lines = append(lines, theme.Selected.Render(" ▸ "+item.Label+" "))
		default:
			lines = append(lines, theme.Unselected.Render("   "+item.Label))
		}
	}
	return strings.Join(lines, "\n")
}
