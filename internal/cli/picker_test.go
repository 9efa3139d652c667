package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/printgrid/pkg/templates"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTemplateListNavigation(t *testing.T) {
	m := NewTemplateListModel(templates.Presets())

	updated, _ := m.Update(keyMsg("down"))
	m = updated.(TemplateListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.Cursor)
	}

	updated, _ = m.Update(keyMsg("up"))
	m = updated.(TemplateListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor)
	}

	// Cursor stays in bounds at the top.
	updated, _ = m.Update(keyMsg("up"))
	m = updated.(TemplateListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor)
	}
}

func TestTemplateListSelection(t *testing.T) {
	presets := templates.Presets()
	m := NewTemplateListModel(presets)

	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(TemplateListModel)
	if m.Selected == nil || m.Selected.ID != presets[0].ID {
		t.Errorf("selected = %v", m.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestTemplateListQuitWithoutSelection(t *testing.T) {
	m := NewTemplateListModel(templates.Presets())

	updated, cmd := m.Update(keyMsg("q"))
	m = updated.(TemplateListModel)
	if m.Selected != nil {
		t.Error("q should not select")
	}
	if cmd == nil {
		t.Error("q should quit the program")
	}
}

func TestTemplateListView(t *testing.T) {
	m := NewTemplateListModel(templates.Presets())
	view := m.View()
	if view == "" {
		t.Fatal("view should not be empty")
	}
	if len(m.Templates) > 0 && m.Templates[0].ID == "" {
		t.Fatal("presets should have ids")
	}
}
