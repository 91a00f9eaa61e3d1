package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tasklist/internal/config"
	"tasklist/internal/storage"
	"tasklist/internal/task"
)

func testConfig() config.Config {
	return config.Config{
		StorageKey: task.DefaultKey,
		Keys: config.Keymap{
			Quit:     "q",
			Add:      "a",
			Up:       "k",
			Down:     "j",
			Select:   " ",
			Remove:   "d",
			Complete: "c",
			Confirm:  "enter",
			Blur:     "tab",
			Cancel:   "esc",
		},
	}
}

func newTestModel(t *testing.T) (Model, *task.List, *Surface, *storage.Memory) {
	t.Helper()
	surface := NewSurface()
	store := storage.NewMemory()
	list := task.NewList(
		task.WithRenderer(surface),
		task.WithStore(store, task.DefaultKey),
		task.WithSelectionHook(surface.SelectionChanged),
		task.WithErrorHook(surface.PersistFailed),
	)
	task.Restore(list, task.DefaultSeeds())
	return New(list, surface, testConfig(), nil), list, surface, store
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModel_SelectAndComplete(t *testing.T) {
	m, list, surface, _ := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !surface.Elements()[0].Selected {
		t.Fatal("first element not checked after select")
	}
	if got := list.Selected(); len(got) != 1 || got[0].ID() != 1 {
		t.Fatalf("Selected() = %v, want task 1", got)
	}
	if !surface.ActionsEnabled() {
		t.Fatal("ActionsEnabled() = false with a selection")
	}

	m = press(t, m, runes("c"))
	if list.Items()[0].Pending() {
		t.Fatal("task 1 still pending after complete")
	}
	if surface.Elements()[0].Class != task.ClassDone {
		t.Errorf("element class = %s, want done", surface.Elements()[0].Class)
	}
	if !strings.Contains(m.status, "Completed 1 task") {
		t.Errorf("status = %q", m.status)
	}
}

func TestModel_RemoveSelected(t *testing.T) {
	m, list, surface, store := newTestModel(t)

	// nothing selected: the remove action is disabled
	m = press(t, m, runes("d"))
	if m.mode != modeList {
		t.Fatalf("mode = %v, want list when nothing is selected", m.mode)
	}

	m = press(t, m, runes("j"), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, runes("d"))
	if m.mode != modeConfirmRemove {
		t.Fatalf("mode = %v, want confirm", m.mode)
	}
	m = press(t, m, runes("y"))

	if list.Len() != 2 || surface.Len() != 2 {
		t.Fatalf("items = %d, surface = %d, want 2, 2", list.Len(), surface.Len())
	}
	for _, it := range list.Items() {
		if it.ID() == 2 {
			t.Fatal("task 2 still present")
		}
	}
	if surface.ActionsEnabled() {
		t.Error("actions still enabled after removing the selection")
	}
	raw, _, _ := store.Read(task.DefaultKey)
	if strings.Contains(raw, `"id":2`) {
		t.Errorf("store still holds task 2: %s", raw)
	}
}

func TestModel_RemoveCancelled(t *testing.T) {
	m, list, _, _ := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, runes("d"), runes("n"))
	if m.mode != modeList || list.Len() != 3 {
		t.Fatalf("mode = %v, len = %d, want list, 3", m.mode, list.Len())
	}
}

func TestModel_AddCommitsOnce(t *testing.T) {
	tests := []struct {
		name   string
		commit tea.KeyMsg
	}{
		{"accept", tea.KeyMsg{Type: tea.KeyEnter}},
		{"blur", tea.KeyMsg{Type: tea.KeyTab}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, list, surface, _ := newTestModel(t)

			m = press(t, m, runes("a"))
			if m.mode != modeAdd || m.draft == nil {
				t.Fatalf("mode = %v, want add with a draft", m.mode)
			}
			m = press(t, m, runes("h"), runes("i"), tt.commit)

			if m.mode != modeList {
				t.Fatalf("mode = %v, want list after commit", m.mode)
			}
			if list.Len() != 4 || surface.Len() != 4 {
				t.Fatalf("items = %d, surface = %d, want 4, 4", list.Len(), surface.Len())
			}
			last := list.Items()[3]
			if last.ID() != 4 || last.Text() != "hi" || !last.Pending() {
				t.Fatalf("new task = %+v, want id 4 pending hi", last.Snapshot())
			}
			if m.cursor != 3 {
				t.Errorf("cursor = %d, want 3", m.cursor)
			}
		})
	}
}

func TestModel_AddEmptyAndCancel(t *testing.T) {
	m, list, _, _ := newTestModel(t)

	m = press(t, m, runes("a"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeAdd || m.status != "Text cannot be empty" {
		t.Fatalf("mode = %v status = %q, want add mode kept", m.mode, m.status)
	}

	// q types into the field instead of quitting
	m = press(t, m, runes("q"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeList || m.draft != nil {
		t.Fatalf("mode = %v, want list with no draft", m.mode)
	}
	if list.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", list.Len())
	}
}

func TestModel_PersistErrorShownInStatus(t *testing.T) {
	m, list, surface, _ := newTestModel(t)
	surface.PersistFailed(errors.New("disk full"))
	m = press(t, m, runes("j"))
	if !strings.Contains(m.status, "disk full") {
		t.Fatalf("status = %q, want save failure", m.status)
	}
	if list.Len() != 3 {
		t.Fatalf("Len() = %d", list.Len())
	}
}

func TestModel_Quit(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit returned nil cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("quit cmd did not produce QuitMsg")
	}
}

func TestModel_View(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	out := m.View()
	for _, want := range []string{"Tasks", "[x]", "save the world", "create a todo app", "remove selected"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q:\n%s", want, out)
		}
	}
}

func TestSurface_ToggleOutOfRange(t *testing.T) {
	s := NewSurface()
	if s.Toggle(0) {
		t.Fatal("Toggle() on empty surface = true")
	}
}
