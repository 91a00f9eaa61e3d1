package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"tasklist/internal/config"
)

type keyMap struct {
	Quit     key.Binding
	Add      key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Remove   key.Binding
	Complete key.Binding
	Confirm  key.Binding
	Blur     key.Binding
	Cancel   key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys(k.Quit, "ctrl+c"), key.WithHelp(keyLabel(k.Quit), "quit")),
		Add:      key.NewBinding(key.WithKeys(k.Add), key.WithHelp(keyLabel(k.Add), "add")),
		Up:       key.NewBinding(key.WithKeys(k.Up, "up"), key.WithHelp(keyLabel(k.Up)+"/↑", "up")),
		Down:     key.NewBinding(key.WithKeys(k.Down, "down"), key.WithHelp(keyLabel(k.Down)+"/↓", "down")),
		Select:   key.NewBinding(key.WithKeys(k.Select), key.WithHelp(keyLabel(k.Select), "select")),
		Remove:   key.NewBinding(key.WithKeys(k.Remove), key.WithHelp(keyLabel(k.Remove), "remove selected")),
		Complete: key.NewBinding(key.WithKeys(k.Complete), key.WithHelp(keyLabel(k.Complete), "complete selected")),
		Confirm:  key.NewBinding(key.WithKeys(k.Confirm), key.WithHelp(keyLabel(k.Confirm), "save")),
		Blur:     key.NewBinding(key.WithKeys(k.Blur), key.WithHelp(keyLabel(k.Blur), "leave field")),
		Cancel:   key.NewBinding(key.WithKeys(k.Cancel), key.WithHelp(keyLabel(k.Cancel), "cancel")),
	}
}

// setActions enables or disables the bulk actions.
func (k *keyMap) setActions(enabled bool) {
	k.Remove.SetEnabled(enabled)
	k.Complete.SetEnabled(enabled)
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Add, k.Quit}
}

func (k keyMap) addHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Blur, k.Cancel}
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
