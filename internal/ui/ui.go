package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"tasklist/internal/config"
	"tasklist/internal/task"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeConfirmRemove
)

type Model struct {
	list    *task.List
	surface *Surface
	keys    keyMap
	help    help.Model
	logger  *log.Logger
	cursor  int
	mode    mode
	input   textinput.Model
	draft   *task.Draft
	status  string
}

// New builds the model. The list must already render into surface.
func New(list *task.List, surface *Surface, cfg config.Config, logger *log.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Task text"
	ti.CharLimit = 256
	ti.Width = 40

	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := newKeyMap(cfg.Keys)
	keys.setActions(surface.ActionsEnabled())

	return Model{
		list:    list,
		surface: surface,
		keys:    keys,
		help:    help.New(),
		logger:  logger,
		cursor:  clampCursor(0, surface.Len()),
		mode:    modeList,
		input:   ti,
		status:  fmt.Sprintf("Press '%s' to add, %s to select.", keyLabel(cfg.Keys.Add), keyLabel(cfg.Keys.Select)),
	}
}

// Run starts the program and blocks until the user quits.
func Run(list *task.List, surface *Surface, cfg config.Config, logger *log.Logger) error {
	program := tea.NewProgram(New(list, surface, cfg, logger), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.keys.setActions(m.surface.ActionsEnabled())
		var cmd tea.Cmd
		var next tea.Model
		switch m.mode {
		case modeAdd:
			next, cmd = m.updateAddMode(msg)
		case modeConfirmRemove:
			next, cmd = m.updateRemoveConfirm(msg.String())
		default:
			next, cmd = m.updateListMode(msg)
		}
		nm := next.(Model)
		nm.keys.setActions(nm.surface.ActionsEnabled())
		if err := nm.surface.TakeError(); err != nil {
			nm.status = fmt.Sprintf("save failed: %v", err)
		}
		return nm, cmd
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		if m.draft != nil {
			m.draft.Discard()
		}
		m.closeDraft()
		m.status = "Cancelled"
		return m, nil
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Blur):
		// accept and blur both commit the same draft
		return m.commitDraft()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.draft != nil {
			m.draft.SetText(m.input.Value())
		}
		return m, cmd
	}
}

func (m Model) commitDraft() (tea.Model, tea.Cmd) {
	if m.draft == nil {
		m.closeDraft()
		return m, nil
	}
	m.draft.SetText(m.input.Value())
	created, err := m.draft.Commit()
	switch {
	case errors.Is(err, task.ErrEmptyText):
		m.status = "Text cannot be empty"
		return m, nil
	case err != nil:
		m.status = fmt.Sprintf("add failed: %v", err)
		m.closeDraft()
		return m, nil
	}
	m.logger.Info("task created", "id", created.ID())
	m.closeDraft()
	m.cursor = clampCursor(m.surface.Len()-1, m.surface.Len())
	m.status = "Added task"
	return m, nil
}

func (m *Model) closeDraft() {
	m.draft = nil
	m.input.SetValue("")
	m.input.Blur()
	m.mode = modeList
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		if m.surface.Len() == 0 {
			return m, nil
		}
		m.cursor = clampCursor(m.cursor+1, m.surface.Len())
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, m.surface.Len())
		}
	case key.Matches(msg, m.keys.Add):
		m.draft = m.list.Prompt()
		m.mode = modeAdd
		m.input.SetValue("")
		m.status = "Add mode: type the task and press Enter"
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Select):
		if m.surface.Len() == 0 {
			return m, nil
		}
		m.cursor = clampCursor(m.cursor, m.surface.Len())
		if m.surface.Toggle(m.cursor) {
			m.status = "Selected"
		} else {
			m.status = "Unselected"
		}
	case key.Matches(msg, m.keys.Remove):
		n := len(m.list.Selected())
		m.mode = modeConfirmRemove
		m.status = fmt.Sprintf("Remove %d selected %s? y/n", n, plural(n, "task", "tasks"))
	case key.Matches(msg, m.keys.Complete):
		n := m.list.CompleteSelected()
		m.status = fmt.Sprintf("Completed %d %s", n, plural(n, "task", "tasks"))
	}
	return m, nil
}

func (m Model) updateRemoveConfirm(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "n", "N", "esc":
		m.mode = modeList
		m.status = "Remove cancelled"
	case "y", "Y":
		n := m.list.RemoveSelectedItems()
		m.mode = modeList
		m.cursor = clampCursor(m.cursor, m.surface.Len())
		m.status = fmt.Sprintf("Removed %d %s", n, plural(n, "task", "tasks"))
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tasks"))
	b.WriteString("\n\n")

	if m.surface.Len() == 0 && m.draft == nil {
		b.WriteString(fmt.Sprintf("No tasks yet. Press '%s' to add one.\n", m.keys.Add.Help().Key))
	} else {
		b.WriteString(m.renderElements())
	}
	if m.draft != nil {
		b.WriteString(draftStyle.Render("  [ ] "))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderActions())
	b.WriteString("\n---\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	if m.mode == modeAdd {
		b.WriteString(m.help.ShortHelpView(m.keys.addHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.listHelp()))
	}

	return b.String()
}

func (m Model) renderElements() string {
	var b strings.Builder
	for i, el := range m.surface.Elements() {
		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = ">"
		}
		checkbox := "[ ]"
		if el.Selected {
			checkbox = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, checkbox, labelStyle(el.Class).Render(el.Label)))
	}
	return b.String()
}

// renderActions draws the bulk action buttons, dimmed while nothing is selected.
func (m Model) renderActions() string {
	style := actionStyle
	if !m.surface.ActionsEnabled() {
		style = disabledStyle
	}
	parts := make([]string, 0, 2)
	for _, k := range []key.Binding{m.keys.Remove, m.keys.Complete} {
		h := k.Help()
		parts = append(parts, style.Render(fmt.Sprintf("[%s] %s", h.Key, h.Desc)))
	}
	return strings.Join(parts, "  ")
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
