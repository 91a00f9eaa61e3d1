package ui

import (
	"github.com/charmbracelet/lipgloss"

	"tasklist/internal/task"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	pendingStyle  = lipgloss.NewStyle()
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	draftStyle    = lipgloss.NewStyle().Italic(true)
	actionStyle   = lipgloss.NewStyle().Bold(true)
	disabledStyle = lipgloss.NewStyle().Faint(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#61AFEF"))
)

func labelStyle(class string) lipgloss.Style {
	if class == task.ClassDone {
		return doneStyle
	}
	return pendingStyle
}
