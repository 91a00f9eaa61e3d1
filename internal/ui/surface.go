package ui

import (
	"tasklist/internal/task"
)

// Surface is the visual tree the list rebuilds. It is shared by pointer
// between the list and the bubbletea model.
type Surface struct {
	elements []task.Element
	selected int
	rebuilds int
	err      error
}

func NewSurface() *Surface {
	return &Surface{}
}

// Clear discards every element.
func (s *Surface) Clear() {
	s.elements = nil
	s.rebuilds++
}

func (s *Surface) Append(el task.Element) {
	s.elements = append(s.elements, el)
}

// SelectionChanged is the list's selection hook.
func (s *Surface) SelectionChanged(n int) {
	s.selected = n
}

// PersistFailed is the list's error hook.
func (s *Surface) PersistFailed(err error) {
	s.err = err
}

func (s *Surface) Elements() []task.Element { return s.elements }
func (s *Surface) Len() int                 { return len(s.elements) }
func (s *Surface) Rebuilds() int            { return s.rebuilds }

// ActionsEnabled reports whether the bulk actions apply to anything.
func (s *Surface) ActionsEnabled() bool { return s.selected > 0 }

// Toggle flips the checkbox of element i and reports the change to the list.
func (s *Surface) Toggle(i int) bool {
	if i < 0 || i >= len(s.elements) {
		return false
	}
	el := &s.elements[i]
	el.Selected = !el.Selected
	if el.Toggle != nil {
		el.Toggle(el.Selected)
	}
	return el.Selected
}

// TakeError returns and clears the last persistence failure.
func (s *Surface) TakeError() error {
	err := s.err
	s.err = nil
	return err
}
