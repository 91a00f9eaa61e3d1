package task

import "strings"

// Draft is a transient, not yet owned entry being typed by the user. Commit
// is shared by the accept and blur paths and adds at most one task.
type Draft struct {
	list   *List
	text   string
	closed bool
}

// Prompt opens a draft for a new task.
func (l *List) Prompt() *Draft {
	return &Draft{list: l}
}

func (d *Draft) SetText(s string) { d.text = s }
func (d *Draft) Text() string     { return d.text }
func (d *Draft) Closed() bool     { return d.closed }

// Element returns the editable preview of the draft.
func (d *Draft) Element() Element {
	return Element{
		Class:    ClassPending,
		Label:    d.text,
		Editable: true,
	}
}

// Commit turns the draft into a pending task with a fresh id and adds it to
// the list. Empty text leaves the draft open.
func (d *Draft) Commit() (*Task, error) {
	if d.closed {
		return nil, ErrDraftClosed
	}
	text := strings.TrimSpace(d.text)
	if text == "" {
		return nil, ErrEmptyText
	}
	d.closed = true
	t := New(d.list.NextID(), text, true)
	d.list.Add(t)
	return t, nil
}

// Discard closes the draft without adding anything.
func (d *Draft) Discard() error {
	if d.closed {
		return ErrDraftClosed
	}
	d.closed = true
	return nil
}
