// Package task holds the task list engine: tasks, the owning list, the
// selection subset and the snapshot format written to the store.
package task

import "errors"

var (
	// ErrDetached is returned when an operation needs an owning list and the task has none.
	ErrDetached = errors.New("task is not in a list")
	// ErrEmptyText is returned when a draft is committed without text.
	ErrEmptyText = errors.New("task text is empty")
	// ErrDraftClosed is returned when a draft is committed or discarded twice.
	ErrDraftClosed = errors.New("draft already closed")
)

const (
	ClassPending = "pending"
	ClassDone    = "done"
)

// Task is a single to-do entry. The owner is a non-owning back-reference set
// by List.Add and cleared by List.Remove; it is never part of a Snapshot.
type Task struct {
	id      int
	text    string
	pending bool
	owner   *List
}

// New returns a detached task.
func New(id int, text string, pending bool) *Task {
	return &Task{id: id, text: text, pending: pending}
}

func (t *Task) ID() int        { return t.id }
func (t *Task) Text() string   { return t.text }
func (t *Task) Pending() bool  { return t.pending }
func (t *Task) Owner() *List   { return t.owner }
func (t *Task) Attached() bool { return t.owner != nil }

// Complete marks the task done and has the owning list rebuild and persist.
func (t *Task) Complete() error {
	if t.owner == nil {
		return ErrDetached
	}
	t.pending = false
	t.owner.changed("complete")
	return nil
}

// Snapshot returns the persisted view of the task.
func (t *Task) Snapshot() Snapshot {
	return Snapshot{ID: t.id, Status: t.pending, Text: t.text}
}

// Element builds a fresh visual element for the task. The toggle adds or
// removes the task from its owner's selection.
func (t *Task) Element() Element {
	el := Element{
		ID:    t.id,
		Class: classFor(t.pending),
		Label: t.text,
	}
	if t.owner != nil {
		el.Selected = t.owner.isSelected(t)
	}
	el.Toggle = func(checked bool) {
		if t.owner == nil {
			return
		}
		if checked {
			t.owner.AddSelected(t)
		} else {
			t.owner.RemoveSelected(t)
		}
	}
	return el
}

func classFor(pending bool) string {
	if pending {
		return ClassPending
	}
	return ClassDone
}
