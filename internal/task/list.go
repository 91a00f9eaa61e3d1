package task

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"
)

// DefaultKey is the store key the list persists under.
const DefaultKey = "items"

// Option configures a List.
type Option func(*List)

// WithRenderer sets the surface the list rebuilds on every structural change.
func WithRenderer(r Renderer) Option {
	return func(l *List) {
		if r != nil {
			l.renderer = r
		}
	}
}

// WithStore sets the store and key the list persists to.
func WithStore(s Store, key string) Option {
	return func(l *List) {
		l.store = s
		if key != "" {
			l.key = key
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *List) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithSelectionHook registers a callback run with the selection size after
// every selection change. It never triggers a rebuild.
func WithSelectionHook(fn func(n int)) Option {
	return func(l *List) {
		l.onSelect = fn
	}
}

// WithErrorHook registers a callback for persistence failures.
func WithErrorHook(fn func(error)) Option {
	return func(l *List) {
		l.onError = fn
	}
}

// List owns an ordered set of tasks and the selected subset of them.
// Every structural change rebuilds the renderer and writes the store before
// returning. A List is driven from a single event loop and is not safe for
// concurrent use.
type List struct {
	items    []*Task
	selected []*Task

	renderer Renderer
	store    Store
	key      string
	logger   *log.Logger
	onSelect func(int)
	onError  func(error)

	depth int
	dirty bool
}

// NewList returns an empty list.
func NewList(opts ...Option) *List {
	l := &List{
		renderer: nopRenderer{},
		key:      DefaultKey,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Items returns the tasks in display order. The slice is a copy.
func (l *List) Items() []*Task { return slices.Clone(l.items) }

// Selected returns the selected tasks in selection order. The slice is a copy.
func (l *List) Selected() []*Task { return slices.Clone(l.selected) }

func (l *List) Len() int { return len(l.items) }

// Key returns the store key.
func (l *List) Key() string { return l.key }

// NextID returns an id greater than every id in the list.
func (l *List) NextID() int {
	next := 1
	for _, t := range l.items {
		if t.id >= next {
			next = t.id + 1
		}
	}
	return next
}

// Add appends t and takes ownership of it. A task owned by another list is
// removed from that list first; adding a task already in this list does nothing.
func (l *List) Add(t *Task) {
	if t == nil || t.owner == l {
		return
	}
	if t.owner != nil {
		t.owner.Remove(t)
	}
	t.owner = l
	l.items = append(l.items, t)
	l.logger.Debug("task added", "id", t.id)
	l.changed("add")
}

// Remove drops t from the list and from the selection. It reports false and
// does nothing when t is not in the list.
func (l *List) Remove(t *Task) bool {
	if !l.removeItem(t) {
		return false
	}
	l.changed("remove")
	return true
}

func (l *List) removeItem(t *Task) bool {
	i := slices.Index(l.items, t)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	t.owner = nil
	if j := slices.Index(l.selected, t); j >= 0 {
		l.selected = slices.Delete(l.selected, j, j+1)
		l.selectionChanged()
	}
	return true
}

// AddSelected adds t to the selection. Tasks outside the list and tasks
// already selected are ignored.
func (l *List) AddSelected(t *Task) bool {
	if t == nil || t.owner != l || l.isSelected(t) {
		return false
	}
	l.selected = append(l.selected, t)
	l.selectionChanged()
	return true
}

// RemoveSelected drops t from the selection.
func (l *List) RemoveSelected(t *Task) bool {
	i := slices.Index(l.selected, t)
	if i < 0 {
		return false
	}
	l.selected = slices.Delete(l.selected, i, i+1)
	l.selectionChanged()
	return true
}

func (l *List) isSelected(t *Task) bool {
	return slices.Contains(l.selected, t)
}

// RemoveSelectedItems removes every selected task and empties the selection.
// It returns the number of tasks removed.
func (l *List) RemoveSelectedItems() int {
	if len(l.selected) == 0 {
		return 0
	}
	pending := l.selected
	l.selected = nil
	removed := 0
	l.batch(func() {
		for _, t := range pending {
			// references not found in items are skipped
			if l.removeItem(t) {
				removed++
				l.dirty = true
			}
		}
	})
	l.selectionChanged()
	return removed
}

// CompleteSelected marks every selected task done with a single rebuild and
// persist. It returns the number of tasks that changed.
func (l *List) CompleteSelected() int {
	changed := 0
	l.batch(func() {
		for _, t := range l.selected {
			if t.owner != l || !t.pending {
				continue
			}
			if err := t.Complete(); err != nil {
				l.logger.Warn("complete selected", "id", t.id, "err", err)
				continue
			}
			changed++
		}
	})
	return changed
}

// Batch runs fn with rebuild and persist deferred; if fn made any structural
// change they run once when it returns.
func (l *List) Batch(fn func()) {
	l.batch(fn)
}

func (l *List) batch(fn func()) {
	l.depth++
	defer func() {
		l.depth--
		if l.depth == 0 && l.dirty {
			l.dirty = false
			l.changed("batch")
		}
	}()
	fn()
}

// changed is the mutation hook.
func (l *List) changed(reason string) {
	if l.depth > 0 {
		l.dirty = true
		return
	}
	l.Rebuild()
	if err := l.Persist(); err != nil {
		l.logger.Error("persist failed", "reason", reason, "err", err)
		if l.onError != nil {
			l.onError(err)
		}
	}
}

// Rebuild discards the renderer's tree and rebuilds it from the items in order.
func (l *List) Rebuild() {
	l.renderer.Clear()
	for _, t := range l.items {
		l.renderer.Append(t.Element())
	}
	l.logger.Debug("visual tree rebuilt", "items", len(l.items))
}

// Persist writes the snapshot of every item to the store.
func (l *List) Persist() error {
	if l.store == nil {
		return nil
	}
	if err := l.store.Write(l.key, EncodeSnapshots(l.items)); err != nil {
		return err
	}
	l.logger.Debug("storage updated", "key", l.key, "items", len(l.items))
	return nil
}

func (l *List) selectionChanged() {
	l.logger.Debug("selection changed", "selected", len(l.selected))
	if l.onSelect != nil {
		l.onSelect(len(l.selected))
	}
}
