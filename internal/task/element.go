package task

// Element is the presentational node handed to a Renderer for one task.
type Element struct {
	ID       int
	Class    string
	Label    string
	Selected bool
	Editable bool
	// Toggle is wired to the owning list's selection. Nil for drafts.
	Toggle func(checked bool)
}

// Equal reports whether two elements are structurally the same, ignoring the toggle.
func (e Element) Equal(o Element) bool {
	return e.ID == o.ID &&
		e.Class == o.Class &&
		e.Label == o.Label &&
		e.Selected == o.Selected &&
		e.Editable == o.Editable
}

// Renderer receives a full rebuild of the visual tree.
type Renderer interface {
	Clear()
	Append(Element)
}

// Store is an opaque string key/value persistence.
type Store interface {
	Read(key string) (string, bool, error)
	Write(key, value string) error
}

type nopRenderer struct{}

func (nopRenderer) Clear()         {}
func (nopRenderer) Append(Element) {}
