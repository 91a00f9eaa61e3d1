package task

// Source tells where Restore took its tasks from.
type Source int

const (
	SourceStore Source = iota
	SourceSeed
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceStore:
		return "store"
	case SourceSeed:
		return "seed"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// DefaultSeeds returns the example tasks shown on first launch.
func DefaultSeeds() []Snapshot {
	return []Snapshot{
		{ID: 1, Text: "save the world", Status: true},
		{ID: 2, Text: "hijack some sessions", Status: true},
		{ID: 3, Text: "create a todo app", Status: false},
	}
}

// Restore fills l from its store, or from seeds when nothing usable is stored.
// All tasks are added in one batch, so the list rebuilds and persists once.
func Restore(l *List, seeds []Snapshot) Source {
	snaps, src := l.load(seeds)
	l.batch(func() {
		for _, s := range snaps {
			l.Add(s.Task())
		}
		// an empty restore still draws the surface
		l.dirty = true
	})
	l.logger.Info("tasks restored", "source", src, "items", l.Len())
	return src
}

func (l *List) load(seeds []Snapshot) ([]Snapshot, Source) {
	if l.store == nil {
		return seeds, SourceSeed
	}
	raw, ok, err := l.store.Read(l.key)
	if err != nil {
		l.logger.Warn("read stored tasks", "key", l.key, "err", err)
		return seeds, SourceFallback
	}
	if !ok {
		return seeds, SourceSeed
	}
	snaps, err := DecodeSnapshots(raw)
	if err != nil {
		l.logger.Warn("stored tasks are malformed, using seeds", "key", l.key, "err", err)
		return seeds, SourceFallback
	}
	return snaps, SourceStore
}
