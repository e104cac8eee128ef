package timeline

import (
	"time"

	"github.com/google/uuid"
)

// Bounds are the cached time extents of a dataset.
type Bounds struct {
	MinStart time.Time
	MaxEnd   time.Time
}

// Span is MaxEnd - MinStart.
func (b Bounds) Span() time.Duration {
	return b.MaxEnd.Sub(b.MinStart)
}

// Dataset is an ordered, immutable collection of entries. A new Dataset is
// built for every load; row UI state is keyed by ID so it never leaks from
// one dataset to the next.
type Dataset struct {
	ID      string
	Source  string
	Entries []Entry
	Bounds  Bounds
}

// NewDataset wraps entries, which are expected in file order. Bounds come
// from the first and last entries.
func NewDataset(source string, entries []Entry) *Dataset {
	d := &Dataset{
		ID:      uuid.NewString(),
		Source:  source,
		Entries: entries,
	}
	if len(entries) > 0 {
		d.Bounds = Bounds{
			MinStart: entries[0].StartedAt,
			MaxEnd:   entries[len(entries)-1].EndedAt,
		}
	}
	return d
}

// Len returns the number of entries; a nil Dataset is empty.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Entries)
}
