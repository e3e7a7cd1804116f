package picker

import "time"

// Cell is one rendered calendar cell: a date plus the markers the host UI
// styles it with.
type Cell struct {
	Date    time.Time
	InMonth bool // false for leading/trailing filler cells on a grid
	Blocked bool // not selectable under the picker's current blocks/windows
	Today   bool

	// Range markers, recomputed on every draw pass by Highlight.
	InRange  bool
	Boundary bool
}

// Highlight classifies cells against the current range and toggles their
// markers in place. The projection is stateless and idempotent: every marker
// is assigned on every pass, never or-ed in, so repeated passes over the same
// cells settle to the same state.
//
// In-range is inclusive of both endpoints: the start and end cells carry both
// the in-range and the boundary marker, and a single-day range marks its one
// cell with both. An unset start leaves the cells untouched; an unset end is
// the zero time, which compares below every in-domain date, so both tests
// come out false without any special casing.
func Highlight(cells []*Cell, start, end time.Time, g Granularity) {
	if start.IsZero() {
		return
	}
	for _, c := range cells {
		c.InRange = g.Between(c.Date, start, end)
		c.Boundary = g.Same(c.Date, start) || g.Same(c.Date, end)
	}
}
