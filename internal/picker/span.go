package picker

import "time"

// Span is a closed interval [Lower, Upper] of instants.
type Span struct {
	Lower time.Time
	Upper time.Time
}

// NewSpan builds a span from two instants in either order.
func NewSpan(a, b time.Time) Span {
	if b.Before(a) {
		a, b = b, a
	}
	return Span{Lower: a, Upper: b}
}

func (s Span) IsZero() bool {
	return s.Lower.IsZero() && s.Upper.IsZero()
}

// Contains reports whether t lies within the span, endpoints included.
func (s Span) Contains(t time.Time) bool {
	return !t.Before(s.Lower) && !t.After(s.Upper)
}

// Overlaps reports whether the span intersects the closed interval [lo, hi].
func (s Span) Overlaps(lo, hi time.Time) bool {
	return !s.Upper.Before(lo) && !s.Lower.After(hi)
}

// BlockIndex holds the blocked spans configured on one picker and answers
// window queries over them. Spans are kept exactly as configured, in
// insertion order, and are deliberately not merged: adding a span and then
// removing the same bounds restores the prior state bit for bit.
type BlockIndex struct {
	granularity Granularity
	spans       []Span
}

func NewBlockIndex(g Granularity) *BlockIndex {
	return &BlockIndex{granularity: g}
}

// Set replaces all blocked spans. Bounds are widened to unit boundaries at
// the index granularity.
func (ix *BlockIndex) Set(spans []Span) {
	ix.spans = ix.spans[:0]
	for _, s := range spans {
		ix.Add(s.Lower, s.Upper)
	}
}

// Add appends one blocked span, widened to unit boundaries.
func (ix *BlockIndex) Add(lo, hi time.Time) {
	s := NewSpan(lo, hi)
	ix.spans = append(ix.spans, Span{
		Lower: ix.granularity.UnitStart(s.Lower),
		Upper: ix.granularity.UnitEnd(s.Upper),
	})
}

// Remove deletes the first stored span matching the given bounds and reports
// whether one was found. With GranularityExact the raw timestamps must equal
// the stored bounds; any other granularity widens lo and hi to unit
// boundaries first, so callers must pass the granularity used when the span
// was added.
func (ix *BlockIndex) Remove(lo, hi time.Time, g Granularity) bool {
	s := NewSpan(lo, hi)
	if g != GranularityExact {
		s = Span{Lower: g.UnitStart(s.Lower), Upper: g.UnitEnd(s.Upper)}
	}
	for i, have := range ix.spans {
		if have.Lower.Equal(s.Lower) && have.Upper.Equal(s.Upper) {
			ix.spans = append(ix.spans[:i], ix.spans[i+1:]...)
			return true
		}
	}
	return false
}

// Spans returns a copy of the configured blocked spans.
func (ix *BlockIndex) Spans() []Span {
	return append([]Span(nil), ix.spans...)
}

// SpanAt returns the first blocked span containing t.
func (ix *BlockIndex) SpanAt(t time.Time) (Span, bool) {
	for _, s := range ix.spans {
		if s.Contains(t) {
			return s, true
		}
	}
	return Span{}, false
}

// Query resolves the interval [lo, hi] against the blocked spans.
//
// When no blocked span overlaps the interval it returns the allowed window
// enclosing it: the window's lower bound is the first instant after the
// nearest blocked span below lo (or DomainMin) and its upper bound is the
// last instant before the nearest blocked span above hi (or DomainMax), with
// ok true.
//
// When a blocked span overlaps [lo, hi] it returns that span with ok false.
func (ix *BlockIndex) Query(lo, hi time.Time) (Span, bool) {
	win := Span{Lower: DomainMin, Upper: DomainMax}
	for _, s := range ix.spans {
		if s.Overlaps(lo, hi) {
			return s, false
		}
		if s.Upper.Before(lo) {
			if next := s.Upper.Add(time.Nanosecond); next.After(win.Lower) {
				win.Lower = next
			}
		}
		if s.Lower.After(hi) {
			if prev := s.Lower.Add(-time.Nanosecond); prev.Before(win.Upper) {
				win.Upper = prev
			}
		}
	}
	return win, true
}
