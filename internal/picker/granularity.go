package picker

import (
	"fmt"
	"strings"
	"time"
)

// Granularity is the unit at which dates are compared and normalized.
type Granularity int

const (
	// GranularityExact performs no normalization. It is only meaningful as
	// the removal mode of BlockIndex.Remove, where it matches stored span
	// bounds by exact timestamp.
	GranularityExact Granularity = iota
	GranularityDate
	GranularityMonth
	GranularityYear
)

// Calendar domain bounds. Spans and windows saturate to these instead of
// growing unbounded when no blocked span exists in a direction.
var (
	DomainMin = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	DomainMax = time.Date(2999, time.December, 31, 0, 0, 0, 0, time.UTC).Add(24*time.Hour - time.Nanosecond)
)

// ParseGranularity maps a config string to a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "date", "day", "":
		return GranularityDate, nil
	case "month":
		return GranularityMonth, nil
	case "year":
		return GranularityYear, nil
	default:
		return GranularityExact, fmt.Errorf("unknown granularity %q", s)
	}
}

func (g Granularity) String() string {
	switch g {
	case GranularityDate:
		return "date"
	case GranularityMonth:
		return "month"
	case GranularityYear:
		return "year"
	default:
		return "exact"
	}
}

// UnitStart returns the first instant of the unit containing t.
// GranularityExact returns t unchanged.
func (g Granularity) UnitStart(t time.Time) time.Time {
	year, month, day := t.Date()
	switch g {
	case GranularityDate:
		return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	case GranularityMonth:
		return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	case GranularityYear:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, t.Location())
	default:
		return t
	}
}

// UnitEnd returns the last instant of the unit containing t.
func (g Granularity) UnitEnd(t time.Time) time.Time {
	start := g.UnitStart(t)
	switch g {
	case GranularityDate:
		return start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	case GranularityMonth:
		return start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	case GranularityYear:
		return start.AddDate(1, 0, 0).Add(-time.Nanosecond)
	default:
		return t
	}
}

// Same reports whether a and b fall in the same unit. Comparisons are total:
// the zero time is a valid input and never matches an in-domain date.
func (g Granularity) Same(a, b time.Time) bool {
	return g.UnitStart(a).Equal(g.UnitStart(b))
}

// Between reports whether t lies within [lo, hi] inclusive at this
// granularity. Endpoints count as inside; a zero hi makes the test false for
// every in-domain t.
func (g Granularity) Between(t, lo, hi time.Time) bool {
	u := g.UnitStart(t)
	return !u.Before(g.UnitStart(lo)) && !u.After(g.UnitStart(hi))
}
