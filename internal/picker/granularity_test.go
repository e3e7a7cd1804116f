package picker

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseGranularity(t *testing.T) {
	tests := []struct {
		in      string
		want    Granularity
		wantErr bool
	}{
		{in: "date", want: GranularityDate},
		{in: "day", want: GranularityDate},
		{in: "", want: GranularityDate},
		{in: " Month ", want: GranularityMonth},
		{in: "YEAR", want: GranularityYear},
		{in: "week", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseGranularity(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseGranularity(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseGranularity(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGranularity(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUnitBounds(t *testing.T) {
	at := time.Date(2017, time.June, 15, 13, 45, 12, 500, time.UTC)

	tests := []struct {
		name      string
		g         Granularity
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "date",
			g:         GranularityDate,
			wantStart: date(2017, time.June, 15),
			wantEnd:   date(2017, time.June, 16).Add(-time.Nanosecond),
		},
		{
			name:      "month",
			g:         GranularityMonth,
			wantStart: date(2017, time.June, 1),
			wantEnd:   date(2017, time.July, 1).Add(-time.Nanosecond),
		},
		{
			name:      "year",
			g:         GranularityYear,
			wantStart: date(2017, time.January, 1),
			wantEnd:   date(2018, time.January, 1).Add(-time.Nanosecond),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.UnitStart(at); !got.Equal(tt.wantStart) {
				t.Errorf("UnitStart = %v, want %v", got, tt.wantStart)
			}
			if got := tt.g.UnitEnd(at); !got.Equal(tt.wantEnd) {
				t.Errorf("UnitEnd = %v, want %v", got, tt.wantEnd)
			}
		})
	}
}

func TestUnitEndDecemberRollsIntoNextYear(t *testing.T) {
	got := GranularityMonth.UnitEnd(date(2017, time.December, 20))
	want := date(2018, time.January, 1).Add(-time.Nanosecond)
	if !got.Equal(want) {
		t.Fatalf("UnitEnd = %v, want %v", got, want)
	}
}

func TestSameAtGranularity(t *testing.T) {
	morning := time.Date(2017, time.June, 15, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2017, time.June, 15, 22, 30, 0, 0, time.UTC)
	nextDay := time.Date(2017, time.June, 16, 8, 0, 0, 0, time.UTC)

	if !GranularityDate.Same(morning, evening) {
		t.Error("same day should match at date granularity")
	}
	if GranularityDate.Same(morning, nextDay) {
		t.Error("different days should not match at date granularity")
	}
	if !GranularityMonth.Same(morning, nextDay) {
		t.Error("same month should match at month granularity")
	}
	if GranularityDate.Same(morning, time.Time{}) {
		t.Error("zero time must never match a real date")
	}
}

func TestBetweenInclusive(t *testing.T) {
	lo := date(2017, time.April, 1)
	hi := date(2017, time.April, 5)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{name: "before", at: date(2017, time.March, 31), want: false},
		{name: "lower endpoint", at: lo, want: true},
		{name: "inside", at: date(2017, time.April, 3), want: true},
		{name: "upper endpoint", at: hi, want: true},
		{name: "after", at: date(2017, time.April, 6), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GranularityDate.Between(tt.at, lo, hi); got != tt.want {
				t.Errorf("Between(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestBetweenTotalOverZeroBounds(t *testing.T) {
	at := date(2017, time.April, 3)
	if GranularityDate.Between(at, date(2017, time.April, 1), time.Time{}) {
		t.Error("zero upper bound must exclude every real date")
	}
	if GranularityDate.Between(at, time.Time{}, time.Time{}) {
		t.Error("zero bounds must exclude every real date")
	}
}
