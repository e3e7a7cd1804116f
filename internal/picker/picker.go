package picker

import (
	"errors"
	"time"
)

// ErrNotSelectable is returned by SetDate when the requested date falls on a
// blocked span, outside the installed selectable windows, outside the
// calendar domain, or while the picker is disabled.
var ErrNotSelectable = errors.New("date is not selectable")

// PickerConfig configures one bound picker.
type PickerConfig struct {
	Title   string
	Initial time.Time
}

// Picker owns a single selectable date at a fixed granularity, together with
// the blocked spans and selectable windows that constrain it, and notifies
// subscribers of date changes and draw passes. The zero time stands for "no
// date picked".
type Picker struct {
	title       string
	granularity Granularity
	format      string
	date        time.Time
	enabled     bool
	blocks      *BlockIndex
	windows     []Span
	page        time.Time

	notifier
}

// NewPicker builds an enabled picker with no date. The visible page starts at
// the initial date when one is configured, otherwise at now.
func NewPicker(cfg PickerConfig, g Granularity, format string, now time.Time) *Picker {
	page := now
	if !cfg.Initial.IsZero() {
		page = cfg.Initial
	}
	return &Picker{
		title:       cfg.Title,
		granularity: g,
		format:      format,
		enabled:     true,
		blocks:      NewBlockIndex(g),
		page:        g.UnitStart(page),
	}
}

func (p *Picker) Title() string            { return p.title }
func (p *Picker) Granularity() Granularity { return p.granularity }
func (p *Picker) Enabled() bool            { return p.enabled }

// Date returns the picked date, or the zero time when none is picked.
func (p *Picker) Date() time.Time { return p.date }

// FormatDate renders t with the picker's configured date format.
func (p *Picker) FormatDate(t time.Time) string { return t.Format(p.format) }

// SetDate picks a date, normalized to the start of its unit. The zero time
// clears the pick. A change notification fires only when the stored date
// actually changes.
func (p *Picker) SetDate(t time.Time) error {
	if t.IsZero() {
		p.SetNull()
		return nil
	}
	t = p.granularity.UnitStart(t)
	if !p.Selectable(t) {
		return ErrNotSelectable
	}
	if p.date.Equal(t) {
		return nil
	}
	p.date = t
	p.page = t
	p.emitChange()
	return nil
}

// SetNull clears the picked date.
func (p *Picker) SetNull() {
	if p.date.IsZero() {
		return
	}
	p.date = time.Time{}
	p.emitChange()
}

func (p *Picker) Enable()  { p.enabled = true }
func (p *Picker) Disable() { p.enabled = false }

// Blocks exposes the picker's blocked-span index.
func (p *Picker) Blocks() *BlockIndex { return p.blocks }

// SetWindows replaces the explicit selectable windows. An empty list means
// the whole domain is selectable apart from the blocked spans.
func (p *Picker) SetWindows(windows []Span) {
	p.windows = append(p.windows[:0:0], windows...)
}

// Windows returns a copy of the installed selectable windows.
func (p *Picker) Windows() []Span {
	return append([]Span(nil), p.windows...)
}

// Selectable reports whether the unit containing t can be picked right now:
// the picker is enabled, the unit lies inside the domain, it overlaps a
// selectable window when windows are installed, and no blocked span touches
// it.
func (p *Picker) Selectable(t time.Time) bool {
	if !p.enabled || t.IsZero() {
		return false
	}
	lo, hi := p.granularity.UnitStart(t), p.granularity.UnitEnd(t)
	if lo.Before(DomainMin) || hi.After(DomainMax) {
		return false
	}
	if len(p.windows) > 0 {
		overlaps := false
		for _, w := range p.windows {
			if w.Overlaps(lo, hi) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			return false
		}
	}
	if _, ok := p.blocks.Query(lo, hi); !ok {
		return false
	}
	return true
}

// Page returns the first unit of the visible page: the month for date
// granularity, the year for month granularity, the decade for year
// granularity.
func (p *Picker) Page() time.Time {
	switch p.granularity {
	case GranularityMonth:
		return GranularityYear.UnitStart(p.page)
	case GranularityYear:
		y := p.page.Year()
		return time.Date(y-y%10, time.January, 1, 0, 0, 0, 0, p.page.Location())
	default:
		return GranularityMonth.UnitStart(p.page)
	}
}

// SetPage moves the visible page to the one containing t.
func (p *Picker) SetPage(t time.Time) {
	if t.IsZero() {
		return
	}
	p.page = p.granularity.UnitStart(t)
}

// NextPage pages the calendar forward without touching the picked date.
func (p *Picker) NextPage() { p.page = p.pageStep(1) }

// PrevPage pages the calendar backward.
func (p *Picker) PrevPage() { p.page = p.pageStep(-1) }

func (p *Picker) pageStep(dir int) time.Time {
	switch p.granularity {
	case GranularityMonth:
		return p.page.AddDate(dir, 0, 0)
	case GranularityYear:
		return p.page.AddDate(10*dir, 0, 0)
	default:
		return p.page.AddDate(0, dir, 0)
	}
}

// Draw builds the cell grid for the visible page, delivers it to draw
// subscribers (which decorate the cells in place), and returns it. Paging
// that does not change the picked date still produces a full draw pass.
func (p *Picker) Draw(now time.Time) []*Cell {
	cells := p.buildCells(now)
	p.emitDraw(DrawEvent{Granularity: p.granularity, Cells: cells})
	return cells
}

func (p *Picker) buildCells(now time.Time) []*Cell {
	switch p.granularity {
	case GranularityMonth:
		return p.monthCells(now)
	case GranularityYear:
		return p.yearCells(now)
	default:
		return p.dayCells(now)
	}
}

// dayCells covers whole weeks from the Sunday on or before the 1st through
// the Saturday on or after the last day of the visible month.
func (p *Picker) dayCells(now time.Time) []*Cell {
	monthStart := GranularityMonth.UnitStart(p.page)
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, 6-int(monthEnd.Weekday()))

	var cells []*Cell
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		cells = append(cells, &Cell{
			Date:    day,
			InMonth: day.Month() == monthStart.Month(),
			Blocked: !p.Selectable(day),
			Today:   GranularityDate.Same(day, now),
		})
	}
	return cells
}

func (p *Picker) monthCells(now time.Time) []*Cell {
	yearStart := GranularityYear.UnitStart(p.page)
	cells := make([]*Cell, 0, 12)
	for i := 0; i < 12; i++ {
		month := yearStart.AddDate(0, i, 0)
		cells = append(cells, &Cell{
			Date:    month,
			InMonth: true,
			Blocked: !p.Selectable(month),
			Today:   GranularityMonth.Same(month, now),
		})
	}
	return cells
}

// yearCells shows a decade padded with one year on each side, matching the
// month grid's 3x4 shape.
func (p *Picker) yearCells(now time.Time) []*Cell {
	decadeStart := p.Page()
	cells := make([]*Cell, 0, 12)
	for i := -1; i <= 10; i++ {
		year := decadeStart.AddDate(i, 0, 0)
		cells = append(cells, &Cell{
			Date:    year,
			InMonth: i >= 0 && i <= 9,
			Blocked: !p.Selectable(year),
			Today:   GranularityYear.Same(year, now),
		})
	}
	return cells
}

// Destroy detaches every subscription. The picker must not be used after.
func (p *Picker) Destroy() {
	p.offAll()
}
