package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/jask/rangepick/internal/picker"
)

// renderPane draws one picker's calendar: title line, page label, weekday
// header (day grids only) and the styled cell grid. The cells have already
// been decorated by the coordinator's draw pass; this only maps markers to
// styles.
func renderPane(p *picker.Picker, cells []*picker.Cell, cursor time.Time, focused bool) string {
	var lines []string

	title := paneTitleStyle.Render(p.Title())
	if !p.Enabled() {
		title = paneDisabledTitle.Render(p.Title() + " (pick a start date first)")
	}
	lines = append(lines, title)
	lines = append(lines, statusStyle.Render(pageLabel(p)))

	cols := 3
	if p.Granularity() == picker.GranularityDate {
		cols = 7
		lines = append(lines, weekdayStyle.Render("Su Mo Tu We Th Fr Sa"))
	}

	var row []string
	for i, c := range cells {
		isCursor := focused && p.Enabled() && p.Granularity().Same(c.Date, cursor)
		row = append(row, styleCell(c, p.Granularity(), isCursor))
		if (i+1)%cols == 0 {
			lines = append(lines, strings.Join(row, " "))
			row = row[:0]
		}
	}
	if len(row) > 0 {
		lines = append(lines, strings.Join(row, " "))
	}

	picked := "not picked"
	if !p.Date().IsZero() {
		picked = p.FormatDate(p.Date())
	}
	lines = append(lines, statusStyle.Render("picked: "+picked))

	frame := paneStyle
	if !p.Enabled() {
		frame = paneDisabledStyle
	} else if focused {
		frame = paneFocusedStyle
	}
	return frame.Render(strings.Join(lines, "\n"))
}

// pageLabel names the visible page: month, year, or decade.
func pageLabel(p *picker.Picker) string {
	page := p.Page()
	switch p.Granularity() {
	case picker.GranularityMonth:
		return page.Format("2006")
	case picker.GranularityYear:
		return fmt.Sprintf("%d – %d", page.Year(), page.Year()+9)
	default:
		return page.Format("January 2006")
	}
}

func cellLabel(c *picker.Cell, g picker.Granularity) string {
	switch g {
	case picker.GranularityMonth:
		return c.Date.Format("Jan ")
	case picker.GranularityYear:
		return c.Date.Format("2006")
	default:
		return fmt.Sprintf("%2d", c.Date.Day())
	}
}

// styleCell maps cell markers to one style, highest precedence first: the
// cursor, then the range boundaries, the in-range body, blocked cells, today,
// and filler cells outside the page's own month/decade.
func styleCell(c *picker.Cell, g picker.Granularity, isCursor bool) string {
	label := cellLabel(c, g)
	switch {
	case isCursor:
		return cellCursorStyle.Render(label)
	case c.Boundary:
		return cellBoundaryStyle.Render(label)
	case c.InRange:
		return cellInRangeStyle.Render(label)
	case c.Blocked:
		return cellBlockedStyle.Render(label)
	case c.Today:
		return cellTodayStyle.Render(label)
	case !c.InMonth:
		return cellFillerStyle.Render(label)
	default:
		return cellStyle.Render(label)
	}
}
