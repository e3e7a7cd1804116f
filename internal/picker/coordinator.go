package picker

import (
	"errors"
	"fmt"
	"time"
)

// ErrConfig is returned by NewCoordinator when a mandatory picker config is
// missing. There is no single-sided range picker.
var ErrConfig = errors.New("invalid coordinator config")

// BlockedStartPolicy decides what happens when a block mutation leaves the
// already-picked start date inside a blocked span. SetDate refuses blocked
// dates up front, so the policy only triggers on block edits made after the
// start was picked.
type BlockedStartPolicy int

const (
	// ClampBlockedStart keeps the start date and collapses the end picker's
	// window to the start date's own unit.
	ClampBlockedStart BlockedStartPolicy = iota
	// ClearBlockedStart reverts the start date to unset, which disables the
	// end picker.
	ClearBlockedStart
)

// Config configures a Coordinator. Start and End are mandatory.
type Config struct {
	Start        *PickerConfig
	End          *PickerConfig
	Granularity  Granularity
	Format       string
	Blocks       []Span
	BlockedStart BlockedStartPolicy
}

type coordSub struct {
	id int
	fn func()
}

// Coordinator links a start picker and an end picker into one range picker.
// It owns both pickers, keeps the end picker's selectable window derived from
// the start date and the blocked spans, and re-emits canonical change:start /
// change:end events so callers never depend on the inner pickers' own
// notifications.
//
// The held invariants, restored after every start change and block mutation:
// with no start date the end picker is disabled and has no date; with a start
// date the end picker is enabled and its sole selectable window runs from the
// start date to the last instant before the next blocked span (or the domain
// maximum), so an end date can never precede the start nor cross a blocked
// span.
type Coordinator struct {
	start  *Picker
	end    *Picker
	policy BlockedStartPolicy

	startChangeID int
	endChangeID   int
	startDrawID   int
	endDrawID     int

	nextSubID int
	subs      map[string][]coordSub
	muted     bool
}

// NewCoordinator builds both pickers, wires their notifications, applies the
// initial blocks and dates, and synchronizes the end picker's window before
// returning.
func NewCoordinator(cfg Config, now time.Time) (*Coordinator, error) {
	if cfg.Start == nil {
		return nil, fmt.Errorf("%w: start picker config is required", ErrConfig)
	}
	if cfg.End == nil {
		return nil, fmt.Errorf("%w: end picker config is required", ErrConfig)
	}
	g := cfg.Granularity
	if g == GranularityExact {
		g = GranularityDate
	}
	format := cfg.Format
	if format == "" {
		format = "2006-01-02"
	}

	c := &Coordinator{
		start:  NewPicker(*cfg.Start, g, format, now),
		end:    NewPicker(*cfg.End, g, format, now),
		policy: cfg.BlockedStart,
		subs:   make(map[string][]coordSub),
	}
	c.startChangeID = c.start.OnChange(c.onStartChange)
	c.endChangeID = c.end.OnChange(c.onEndChange)
	c.startDrawID = c.start.OnDraw(c.onDraw)
	c.endDrawID = c.end.OnDraw(c.onDraw)

	c.start.Blocks().Set(cfg.Blocks)
	if !cfg.Start.Initial.IsZero() {
		if err := c.start.SetDate(cfg.Start.Initial); err != nil {
			return nil, fmt.Errorf("initial start date: %w", err)
		}
	}
	c.syncEndWindow()
	if !cfg.End.Initial.IsZero() {
		if err := c.end.SetDate(cfg.End.Initial); err != nil {
			return nil, fmt.Errorf("initial end date: %w", err)
		}
	}
	return c, nil
}

// Startpicker exposes the owned start picker. Mutating its date or blocks
// directly bypasses window synchronization; go through the coordinator.
func (c *Coordinator) Startpicker() *Picker { return c.start }

// Endpicker exposes the owned end picker.
func (c *Coordinator) Endpicker() *Picker { return c.end }

// StartDate returns the picked start date, or the zero time.
func (c *Coordinator) StartDate() time.Time { return c.start.Date() }

// EndDate returns the picked end date, or the zero time.
func (c *Coordinator) EndDate() time.Time { return c.end.Date() }

// SetStartDate delegates to the start picker. Window synchronization happens
// reactively through the picker's change notification, so programmatic sets
// and direct user interaction share one code path.
func (c *Coordinator) SetStartDate(t time.Time) error {
	return c.start.SetDate(t)
}

// SetEndDate delegates to the end picker. End changes never move the window.
func (c *Coordinator) SetEndDate(t time.Time) error {
	return c.end.SetDate(t)
}

// SetBlocks replaces the blocked spans on the start picker and resynchronizes
// the end picker's window. The end picker never sees the raw span set, only
// the derived window.
func (c *Coordinator) SetBlocks(spans []Span) {
	c.start.Blocks().Set(spans)
	c.syncEndWindow()
}

// AddBlock adds one blocked span and resynchronizes.
func (c *Coordinator) AddBlock(lo, hi time.Time) {
	c.start.Blocks().Add(lo, hi)
	c.syncEndWindow()
}

// RemoveBlock removes a blocked span and resynchronizes. GranularityExact
// matches the stored bounds by raw timestamp; otherwise pass the granularity
// the span was added with.
func (c *Coordinator) RemoveBlock(lo, hi time.Time, g Granularity) bool {
	removed := c.start.Blocks().Remove(lo, hi, g)
	c.syncEndWindow()
	return removed
}

// On subscribes to a coordinator event (EventChangeStart or EventChangeEnd)
// and returns a subscription id for Off. By the time a change:start handler
// runs, the end picker's window has already been resynchronized.
func (c *Coordinator) On(event string, fn func()) int {
	c.nextSubID++
	c.subs[event] = append(c.subs[event], coordSub{id: c.nextSubID, fn: fn})
	return c.nextSubID
}

// Off removes one subscription from an event.
func (c *Coordinator) Off(event string, id int) {
	subs := c.subs[event]
	for i, s := range subs {
		if s.id == id {
			c.subs[event] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Destroy detaches all coordinator subscriptions and destroys both pickers.
// One-shot: the coordinator must not be used after.
func (c *Coordinator) Destroy() {
	c.muted = true
	c.start.Off(c.startChangeID)
	c.start.Off(c.startDrawID)
	c.end.Off(c.endChangeID)
	c.end.Off(c.endDrawID)
	c.start.Destroy()
	c.end.Destroy()
	c.subs = nil
	c.start = nil
	c.end = nil
}

func (c *Coordinator) emit(event string) {
	for _, s := range append([]coordSub(nil), c.subs[event]...) {
		s.fn()
	}
}

func (c *Coordinator) onStartChange() {
	if c.muted {
		return
	}
	c.syncEndWindow()
	c.emit(EventChangeStart)
}

func (c *Coordinator) onEndChange() {
	if c.muted {
		return
	}
	c.emit(EventChangeEnd)
}

// onDraw decorates the freshly built cells of either picker against the
// current range. Cells are rebuilt on every draw, so the pass stays
// idempotent by construction.
func (c *Coordinator) onDraw(ev DrawEvent) {
	Highlight(ev.Cells, c.start.Date(), c.end.Date(), ev.Granularity)
}

// syncEndWindow recomputes and installs the end picker's sole selectable
// window from the current start date. The window is recomputed whole rather
// than patched, so block edits can never drift from it.
func (c *Coordinator) syncEndWindow() {
	startDate := c.start.Date()
	if !startDate.IsZero() {
		g := c.start.Granularity()
		lo, hi := g.UnitStart(startDate), g.UnitEnd(startDate)
		win, ok := c.start.Blocks().Query(lo, hi)
		if !ok {
			// The start date now sits inside a blocked span. SetDate refuses
			// blocked dates, so this only happens on block edits made after
			// the start was picked.
			if c.policy == ClearBlockedStart {
				// The picker's own change notification re-enters the zero
				// path below and emits the canonical change:start.
				c.start.SetNull()
				return
			}
			win = Span{Lower: startDate, Upper: hi}
		}
		c.end.Enable()
		c.end.SetWindows([]Span{{Lower: startDate, Upper: win.Upper}})
		if end := c.end.Date(); !end.IsZero() && (end.Before(startDate) || end.After(win.Upper)) {
			c.end.SetNull()
		}
		return
	}
	c.end.SetNull()
	c.end.Disable()
	c.end.SetWindows(nil)
}
