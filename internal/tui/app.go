package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/rangepick/internal/config"
	"github.com/jask/rangepick/internal/database/repository"
	"github.com/jask/rangepick/internal/picker"
)

type focusArea int

const (
	focusStart focusArea = iota
	focusEnd
)

type errMsg struct{ err error }
type statusMsg string

// App is the Bubble Tea model: two linked calendar panes over one range
// coordinator, plus command mode and blackout persistence.
type App struct {
	ctx   context.Context
	cfg   config.Config
	coord *picker.Coordinator
	repo  *repository.BlackoutRepo
	tz    *time.Location
	now   func() time.Time

	focus        focusArea
	cursor       time.Time
	status       string
	commandOpen  bool
	commandInput string
	width        int
}

// New wires the coordinator from config and the persisted blackouts.
func New(ctx context.Context, cfg config.Config, repo *repository.BlackoutRepo, blackouts []repository.Blackout, tz *time.Location) (*App, error) {
	if tz == nil {
		tz = time.UTC
	}
	a := &App{
		ctx:  ctx,
		cfg:  cfg,
		repo: repo,
		tz:   tz,
		now:  time.Now,
	}
	g, err := picker.ParseGranularity(cfg.Picker.Granularity)
	if err != nil {
		return nil, err
	}
	if err := a.buildCoordinator(g, blackouts); err != nil {
		return nil, err
	}
	a.cursor = g.UnitStart(a.clock())
	return a, nil
}

func (a *App) buildCoordinator(g picker.Granularity, blackouts []repository.Blackout) error {
	policy := picker.ClampBlockedStart
	if strings.EqualFold(a.cfg.Picker.BlackoutPolicy, "clear") {
		policy = picker.ClearBlockedStart
	}
	spans := make([]picker.Span, 0, len(blackouts))
	for _, b := range blackouts {
		spans = append(spans, picker.NewSpan(b.StartAt.In(a.tz), b.EndAt.In(a.tz)))
	}
	coord, err := picker.NewCoordinator(picker.Config{
		Start:        &picker.PickerConfig{Title: "Start"},
		End:          &picker.PickerConfig{Title: "End"},
		Granularity:  g,
		Format:       a.cfg.UI.DateFormat,
		Blocks:       spans,
		BlockedStart: policy,
	}, a.clock())
	if err != nil {
		return err
	}
	if a.coord != nil {
		a.coord.Destroy()
	}
	a.coord = coord
	a.coord.On(picker.EventChangeStart, func() { a.status = "" })
	a.coord.On(picker.EventChangeEnd, func() { a.status = "" })
	return nil
}

func (a *App) clock() time.Time {
	return a.now().In(a.tz)
}

func (a *App) granularity() picker.Granularity {
	return a.coord.Startpicker().Granularity()
}

func (a *App) focusedPicker() *picker.Picker {
	if a.focus == focusEnd {
		return a.coord.Endpicker()
	}
	return a.coord.Startpicker()
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
	case errMsg:
		a.status = errorStyle.Render(m.err.Error())
	case statusMsg:
		a.status = string(m)
	case tea.KeyMsg:
		if a.commandOpen {
			return a.handleCommandKey(m)
		}
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		a.coord.Destroy()
		return a, tea.Quit
	case ":":
		a.commandOpen = true
		a.commandInput = ""
		a.status = ""
	case "tab":
		a.switchFocus()
	case "left", "h":
		a.moveCursor(-1)
	case "right", "l":
		a.moveCursor(1)
	case "up", "k":
		a.moveCursor(-a.gridColumns())
	case "down", "j":
		a.moveCursor(a.gridColumns())
	case "[":
		a.focusedPicker().PrevPage()
		a.snapCursorToPage()
	case "]":
		a.focusedPicker().NextPage()
		a.snapCursorToPage()
	case "enter", " ":
		return a, a.pickCursor()
	case "backspace", "x":
		a.clearFocused()
	case "b":
		return a, a.toggleBlackout()
	}
	return a, nil
}

func (a *App) handleCommandKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc", "ctrl+c":
		a.commandOpen = false
		a.commandInput = ""
	case "enter":
		a.commandOpen = false
		input := a.commandInput
		a.commandInput = ""
		return a.executeCommand(input)
	case "backspace":
		if len(a.commandInput) > 0 {
			a.commandInput = a.commandInput[:len(a.commandInput)-1]
		}
	default:
		if len(m.String()) == 1 {
			a.commandInput += m.String()
		}
	}
	return a, nil
}

func (a *App) switchFocus() {
	if a.focus == focusStart {
		if !a.coord.Endpicker().Enabled() {
			a.status = "pick a start date to enable the end picker"
			return
		}
		a.focus = focusEnd
	} else {
		a.focus = focusStart
	}
	a.snapCursorToFocused()
}

// snapCursorToFocused puts the cursor on the focused picker's date, or on its
// visible page when no date is picked.
func (a *App) snapCursorToFocused() {
	p := a.focusedPicker()
	if d := p.Date(); !d.IsZero() {
		a.cursor = d
		return
	}
	a.cursor = p.Page()
}

func (a *App) snapCursorToPage() {
	a.cursor = a.focusedPicker().Page()
}

func (a *App) gridColumns() int {
	if a.granularity() == picker.GranularityDate {
		return 7
	}
	return 3
}

func (a *App) moveCursor(units int) {
	g := a.granularity()
	switch g {
	case picker.GranularityMonth:
		a.cursor = a.cursor.AddDate(0, units, 0)
	case picker.GranularityYear:
		a.cursor = a.cursor.AddDate(units, 0, 0)
	default:
		a.cursor = a.cursor.AddDate(0, 0, units)
	}
	a.cursor = g.UnitStart(a.cursor)
	a.focusedPicker().SetPage(a.cursor)
}

// pickCursor selects the cursor cell on the focused picker through the
// coordinator, so programmatic sets and interactive picks share one path.
func (a *App) pickCursor() tea.Cmd {
	var err error
	if a.focus == focusEnd {
		err = a.coord.SetEndDate(a.cursor)
	} else {
		err = a.coord.SetStartDate(a.cursor)
	}
	if err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	if a.focus == focusStart && a.cfg.UI.AutoAdvance && a.coord.Endpicker().Enabled() {
		a.focus = focusEnd
	}
	return nil
}

func (a *App) clearFocused() {
	if a.focus == focusEnd {
		_ = a.coord.SetEndDate(time.Time{})
		return
	}
	_ = a.coord.SetStartDate(time.Time{})
	a.focus = focusStart
}

// toggleBlackout adds a one-unit blackout under the cursor, or removes the
// blackout covering it, keeping the database in step with the block index.
func (a *App) toggleBlackout() tea.Cmd {
	g := a.granularity()
	blocks := a.coord.Startpicker().Blocks()
	if span, ok := blocks.SpanAt(a.cursor); ok {
		a.coord.RemoveBlock(span.Lower, span.Upper, picker.GranularityExact)
		return func() tea.Msg {
			if _, err := a.repo.DeleteBySpan(a.ctx, span.Lower, span.Upper); err != nil {
				return errMsg{err}
			}
			return statusMsg("blackout removed")
		}
	}
	lo, hi := g.UnitStart(a.cursor), g.UnitEnd(a.cursor)
	a.coord.AddBlock(lo, hi)
	return func() tea.Msg {
		if _, err := a.repo.Insert(a.ctx, "", lo, hi); err != nil {
			return errMsg{err}
		}
		return statusMsg("blackout added")
	}
}

func (a *App) executeCommand(input string) (tea.Model, tea.Cmd) {
	cmd, ok := parseCommand(input)
	if !ok {
		return a, nil
	}
	if !knownCommand(cmd.name) {
		a.status = unknownCommandStatus(cmd.name)
		return a, nil
	}
	switch cmd.name {
	case "quit":
		a.coord.Destroy()
		return a, tea.Quit
	case "clear":
		_ = a.coord.SetStartDate(time.Time{})
		a.focus = focusStart
		a.status = "range cleared"
	case "today":
		a.cursor = a.granularity().UnitStart(a.clock())
		a.focusedPicker().SetPage(a.cursor)
	case "start", "end":
		if len(cmd.args) != 1 {
			a.status = fmt.Sprintf("usage: %s <date>", cmd.name)
			return a, nil
		}
		t, err := parseDate(cmd.args[0], a.cfg.UI.DateFormat, a.tz)
		if err != nil {
			a.status = errorStyle.Render(err.Error())
			return a, nil
		}
		if cmd.name == "start" {
			err = a.coord.SetStartDate(t)
		} else {
			err = a.coord.SetEndDate(t)
		}
		if err != nil {
			a.status = errorStyle.Render(err.Error())
			return a, nil
		}
		a.cursor = a.granularity().UnitStart(t)
		a.focusedPicker().SetPage(a.cursor)
	case "goto":
		if len(cmd.args) != 1 {
			a.status = "usage: goto <date>"
			return a, nil
		}
		t, err := parseDate(cmd.args[0], a.cfg.UI.DateFormat, a.tz)
		if err != nil {
			a.status = errorStyle.Render(err.Error())
			return a, nil
		}
		a.cursor = a.granularity().UnitStart(t)
		a.focusedPicker().SetPage(a.cursor)
	case "block", "unblock":
		return a, a.rangeBlackoutCommand(cmd)
	case "granularity":
		if len(cmd.args) != 1 {
			a.status = "usage: granularity <date|month|year>"
			return a, nil
		}
		return a, a.changeGranularity(cmd.args[0])
	case "save":
		if err := config.Save(a.cfg); err != nil {
			a.status = errorStyle.Render(err.Error())
			return a, nil
		}
		a.status = "config saved"
	}
	return a, nil
}

func (a *App) rangeBlackoutCommand(cmd command) tea.Cmd {
	if len(cmd.args) < 2 {
		a.status = fmt.Sprintf("usage: %s <from> <to>", cmd.name)
		return nil
	}
	from, err := parseDate(cmd.args[0], a.cfg.UI.DateFormat, a.tz)
	if err != nil {
		a.status = errorStyle.Render(err.Error())
		return nil
	}
	to, err := parseDate(cmd.args[1], a.cfg.UI.DateFormat, a.tz)
	if err != nil {
		a.status = errorStyle.Render(err.Error())
		return nil
	}
	g := a.granularity()
	lo, hi := g.UnitStart(from), g.UnitEnd(to)

	if cmd.name == "unblock" {
		if !a.coord.RemoveBlock(from, to, g) {
			a.status = "no blackout with those bounds"
			return nil
		}
		return func() tea.Msg {
			if _, err := a.repo.DeleteBySpan(a.ctx, lo, hi); err != nil {
				return errMsg{err}
			}
			return statusMsg("blackout removed")
		}
	}

	label := strings.Join(cmd.args[2:], " ")
	a.coord.AddBlock(from, to)
	return func() tea.Msg {
		if _, err := a.repo.Insert(a.ctx, label, lo, hi); err != nil {
			return errMsg{err}
		}
		return statusMsg("blackout added")
	}
}

// changeGranularity rebuilds the coordinator at the new unit, reloading the
// blackouts from the database so span bounds are re-normalized cleanly.
func (a *App) changeGranularity(name string) tea.Cmd {
	g, err := picker.ParseGranularity(name)
	if err != nil {
		a.status = errorStyle.Render(err.Error())
		return nil
	}
	blackouts, err := a.repo.List(a.ctx)
	if err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	if err := a.buildCoordinator(g, blackouts); err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	a.cfg.Picker.Granularity = g.String()
	a.focus = focusStart
	a.cursor = g.UnitStart(a.clock())
	a.status = "granularity: " + g.String()
	return nil
}

func (a *App) View() string {
	now := a.clock()
	startPane := renderPane(a.coord.Startpicker(), a.coord.Startpicker().Draw(now), a.cursor, a.focus == focusStart)
	endPane := renderPane(a.coord.Endpicker(), a.coord.Endpicker().Draw(now), a.cursor, a.focus == focusEnd)

	var body string
	if a.cfg.UI.ShowBoth {
		body = lipgloss.JoinHorizontal(lipgloss.Top, startPane, " ", endPane)
	} else if a.focus == focusEnd {
		body = endPane
	} else {
		body = startPane
	}

	out := titleStyle.Render("RangePick") + "  " + statusStyle.Render(a.rangeSummary()) + "\n" + body
	if a.status != "" {
		out += "\n" + a.status
	}
	if a.commandOpen {
		out += "\n" + commandStyle.Render(":"+a.commandInput)
	} else {
		out += "\n" + a.footer()
	}
	return out
}

// rangeSummary is the one-line state of the picked range.
func (a *App) rangeSummary() string {
	start, end := a.coord.StartDate(), a.coord.EndDate()
	if start.IsZero() {
		return "no range"
	}
	format := a.coord.Startpicker().FormatDate
	if end.IsZero() {
		return format(start) + " → ?"
	}
	summary := format(start) + " → " + format(end)
	if a.granularity() == picker.GranularityDate {
		days := int(end.Sub(start).Hours()/24) + 1
		summary += fmt.Sprintf(" (%d days)", days)
	}
	return summary
}

func (a *App) footer() string {
	hints := []string{
		hint("tab", "switch"),
		hint("↑↓←→", "move"),
		hint("[ ]", "page"),
		hint("enter", "pick"),
		hint("x", "clear"),
		hint("b", "blackout"),
		hint(":", "command"),
		hint("q", "quit"),
	}
	return footerStyle.Render(strings.Join(hints, "  "))
}

func hint(key, desc string) string {
	return footerKeyStyle.Render(key) + footerStyle.Render(" "+desc)
}
