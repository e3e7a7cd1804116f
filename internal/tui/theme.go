package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorCrust    lipgloss.Color = "#11111b"
)

// ---------------------------------------------------------------------------
// Semantic styles
// ---------------------------------------------------------------------------

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	statusStyle    = lipgloss.NewStyle().Foreground(colorSubtext0)
	errorStyle     = lipgloss.NewStyle().Foreground(colorRed)
	footerStyle    = lipgloss.NewStyle().Foreground(colorOverlay1)
	footerKeyStyle = lipgloss.NewStyle().Foreground(colorLavender)
	commandStyle   = lipgloss.NewStyle().Foreground(colorPeach)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)
	paneFocusedStyle = paneStyle.
				BorderForeground(colorLavender)
	paneDisabledStyle = paneStyle.
				BorderForeground(colorSurface0)

	paneTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	paneDisabledTitle = lipgloss.NewStyle().Foreground(colorOverlay0)
	weekdayStyle      = lipgloss.NewStyle().Foreground(colorOverlay1)

	// Calendar cell styles, in increasing precedence.
	cellStyle         = lipgloss.NewStyle().Foreground(colorText)
	cellFillerStyle   = lipgloss.NewStyle().Foreground(colorOverlay0)
	cellBlockedStyle  = lipgloss.NewStyle().Foreground(colorRed).Strikethrough(true)
	cellInRangeStyle  = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1)
	cellBoundaryStyle = lipgloss.NewStyle().Foreground(colorCrust).Background(colorLavender).Bold(true)
	cellTodayStyle    = lipgloss.NewStyle().Foreground(colorTeal).Underline(true)
	cellCursorStyle   = lipgloss.NewStyle().Foreground(colorCrust).Background(colorPink).Bold(true)
)
