package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	primaryColor = lipgloss.Color("#7C3AED") // purple
	accentColor  = lipgloss.Color("#F59E0B") // amber

	upColor      = lipgloss.Color("#10B981") // green
	downColor    = lipgloss.Color("#EF4444") // red
	neutralColor = lipgloss.Color("#6B7280") // gray

	borderColor      = lipgloss.Color("#374151")
	focusBorderColor = lipgloss.Color("#7C3AED")

	textColor          = lipgloss.Color("#F9FAFB")
	textSecondaryColor = lipgloss.Color("#9CA3AF")
	textMutedColor     = lipgloss.Color("#6B7280")
)

// Panel styles
var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	focusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(focusBorderColor).
				Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textSecondaryColor)

	labelStyle = lipgloss.NewStyle().
			Foreground(textSecondaryColor)

	valueStyle = lipgloss.NewStyle().
			Foreground(textColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(textMutedColor)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(textColor).
				Background(lipgloss.Color("#374151"))
)

// Market direction styles
var (
	upStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(upColor)

	downStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(downColor)

	neutralStyle = lipgloss.NewStyle().
			Foreground(neutralColor)

	alertStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)
)

// Chart styles
var (
	candleUpStyle = lipgloss.NewStyle().
			Foreground(upColor)

	candleDownStyle = lipgloss.NewStyle().
			Foreground(downColor)

	ma20Style = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6")) // blue

	ma50Style = lipgloss.NewStyle().
			Foreground(accentColor)

	chartAxisStyle = lipgloss.NewStyle().
			Foreground(textMutedColor)

	volumeStyle = lipgloss.NewStyle().
			Foreground(textMutedColor)
)

// Status bar styles
var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(textSecondaryColor).
			Padding(0, 1)

	statusKeyStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(downColor)
)

// renderTitle renders a panel title bar.
func renderTitle(title string, focused bool) string {
	style := titleStyle
	if focused {
		style = style.Foreground(focusBorderColor)
	}
	return style.Render(title)
}
