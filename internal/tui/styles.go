package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	primaryColor = lipgloss.Color("#7C3AED") // Purple
	runningColor = lipgloss.Color("#00C46A") // Green
	cyclingColor = lipgloss.Color("#FFB545") // Amber
	errorColor   = lipgloss.Color("#EF4444") // Red
	mutedColor   = lipgloss.Color("#6B7280") // Gray
	textColor    = lipgloss.Color("#F9FAFB") // Light gray
)

// Styles
var (
	// App chrome
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			Background(primaryColor).
			Padding(0, 1).
			MarginBottom(1)

	// Navigation
	navStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginBottom(1)

	navActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	navInactiveStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	// Cards and boxes
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	focusedCardStyle = cardStyle.
				BorderForeground(primaryColor)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// Metrics
	metricLabelStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Width(20)

	metricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(textColor)

	// Map
	mapDotStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Faint(true)

	mapCursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// Popup and list entry styles by workout type
	runningStyle = lipgloss.NewStyle().
			Foreground(runningColor)

	cyclingStyle = lipgloss.NewStyle().
			Foreground(cyclingColor)

	// List
	entryStyle = lipgloss.NewStyle().
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(mutedColor).
			PaddingLeft(1).
			MarginBottom(1)

	selectedEntryStyle = entryStyle.
				BorderForeground(primaryColor).
				Bold(true)

	// Form
	formLabelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(12)

	formFocusedLabelStyle = formLabelStyle.
				Foreground(primaryColor).
				Bold(true)

	// Status
	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	alertStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			Background(errorColor).
			Padding(0, 2)

	// Help
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// popupStyle maps a marker popup class to its style
func popupStyle(class string) lipgloss.Style {
	switch class {
	case "running-popup":
		return runningStyle
	case "cycling-popup":
		return cyclingStyle
	default:
		return lipgloss.NewStyle()
	}
}

// RenderMetric renders a metric with label and value
func RenderMetric(label, value string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		metricLabelStyle.Render(label),
		metricValueStyle.Render(value),
	)
}

// RenderKeyHelp renders a key binding help item
func RenderKeyHelp(key, desc string) string {
	return helpKeyStyle.Render(key) + " " + helpDescStyle.Render(desc)
}
