package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	sections = append(sections, m.renderSection("Navigation", []keyHelp{
		{"1", "Map and workouts"},
		{"2", "Stats"},
		{"tab", "Switch focus between map and list"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	}))

	sections = append(sections, m.renderSection("Map", []keyHelp{
		{"arrows / hjkl", "Move the cursor"},
		{"enter", "Add a workout at the cursor"},
		{"+ / -", "Zoom in / out"},
		{"c", "Cursor back to center"},
	}))

	sections = append(sections, m.renderSection("Workout Form", []keyHelp{
		{"tab / shift+tab", "Next / previous field"},
		{"← / →", "Switch running / cycling (on the type row)"},
		{"ctrl+t", "Switch running / cycling"},
		{"enter", "Save workout"},
		{"esc", "Cancel"},
	}))

	sections = append(sections, m.renderSection("Workout List", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"enter", "Show workout on the map"},
	}))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, runningStyle.Bold(true).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}
