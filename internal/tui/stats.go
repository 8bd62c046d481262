package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"

	"workoutmap/internal/analysis"
)

// StatsModel is the stats screen model
type StatsModel struct {
	summary  analysis.Summary
	viewport viewport.Model
	ready    bool
}

// NewStatsModel creates a new stats model
func NewStatsModel(width, height int) StatsModel {
	m := StatsModel{}
	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.ready = true
	}
	return m
}

// SetSummary replaces the data shown
func (m *StatsModel) SetSummary(s analysis.Summary) {
	m.summary = s
	if m.ready {
		m.viewport.SetContent(m.renderContent())
	}
}

// Update handles messages
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.renderContent())
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the stats screen
func (m StatsModel) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	footer := statusStyle.Render("  j/k or arrows: scroll")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m StatsModel) renderContent() string {
	s := m.summary
	if s.Count == 0 {
		return "\n  No workouts yet. Press '1' for the map and add one."
	}

	var sections []string

	overall := []string{
		cardTitleStyle.Render("All Workouts"),
		RenderMetric("Workouts", humanize.Comma(int64(s.Count))),
		RenderMetric("Distance", fmt.Sprintf("%s km", humanize.FormatFloat("#,###.#", s.TotalDistance))),
		RenderMetric("Time", formatMinutes(s.TotalDuration)),
		RenderMetric("Last workout", humanize.Time(s.Latest)),
	}
	sections = append(sections, cardStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, overall...)))

	running := []string{
		runningStyle.Bold(true).Render("Running"),
		RenderMetric("Runs", humanize.Comma(int64(s.RunCount))),
		RenderMetric("Distance", fmt.Sprintf("%.1f km", s.RunDistance)),
		RenderMetric("Avg pace", fmt.Sprintf("%.1f min/km", s.AvgPace)),
		RenderMetric("Avg cadence", fmt.Sprintf("%.0f spm", s.AvgCadence)),
	}
	cycling := []string{
		cyclingStyle.Bold(true).Render("Cycling"),
		RenderMetric("Rides", humanize.Comma(int64(s.RideCount))),
		RenderMetric("Distance", fmt.Sprintf("%.1f km", s.RideDistance)),
		RenderMetric("Avg speed", fmt.Sprintf("%.1f km/h", s.AvgSpeed)),
		RenderMetric("Elevation gain", fmt.Sprintf("%s m", humanize.FormatFloat("#,###.", s.TotalElevation))),
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Width(36).Render(lipgloss.JoinVertical(lipgloss.Left, running...)),
		cardStyle.Width(36).Render(lipgloss.JoinVertical(lipgloss.Left, cycling...)),
	))

	if len(s.Distances) > 1 {
		graph := asciigraph.Plot(s.Distances,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Precision(1),
			asciigraph.Caption("distance per workout (km)"),
		)
		sections = append(sections, cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			cardTitleStyle.Render("Distance Trend"), graph)))
	}

	return strings.Join(sections, "\n")
}

func formatMinutes(minutes float64) string {
	total := int(minutes + 0.5)
	h := total / 60
	m := total % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
