package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"workoutmap/internal/tracker"
	"workoutmap/internal/workout"
)

const (
	minZoom = 1
	maxZoom = 18

	// A cell stands in for this many web map pixels horizontally; rows are
	// twice as tall as columns.
	cellPixels = 8
	tilePixels = 256

	panFrame = 50 * time.Millisecond
)

// MapModel is a terminal map. It implements tracker.Map and, once
// initialized, tracker.MapHandle.
type MapModel struct {
	width  int
	height int

	ready   bool
	center  workout.Coordinates
	zoom    int
	markers []tracker.Marker
	onClick func(workout.Coordinates)

	// cursor offset from the center, in cells
	cursorX int
	cursorY int

	panDuration time.Duration
	pan         *panAnimation
	cmds        []tea.Cmd
}

type panAnimation struct {
	from    workout.Coordinates
	to      workout.Coordinates
	started time.Time
}

type panTickMsg struct{}

// NewMapModel creates an uninitialized map
func NewMapModel(panDuration time.Duration) *MapModel {
	return &MapModel{
		width:       60,
		height:      18,
		panDuration: panDuration,
	}
}

// Initialize shows the map centered on center
func (m *MapModel) Initialize(center workout.Coordinates, zoom int) (tracker.MapHandle, error) {
	if zoom < minZoom || zoom > maxZoom {
		return nil, fmt.Errorf("zoom %d out of range", zoom)
	}
	m.center = center
	m.zoom = zoom
	m.ready = true
	return m, nil
}

// OnClick registers the handler for map clicks
func (m *MapModel) OnClick(handler func(workout.Coordinates)) {
	m.onClick = handler
}

// PlaceMarker adds a marker with an open popup
func (m *MapModel) PlaceMarker(mk tracker.Marker) {
	m.markers = append(m.markers, mk)
}

// Recenter moves the view to center, panning over the configured duration
// when animate is set.
func (m *MapModel) Recenter(center workout.Coordinates, zoom int, animate bool) {
	if zoom >= minZoom && zoom <= maxZoom {
		m.zoom = zoom
	}
	m.cursorX, m.cursorY = 0, 0

	if !animate || m.panDuration <= 0 {
		m.pan = nil
		m.center = center
		return
	}

	restart := m.pan == nil
	m.pan = &panAnimation{from: m.center, to: center, started: time.Now()}
	if restart {
		m.cmds = append(m.cmds, panTick())
	}
}

// Ready reports whether the map has been initialized
func (m *MapModel) Ready() bool {
	return m.ready
}

// SetSize sets the drawing area in cells
func (m *MapModel) SetSize(width, height int) {
	if width > 10 {
		m.width = width
	}
	if height > 4 {
		m.height = height
	}
	m.cursorX, m.cursorY = 0, 0
}

// takeCmds returns commands queued by projection calls
func (m *MapModel) takeCmds() tea.Cmd {
	if len(m.cmds) == 0 {
		return nil
	}
	cmds := m.cmds
	m.cmds = nil
	return tea.Batch(cmds...)
}

func panTick() tea.Cmd {
	return tea.Tick(panFrame, func(time.Time) tea.Msg { return panTickMsg{} })
}

// Update handles keys while the map has focus, and pan frames
func (m *MapModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case panTickMsg:
		return m.stepPan(time.Now())

	case tea.KeyMsg:
		if !m.ready {
			return nil
		}
		switch msg.String() {
		case "up", "k":
			m.moveCursor(0, -1)
		case "down", "j":
			m.moveCursor(0, 1)
		case "left", "h":
			m.moveCursor(-1, 0)
		case "right", "l":
			m.moveCursor(1, 0)
		case "+", "=":
			if m.zoom < maxZoom {
				m.zoom++
			}
		case "-":
			if m.zoom > minZoom {
				m.zoom--
			}
		case "c":
			m.cursorX, m.cursorY = 0, 0
		case "enter", " ":
			if m.onClick != nil {
				m.onClick(m.cursorCoordinates())
			}
		}
	}
	return nil
}

func (m *MapModel) stepPan(now time.Time) tea.Cmd {
	if m.pan == nil {
		return nil
	}
	progress := float64(now.Sub(m.pan.started)) / float64(m.panDuration)
	if progress >= 1 {
		m.center = m.pan.to
		m.pan = nil
		return nil
	}

	// ease out
	t := 1 - (1-progress)*(1-progress)
	m.center = workout.Coordinates{
		m.pan.from.Lat() + (m.pan.to.Lat()-m.pan.from.Lat())*t,
		m.pan.from.Lng() + (m.pan.to.Lng()-m.pan.from.Lng())*t,
	}
	return panTick()
}

// moveCursor moves the cursor, scrolling the map at the edges
func (m *MapModel) moveCursor(dx, dy int) {
	halfW, halfH := m.width/2, m.height/2
	x, y := m.cursorX+dx, m.cursorY+dy

	if x < -halfW || x >= m.width-halfW {
		m.center[1] += float64(dx) * m.degPerCol()
		x = m.cursorX
	}
	if y < -halfH || y >= m.height-halfH {
		m.center[0] -= float64(dy) * m.degPerRow()
		y = m.cursorY
	}
	m.cursorX, m.cursorY = x, y
}

func (m *MapModel) degPerCol() float64 {
	return 360 / (tilePixels * math.Pow(2, float64(m.zoom))) * cellPixels
}

func (m *MapModel) degPerRow() float64 {
	return 2 * m.degPerCol()
}

// cellCoordinates converts a cell offset from the center to coordinates
func (m *MapModel) cellCoordinates(dx, dy int) workout.Coordinates {
	return workout.Coordinates{
		m.center.Lat() - float64(dy)*m.degPerRow(),
		m.center.Lng() + float64(dx)*m.degPerCol(),
	}
}

func (m *MapModel) cursorCoordinates() workout.Coordinates {
	return m.cellCoordinates(m.cursorX, m.cursorY)
}

// cellOf returns the cell offset of c from the center
func (m *MapModel) cellOf(c workout.Coordinates) (int, int) {
	dx := int(math.Round((c.Lng() - m.center.Lng()) / m.degPerCol()))
	dy := int(math.Round((m.center.Lat() - c.Lat()) / m.degPerRow()))
	return dx, dy
}

func (m *MapModel) inView(dx, dy int) bool {
	halfW, halfH := m.width/2, m.height/2
	return dx >= -halfW && dx < m.width-halfW && dy >= -halfH && dy < m.height-halfH
}

// View renders the map grid, markers, cursor and open popups
func (m *MapModel) View() string {
	if !m.ready {
		return ""
	}

	halfW, halfH := m.width/2, m.height/2

	type cell struct {
		glyph string
		style lipgloss.Style
	}
	grid := make([][]cell, m.height)
	for y := range grid {
		grid[y] = make([]cell, m.width)
		for x := range grid[y] {
			grid[y][x] = cell{"·", mapDotStyle}
		}
	}

	var popups []string
	for _, mk := range m.markers {
		dx, dy := m.cellOf(mk.Coordinates)
		if !m.inView(dx, dy) {
			continue
		}
		style := popupStyle(mk.PopupClass)
		grid[dy+halfH][dx+halfW] = cell{"●", style.Bold(true)}
		popups = append(popups, style.Render("● "+mk.PopupText))
	}

	grid[m.cursorY+halfH][m.cursorX+halfW] = cell{"+", mapCursorStyle}

	var b strings.Builder
	for y, row := range grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			b.WriteString(c.style.Render(c.glyph))
		}
	}

	cursor := m.cursorCoordinates()
	status := helpDescStyle.Render(fmt.Sprintf("%.5f, %.5f  zoom %d", cursor.Lat(), cursor.Lng(), m.zoom))

	sections := []string{b.String(), status}
	if len(popups) > 0 {
		sections = append(sections, "", strings.Join(popups, "\n"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
