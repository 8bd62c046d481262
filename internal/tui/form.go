package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"workoutmap/internal/tracker"
	"workoutmap/internal/workout"
)

type formAction int

const (
	formNone formAction = iota
	formSubmit
	formCancel
	formTypeChanged
)

// Form rows
const (
	rowType = iota
	rowDistance
	rowDuration
	rowMetric
	rowCount
)

// Text inputs
const (
	inputDistance = iota
	inputDuration
	inputCadence
	inputElevation
	inputCount
)

type formReadyMsg struct{}

// FormModel is the workout entry form. It implements tracker.Form.
type FormModel struct {
	open          bool
	hiddenUntil   time.Time
	typ           workout.Type
	showElevation bool
	inputs        [inputCount]textinput.Model
	focus         int
	cmds          []tea.Cmd
	now           func() time.Time
}

// NewFormModel creates a hidden form with running selected
func NewFormModel() *FormModel {
	m := &FormModel{
		typ: workout.Running,
		now: time.Now,
	}

	placeholders := [inputCount]string{"km", "min", "step/min", "meters"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 12
		ti.Width = 12
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	return m
}

// Show opens the form with the distance field focused
func (m *FormModel) Show() {
	m.open = true
	m.setFocus(rowDistance)
}

// Hide closes the form; it stays invisible for reopenDelay
func (m *FormModel) Hide(reopenDelay time.Duration) {
	m.open = false
	m.hiddenUntil = m.now().Add(reopenDelay)
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if reopenDelay > 0 {
		m.cmds = append(m.cmds, tea.Tick(reopenDelay, func(time.Time) tea.Msg { return formReadyMsg{} }))
	}
}

// Clear empties every input
func (m *FormModel) Clear() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
}

// ToggleTypeField swaps the cadence and elevation rows
func (m *FormModel) ToggleTypeField() {
	m.showElevation = !m.showElevation
}

// Open reports whether the form accepts input. A form shown during the
// reopen delay stays inert until it is drawn.
func (m *FormModel) Open() bool {
	return m.Visible()
}

// Visible reports whether the form is drawn
func (m *FormModel) Visible() bool {
	return m.open && !m.now().Before(m.hiddenUntil)
}

// Input returns the raw field values
func (m *FormModel) Input() tracker.FormInput {
	return tracker.FormInput{
		Type:      string(m.typ),
		Distance:  m.inputs[inputDistance].Value(),
		Duration:  m.inputs[inputDuration].Value(),
		Cadence:   m.inputs[inputCadence].Value(),
		Elevation: m.inputs[inputElevation].Value(),
	}
}

func (m *FormModel) takeCmds() tea.Cmd {
	if len(m.cmds) == 0 {
		return nil
	}
	cmds := m.cmds
	m.cmds = nil
	return tea.Batch(cmds...)
}

// metricInput is the type-specific input currently shown
func (m *FormModel) metricInput() int {
	if m.showElevation {
		return inputElevation
	}
	return inputCadence
}

func (m *FormModel) rowInput(row int) int {
	switch row {
	case rowDistance:
		return inputDistance
	case rowDuration:
		return inputDuration
	case rowMetric:
		return m.metricInput()
	default:
		return -1
	}
}

func (m *FormModel) setFocus(row int) tea.Cmd {
	m.focus = (row + rowCount) % rowCount
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if idx := m.rowInput(m.focus); idx >= 0 {
		return m.inputs[idx].Focus()
	}
	return nil
}

// Update handles keys while the form is open
func (m *FormModel) Update(msg tea.Msg) (tea.Cmd, formAction) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.Open() {
		return nil, formNone
	}

	switch key.String() {
	case "esc":
		return nil, formCancel
	case "enter":
		return nil, formSubmit
	case "tab", "down":
		return m.setFocus(m.focus + 1), formNone
	case "shift+tab", "up":
		return m.setFocus(m.focus - 1), formNone
	case "ctrl+t":
		m.switchType()
		return nil, formTypeChanged
	}

	if m.focus == rowType {
		switch key.String() {
		case "left", "right", " ", "h", "l":
			m.switchType()
			return nil, formTypeChanged
		}
		return nil, formNone
	}

	idx := m.rowInput(m.focus)
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return cmd, formNone
}

func (m *FormModel) switchType() {
	if m.typ == workout.Running {
		m.typ = workout.Cycling
	} else {
		m.typ = workout.Running
	}
}

// View renders the form
func (m *FormModel) View() string {
	if !m.Visible() {
		return ""
	}

	label := func(row int, text string) string {
		if row == m.focus {
			return formFocusedLabelStyle.Render(text)
		}
		return formLabelStyle.Render(text)
	}

	typeValue := runningStyle.Render("◀ Running ▶")
	if m.typ == workout.Cycling {
		typeValue = cyclingStyle.Render("◀ Cycling ▶")
	}

	metricLabel := "Cadence"
	if m.showElevation {
		metricLabel = "Elev Gain"
	}

	rows := []string{
		cardTitleStyle.Render("New workout"),
		label(rowType, "Type") + typeValue,
		label(rowDistance, "Distance") + m.inputs[inputDistance].View(),
		label(rowDuration, "Duration") + m.inputs[inputDuration].View(),
		label(rowMetric, metricLabel) + m.inputs[m.metricInput()].View(),
		helpDescStyle.Render("enter: save  esc: cancel  tab: next field  ←/→ on type: switch"),
	}

	return focusedCardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
