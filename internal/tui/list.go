package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type listEntry struct {
	id   string
	text string
}

// ListModel is the workout list. It implements tracker.List. Entries show
// newest first; each one keeps the id of the workout it renders.
type ListModel struct {
	entries  []listEntry // append order
	cursor   int         // index into the displayed (newest first) order
	height   int
	onSelect func(id string)
}

// NewListModel creates an empty list
func NewListModel() *ListModel {
	return &ListModel{height: 20}
}

// AppendEntry adds an entry keyed by workout id
func (m *ListModel) AppendEntry(id, text string) {
	m.entries = append(m.entries, listEntry{id: id, text: text})
	m.cursor = 0
}

// OnSelect registers the handler for entry selection
func (m *ListModel) OnSelect(handler func(id string)) {
	m.onSelect = handler
}

// Len returns the number of entries
func (m *ListModel) Len() int {
	return len(m.entries)
}

// SetHeight sets the number of terminal rows available
func (m *ListModel) SetHeight(h int) {
	if h > 0 {
		m.height = h
	}
}

// displayed returns the entry at position i of the newest-first order
func (m *ListModel) displayed(i int) listEntry {
	return m.entries[len(m.entries)-1-i]
}

// Selected returns the id under the cursor
func (m *ListModel) Selected() (string, bool) {
	if len(m.entries) == 0 {
		return "", false
	}
	return m.displayed(m.cursor).id, true
}

// Update handles keys while the list has focus
func (m *ListModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		if len(m.entries) > 0 {
			m.cursor = len(m.entries) - 1
		}
	case "enter", " ":
		if id, ok := m.Selected(); ok && m.onSelect != nil {
			m.onSelect(id)
		}
	}
	return nil
}

// View renders the entries around the cursor
func (m *ListModel) View(focused bool) string {
	if len(m.entries) == 0 {
		return helpDescStyle.Render("No workouts yet.\nPick a spot on the map and press enter.")
	}

	// Each entry takes three rows with its margin
	visible := m.height / 3
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}

	var rows []string
	for i := start; i < len(m.entries) && i < start+visible; i++ {
		style := entryStyle
		if focused && i == m.cursor {
			style = selectedEntryStyle
		}
		rows = append(rows, style.Render(m.displayed(i).text))
	}

	footer := helpDescStyle.Render(fmt.Sprintf("%d of %d", m.cursor+1, len(m.entries)))
	rows = append(rows, footer)

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
