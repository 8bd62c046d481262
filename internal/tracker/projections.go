package tracker

import (
	"time"

	"workoutmap/internal/workout"
)

// Marker is a map pin with an always-open popup
type Marker struct {
	Coordinates workout.Coordinates
	Draggable   bool
	PopupText   string
	PopupClass  string
}

// Map is the map rendering collaborator
type Map interface {
	Initialize(center workout.Coordinates, zoom int) (MapHandle, error)
	OnClick(handler func(workout.Coordinates))
}

// MapHandle is an initialized map view
type MapHandle interface {
	PlaceMarker(m Marker)
	Recenter(center workout.Coordinates, zoom int, animate bool)
}

// List is the visible workout list. Entries are keyed by workout id so a
// selection can be resolved back to the workout.
type List interface {
	AppendEntry(id, text string)
}

// Form is the workout entry form
type Form interface {
	Show()
	// Hide hides the form; it is not shown again before reopenDelay elapses.
	Hide(reopenDelay time.Duration)
	Clear()
	ToggleTypeField()
}

// Alerter reports messages to the user
type Alerter interface {
	Alert(msg string)
}
