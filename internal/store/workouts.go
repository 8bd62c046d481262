package store

import (
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"workoutmap/internal/workout"
)

// Workouts is the ordered in-memory collection of the session's workouts.
// Insertion order is creation order.
type Workouts struct {
	items []workout.Workout
}

// NewWorkouts creates an empty collection
func NewWorkouts() *Workouts {
	return &Workouts{}
}

// Append adds a workout to the end of the collection
func (s *Workouts) Append(w workout.Workout) {
	s.items = append(s.items, w)
}

// FindByID returns the first workout with the given id
func (s *Workouts) FindByID(id string) (workout.Workout, bool) {
	for _, w := range s.items {
		if w.ID == id {
			return w, true
		}
	}
	return workout.Workout{}, false
}

// All returns a copy of the workouts in insertion order
func (s *Workouts) All() []workout.Workout {
	out := make([]workout.Workout, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of workouts held
func (s *Workouts) Len() int {
	return len(s.items)
}

// Serialize encodes the full sequence as a JSON array of plain records
func (s *Workouts) Serialize() ([]byte, error) {
	items := s.items
	if items == nil {
		items = []workout.Workout{}
	}
	return json.Marshal(items)
}

// Restore replaces the sequence with the records in blob. A missing or
// unreadable blob leaves the collection empty.
func (s *Workouts) Restore(blob []byte) {
	s.items = nil
	if len(blob) == 0 {
		return
	}

	var records []workout.Workout
	if err := json.Unmarshal(blob, &records); err != nil {
		log.Warnf("ignoring unreadable workout data: %v", err)
		return
	}
	s.items = records
}
