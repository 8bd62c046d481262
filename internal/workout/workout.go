package workout

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Type is the discriminant selecting which workout variant applies
type Type string

const (
	Running Type = "running"
	Cycling Type = "cycling"
)

// ErrUnknownType is returned for a workout type other than running or cycling
var ErrUnknownType = errors.New("unknown workout type")

// months is indexed by time.Month-1
var months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Coordinates is a [latitude, longitude] pair
type Coordinates [2]float64

// Lat returns the latitude
func (c Coordinates) Lat() float64 { return c[0] }

// Lng returns the longitude
func (c Coordinates) Lng() float64 { return c[1] }

// Workout is a single recorded workout. Exactly one of the Running
// (Cadence, Pace) or Cycling (ElevationGain, Speed) payloads is set,
// matching Type.
type Workout struct {
	ID          string      `json:"id"`
	CreatedAt   time.Time   `json:"createdAt"`
	Coordinates Coordinates `json:"coordinates"`
	Distance    float64     `json:"distance"` // km
	Duration    float64     `json:"duration"` // min
	Type        Type        `json:"type"`
	Description string      `json:"description"`

	// Running
	Cadence *float64 `json:"cadence,omitempty"` // spm
	Pace    *float64 `json:"pace,omitempty"`    // min/km

	// Cycling
	ElevationGain *float64 `json:"elevationGain,omitempty"` // m
	Speed         *float64 `json:"speed,omitempty"`         // km/h
}

// NewRunning builds a running workout. Inputs are expected to be validated.
func NewRunning(id string, createdAt time.Time, coords Coordinates, distance, duration, cadence float64) Workout {
	pace := derived(distance / duration)
	return Workout{
		ID:          id,
		CreatedAt:   createdAt,
		Coordinates: coords,
		Distance:    distance,
		Duration:    duration,
		Type:        Running,
		Description: Describe(Running, createdAt),
		Cadence:     &cadence,
		Pace:        pace,
	}
}

// NewCycling builds a cycling workout. Inputs are expected to be validated.
func NewCycling(id string, createdAt time.Time, coords Coordinates, distance, duration, elevationGain float64) Workout {
	speed := derived(distance / (duration / 60))
	return Workout{
		ID:            id,
		CreatedAt:     createdAt,
		Coordinates:   coords,
		Distance:      distance,
		Duration:      duration,
		Type:          Cycling,
		Description:   Describe(Cycling, createdAt),
		ElevationGain: &elevationGain,
		Speed:         speed,
	}
}

// derived keeps a computed metric only when it is finite; JSON cannot
// carry NaN or Inf.
func derived(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// Describe returns the display title, e.g. "Running on April 14"
func Describe(t Type, at time.Time) string {
	name := string(t)
	if name != "" {
		name = strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
	}
	return fmt.Sprintf("%s on %s %d", name, months[at.Month()-1], at.Day())
}

// ParseType resolves a form value into a workout type
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case Running:
		return Running, nil
	case Cycling:
		return Cycling, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownType, s)
	}
}

// Icon returns the emoji shown next to a workout of this type
func (t Type) Icon() string {
	if t == Running {
		return "🏃‍♂️"
	}
	return "🚴‍♀️"
}
