package analysis

import (
	"time"

	"workoutmap/internal/workout"
)

// Summary aggregates a set of workouts for the stats screen
type Summary struct {
	Count     int
	RunCount  int
	RideCount int

	TotalDistance float64 // km
	TotalDuration float64 // min
	RunDistance   float64 // km
	RunDuration   float64 // min
	RideDistance  float64 // km
	RideDuration  float64 // min

	AvgPace        float64 // min/km across runs, 0 without runs
	AvgSpeed       float64 // km/h across rides, 0 without rides
	AvgCadence     float64 // spm across runs with a cadence
	TotalElevation float64 // m across rides with an elevation gain

	Distances []float64 // per workout, creation order
	Latest    time.Time
}

// Summarize computes totals and averages. It reads stored fields only, so
// plain restored records work as well as freshly built ones.
func Summarize(workouts []workout.Workout) Summary {
	s := Summary{Distances: make([]float64, 0, len(workouts))}

	var cadenceSum float64
	var cadenceCount int

	for _, w := range workouts {
		s.Count++
		s.TotalDistance += w.Distance
		s.TotalDuration += w.Duration
		s.Distances = append(s.Distances, w.Distance)
		if w.CreatedAt.After(s.Latest) {
			s.Latest = w.CreatedAt
		}

		switch w.Type {
		case workout.Running:
			s.RunCount++
			s.RunDistance += w.Distance
			s.RunDuration += w.Duration
			if w.Cadence != nil {
				cadenceSum += *w.Cadence
				cadenceCount++
			}
		case workout.Cycling:
			s.RideCount++
			s.RideDistance += w.Distance
			s.RideDuration += w.Duration
			if w.ElevationGain != nil {
				s.TotalElevation += *w.ElevationGain
			}
		}
	}

	if s.RunDistance > 0 {
		s.AvgPace = s.RunDuration / s.RunDistance
	}
	if s.RideDuration > 0 {
		s.AvgSpeed = s.RideDistance / (s.RideDuration / 60)
	}
	if cadenceCount > 0 {
		s.AvgCadence = cadenceSum / float64(cadenceCount)
	}

	return s
}
