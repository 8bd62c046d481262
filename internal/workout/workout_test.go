package workout

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, time.March, 9, 7, 30, 0, 0, time.UTC)

func TestNewRunning(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		duration float64
		cadence  float64
	}{
		{"5k in 30 min", 5, 30, 170},
		{"fractional values", 7.3, 41.25, 182.5},
		{"tiny distance", 0.01, 1, 90},
		{"long run", 42.195, 215, 176},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewRunning("abc", testTime, Coordinates{40.7, -74.0}, tt.distance, tt.duration, tt.cadence)

			assert.Equal(t, Running, w.Type)
			require.NotNil(t, w.Pace)
			assert.Equal(t, tt.distance/tt.duration, *w.Pace)
			require.NotNil(t, w.Cadence)
			assert.Equal(t, tt.cadence, *w.Cadence)
			assert.Nil(t, w.Speed)
			assert.Nil(t, w.ElevationGain)
			assert.True(t, strings.HasPrefix(w.Description, "Running on "), w.Description)
		})
	}
}

func TestNewCycling(t *testing.T) {
	tests := []struct {
		name      string
		distance  float64
		duration  float64
		elevation float64
	}{
		{"commute", 10, 40, 120},
		{"negative elevation", 10, 40, -5},
		{"zero elevation", 25, 60, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewCycling("xyz", testTime, Coordinates{51.5, -0.12}, tt.distance, tt.duration, tt.elevation)

			assert.Equal(t, Cycling, w.Type)
			require.NotNil(t, w.Speed)
			assert.Equal(t, tt.distance/(tt.duration/60), *w.Speed)
			require.NotNil(t, w.ElevationGain)
			assert.Equal(t, tt.elevation, *w.ElevationGain)
			assert.Nil(t, w.Pace)
			assert.Nil(t, w.Cadence)
			assert.True(t, strings.HasPrefix(w.Description, "Cycling on "), w.Description)
		})
	}
}

func TestNewCyclingSpeed(t *testing.T) {
	w := NewCycling("id", testTime, Coordinates{}, 10, 40, 0)
	assert.InDelta(t, 15.0, *w.Speed, 1e-9)
}

func TestOverflowedMetricsAreAbsent(t *testing.T) {
	run := NewRunning("r", testTime, Coordinates{}, 1e308, 1e-10, 170)
	assert.Nil(t, run.Pace)
	require.NotNil(t, run.Cadence)
	assert.Equal(t, 170.0, *run.Cadence)

	ride := NewCycling("c", testTime, Coordinates{}, 10, 1e-322, 0)
	assert.Nil(t, ride.Speed)
	require.NotNil(t, ride.ElevationGain)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		typ  Type
		at   time.Time
		want string
	}{
		{Running, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), "Running on January 1"},
		{Cycling, time.Date(2023, time.December, 31, 23, 59, 0, 0, time.UTC), "Cycling on December 31"},
		{Running, testTime, "Running on March 9"},
		{Type("CYCLING"), time.Date(2024, time.July, 14, 0, 0, 0, 0, time.UTC), "Cycling on July 14"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.typ, tt.at))
		})
	}
}

func TestDescribeUsesCreationDate(t *testing.T) {
	w := NewRunning("id", testTime, Coordinates{}, 5, 30, 170)
	assert.Equal(t, "Running on March 9", w.Description)
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("running")
	require.NoError(t, err)
	assert.Equal(t, Running, typ)

	typ, err = ParseType(" Cycling ")
	require.NoError(t, err)
	assert.Equal(t, Cycling, typ)

	_, err = ParseType("swimming")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestCoordinates(t *testing.T) {
	c := Coordinates{40.7, -74.0}
	assert.Equal(t, 40.7, c.Lat())
	assert.Equal(t, -74.0, c.Lng())
}
