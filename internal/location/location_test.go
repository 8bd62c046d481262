package location

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workoutmap/internal/workout"
)

func TestParseLoc(t *testing.T) {
	tests := []struct {
		loc     string
		want    workout.Coordinates
		wantErr bool
	}{
		{"40.7128,-74.0060", workout.Coordinates{40.7128, -74.0060}, false},
		{" 51.5 , -0.12 ", workout.Coordinates{51.5, -0.12}, false},
		{"", workout.Coordinates{}, true},
		{"40.7", workout.Coordinates{}, true},
		{"a,b", workout.Coordinates{}, true},
		{"1,2,3", workout.Coordinates{}, true},
		{"91,0", workout.Coordinates{}, true},
		{"0,181", workout.Coordinates{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.loc, func(t *testing.T) {
			got, err := ParseLoc(tt.loc)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoLocation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatic(t *testing.T) {
	s := Static{Coordinates: workout.Coordinates{1, 2}}

	got, err := s.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, workout.Coordinates{1, 2}, got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Locate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func newTestIPInfo(t *testing.T, handler http.HandlerFunc) *IPInfo {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	l := NewIPInfo(srv.Client(), "")
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	l.client.BaseURL = base
	return l
}

func TestIPInfoLocate(t *testing.T) {
	l := newTestIPInfo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ip":"203.0.113.7","city":"New York","country":"US","loc":"40.7143,-74.0060"}`))
	})

	got, err := l.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, workout.Coordinates{40.7143, -74.0060}, got)
}

func TestIPInfoLocateServerError(t *testing.T) {
	l := newTestIPInfo(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})

	_, err := l.Locate(context.Background())
	assert.ErrorIs(t, err, ErrNoLocation)
}

func TestIPInfoLocateMissingLoc(t *testing.T) {
	l := newTestIPInfo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ip":"10.0.0.1","bogon":true}`))
	})

	_, err := l.Locate(context.Background())
	assert.ErrorIs(t, err, ErrNoLocation)
}

func TestIPInfoLocateCanceled(t *testing.T) {
	block := make(chan struct{})
	l := newTestIPInfo(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-time.After(5 * time.Second):
		}
	})
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := l.Locate(ctx)
	assert.ErrorIs(t, err, ErrNoLocation)
}
