package tracker

import (
	"context"
	"errors"
	"time"

	"workoutmap/internal/store"
	"workoutmap/internal/workout"
)

type recenterCall struct {
	center  workout.Coordinates
	zoom    int
	animate bool
}

type fakeMap struct {
	initErr     error
	center      workout.Coordinates
	zoom        int
	initialized bool
	onClick     func(workout.Coordinates)
	markers     []Marker
	recenters   []recenterCall
}

func (m *fakeMap) Initialize(center workout.Coordinates, zoom int) (MapHandle, error) {
	if m.initErr != nil {
		return nil, m.initErr
	}
	m.initialized = true
	m.center = center
	m.zoom = zoom
	return m, nil
}

func (m *fakeMap) OnClick(handler func(workout.Coordinates)) {
	m.onClick = handler
}

func (m *fakeMap) PlaceMarker(mk Marker) {
	m.markers = append(m.markers, mk)
}

func (m *fakeMap) Recenter(center workout.Coordinates, zoom int, animate bool) {
	m.recenters = append(m.recenters, recenterCall{center, zoom, animate})
}

func (m *fakeMap) click(c workout.Coordinates) {
	m.onClick(c)
}

type listEntry struct {
	id   string
	text string
}

type fakeList struct {
	entries []listEntry
}

func (l *fakeList) AppendEntry(id, text string) {
	l.entries = append(l.entries, listEntry{id, text})
}

type fakeForm struct {
	visible  bool
	shows    int
	clears   int
	toggles  int
	lastHide time.Duration
}

func (f *fakeForm) Show()                { f.visible = true; f.shows++ }
func (f *fakeForm) Hide(d time.Duration) { f.visible = false; f.lastHide = d }
func (f *fakeForm) Clear()               { f.clears++ }
func (f *fakeForm) ToggleTypeField()     { f.toggles++ }

type fakeAlerter struct {
	alerts []string
}

func (a *fakeAlerter) Alert(msg string) {
	a.alerts = append(a.alerts, msg)
}

type fakeLocator struct {
	coords workout.Coordinates
	err    error
}

func (l fakeLocator) Locate(ctx context.Context) (workout.Coordinates, error) {
	return l.coords, l.err
}

// countingStore wraps a blob store and counts writes
type countingStore struct {
	*store.MemoryBlobStore
	puts   int
	putErr error
	getErr error
}

func newCountingStore() *countingStore {
	return &countingStore{MemoryBlobStore: store.NewMemoryBlobStore()}
}

func (s *countingStore) Get(key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.MemoryBlobStore.Get(key)
}

func (s *countingStore) Put(key string, blob []byte) error {
	s.puts++
	if s.putErr != nil {
		return s.putErr
	}
	return s.MemoryBlobStore.Put(key, blob)
}

var errDisk = errors.New("disk full")
