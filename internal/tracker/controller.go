// Package tracker turns user interactions into workouts and keeps the
// workout store, the map, the list and durable storage in step.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"workoutmap/internal/location"
	"workoutmap/internal/store"
	"workoutmap/internal/validate"
	"workoutmap/internal/workout"
)

// State is the controller's position in the interaction flow
type State int

const (
	AwaitingLocation State = iota
	MapReady
	FormOpen
	LocationFailed
)

func (s State) String() string {
	switch s {
	case AwaitingLocation:
		return "awaiting location"
	case MapReady:
		return "map ready"
	case FormOpen:
		return "form open"
	case LocationFailed:
		return "location failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	// ErrInvalidInput is returned when submitted form values fail validation
	ErrInvalidInput = errors.New("invalid input")
	// ErrFormClosed is returned when submitting without an open form
	ErrFormClosed = errors.New("workout form is not open")
)

// User-facing messages
const (
	alertNoLocation   = "can't get your location"
	alertInvalidInput = "invalid input"
	alertSaveFailed   = "workout could not be saved"
)

// FormInput holds the raw form field values
type FormInput struct {
	Type      string
	Distance  string
	Duration  string
	Cadence   string
	Elevation string
}

// Options configures a Controller
type Options struct {
	Map     Map
	List    List
	Form    Form
	Alerter Alerter
	Locator location.Locator
	Storage store.BlobStore

	StorageKey   string
	Zoom         int
	RecenterZoom int
	ReopenDelay  time.Duration

	// Now and NewID default to time.Now and uuid.NewString
	Now   func() time.Time
	NewID func() string
}

// Controller owns the session's workouts. It is not safe for concurrent
// use; all calls are expected to come from a single event loop.
type Controller struct {
	mapView  Map
	list     List
	form     Form
	alerter  Alerter
	locator  location.Locator
	storage  store.BlobStore
	workouts *store.Workouts

	storageKey   string
	zoom         int
	recenterZoom int
	reopenDelay  time.Duration
	now          func() time.Time
	newID        func() string

	state   State
	handle  MapHandle
	pending workout.Coordinates
}

// New creates a controller, restores saved workouts and renders them into
// the list. Markers wait until the map is ready.
func New(opts Options) *Controller {
	c := &Controller{
		mapView:      opts.Map,
		list:         opts.List,
		form:         opts.Form,
		alerter:      opts.Alerter,
		locator:      opts.Locator,
		storage:      opts.Storage,
		workouts:     store.NewWorkouts(),
		storageKey:   opts.StorageKey,
		zoom:         opts.Zoom,
		recenterZoom: opts.RecenterZoom,
		reopenDelay:  opts.ReopenDelay,
		now:          opts.Now,
		newID:        opts.NewID,
		state:        AwaitingLocation,
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}
	if c.recenterZoom == 0 {
		c.recenterZoom = c.zoom
	}

	c.restore()
	return c
}

// State returns the current state
func (c *Controller) State() State {
	return c.state
}

// Workouts returns the held workouts in creation order
func (c *Controller) Workouts() []workout.Workout {
	return c.workouts.All()
}

// Locate asks the locator for the device position. It blocks and does not
// touch controller state, so it may run off the event loop; hand the result
// to LocationResolved or LocationFailed.
func (c *Controller) Locate(ctx context.Context) (workout.Coordinates, error) {
	if c.locator == nil {
		return workout.Coordinates{}, location.ErrNoLocation
	}
	return c.locator.Locate(ctx)
}

// Start runs Locate and applies its result
func (c *Controller) Start(ctx context.Context) {
	coords, err := c.Locate(ctx)
	if err != nil {
		c.LocationFailed(err)
		return
	}
	c.LocationResolved(coords)
}

// LocationResolved initializes the map at the device position and places a
// marker for every held workout.
func (c *Controller) LocationResolved(coords workout.Coordinates) {
	if c.state != AwaitingLocation {
		return
	}

	handle, err := c.mapView.Initialize(coords, c.zoom)
	if err != nil {
		log.Errorf("initializing map: %v", err)
		c.state = LocationFailed
		c.alert(alertNoLocation)
		return
	}
	c.handle = handle
	c.mapView.OnClick(c.handleMapClick)
	c.state = MapReady

	for _, w := range c.workouts.All() {
		c.renderMarker(w)
	}
	log.Infof("map ready at %v with %d workouts", coords, c.workouts.Len())
}

// LocationFailed reports that no position is available. There is no retry.
func (c *Controller) LocationFailed(err error) {
	if c.state != AwaitingLocation {
		return
	}
	log.Warnf("geolocation failed: %v", err)
	c.state = LocationFailed
	c.alert(alertNoLocation)
}

func (c *Controller) handleMapClick(coords workout.Coordinates) {
	switch c.state {
	case MapReady, FormOpen:
		c.pending = coords
		c.state = FormOpen
		c.form.Show()
	}
}

// ToggleType swaps which type-specific form field is visible
func (c *Controller) ToggleType() {
	c.form.ToggleTypeField()
}

// Cancel closes the form without creating a workout
func (c *Controller) Cancel() {
	if c.state != FormOpen {
		return
	}
	c.hideForm()
	c.state = MapReady
}

// Submit validates the form and, on success, creates, renders and persists
// a workout. On validation failure nothing changes and the form stays open.
func (c *Controller) Submit(in FormInput) error {
	if c.state != FormOpen {
		return ErrFormClosed
	}

	w, err := c.buildWorkout(in)
	if err != nil {
		log.Debugf("rejected workout input %+v: %v", in, err)
		c.alert(alertInvalidInput)
		return err
	}

	c.workouts.Append(w)
	c.renderMarker(w)
	c.list.AppendEntry(w.ID, EntryText(w))
	persistErr := c.persist()

	c.hideForm()
	c.state = MapReady
	log.Infof("created %s workout %s at %v", w.Type, w.ID, w.Coordinates)

	if persistErr != nil {
		c.alert(alertSaveFailed)
		return persistErr
	}
	return nil
}

func (c *Controller) buildWorkout(in FormInput) (workout.Workout, error) {
	typ, err := workout.ParseType(in.Type)
	if err != nil {
		return workout.Workout{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	distance := validate.Number(in.Distance)
	duration := validate.Number(in.Duration)

	switch typ {
	case workout.Running:
		cadence := validate.Number(in.Cadence)
		if !validate.AllFinite(distance, duration, cadence) || !validate.AllPositive(distance, duration, cadence) {
			return workout.Workout{}, ErrInvalidInput
		}
		return workout.NewRunning(c.newID(), c.now(), c.pending, distance, duration, cadence), nil

	default:
		// Elevation gain may be zero or negative
		elevation := validate.Number(in.Elevation)
		if !validate.AllFinite(distance, duration, elevation) || !validate.AllPositive(distance, duration) {
			return workout.Workout{}, ErrInvalidInput
		}
		return workout.NewCycling(c.newID(), c.now(), c.pending, distance, duration, elevation), nil
	}
}

// SelectEntry recenters the map on the workout behind a list entry. Unknown
// ids, and selections before the map exists, are ignored.
func (c *Controller) SelectEntry(id string) {
	if c.handle == nil {
		return
	}
	w, ok := c.workouts.FindByID(id)
	if !ok {
		log.Debugf("ignoring selection of unknown workout %q", id)
		return
	}
	c.handle.Recenter(w.Coordinates, c.recenterZoom, true)
}

func (c *Controller) renderMarker(w workout.Workout) {
	c.handle.PlaceMarker(Marker{
		Coordinates: w.Coordinates,
		Draggable:   true,
		PopupText:   PopupText(w),
		PopupClass:  PopupClass(w),
	})
}

func (c *Controller) hideForm() {
	c.form.Clear()
	c.form.Hide(c.reopenDelay)
}

func (c *Controller) persist() error {
	blob, err := c.workouts.Serialize()
	if err != nil {
		log.Errorf("encoding workouts: %v", err)
		return fmt.Errorf("encoding workouts: %w", err)
	}
	if err := c.storage.Put(c.storageKey, blob); err != nil {
		log.Errorf("saving workouts: %v", err)
		return fmt.Errorf("saving workouts: %w", err)
	}
	return nil
}

func (c *Controller) restore() {
	blob, err := c.storage.Get(c.storageKey)
	if err != nil {
		if !errors.Is(err, store.ErrBlobNotFound) {
			log.Warnf("reading saved workouts: %v", err)
		}
		return
	}

	c.workouts.Restore(blob)
	for _, w := range c.workouts.All() {
		c.list.AppendEntry(w.ID, EntryText(w))
	}
	log.Infof("restored %d workouts", c.workouts.Len())
}

func (c *Controller) alert(msg string) {
	if c.alerter != nil {
		c.alerter.Alert(msg)
	}
}
