// Package location resolves the device's current position.
package location

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ipinfo/go/v2/ipinfo"
	log "github.com/sirupsen/logrus"

	"workoutmap/internal/workout"
)

// ErrNoLocation is returned when a position could not be determined
var ErrNoLocation = errors.New("location unavailable")

// Locator resolves the current position
type Locator interface {
	Locate(ctx context.Context) (workout.Coordinates, error)
}

// Static always reports a fixed position
type Static struct {
	Coordinates workout.Coordinates
}

// Locate returns the configured position
func (s Static) Locate(ctx context.Context) (workout.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return workout.Coordinates{}, err
	}
	return s.Coordinates, nil
}

// IPInfo looks up the position of the machine's public IP through ipinfo.io
type IPInfo struct {
	client *ipinfo.Client
}

// NewIPInfo creates an ipinfo.io locator. token may be empty for the free tier.
func NewIPInfo(httpClient *http.Client, token string) *IPInfo {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &IPInfo{client: ipinfo.NewClient(httpClient, nil, token)}
}

// Locate asks ipinfo.io for the caller's position. The ipinfo client has no
// context support, so cancellation only abandons the wait.
func (l *IPInfo) Locate(ctx context.Context) (workout.Coordinates, error) {
	type result struct {
		info *ipinfo.Core
		err  error
	}
	done := make(chan result, 1)
	go func() {
		info, err := l.client.GetIPInfo(nil)
		done <- result{info, err}
	}()

	select {
	case <-ctx.Done():
		return workout.Coordinates{}, fmt.Errorf("%w: %v", ErrNoLocation, ctx.Err())
	case r := <-done:
		if r.err != nil {
			return workout.Coordinates{}, fmt.Errorf("%w: ipinfo lookup: %v", ErrNoLocation, r.err)
		}
		coords, err := ParseLoc(r.info.Location)
		if err != nil {
			return workout.Coordinates{}, err
		}
		log.Debugf("resolved location %v (%s, %s)", coords, r.info.City, r.info.Country)
		return coords, nil
	}
}

// ParseLoc parses ipinfo's "lat,lng" location string
func ParseLoc(loc string) (workout.Coordinates, error) {
	parts := strings.Split(loc, ",")
	if len(parts) != 2 {
		return workout.Coordinates{}, fmt.Errorf("%w: malformed location %q", ErrNoLocation, loc)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return workout.Coordinates{}, fmt.Errorf("%w: latitude %q", ErrNoLocation, parts[0])
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return workout.Coordinates{}, fmt.Errorf("%w: longitude %q", ErrNoLocation, parts[1])
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return workout.Coordinates{}, fmt.Errorf("%w: out of range %q", ErrNoLocation, loc)
	}

	return workout.Coordinates{lat, lng}, nil
}
