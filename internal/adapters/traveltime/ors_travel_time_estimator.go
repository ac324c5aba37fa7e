package traveltime

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"sync"
	"time"

	"measurement-intake-service/internal/platform/obs"
)

// Geographic coordinates (longitude, latitude) in ORS order.
type coordinates struct {
	Lon float64
	Lat float64
}

func (c coordinates) list() []float64 { return []float64{c.Lon, c.Lat} }

// ORSTravelTimeEstimator implements TravelTimeEstimator using OpenRouteService.
//
// Every estimate geocodes the installer's base address and the destination,
// then fetches a single driving-duration matrix cell. Geocode results are
// memoized in memory (addresses do not move); duration caching is layered on
// top by the redis cache adapter so each poll sees reasonably fresh traffic.
//
// The estimator is safe for concurrent use.
type ORSTravelTimeEstimator struct {
	session *http.Client
	apiKey  string
	baseURL string
	profile string
	origin  string

	mu       sync.Mutex
	geocoded map[string]coordinates
}

// NewORSTravelTimeEstimator builds an estimator departing from origin, the
// installer's base address.
func NewORSTravelTimeEstimator(apiKey, origin string) (*ORSTravelTimeEstimator, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}
	origin = normalize(origin)
	if origin == "" {
		return nil, errors.New("ORS origin address is empty")
	}

	return &ORSTravelTimeEstimator{
		session:  &http.Client{Timeout: 10 * time.Second},
		apiKey:   apiKey,
		baseURL:  "https://api.openrouteservice.org",
		profile:  "driving-car",
		origin:   origin,
		geocoded: make(map[string]coordinates),
	}, nil
}

// normalize collapses whitespace so equal addresses map to equal keys.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// EstimateMinutes returns the estimated driving time from the installer's
// base to destination, rounded to whole minutes (minimum 1).
func (o *ORSTravelTimeEstimator) EstimateMinutes(ctx context.Context, destination string) (_ int, err error) {
	defer obs.Time(ctx, "ors.EstimateMinutes")(&err)

	dest := normalize(destination)
	if dest == "" {
		return 0, errors.New("estimate travel time: destination must be non-empty")
	}

	originCoord, err := o.geocode(ctx, o.origin)
	if err != nil {
		return 0, fmt.Errorf("estimate travel time: geocode origin %q: %w", o.origin, err)
	}

	destCoord, err := o.geocode(ctx, dest)
	if err != nil {
		return 0, fmt.Errorf("estimate travel time: geocode destination %q: %w", dest, err)
	}

	seconds, err := o.fetchDuration(ctx, originCoord, destCoord)
	if err != nil {
		return 0, fmt.Errorf("estimate travel time: %q -> %q: %w", o.origin, dest, err)
	}

	minutes := int(math.Round(seconds / 60))
	if minutes < 1 {
		minutes = 1
	}

	return minutes, nil
}
