package traveltime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// geocode resolves an address via ORS (/geocode/search), memoizing results.
// The address is expected to be normalized already.
func (o *ORSTravelTimeEstimator) geocode(ctx context.Context, address string) (coordinates, error) {
	o.mu.Lock()
	cached, ok := o.geocoded[address]
	o.mu.Unlock()
	if ok {
		return cached, nil
	}

	endpoint := o.baseURL + "/geocode/search"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", address)
		q.Set("boundary.country", "NL")
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return coordinates{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return coordinates{}, fmt.Errorf("no geocode results for %q", address)
	}
	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return coordinates{}, fmt.Errorf("invalid coordinate format for %q", address)
	}

	result := coordinates{Lon: coords[0], Lat: coords[1]}

	o.mu.Lock()
	o.geocoded[address] = result
	o.mu.Unlock()

	return result, nil
}
