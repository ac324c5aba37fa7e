package traveltime

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type matrixRequest struct {
	Locations    [][]float64 `json:"locations"`
	Destinations []int       `json:"destinations"`
	Metrics      []string    `json:"metrics"`
	Sources      []int       `json:"sources"`
}

type matrixResponse struct {
	Durations [][]*float64 `json:"durations"`
}

// fetchDuration retrieves the driving duration in seconds for one
// origin->destination pair from the ORS matrix endpoint.
func (o *ORSTravelTimeEstimator) fetchDuration(
	ctx context.Context,
	origin coordinates,
	destination coordinates,
) (float64, error) {
	endpoint := fmt.Sprintf("%s/v2/matrix/%s", o.baseURL, o.profile)

	bodyObj := matrixRequest{
		Locations:    [][]float64{origin.list(), destination.list()},
		Destinations: []int{1},
		Metrics:      []string{"duration"},
		Sources:      []int{0},
	}

	payload, err := json.Marshal(bodyObj)
	if err != nil {
		return 0, fmt.Errorf("marshal matrix request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return 0, fmt.Errorf("matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var mr matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return 0, fmt.Errorf("decode matrix response: %w", err)
	}

	if len(mr.Durations) == 0 || len(mr.Durations[0]) == 0 {
		return 0, errors.New("matrix response contains no durations")
	}
	duration := mr.Durations[0][0]
	if duration == nil {
		return 0, errors.New("no route between origin and destination")
	}

	return *duration, nil
}
