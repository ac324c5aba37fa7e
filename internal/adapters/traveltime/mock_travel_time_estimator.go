package traveltime

import (
	"context"
	"fmt"
)

// MockTravelTimeEstimator serves canned estimates keyed by destination.
type MockTravelTimeEstimator struct {
	Minutes map[string]int
	Err     error
	Calls   int
}

func NewMockTravelTimeEstimator(minutes map[string]int) *MockTravelTimeEstimator {
	return &MockTravelTimeEstimator{Minutes: minutes}
}

func (m *MockTravelTimeEstimator) EstimateMinutes(ctx context.Context, destination string) (int, error) {
	m.Calls++
	if m.Err != nil {
		return 0, m.Err
	}

	minutes, ok := m.Minutes[destination]
	if !ok {
		return 0, fmt.Errorf("no estimate for %q", destination)
	}
	return minutes, nil
}
