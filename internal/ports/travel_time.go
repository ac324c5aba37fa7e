package ports

import "context"

// FallbackTravelMinutes is the estimate used when no live travel time can be
// obtained (network failure, geocoding miss). Scheduling degrades to this
// value instead of skipping the appointment.
const FallbackTravelMinutes = 30

// Contract for estimating travel time from the installer's base to a
// destination address.
type TravelTimeEstimator interface {
	// Return estimated driving time to destination in minutes.
	EstimateMinutes(ctx context.Context, destination string) (int, error)
}
