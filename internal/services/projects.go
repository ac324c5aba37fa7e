package services

import (
	"context"
	"errors"
	"fmt"

	"measurement-intake-service/internal/domain"
	"measurement-intake-service/internal/ports"

	"github.com/google/uuid"
)

// SaveProject stores a project, assigning identifiers where needed.
//
// Measurement rows that were never filled in are dropped before saving. A
// project without an ID is new and receives a fresh UUID; so does its
// customer, unless the customer was saved before (repeat bookings keep the
// existing customer ID). The saved project is returned.
func SaveProject(ctx context.Context, store ports.ProjectStore, p *domain.Project) (*domain.Project, error) {
	if p == nil {
		return nil, errors.New("save project: project must be non-nil")
	}

	saved := *p
	saved.Curtains = filterCurtains(saved.Curtains)
	saved.Floors = filterFloors(saved.Floors)
	saved.WindowDecorations = filterWindowDecorations(saved.WindowDecorations)

	if saved.Customer.ID == "" {
		saved.Customer.ID = uuid.NewString()
	}
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}

	if err := store.UpsertProject(ctx, &saved); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}

	return &saved, nil
}

func filterCurtains(in []domain.CurtainMeasurement) []domain.CurtainMeasurement {
	out := make([]domain.CurtainMeasurement, 0, len(in))
	for _, m := range in {
		if !m.Empty() {
			out = append(out, m)
		}
	}
	return out
}

func filterFloors(in []domain.FloorMeasurement) []domain.FloorMeasurement {
	out := make([]domain.FloorMeasurement, 0, len(in))
	for _, m := range in {
		if !m.Empty() {
			out = append(out, m)
		}
	}
	return out
}

func filterWindowDecorations(in []domain.WindowDecorationMeasurement) []domain.WindowDecorationMeasurement {
	out := make([]domain.WindowDecorationMeasurement, 0, len(in))
	for _, m := range in {
		if !m.Empty() {
			out = append(out, m)
		}
	}
	return out
}
