package services

import "measurement-intake-service/internal/domain"

// ProjectAppointments derives the schedulable appointment list from the
// stored projects. A project yields exactly one appointment, and only when
// both a visit date and a time have been filled in; incomplete records are
// skipped, not errors.
//
// The function is a pure projection: deterministic, no side effects, re-run
// on every read. The result carries no ordering guarantee; callers sort.
func ProjectAppointments(projects []*domain.Project) []domain.Appointment {
	appointments := make([]domain.Appointment, 0, len(projects))
	for _, p := range projects {
		if p == nil || p.Customer.Date == "" || p.Customer.Time == "" {
			continue
		}

		appointments = append(appointments, domain.Appointment{
			ID:              p.ID,
			ProjectID:       p.ID,
			Date:            p.Customer.Date,
			Time:            p.Customer.Time,
			CustomerName:    p.Customer.Name,
			CustomerAddress: p.Customer.Address(),
		})
	}

	return appointments
}
