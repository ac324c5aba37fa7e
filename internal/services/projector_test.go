package services

import (
	"testing"

	"measurement-intake-service/internal/domain"
)

func TestProjectAppointments(t *testing.T) {
	projects := []*domain.Project{
		{
			ID: "p1",
			Customer: domain.Customer{
				ID:          "c1",
				Name:        "J. van der Berg",
				Street:      "Heereweg",
				HouseNumber: "10",
				City:        "Lisse",
				Date:        "2026-03-05",
				Time:        "14:00",
			},
		},
		// No visit planned yet: date and time empty.
		{ID: "p2", Customer: domain.Customer{ID: "c2", Name: "M. de Vries"}},
		// Date without time is still incomplete.
		{ID: "p3", Customer: domain.Customer{ID: "c3", Date: "2026-03-06"}},
		nil,
	}

	appointments := ProjectAppointments(projects)

	if len(appointments) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(appointments))
	}

	a := appointments[0]
	if a.ID != "p1" || a.ProjectID != "p1" {
		t.Fatalf("expected appointment keyed by project ID, got ID=%q ProjectID=%q", a.ID, a.ProjectID)
	}
	if a.Date != "2026-03-05" || a.Time != "14:00" {
		t.Fatalf("unexpected slot %q %q", a.Date, a.Time)
	}
	if a.CustomerName != "J. van der Berg" {
		t.Fatalf("unexpected customer name %q", a.CustomerName)
	}
	if a.CustomerAddress != "Heereweg 10, Lisse" {
		t.Fatalf("unexpected address %q", a.CustomerAddress)
	}
}

func TestProjectAppointmentsEmptyInput(t *testing.T) {
	if got := ProjectAppointments(nil); len(got) != 0 {
		t.Fatalf("expected no appointments, got %d", len(got))
	}
}
