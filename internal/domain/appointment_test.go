package domain

import (
	"testing"
	"time"
)

func TestAppointmentStartsAt(t *testing.T) {
	a := Appointment{Date: "2026-03-05", Time: "14:00"}

	got, err := a.StartsAt(time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2026, 3, 5, 14, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("StartsAt = %v, want %v", got, want)
	}
}

func TestAppointmentStartsAtRejectsMalformed(t *testing.T) {
	cases := []Appointment{
		{Date: "", Time: "14:00"},
		{Date: "2026-03-05", Time: ""},
		{Date: "05-03-2026", Time: "14:00"},
		{Date: "2026-03-05", Time: "2pm"},
	}

	for _, a := range cases {
		if _, err := a.StartsAt(time.UTC); err == nil {
			t.Errorf("StartsAt(%q %q): expected error, got none", a.Date, a.Time)
		}
	}
}
