package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"measurement-intake-service/internal/adapters/traveltime"
	"measurement-intake-service/internal/domain"
)

func schedulerFixture(t *testing.T, settings domain.Settings, estimator *traveltime.MockTravelTimeEstimator) (*DepartureScheduler, *fakeNotifier) {
	t.Helper()

	store := &fakeProjectStore{
		projects: []*domain.Project{
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
		},
	}

	settingsSvc, err := NewSettingsService(context.Background(), &fakeSettingsStore{value: settings})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notifier := &fakeNotifier{granted: true}
	d := NewDepartureScheduler(store, settingsSvc, estimator, notifier, time.UTC)
	return d, notifier
}

func at(t *testing.T, value string) func() time.Time {
	t.Helper()
	instant, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.UTC)
	if err != nil {
		t.Fatalf("bad instant %q: %v", value, err)
	}
	return func() time.Time { return instant }
}

func TestSchedulerFiresInsideDepartureWindow(t *testing.T) {
	estimator := traveltime.NewMockTravelTimeEstimator(map[string]int{"Heereweg 10, Lisse": 20})
	settings := domain.Settings{NotificationsEnabled: true, PreparationTime: 15}
	d, notifier := schedulerFixture(t, settings, estimator)

	// 14:00 start, 20 min travel, 15 min preparation: departure at 13:25.
	d.now = at(t, "2026-03-05 13:24:30")
	d.evaluate(context.Background(), &schedulerSession{})

	if notifier.sent() != 1 {
		t.Fatalf("expected 1 notification, got %d", notifier.sent())
	}
	if notifier.titles[0] != "Tijd om te vertrekken!" {
		t.Fatalf("unexpected title %q", notifier.titles[0])
	}
	if want := "Vertrek nu voor je afspraak met J. van der Berg om 14:00. Reistijd: 20 min."; notifier.bodies[0] != want {
		t.Fatalf("unexpected body %q", notifier.bodies[0])
	}
}

func TestSchedulerSilentOutsideDepartureWindow(t *testing.T) {
	estimator := traveltime.NewMockTravelTimeEstimator(map[string]int{"Heereweg 10, Lisse": 20})
	settings := domain.Settings{NotificationsEnabled: true, PreparationTime: 15}
	d, notifier := schedulerFixture(t, settings, estimator)

	// Two minutes before departure: too early.
	d.now = at(t, "2026-03-05 13:23:00")
	d.evaluate(context.Background(), &schedulerSession{})
	if notifier.sent() != 0 {
		t.Fatalf("expected no notification before the window, got %d", notifier.sent())
	}

	// Exactly at departure: the moment to leave has passed.
	d.now = at(t, "2026-03-05 13:25:00")
	d.evaluate(context.Background(), &schedulerSession{})
	if notifier.sent() != 0 {
		t.Fatalf("expected no notification at the departure instant, got %d", notifier.sent())
	}

	// Appointment already started.
	d.now = at(t, "2026-03-05 15:00:00")
	d.evaluate(context.Background(), &schedulerSession{})
	if notifier.sent() != 0 {
		t.Fatalf("expected no notification for a past appointment, got %d", notifier.sent())
	}
}

func TestSchedulerDeduplicatesAcrossTicks(t *testing.T) {
	estimator := traveltime.NewMockTravelTimeEstimator(map[string]int{"Heereweg 10, Lisse": 20})
	settings := domain.Settings{NotificationsEnabled: true, PreparationTime: 15}
	d, notifier := schedulerFixture(t, settings, estimator)

	session := &schedulerSession{}
	d.now = at(t, "2026-03-05 13:24:10")
	d.evaluate(context.Background(), session)
	d.now = at(t, "2026-03-05 13:24:40")
	d.evaluate(context.Background(), session)

	if notifier.sent() != 1 {
		t.Fatalf("expected exactly 1 notification across ticks, got %d", notifier.sent())
	}
}

func TestSchedulerFallsBackWhenEstimateFails(t *testing.T) {
	estimator := &traveltime.MockTravelTimeEstimator{Err: errors.New("matrix unavailable")}
	settings := domain.Settings{NotificationsEnabled: true, PreparationTime: 15}
	d, notifier := schedulerFixture(t, settings, estimator)

	// Fallback 30 min travel plus 15 min preparation: departure at 13:15.
	d.now = at(t, "2026-03-05 13:14:30")
	d.evaluate(context.Background(), &schedulerSession{})

	if notifier.sent() != 1 {
		t.Fatalf("expected 1 notification on fallback, got %d", notifier.sent())
	}
	if !strings.Contains(notifier.bodies[0], "Reistijd: 30 min.") {
		t.Fatalf("expected fallback travel time in body, got %q", notifier.bodies[0])
	}
}

func TestSchedulerSkipsWhenNotificationsDisabled(t *testing.T) {
	estimator := traveltime.NewMockTravelTimeEstimator(map[string]int{"Heereweg 10, Lisse": 20})
	settings := domain.Settings{NotificationsEnabled: false, PreparationTime: 15}
	d, notifier := schedulerFixture(t, settings, estimator)

	d.now = at(t, "2026-03-05 13:24:30")
	d.evaluate(context.Background(), &schedulerSession{})

	if notifier.sent() != 0 {
		t.Fatalf("expected no notification, got %d", notifier.sent())
	}
	if estimator.Calls != 0 {
		t.Fatalf("expected no estimate calls while disabled, got %d", estimator.Calls)
	}
}

func TestSchedulerDiscardsCancelledSessionResults(t *testing.T) {
	estimator := traveltime.NewMockTravelTimeEstimator(map[string]int{"Heereweg 10, Lisse": 20})
	settings := domain.Settings{NotificationsEnabled: true, PreparationTime: 15}
	d, notifier := schedulerFixture(t, settings, estimator)

	session := &schedulerSession{}
	session.cancelled.Store(true)

	d.now = at(t, "2026-03-05 13:24:30")
	d.evaluate(context.Background(), session)

	if notifier.sent() != 0 {
		t.Fatalf("expected a cancelled session to discard its result, got %d notifications", notifier.sent())
	}
}

func TestSchedulerGateFollowsSettings(t *testing.T) {
	estimator := traveltime.NewMockTravelTimeEstimator(map[string]int{"Heereweg 10, Lisse": 20})
	settings := domain.Settings{NotificationsEnabled: true, PreparationTime: 15}
	d, _ := schedulerFixture(t, settings, estimator)
	defer d.Stop()

	d.Bind()
	if !d.Running() {
		t.Fatal("expected polling to start with notifications enabled")
	}

	disabled := domain.Settings{NotificationsEnabled: false, PreparationTime: 15}
	if err := d.settings.Update(context.Background(), disabled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Running() {
		t.Fatal("expected polling to stop when notifications are disabled")
	}

	enabled := domain.Settings{NotificationsEnabled: true, PreparationTime: 15}
	if err := d.settings.Update(context.Background(), enabled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Running() {
		t.Fatal("expected polling to resume when notifications are re-enabled")
	}
}
