package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"measurement-intake-service/internal/domain"
	"measurement-intake-service/internal/ports"

	"github.com/robfig/cron/v3"
)

// departureWindow is the span before the computed departure instant in which
// the alert fires. Combined with the poll interval it guarantees at least one
// evaluation lands inside the window for every appointment.
const departureWindow = time.Minute

// DefaultPollInterval is how often upcoming appointments are re-evaluated.
// Travel time fluctuates between polls, so the departure instant is
// recomputed every cycle instead of once.
const DefaultPollInterval = 30 * time.Second

// DepartureScheduler decides when the installer must leave for each upcoming
// appointment and fires a one-shot "time to leave" alert per appointment.
//
// The polling loop runs only while notifications are enabled in settings and
// the notifier reports permission granted; toggling the setting off stops
// polling entirely, not just emission. Alerts are deduplicated with an
// in-memory set-if-absent marker set scoped to the process lifetime, so
// overlapping evaluations cannot fire twice, and every emission is guarded by
// a session liveness check so a tick that outlives Stop cannot notify.
type DepartureScheduler struct {
	projects ports.ProjectStore
	settings *SettingsService
	travel   ports.TravelTimeEstimator
	notifier ports.Notifier

	loc      *time.Location
	interval time.Duration
	now      func() time.Time

	mu       sync.Mutex
	notified map[string]struct{}
	cron     *cron.Cron
	session  *schedulerSession
}

// schedulerSession marks one Start..Stop span. In-flight ticks check the
// flag before emitting, so results belonging to a cancelled span are
// discarded rather than raced against timer shutdown.
type schedulerSession struct {
	cancelled atomic.Bool
}

func NewDepartureScheduler(
	projects ports.ProjectStore,
	settings *SettingsService,
	travel ports.TravelTimeEstimator,
	notifier ports.Notifier,
	loc *time.Location,
) *DepartureScheduler {
	if loc == nil {
		loc = time.Local
	}

	return &DepartureScheduler{
		projects: projects,
		settings: settings,
		travel:   travel,
		notifier: notifier,
		loc:      loc,
		interval: DefaultPollInterval,
		now:      time.Now,
		notified: make(map[string]struct{}),
	}
}

// Bind subscribes the scheduler to settings changes and applies the current
// gate state. Call once from the composition root.
func (d *DepartureScheduler) Bind() {
	d.settings.Subscribe(func(domain.Settings) { d.applyGate() })
	d.applyGate()
}

// eligible reports whether the polling loop may run at all.
func (d *DepartureScheduler) eligible() bool {
	return d.settings.Get().NotificationsEnabled && d.notifier.IsGranted()
}

// applyGate starts or stops the polling loop to match the current gate state.
func (d *DepartureScheduler) applyGate() {
	if d.eligible() {
		d.Start()
	} else {
		d.Stop()
	}
}

// Start begins the polling loop. Starting a running scheduler is a no-op.
func (d *DepartureScheduler) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cron != nil {
		return
	}

	session := &schedulerSession{}
	c := cron.New()
	spec := fmt.Sprintf("@every %s", d.interval)
	if _, err := c.AddFunc(spec, func() { d.evaluate(context.Background(), session) }); err != nil {
		log.Printf("departure scheduler: add poll job: %v", err)
		return
	}
	c.Start()

	d.cron = c
	d.session = session
	log.Printf("departure scheduler started interval=%s", d.interval)
}

// Stop cancels the polling loop. In-flight evaluations are allowed to finish
// but their results are discarded via the session flag.
func (d *DepartureScheduler) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cron == nil {
		return
	}

	d.session.cancelled.Store(true)
	d.cron.Stop()
	d.cron = nil
	d.session = nil
	log.Printf("departure scheduler stopped")
}

// Running reports whether the polling loop is active.
func (d *DepartureScheduler) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cron != nil
}

// evaluate runs one polling cycle over all upcoming appointments.
func (d *DepartureScheduler) evaluate(ctx context.Context, session *schedulerSession) {
	if !d.eligible() {
		return
	}

	projects, err := d.projects.ListProjects(ctx)
	if err != nil {
		// Degradation, not failure: the next tick retries.
		log.Printf("departure scheduler: list projects: %v", err)
		return
	}

	now := d.now()
	prep := d.settings.Get().PreparationTime

	for _, appointment := range ProjectAppointments(projects) {
		d.evaluateAppointment(ctx, session, appointment, now, prep)
	}
}

// evaluateAppointment fires the departure alert for one appointment when now
// falls inside the firing window and no alert has fired yet this session.
func (d *DepartureScheduler) evaluateAppointment(
	ctx context.Context,
	session *schedulerSession,
	appointment domain.Appointment,
	now time.Time,
	prepMinutes int,
) {
	startsAt, err := appointment.StartsAt(d.loc)
	if err != nil || !startsAt.After(now) {
		// Unparseable slots come from incomplete or legacy records; past
		// appointments need no departure. Both are skipped silently.
		return
	}

	travelMinutes, err := d.travel.EstimateMinutes(ctx, appointment.CustomerAddress)
	if err != nil {
		// An estimator failure must not abort the tick; degrade to the
		// fallback estimate for this appointment only.
		log.Printf("departure scheduler: estimate travel to %q: %v (using %d min fallback)",
			appointment.CustomerAddress, err, ports.FallbackTravelMinutes)
		travelMinutes = ports.FallbackTravelMinutes
	}

	departure := startsAt.Add(-time.Duration(travelMinutes+prepMinutes) * time.Minute)
	untilDeparture := departure.Sub(now)
	if untilDeparture <= 0 || untilDeparture > departureWindow {
		return
	}

	if session != nil && session.cancelled.Load() {
		return
	}
	if !d.markNotified(appointment.ID) {
		return
	}

	body := fmt.Sprintf("Vertrek nu voor je afspraak met %s om %s. Reistijd: %d min.",
		appointment.CustomerName, appointment.Time, travelMinutes)
	if err := d.notifier.Notify("Tijd om te vertrekken!", body); err != nil {
		log.Printf("departure scheduler: notify for appointment %s: %v", appointment.ID, err)
	}
}

// markNotified records the dedup marker for an appointment, returning false
// when one already exists. Set-if-absent under the lock, so two overlapping
// ticks inside the same firing window cannot both fire.
func (d *DepartureScheduler) markNotified(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.notified[id]; ok {
		return false
	}
	d.notified[id] = struct{}{}
	return true
}
