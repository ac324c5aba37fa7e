package domain

import "time"

// Layouts for the stored date and time strings.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Appointment is the schedulable view of a project, derived for calendar
// display and departure alerting. It is recomputed from the project list on
// every read and never stored or mutated independently; its ID equals the
// owning project's ID.
type Appointment struct {
	ID              string `json:"id"`
	ProjectID       string `json:"projectId"`
	Date            string `json:"date"` // YYYY-MM-DD
	Time            string `json:"time"` // HH:MM
	CustomerName    string `json:"customerName"`
	CustomerAddress string `json:"customerAddress"`
}

// StartsAt parses the appointment's date and time in loc. Incomplete or
// legacy records may not parse; callers treat that as "not schedulable".
func (a Appointment) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, a.Date+" "+a.Time, loc)
}
