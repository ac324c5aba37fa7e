package services

import (
	"sort"
	"time"

	"measurement-intake-service/internal/domain"
)

// GroupByDay buckets appointments by calendar day for display.
//
// The key is the appointment's YYYY-MM-DD date, validated by parsing it at
// midnight in loc so the key derivation matches the scheduler's date parsing.
// Appointments whose date does not parse are dropped. Within a day the list
// sorts ascending by the HH:MM time string; zero-padding makes lexicographic
// order equal chronological order.
func GroupByDay(appointments []domain.Appointment, loc *time.Location) map[string][]domain.Appointment {
	if loc == nil {
		loc = time.Local
	}

	days := make(map[string][]domain.Appointment)
	for _, a := range appointments {
		day, err := time.ParseInLocation(domain.DateLayout, a.Date, loc)
		if err != nil {
			continue
		}
		key := day.Format(domain.DateLayout)
		days[key] = append(days[key], a)
	}

	for _, list := range days {
		sort.Slice(list, func(i, j int) bool { return list[i].Time < list[j].Time })
	}

	return days
}
