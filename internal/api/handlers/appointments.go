package handlers

import (
	"log"
	"net/http"
	"time"

	"measurement-intake-service/internal/api/dto"
	"measurement-intake-service/internal/domain"
	"measurement-intake-service/internal/ports"
	"measurement-intake-service/internal/services"
)

// AppointmentHandler serves the derived appointment views: the flat list and
// the calendar grouping. Appointments are recomputed from the project store
// on every request.
type AppointmentHandler struct {
	Store ports.ProjectStore
	Loc   *time.Location
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	appointments, ok := h.project(w, r)
	if !ok {
		return
	}

	res := dto.ListAppointmentsResponse{
		Appointments: toAppointmentResponses(appointments),
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *AppointmentHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	appointments, ok := h.project(w, r)
	if !ok {
		return
	}

	days := make(map[string][]dto.AppointmentResponse)
	for key, list := range services.GroupByDay(appointments, h.Loc) {
		days[key] = toAppointmentResponses(list)
	}

	writeJSON(w, r, http.StatusOK, dto.CalendarResponse{Days: days})
}

func (h *AppointmentHandler) project(w http.ResponseWriter, r *http.Request) ([]domain.Appointment, bool) {
	projects, err := h.Store.ListProjects(r.Context())
	if err != nil {
		log.Printf("list projects failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	return services.ProjectAppointments(projects), true
}

func toAppointmentResponses(appointments []domain.Appointment) []dto.AppointmentResponse {
	out := make([]dto.AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, dto.AppointmentResponse{
			ID:              a.ID,
			ProjectID:       a.ProjectID,
			Date:            a.Date,
			Time:            a.Time,
			CustomerName:    a.CustomerName,
			CustomerAddress: a.CustomerAddress,
		})
	}
	return out
}
