package dto

type AppointmentResponse struct {
	ID              string `json:"id"`
	ProjectID       string `json:"projectId"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	CustomerName    string `json:"customerName"`
	CustomerAddress string `json:"customerAddress"`
}

type ListAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// CalendarResponse maps YYYY-MM-DD day keys to that day's appointments,
// sorted ascending by time.
type CalendarResponse struct {
	Days map[string][]AppointmentResponse `json:"days"`
}
