package api

import (
	"net/http"
	"time"

	"measurement-intake-service/internal/api/handlers"
	"measurement-intake-service/internal/ports"
	"measurement-intake-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(
	store ports.ProjectStore,
	settings *services.SettingsService,
	notifier ports.Notifier,
	lookup ports.AddressLookup,
	loc *time.Location,
) http.Handler {
	mux := http.NewServeMux()

	projectHandler := &handlers.ProjectHandler{Store: store}
	appointmentHandler := &handlers.AppointmentHandler{Store: store, Loc: loc}
	clientHandler := &handlers.ClientHandler{Store: store}
	settingsHandler := &handlers.SettingsHandler{Settings: settings, Notifier: notifier}
	addressHandler := &handlers.AddressHandler{Lookup: lookup}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/projects", projectHandler.Handle)
	mux.HandleFunc("/appointments", appointmentHandler.List)
	mux.HandleFunc("/calendar", appointmentHandler.Calendar)
	mux.HandleFunc("/clients", clientHandler.List)
	mux.HandleFunc("/settings", settingsHandler.Handle)
	mux.HandleFunc("/address/lookup", addressHandler.Handle)

	return loggingMiddleware(mux)
}
