package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"measurement-intake-service/internal/api/dto"
	"measurement-intake-service/internal/domain"
	"measurement-intake-service/internal/ports"
	"measurement-intake-service/internal/services"
)

// SettingsHandler reads and updates the scheduler settings.
//
// Enabling notifications first asks the notification channel for permission;
// when permission is denied the enable request is stored as disabled, so the
// feature degrades visibly instead of erroring.
type SettingsHandler struct {
	Settings *services.SettingsService
	Notifier ports.Notifier
}

func (h *SettingsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.update(w, r)
	default:
		w.Header().Set("Allow", "GET, PUT")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *SettingsHandler) get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.response(h.Settings.Get()))
}

func (h *SettingsHandler) update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSettingsRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}
	if req.PreparationTime < 0 {
		writeError(w, r, http.StatusBadRequest, "preparationTime must not be negative")
		return
	}

	next := domain.Settings{
		NotificationsEnabled: req.NotificationsEnabled,
		PreparationTime:      req.PreparationTime,
	}

	if next.NotificationsEnabled {
		granted, err := h.Notifier.RequestPermission(r.Context())
		if err != nil {
			log.Printf("request notification permission failed: %v", err)
		}
		if !granted {
			next.NotificationsEnabled = false
		}
	}

	if err := h.Settings.Update(r.Context(), next); err != nil {
		log.Printf("update settings failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, h.response(next))
}

func (h *SettingsHandler) response(s domain.Settings) dto.SettingsResponse {
	return dto.SettingsResponse{
		NotificationsEnabled: s.NotificationsEnabled,
		PreparationTime:      s.PreparationTime,
		PermissionGranted:    h.Notifier.IsGranted(),
	}
}
