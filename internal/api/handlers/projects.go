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

// ProjectHandler exposes the stored project list and the save-and-schedule
// operation.
type ProjectHandler struct {
	Store ports.ProjectStore
}

func (h *ProjectHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.save(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *ProjectHandler) list(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Store.ListProjects(r.Context())
	if err != nil {
		log.Printf("list projects failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListProjectsResponse{Projects: projects})
}

func (h *ProjectHandler) save(w http.ResponseWriter, r *http.Request) {
	var project domain.Project

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&project); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	saved, err := services.SaveProject(r.Context(), h.Store, &project)
	if err != nil {
		log.Printf("save project failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SaveProjectResponse{Project: saved})
}
