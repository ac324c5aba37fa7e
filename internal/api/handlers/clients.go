package handlers

import (
	"log"
	"net/http"

	"measurement-intake-service/internal/api/dto"
	"measurement-intake-service/internal/ports"
	"measurement-intake-service/internal/services"
)

// ClientHandler lists the unique customers derived from stored projects.
type ClientHandler struct {
	Store ports.ProjectStore
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	projects, err := h.Store.ListProjects(r.Context())
	if err != nil {
		log.Printf("list projects failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListClientsResponse{
		Clients: services.UniqueClients(projects),
	})
}
