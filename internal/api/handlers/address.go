package handlers

import (
	"errors"
	"log"
	"net/http"

	"measurement-intake-service/internal/adapters/postcode"
	"measurement-intake-service/internal/api/dto"
	"measurement-intake-service/internal/ports"
)

// AddressHandler resolves a postcode and house number to a street address for
// the intake form.
type AddressHandler struct {
	Lookup ports.AddressLookup
}

func (h *AddressHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	result, err := h.Lookup.Lookup(r.Context(), q.Get("postcode"), q.Get("house_number"))
	switch {
	case errors.Is(err, postcode.ErrInvalidInput):
		writeError(w, r, http.StatusBadRequest, "invalid postcode or house number")
		return
	case errors.Is(err, postcode.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "address not found")
		return
	case err != nil:
		log.Printf("address lookup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.AddressResponse{Street: result.Street, City: result.City})
}
