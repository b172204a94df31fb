package api

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "rentaride/internal/errors"
	"rentaride/internal/service"
)

type ReservationHandler struct {
	Service *service.ReservationService
}

func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.View())
}

func (h *ReservationHandler) RentNow(w http.ResponseWriter, r *http.Request) {
	var req RentNowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.VIN == "" {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Service.RentNow(req.VIN); err != nil {
		http.Error(w, err.Error(), apperrors.StatusFor(err))
		return
	}
	writeJSON(w, h.Service.View())
}

// UpdateForm patches form fields. Validation errors are part of the
// response body, keyed by field name; they are never an HTTP failure.
func (h *ReservationHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	var req UpdateFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	fieldErrors, err := h.Service.UpdateForm(req.Fields)
	if err != nil {
		http.Error(w, err.Error(), apperrors.StatusFor(err))
		return
	}
	writeJSON(w, UpdateFormResponse{Errors: fieldErrors, Valid: len(fieldErrors) == 0})
}

func (h *ReservationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Submit(); err != nil {
		http.Error(w, err.Error(), apperrors.StatusFor(err))
		return
	}
	writeJSON(w, h.Service.View())
}

// Confirm attempts the claim. An already-reserved car answers 409 with
// the refreshed view (now routing to the unavailable stage); any other
// failure is a 500 the client may retry.
func (h *ReservationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.Confirm()
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyReserved) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(view)
			return
		}
		http.Error(w, err.Error(), apperrors.StatusFor(err))
		return
	}
	writeJSON(w, view)
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.Service.Cancel()
	writeJSON(w, MessageResponse{Message: "Reservation cancelled"})
}
