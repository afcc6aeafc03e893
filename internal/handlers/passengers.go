package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cx-tal-miterani/flight-data-api/internal/database"
	"github.com/cx-tal-miterani/flight-data-api/internal/query"
	"github.com/cx-tal-miterani/flight-data-api/internal/service"
)

// PassengerHandler contains the HTTP handlers of the passenger service.
type PassengerHandler struct {
	passengerService service.PassengerService
}

// NewPassengerHandler creates a new PassengerHandler.
func NewPassengerHandler(passengerService service.PassengerService) *PassengerHandler {
	return &PassengerHandler{passengerService: passengerService}
}

// ByFlight handles GET /passengers/flight/{flightNo}
func (h *PassengerHandler) ByFlight(w http.ResponseWriter, r *http.Request) {
	flightNo := mux.Vars(r)["flightNo"]

	passengers, categorized, err := h.passengerService.ByFlight(r.Context(), flightNo)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if passengers == nil {
		passengers = []database.Passenger{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"flight_no":   upperTrim(flightNo),
		"count":       len(passengers),
		"passengers":  passengers,
		"categorized": categorized,
	})
}

// Search handles POST /passengers/search
func (h *PassengerHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req query.PassengerSearchRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	passengers, categorized, err := h.passengerService.Search(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if passengers == nil {
		passengers = []database.Passenger{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"count":       len(passengers),
		"passengers":  passengers,
		"categorized": categorized,
	})
}

// ByPNR handles GET /passengers/pnr/{pnr}
func (h *PassengerHandler) ByPNR(w http.ResponseWriter, r *http.Request) {
	pnr := mux.Vars(r)["pnr"]

	passengers, err := h.passengerService.ByPNR(r.Context(), pnr)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if passengers == nil {
		passengers = []database.Passenger{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"pnr":              upperTrim(pnr),
		"count":            len(passengers),
		"passengers":       passengers,
		"is_group_booking": len(passengers) > 1,
	})
}

// Health handles GET /health
func (h *PassengerHandler) Health(w http.ResponseWriter, r *http.Request) {
	count, err := h.passengerService.Health(r.Context())
	if err != nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":   "degraded",
			"database": "unreachable",
			"error":    err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":           "healthy",
		"database":         "connected",
		"total_passengers": count,
	})
}
