package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cx-tal-miterani/flight-data-api/internal/database"
	"github.com/cx-tal-miterani/flight-data-api/internal/query"
	"github.com/cx-tal-miterani/flight-data-api/internal/service"
)

// CrewHandler contains the HTTP handlers of the crew service.
type CrewHandler struct {
	crewService service.CrewService
}

// NewCrewHandler creates a new CrewHandler.
func NewCrewHandler(crewService service.CrewService) *CrewHandler {
	return &CrewHandler{crewService: crewService}
}

// Search handles POST /crew/search
func (h *CrewHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req query.CrewSearchRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	crew, categorized, err := h.crewService.Search(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if crew == nil {
		crew = []database.Crew{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"count":       len(crew),
		"crew":        crew,
		"categorized": categorized,
	})
}

// Get handles GET /crew/{crewID}
func (h *CrewHandler) Get(w http.ResponseWriter, r *http.Request) {
	crewID := mux.Vars(r)["crewID"]

	crew, assignments, err := h.crewService.Get(r.Context(), crewID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusNotFound, "crew member not found")
			return
		}
		respondServiceError(w, err)
		return
	}
	if assignments == nil {
		assignments = []database.CrewAssignment{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"crew":             crew,
		"assignments":      assignments,
		"assignment_count": len(assignments),
	})
}

// ByFlight handles GET /crew/flight/{flightNo}
func (h *CrewHandler) ByFlight(w http.ResponseWriter, r *http.Request) {
	flightNo := mux.Vars(r)["flightNo"]

	roster, err := h.crewService.ByFlight(r.Context(), flightNo)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":              true,
		"flight_no":            roster.FlightNo,
		"flight_details":       roster.FlightDetails,
		"count":                roster.Count,
		"crew":                 roster.Crew,
		"by_role":              roster.ByRole,
		"certification_status": roster.CertificationStatus,
	})
}

// Available handles POST /crew/available
func (h *CrewHandler) Available(w http.ResponseWriter, r *http.Request) {
	var req query.AvailableCrewRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	crew, categorized, err := h.crewService.Available(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if crew == nil {
		crew = []database.Crew{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"count":          len(crew),
		"available_crew": crew,
		"categorized":    categorized,
	})
}

// SearchAssignments handles POST /assignments/search
func (h *CrewHandler) SearchAssignments(w http.ResponseWriter, r *http.Request) {
	var req query.AssignmentSearchRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	assignments, err := h.crewService.SearchAssignments(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if assignments == nil {
		assignments = []database.CrewAssignment{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"count":       len(assignments),
		"assignments": assignments,
	})
}

// Health handles GET /health
func (h *CrewHandler) Health(w http.ResponseWriter, r *http.Request) {
	crewCount, assignmentCount, err := h.crewService.Health(r.Context())
	if err != nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":   "degraded",
			"database": "unreachable",
			"error":    err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "healthy",
		"database":          "connected",
		"total_crew":        crewCount,
		"total_assignments": assignmentCount,
	})
}
