package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/cx-tal-miterani/flight-data-api/internal/database"
	"github.com/cx-tal-miterani/flight-data-api/internal/query"
	"github.com/cx-tal-miterani/flight-data-api/internal/service"
)

// FlightHandler contains the HTTP handlers of the flight service.
type FlightHandler struct {
	flightService service.FlightService
	metadata      map[string]any
}

// NewFlightHandler creates a new FlightHandler. metadata is the agent
// platform document served verbatim at /metadata.
func NewFlightHandler(flightService service.FlightService, metadata map[string]any) *FlightHandler {
	return &FlightHandler{
		flightService: flightService,
		metadata:      metadata,
	}
}

// Index handles GET /
func (h *FlightHandler) Index(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"message": "Flight Data API is running",
		"endpoints": map[string]string{
			"/search":                "Search flights with structured filters or a natural language query",
			"/flight/<flight_no>":    "Get specific flight details",
			"/flight/<flight_no>/ws": "Live flight status stream",
			"/routes":                "Get all distinct routes",
			"/metadata":              "Agent platform metadata document",
			"/health":                "API health check",
		},
	})
}

// GetFlight handles GET /flight/{flightNo}
func (h *FlightHandler) GetFlight(w http.ResponseWriter, r *http.Request) {
	flightNo := mux.Vars(r)["flightNo"]

	flight, err := h.flightService.GetFlight(r.Context(), flightNo)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusNotFound, "flight not found")
			return
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"flight":  flight,
	})
}

// Search handles POST /search
func (h *FlightHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req query.FlightSearchRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	flights, err := h.flightService.Search(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if flights == nil {
		flights = []database.Flight{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(flights),
		"flights": flights,
	})
}

// Routes handles GET /routes
func (h *FlightHandler) Routes(w http.ResponseWriter, r *http.Request) {
	routes, err := h.flightService.Routes(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if routes == nil {
		routes = []database.Route{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(routes),
		"routes":  routes,
	})
}

// Metadata handles GET /metadata. The document is configuration supplied for
// the agent platform; it is passed through without interpretation.
func (h *FlightHandler) Metadata(w http.ResponseWriter, r *http.Request) {
	metadata := h.metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	respondJSON(w, http.StatusOK, metadata)
}

// Health handles GET /health
func (h *FlightHandler) Health(w http.ResponseWriter, r *http.Request) {
	count, err := h.flightService.Health(r.Context())
	if err != nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":   "degraded",
			"database": "unreachable",
			"error":    err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "healthy",
		"database":      "connected",
		"total_flights": count,
	})
}

func upperTrim(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
