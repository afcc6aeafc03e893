package router

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/cx-tal-miterani/flight-data-api/internal/handlers"
	"github.com/cx-tal-miterani/flight-data-api/internal/stream"
)

// NewFlightRouter creates and configures the flight service router.
func NewFlightRouter(h *handlers.FlightHandler, hub *stream.Hub) *mux.Router {
	r := newRouter()

	r.HandleFunc("/", h.Index).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/metadata", h.Metadata).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/routes", h.Routes).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/search", h.Search).Methods(http.MethodPost, http.MethodOptions)

	// WebSocket for real-time flight status updates
	r.HandleFunc("/flight/{flightNo}/ws", hub.HandleWebSocket)

	r.HandleFunc("/flight/{flightNo}", h.GetFlight).Methods(http.MethodGet, http.MethodOptions)

	return r
}

// NewPassengerRouter creates and configures the passenger service router.
func NewPassengerRouter(h *handlers.PassengerHandler) *mux.Router {
	r := newRouter()

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/passengers/flight/{flightNo}", h.ByFlight).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/passengers/search", h.Search).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/passengers/pnr/{pnr}", h.ByPNR).Methods(http.MethodGet, http.MethodOptions)

	return r
}

// NewCrewRouter creates and configures the crew service router.
func NewCrewRouter(h *handlers.CrewHandler) *mux.Router {
	r := newRouter()

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/crew/search", h.Search).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/crew/available", h.Available).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/crew/flight/{flightNo}", h.ByFlight).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/crew/{crewID}", h.Get).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/assignments/search", h.SearchAssignments).Methods(http.MethodPost, http.MethodOptions)

	return r
}

func newRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(requestLogMiddleware)
	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func requestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		log.Printf("[%s] %s %s", requestID, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
