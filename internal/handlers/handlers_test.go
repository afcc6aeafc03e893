package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cx-tal-miterani/flight-data-api/internal/database"
	"github.com/cx-tal-miterani/flight-data-api/internal/query"
	"github.com/cx-tal-miterani/flight-data-api/internal/service"
	"github.com/cx-tal-miterani/flight-data-api/internal/service/mocks"
)

func setupFlightRouter(h *FlightHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/metadata", h.Metadata).Methods(http.MethodGet)
	r.HandleFunc("/routes", h.Routes).Methods(http.MethodGet)
	r.HandleFunc("/search", h.Search).Methods(http.MethodPost)
	r.HandleFunc("/flight/{flightNo}", h.GetFlight).Methods(http.MethodGet)
	return r
}

func setupPassengerRouter(h *PassengerHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/passengers/flight/{flightNo}", h.ByFlight).Methods(http.MethodGet)
	r.HandleFunc("/passengers/search", h.Search).Methods(http.MethodPost)
	r.HandleFunc("/passengers/pnr/{pnr}", h.ByPNR).Methods(http.MethodGet)
	return r
}

func setupCrewRouter(h *CrewHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/crew/search", h.Search).Methods(http.MethodPost)
	r.HandleFunc("/crew/available", h.Available).Methods(http.MethodPost)
	r.HandleFunc("/crew/flight/{flightNo}", h.ByFlight).Methods(http.MethodGet)
	r.HandleFunc("/crew/{crewID}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/assignments/search", h.SearchAssignments).Methods(http.MethodPost)
	return r
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestFlightHandler_GetFlight(t *testing.T) {
	tests := []struct {
		name           string
		flightNo       string
		mockReturn     *database.Flight
		mockError      error
		expectedStatus int
	}{
		{
			name:           "flight found",
			flightNo:       "AI202",
			mockReturn:     &database.Flight{FlightNo: "AI202", Origin: "DEL", Destination: "BOM", Status: "ON_TIME"},
			mockError:      nil,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "flight not found",
			flightNo:       "ZZ999",
			mockReturn:     nil,
			mockError:      database.ErrNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.MockFlightService)
			handler := NewFlightHandler(mockService, nil)
			router := setupFlightRouter(handler)

			mockService.On("GetFlight", mock.Anything, tt.flightNo).Return(tt.mockReturn, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, "/flight/"+tt.flightNo, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			body := decodeResponse(t, rec)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, true, body["success"])
				flight := body["flight"].(map[string]interface{})
				assert.Equal(t, "AI202", flight["flight_no"])
			} else {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, "flight not found", body["error"])
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestFlightHandler_Search(t *testing.T) {
	mockService := new(mocks.MockFlightService)
	handler := NewFlightHandler(mockService, nil)
	router := setupFlightRouter(handler)

	expected := []database.Flight{
		{FlightNo: "AI202", Origin: "DEL", Destination: "BOM"},
		{FlightNo: "6E101", Origin: "DEL", Destination: "BOM"},
	}
	mockService.On("Search", mock.Anything, mock.AnythingOfType("query.FlightSearchRequest")).Return(expected, nil)

	payload, _ := json.Marshal(query.FlightSearchRequest{Origin: "DEL", Destination: "BOM"})
	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["count"])
	assert.Len(t, body["flights"], 2)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_Search_EmptyBody(t *testing.T) {
	mockService := new(mocks.MockFlightService)
	handler := NewFlightHandler(mockService, nil)
	router := setupFlightRouter(handler)

	mockService.On("Search", mock.Anything, query.FlightSearchRequest{}).Return([]database.Flight{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/search", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(0), body["count"])

	mockService.AssertExpectations(t)
}

func TestFlightHandler_Search_InvalidJSON(t *testing.T) {
	mockService := new(mocks.MockFlightService)
	handler := NewFlightHandler(mockService, nil)
	router := setupFlightRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, false, body["success"])

	mockService.AssertNotCalled(t, "Search")
}

func TestFlightHandler_Search_FilterError(t *testing.T) {
	mockService := new(mocks.MockFlightService)
	handler := NewFlightHandler(mockService, nil)
	router := setupFlightRouter(handler)

	filterErr := &query.FilterError{Field: "origin", Reason: "must be a 3-letter airport code"}
	mockService.On("Search", mock.Anything, mock.AnythingOfType("query.FlightSearchRequest")).Return(nil, filterErr)

	payload := []byte(`{"origin": "DELHI"}`)
	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "invalid origin: must be a 3-letter airport code", body["error"])

	mockService.AssertExpectations(t)
}

func TestFlightHandler_Routes(t *testing.T) {
	mockService := new(mocks.MockFlightService)
	handler := NewFlightHandler(mockService, nil)
	router := setupFlightRouter(handler)

	mockService.On("Routes", mock.Anything).Return([]database.Route{
		{Origin: "DEL", Destination: "BOM", FlightCount: 12},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/routes", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, float64(1), body["count"])

	mockService.AssertExpectations(t)
}

func TestFlightHandler_Metadata(t *testing.T) {
	mockService := new(mocks.MockFlightService)
	metadata := map[string]any{"api_version": "2.1", "provider": "skylink"}
	handler := NewFlightHandler(mockService, metadata)
	router := setupFlightRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/metadata", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "2.1", body["api_version"])
	assert.Equal(t, "skylink", body["provider"])
}

func TestFlightHandler_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		mockService := new(mocks.MockFlightService)
		handler := NewFlightHandler(mockService, nil)
		router := setupFlightRouter(handler)

		mockService.On("Health", mock.Anything).Return(120, nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeResponse(t, rec)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "connected", body["database"])
		assert.Equal(t, float64(120), body["total_flights"])
	})

	t.Run("database down", func(t *testing.T) {
		mockService := new(mocks.MockFlightService)
		handler := NewFlightHandler(mockService, nil)
		router := setupFlightRouter(handler)

		mockService.On("Health", mock.Anything).Return(0, errors.New("connection refused"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		body := decodeResponse(t, rec)
		assert.Equal(t, "degraded", body["status"])
		assert.Equal(t, "unreachable", body["database"])
	})
}

func TestPassengerHandler_ByFlight(t *testing.T) {
	mockService := new(mocks.MockPassengerService)
	handler := NewPassengerHandler(mockService)
	router := setupPassengerRouter(handler)

	passengers := []database.Passenger{
		{PassengerID: "P1", FlightNo: "AI202", Name: "Asha", PNR: "ABC123"},
	}
	mockService.On("ByFlight", mock.Anything, "ai202").Return(passengers, service.CategorizePassengers(passengers), nil)

	req := httptest.NewRequest(http.MethodGet, "/passengers/flight/ai202", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "AI202", body["flight_no"])
	assert.Equal(t, float64(1), body["count"])
	assert.NotNil(t, body["categorized"])

	mockService.AssertExpectations(t)
}

func TestPassengerHandler_ByPNR(t *testing.T) {
	mockService := new(mocks.MockPassengerService)
	handler := NewPassengerHandler(mockService)
	router := setupPassengerRouter(handler)

	passengers := []database.Passenger{
		{PassengerID: "P1", PNR: "ABC123"},
		{PassengerID: "P2", PNR: "ABC123"},
	}
	mockService.On("ByPNR", mock.Anything, "abc123").Return(passengers, nil)

	req := httptest.NewRequest(http.MethodGet, "/passengers/pnr/abc123", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "ABC123", body["pnr"])
	assert.Equal(t, true, body["is_group_booking"])

	mockService.AssertExpectations(t)
}

func TestCrewHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		crewID         string
		mockCrew       *database.Crew
		mockError      error
		expectedStatus int
	}{
		{
			name:           "crew member found",
			crewID:         "CR001",
			mockCrew:       &database.Crew{CrewID: "CR001", Name: "Dana", Role: "Pilot"},
			mockError:      nil,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "crew member not found",
			crewID:         "CR999",
			mockCrew:       nil,
			mockError:      database.ErrNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.MockCrewService)
			handler := NewCrewHandler(mockService)
			router := setupCrewRouter(handler)

			var assignments []database.CrewAssignment
			if tt.mockCrew != nil {
				assignments = []database.CrewAssignment{{AssignmentID: "A1", CrewID: tt.crewID}}
			}
			mockService.On("Get", mock.Anything, tt.crewID).Return(tt.mockCrew, assignments, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, "/crew/"+tt.crewID, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				body := decodeResponse(t, rec)
				assert.Equal(t, float64(1), body["assignment_count"])
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestCrewHandler_Health(t *testing.T) {
	mockService := new(mocks.MockCrewService)
	handler := NewCrewHandler(mockService)
	router := setupCrewRouter(handler)

	mockService.On("Health", mock.Anything).Return(40, 310, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(40), body["total_crew"])
	assert.Equal(t, float64(310), body["total_assignments"])

	mockService.AssertExpectations(t)
}
