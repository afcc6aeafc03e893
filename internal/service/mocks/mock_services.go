package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cx-tal-miterani/flight-data-api/internal/database"
	"github.com/cx-tal-miterani/flight-data-api/internal/query"
	"github.com/cx-tal-miterani/flight-data-api/internal/service"
)

// MockFlightService is a mock implementation of service.FlightService
type MockFlightService struct {
	mock.Mock
}

func (m *MockFlightService) GetFlight(ctx context.Context, flightNo string) (*database.Flight, error) {
	args := m.Called(ctx, flightNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.Flight), args.Error(1)
}

func (m *MockFlightService) Search(ctx context.Context, req query.FlightSearchRequest) ([]database.Flight, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.Flight), args.Error(1)
}

func (m *MockFlightService) Routes(ctx context.Context) ([]database.Route, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.Route), args.Error(1)
}

func (m *MockFlightService) Health(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockPassengerService is a mock implementation of service.PassengerService
type MockPassengerService struct {
	mock.Mock
}

func (m *MockPassengerService) ByFlight(ctx context.Context, flightNo string) ([]database.Passenger, *service.PassengerCategories, error) {
	args := m.Called(ctx, flightNo)
	var passengers []database.Passenger
	if args.Get(0) != nil {
		passengers = args.Get(0).([]database.Passenger)
	}
	var categories *service.PassengerCategories
	if args.Get(1) != nil {
		categories = args.Get(1).(*service.PassengerCategories)
	}
	return passengers, categories, args.Error(2)
}

func (m *MockPassengerService) Search(ctx context.Context, req query.PassengerSearchRequest) ([]database.Passenger, *service.PassengerCategories, error) {
	args := m.Called(ctx, req)
	var passengers []database.Passenger
	if args.Get(0) != nil {
		passengers = args.Get(0).([]database.Passenger)
	}
	var categories *service.PassengerCategories
	if args.Get(1) != nil {
		categories = args.Get(1).(*service.PassengerCategories)
	}
	return passengers, categories, args.Error(2)
}

func (m *MockPassengerService) ByPNR(ctx context.Context, pnr string) ([]database.Passenger, error) {
	args := m.Called(ctx, pnr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.Passenger), args.Error(1)
}

func (m *MockPassengerService) Health(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockCrewService is a mock implementation of service.CrewService
type MockCrewService struct {
	mock.Mock
}

func (m *MockCrewService) Search(ctx context.Context, req query.CrewSearchRequest) ([]database.Crew, *service.CrewCategories, error) {
	args := m.Called(ctx, req)
	var crew []database.Crew
	if args.Get(0) != nil {
		crew = args.Get(0).([]database.Crew)
	}
	var categories *service.CrewCategories
	if args.Get(1) != nil {
		categories = args.Get(1).(*service.CrewCategories)
	}
	return crew, categories, args.Error(2)
}

func (m *MockCrewService) Get(ctx context.Context, crewID string) (*database.Crew, []database.CrewAssignment, error) {
	args := m.Called(ctx, crewID)
	var crew *database.Crew
	if args.Get(0) != nil {
		crew = args.Get(0).(*database.Crew)
	}
	var assignments []database.CrewAssignment
	if args.Get(1) != nil {
		assignments = args.Get(1).([]database.CrewAssignment)
	}
	return crew, assignments, args.Error(2)
}

func (m *MockCrewService) ByFlight(ctx context.Context, flightNo string) (*service.FlightCrewRoster, error) {
	args := m.Called(ctx, flightNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FlightCrewRoster), args.Error(1)
}

func (m *MockCrewService) Available(ctx context.Context, req query.AvailableCrewRequest) ([]database.Crew, *service.AvailabilityBuckets, error) {
	args := m.Called(ctx, req)
	var crew []database.Crew
	if args.Get(0) != nil {
		crew = args.Get(0).([]database.Crew)
	}
	var buckets *service.AvailabilityBuckets
	if args.Get(1) != nil {
		buckets = args.Get(1).(*service.AvailabilityBuckets)
	}
	return crew, buckets, args.Error(2)
}

func (m *MockCrewService) SearchAssignments(ctx context.Context, req query.AssignmentSearchRequest) ([]database.CrewAssignment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.CrewAssignment), args.Error(1)
}

func (m *MockCrewService) Health(ctx context.Context) (int, int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Int(1), args.Error(2)
}
