package service

import (
	"context"

	"github.com/cx-tal-miterani/flight-data-api/internal/database"
	"github.com/cx-tal-miterani/flight-data-api/internal/query"
)

// FlightService defines the flight-facing operations
type FlightService interface {
	GetFlight(ctx context.Context, flightNo string) (*database.Flight, error)
	Search(ctx context.Context, req query.FlightSearchRequest) ([]database.Flight, error)
	Routes(ctx context.Context) ([]database.Route, error)
	Health(ctx context.Context) (int, error)
}

type flightServiceImpl struct {
	repo     *database.Repository
	defaults query.Defaults
}

// NewFlightService creates a new FlightService over the repository. defaults
// is the externally configured default filter.
func NewFlightService(repo *database.Repository, defaults query.Defaults) FlightService {
	return &flightServiceImpl{repo: repo, defaults: defaults}
}

func (s *flightServiceImpl) GetFlight(ctx context.Context, flightNo string) (*database.Flight, error) {
	return s.repo.GetFlightByNumber(ctx, flightNo)
}

func (s *flightServiceImpl) Search(ctx context.Context, req query.FlightSearchRequest) ([]database.Flight, error) {
	predicates, err := query.InterpretFlightSearch(req, s.defaults)
	if err != nil {
		return nil, err
	}
	return s.repo.SearchFlights(ctx, predicates)
}

func (s *flightServiceImpl) Routes(ctx context.Context) ([]database.Route, error) {
	return s.repo.ListRoutes(ctx)
}

func (s *flightServiceImpl) Health(ctx context.Context) (int, error) {
	return s.repo.CountRows(ctx, "flights")
}
