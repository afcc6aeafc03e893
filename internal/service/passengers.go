package service

import (
	"context"

	"github.com/cx-tal-miterani/flight-data-api/internal/database"
	"github.com/cx-tal-miterani/flight-data-api/internal/query"
)

// PassengerService defines the passenger-facing operations
type PassengerService interface {
	ByFlight(ctx context.Context, flightNo string) ([]database.Passenger, *PassengerCategories, error)
	Search(ctx context.Context, req query.PassengerSearchRequest) ([]database.Passenger, *PassengerCategories, error)
	ByPNR(ctx context.Context, pnr string) ([]database.Passenger, error)
	Health(ctx context.Context) (int, error)
}

type passengerServiceImpl struct {
	repo *database.Repository
}

// NewPassengerService creates a new PassengerService over the repository.
func NewPassengerService(repo *database.Repository) PassengerService {
	return &passengerServiceImpl{repo: repo}
}

func (s *passengerServiceImpl) ByFlight(ctx context.Context, flightNo string) ([]database.Passenger, *PassengerCategories, error) {
	passengers, err := s.repo.ListPassengersByFlight(ctx, flightNo)
	if err != nil {
		return nil, nil, err
	}
	return passengers, CategorizePassengers(passengers), nil
}

func (s *passengerServiceImpl) Search(ctx context.Context, req query.PassengerSearchRequest) ([]database.Passenger, *PassengerCategories, error) {
	predicates, err := query.InterpretPassengerSearch(req)
	if err != nil {
		return nil, nil, err
	}
	passengers, err := s.repo.SearchPassengers(ctx, predicates)
	if err != nil {
		return nil, nil, err
	}
	return passengers, CategorizePassengers(passengers), nil
}

func (s *passengerServiceImpl) ByPNR(ctx context.Context, pnr string) ([]database.Passenger, error) {
	return s.repo.ListPassengersByPNR(ctx, pnr)
}

func (s *passengerServiceImpl) Health(ctx context.Context) (int, error) {
	return s.repo.CountRows(ctx, "passengers")
}
