package services

import (
	"context"

	"github.com/google/uuid"

	"wayfarer/internal/models/entities"
	"wayfarer/internal/repositories"
	"wayfarer/internal/transform"
	"wayfarer/pkg/utils"
)

type FlightService interface {
	ListFlights(ctx context.Context) ([]entities.Flight, error)

	// AddFlight persists a not-yet-persisted flight and returns it with its
	// server-assigned identifier.
	AddFlight(ctx context.Context, f entities.Flight) (*entities.Flight, error)

	// UpdateFlight overwrites a persisted flight in full.
	UpdateFlight(ctx context.Context, f entities.Flight) (*entities.Flight, error)

	DeleteFlight(ctx context.Context, flightID string) error
}

type flightService struct {
	tripService TripService
	flightRepo  repositories.FlightRepository
}

func NewFlightService(tripService TripService, flightRepo repositories.FlightRepository) FlightService {
	return &flightService{tripService: tripService, flightRepo: flightRepo}
}

func (s *flightService) ListFlights(ctx context.Context) ([]entities.Flight, error) {
	tripID, err := s.tripService.ResolveTripID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.flightRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	flights := make([]entities.Flight, 0, len(rows))
	for _, row := range rows {
		flights = append(flights, transform.FlightFromRow(row))
	}
	return flights, nil
}

func (s *flightService) AddFlight(ctx context.Context, f entities.Flight) (*entities.Flight, error) {
	if f.Ref.IsPersisted() {
		return nil, utils.ErrInvalidInput
	}
	if f.Date == "" || f.From == "" || f.To == "" {
		return nil, utils.ErrInvalidInput
	}

	tripID, err := s.tripService.ResolveTripID(ctx)
	if err != nil {
		return nil, err
	}

	row := transform.FlightToRow(f, tripID)
	if err := s.flightRepo.Create(ctx, &row); err != nil {
		return nil, err
	}

	created := transform.FlightFromRow(row)
	return &created, nil
}

func (s *flightService) UpdateFlight(ctx context.Context, f entities.Flight) (*entities.Flight, error) {
	idStr, ok := f.Ref.ID()
	if !ok {
		return nil, utils.ErrNotPersisted
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, utils.ErrFlightNotFound
	}

	tripID, err := s.tripService.ResolveTripID(ctx)
	if err != nil {
		return nil, err
	}

	row := transform.FlightToRow(f, tripID)
	if err := s.flightRepo.Update(ctx, id, row); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *flightService) DeleteFlight(ctx context.Context, flightID string) error {
	id, err := uuid.Parse(flightID)
	if err != nil {
		return utils.ErrFlightNotFound
	}
	return s.flightRepo.Delete(ctx, id)
}
