package services

import (
	"context"

	"github.com/google/uuid"

	"wayfarer/internal/models/entities"
	"wayfarer/internal/repositories"
	"wayfarer/internal/transform"
	"wayfarer/pkg/utils"
)

type SavedPlaceService interface {
	ListSavedPlaces(ctx context.Context) ([]entities.SavedPlace, error)
	AddSavedPlace(ctx context.Context, p entities.SavedPlace) (*entities.SavedPlace, error)
	DeleteSavedPlace(ctx context.Context, placeID string) error
}

type savedPlaceService struct {
	tripService    TripService
	savedPlaceRepo repositories.SavedPlaceRepository
}

func NewSavedPlaceService(tripService TripService, savedPlaceRepo repositories.SavedPlaceRepository) SavedPlaceService {
	return &savedPlaceService{tripService: tripService, savedPlaceRepo: savedPlaceRepo}
}

func (s *savedPlaceService) ListSavedPlaces(ctx context.Context) ([]entities.SavedPlace, error) {
	tripID, err := s.tripService.ResolveTripID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.savedPlaceRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	places := make([]entities.SavedPlace, 0, len(rows))
	for _, row := range rows {
		places = append(places, transform.SavedPlaceFromRow(row))
	}
	return places, nil
}

func (s *savedPlaceService) AddSavedPlace(ctx context.Context, p entities.SavedPlace) (*entities.SavedPlace, error) {
	if p.Ref.IsPersisted() {
		return nil, utils.ErrInvalidInput
	}
	if p.Name == "" || !p.Type.Valid() {
		return nil, utils.ErrInvalidInput
	}

	tripID, err := s.tripService.ResolveTripID(ctx)
	if err != nil {
		return nil, err
	}

	row := transform.SavedPlaceToRow(p, tripID)
	if err := s.savedPlaceRepo.Create(ctx, &row); err != nil {
		return nil, err
	}

	created := transform.SavedPlaceFromRow(row)
	return &created, nil
}

func (s *savedPlaceService) DeleteSavedPlace(ctx context.Context, placeID string) error {
	id, err := uuid.Parse(placeID)
	if err != nil {
		return utils.ErrNotFound
	}
	return s.savedPlaceRepo.Delete(ctx, id)
}
