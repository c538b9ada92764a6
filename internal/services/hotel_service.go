package services

import (
	"context"

	"github.com/google/uuid"

	"wayfarer/internal/models/entities"
	"wayfarer/internal/repositories"
	"wayfarer/internal/transform"
	"wayfarer/pkg/utils"
)

type HotelService interface {
	ListHotels(ctx context.Context) ([]entities.Hotel, error)

	// UpsertHotel updates the persisted hotel when the entity carries a
	// server identifier, otherwise inserts-or-replaces the hotel for its
	// destination. One hotel per destination.
	UpsertHotel(ctx context.Context, h entities.Hotel) (*entities.Hotel, error)
}

type hotelService struct {
	tripService TripService
	hotelRepo   repositories.HotelRepository
}

func NewHotelService(tripService TripService, hotelRepo repositories.HotelRepository) HotelService {
	return &hotelService{tripService: tripService, hotelRepo: hotelRepo}
}

func (s *hotelService) ListHotels(ctx context.Context) ([]entities.Hotel, error) {
	tripID, err := s.tripService.ResolveTripID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.hotelRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	hotels := make([]entities.Hotel, 0, len(rows))
	for _, row := range rows {
		hotels = append(hotels, transform.HotelFromRow(row))
	}
	return hotels, nil
}

func (s *hotelService) UpsertHotel(ctx context.Context, h entities.Hotel) (*entities.Hotel, error) {
	if h.Name == "" || h.Destination == "" {
		return nil, utils.ErrInvalidInput
	}

	tripID, err := s.tripService.ResolveTripID(ctx)
	if err != nil {
		return nil, err
	}

	row := transform.HotelToRow(h, tripID)

	if idStr, ok := h.Ref.ID(); ok {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, utils.ErrNotFound
		}
		if err := s.hotelRepo.UpdateByID(ctx, id, row); err != nil {
			return nil, err
		}
		return &h, nil
	}

	if err := s.hotelRepo.UpsertByDestination(ctx, &row); err != nil {
		return nil, err
	}
	stored := transform.HotelFromRow(row)
	return &stored, nil
}
