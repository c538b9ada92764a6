package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"

	"wayfarer/internal/models/entities"
	"wayfarer/internal/repositories"
	"wayfarer/internal/transform"
)

type TripService interface {
	// ResolveTripID returns the single trip's identifier, caching it after
	// the first successful lookup.
	ResolveTripID(ctx context.Context) (uuid.UUID, error)

	// ClearTripCache drops the cached identifier so the next resolve hits
	// the store again.
	ClearTripCache()

	// LoadTrip assembles the full aggregate. Collections are fetched
	// concurrently; when some fail, the successful ones are still returned
	// alongside the joined error.
	LoadTrip(ctx context.Context) (*entities.TripData, error)
}

type tripService struct {
	tripRepo       repositories.TripRepository
	dayRepo        repositories.DayRepository
	flightRepo     repositories.FlightRepository
	hotelRepo      repositories.HotelRepository
	travelerRepo   repositories.TravelerRepository
	mustDoRepo     repositories.MustDoRepository
	savedPlaceRepo repositories.SavedPlaceRepository

	mu     sync.Mutex
	tripID uuid.UUID
}

func NewTripService(
	tripRepo repositories.TripRepository,
	dayRepo repositories.DayRepository,
	flightRepo repositories.FlightRepository,
	hotelRepo repositories.HotelRepository,
	travelerRepo repositories.TravelerRepository,
	mustDoRepo repositories.MustDoRepository,
	savedPlaceRepo repositories.SavedPlaceRepository,
) TripService {
	return &tripService{
		tripRepo:       tripRepo,
		dayRepo:        dayRepo,
		flightRepo:     flightRepo,
		hotelRepo:      hotelRepo,
		travelerRepo:   travelerRepo,
		mustDoRepo:     mustDoRepo,
		savedPlaceRepo: savedPlaceRepo,
	}
}

func (s *tripService) ResolveTripID(ctx context.Context) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tripID != uuid.Nil {
		return s.tripID, nil
	}

	id, err := s.tripRepo.FirstTripID(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	s.tripID = id
	return id, nil
}

func (s *tripService) ClearTripCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tripID = uuid.Nil
}

func (s *tripService) LoadTrip(ctx context.Context) (*entities.TripData, error) {
	tripID, err := s.ResolveTripID(ctx)
	if err != nil {
		return nil, err
	}

	data := &entities.TripData{
		Days:        []entities.Day{},
		Flights:     []entities.Flight{},
		Hotels:      []entities.Hotel{},
		Travelers:   []entities.Traveler{},
		MustDos:     []entities.MustDo{},
		SavedPlaces: []entities.SavedPlace{},
	}
	errs := make([]error, 6)

	var wg sync.WaitGroup
	wg.Add(6)

	go func() {
		defer wg.Done()
		rows, err := s.dayRepo.ListByTrip(ctx, tripID)
		if err != nil {
			errs[0] = err
			return
		}
		for _, row := range rows {
			data.Days = append(data.Days, transform.DayFromRow(row))
		}
	}()

	go func() {
		defer wg.Done()
		rows, err := s.flightRepo.ListByTrip(ctx, tripID)
		if err != nil {
			errs[1] = err
			return
		}
		for _, row := range rows {
			data.Flights = append(data.Flights, transform.FlightFromRow(row))
		}
	}()

	go func() {
		defer wg.Done()
		rows, err := s.hotelRepo.ListByTrip(ctx, tripID)
		if err != nil {
			errs[2] = err
			return
		}
		for _, row := range rows {
			data.Hotels = append(data.Hotels, transform.HotelFromRow(row))
		}
	}()

	go func() {
		defer wg.Done()
		rows, err := s.travelerRepo.ListByTrip(ctx, tripID)
		if err != nil {
			errs[3] = err
			return
		}
		for _, row := range rows {
			data.Travelers = append(data.Travelers, transform.TravelerFromRow(row))
		}
	}()

	go func() {
		defer wg.Done()
		rows, err := s.mustDoRepo.ListByTrip(ctx, tripID)
		if err != nil {
			errs[4] = err
			return
		}
		for _, row := range rows {
			data.MustDos = append(data.MustDos, transform.MustDoFromRow(row))
		}
	}()

	go func() {
		defer wg.Done()
		rows, err := s.savedPlaceRepo.ListByTrip(ctx, tripID)
		if err != nil {
			errs[5] = err
			return
		}
		for _, row := range rows {
			data.SavedPlaces = append(data.SavedPlaces, transform.SavedPlaceFromRow(row))
		}
	}()

	wg.Wait()

	if joined := errors.Join(errs...); joined != nil {
		log.Printf("[TripService] partial trip load: %v", joined)
		return data, joined
	}
	return data, nil
}
