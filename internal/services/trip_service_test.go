package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "wayfarer/internal/models/db_models"
	"wayfarer/internal/repositories"
)

type countingTripRepo struct {
	repositories.TripRepository
	tripID uuid.UUID
	calls  int
}

func (f *countingTripRepo) FirstTripID(ctx context.Context) (uuid.UUID, error) {
	f.calls++
	return f.tripID, nil
}

type fakeDayListRepo struct {
	repositories.DayRepository
	rows []dbm.Day
	err  error
}

func (f *fakeDayListRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Day, error) {
	return f.rows, f.err
}

type fakeFlightListRepo struct {
	repositories.FlightRepository
	rows []dbm.Flight
	err  error
}

func (f *fakeFlightListRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Flight, error) {
	return f.rows, f.err
}

type fakeHotelListRepo struct {
	repositories.HotelRepository
	rows []dbm.Hotel
	err  error
}

func (f *fakeHotelListRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Hotel, error) {
	return f.rows, f.err
}

type fakeTravelerListRepo struct {
	repositories.TravelerRepository
	rows []dbm.Traveler
	err  error
}

func (f *fakeTravelerListRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Traveler, error) {
	return f.rows, f.err
}

type fakeMustDoListRepo struct {
	repositories.MustDoRepository
	rows []dbm.MustDo
	err  error
}

func (f *fakeMustDoListRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.MustDo, error) {
	return f.rows, f.err
}

type fakeSavedPlaceListRepo struct {
	repositories.SavedPlaceRepository
	rows []dbm.SavedPlace
	err  error
}

func (f *fakeSavedPlaceListRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.SavedPlace, error) {
	return f.rows, f.err
}

func newLoadedRows() (day dbm.Day, flight dbm.Flight, traveler dbm.Traveler) {
	day = dbm.Day{
		Date:        time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
		DayNumber:   1,
		Destination: "copenhagen",
		Title:       "Arrival",
	}
	day.ID = uuid.New()

	flight = dbm.Flight{
		Date:     time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
		FromCity: "Copenhagen",
		FromCode: "CPH",
		ToCity:   "Reykjavik",
		ToCode:   "KEF",
	}
	flight.ID = uuid.New()

	traveler = dbm.Traveler{Name: "Astrid", Color: "#e07a5f"}
	traveler.ID = uuid.New()
	return day, flight, traveler
}

func TestLoadTripAssemblesAllCollections(t *testing.T) {
	day, flight, traveler := newLoadedRows()
	svc := NewTripService(
		&countingTripRepo{tripID: uuid.New()},
		&fakeDayListRepo{rows: []dbm.Day{day}},
		&fakeFlightListRepo{rows: []dbm.Flight{flight}},
		&fakeHotelListRepo{},
		&fakeTravelerListRepo{rows: []dbm.Traveler{traveler}},
		&fakeMustDoListRepo{},
		&fakeSavedPlaceListRepo{},
	)

	data, err := svc.LoadTrip(context.Background())
	require.NoError(t, err)

	require.Len(t, data.Days, 1)
	assert.Equal(t, "Arrival", data.Days[0].Title)
	require.Len(t, data.Flights, 1)
	assert.Equal(t, "CPH", data.Flights[0].FromCode)
	require.Len(t, data.Travelers, 1)
	assert.NotNil(t, data.Hotels)
	assert.NotNil(t, data.MustDos)
	assert.NotNil(t, data.SavedPlaces)
}

func TestLoadTripReturnsPartialResultsWithJoinedError(t *testing.T) {
	day, _, traveler := newLoadedRows()
	flightErr := errors.New("flights query failed")
	hotelErr := errors.New("hotels query failed")
	svc := NewTripService(
		&countingTripRepo{tripID: uuid.New()},
		&fakeDayListRepo{rows: []dbm.Day{day}},
		&fakeFlightListRepo{err: flightErr},
		&fakeHotelListRepo{err: hotelErr},
		&fakeTravelerListRepo{rows: []dbm.Traveler{traveler}},
		&fakeMustDoListRepo{},
		&fakeSavedPlaceListRepo{},
	)

	data, err := svc.LoadTrip(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, flightErr)
	assert.ErrorIs(t, err, hotelErr)
	// The collections that did load are still usable.
	require.NotNil(t, data)
	assert.Len(t, data.Days, 1)
	assert.Len(t, data.Travelers, 1)
	assert.Empty(t, data.Flights)
}

func TestResolveTripIDCachesUntilCleared(t *testing.T) {
	tripRepo := &countingTripRepo{tripID: uuid.New()}
	svc := NewTripService(tripRepo, nil, nil, nil, nil, nil, nil)

	first, err := svc.ResolveTripID(context.Background())
	require.NoError(t, err)
	second, err := svc.ResolveTripID(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, tripRepo.calls)

	svc.ClearTripCache()
	_, err = svc.ResolveTripID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, tripRepo.calls)
}
