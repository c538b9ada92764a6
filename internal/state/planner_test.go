package state

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/internal/models/entities"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

// Fakes embed the service interface; only the methods a test exercises are
// overridden.

type fakeTripService struct {
	services.TripService
	data *entities.TripData
	err  error
}

func (f *fakeTripService) LoadTrip(ctx context.Context) (*entities.TripData, error) {
	return f.data, f.err
}

type fakeItineraryService struct {
	services.ItineraryService
	replaceFn func(ctx context.Context, dayID string, desired []entities.Activity) ([]entities.Activity, error)
	moveFn    func(ctx context.Context, activityID, fromDayID, toDayID string) (*entities.Day, *entities.Day, error)
}

func (f *fakeItineraryService) ReplaceDayActivities(ctx context.Context, dayID string, desired []entities.Activity) ([]entities.Activity, error) {
	return f.replaceFn(ctx, dayID, desired)
}

func (f *fakeItineraryService) MoveActivity(ctx context.Context, activityID, fromDayID, toDayID string) (*entities.Day, *entities.Day, error) {
	return f.moveFn(ctx, activityID, fromDayID, toDayID)
}

type fakeFlightService struct {
	services.FlightService
	addFn    func(ctx context.Context, f entities.Flight) (*entities.Flight, error)
	deleteFn func(ctx context.Context, flightID string) error
}

func (f *fakeFlightService) AddFlight(ctx context.Context, flight entities.Flight) (*entities.Flight, error) {
	return f.addFn(ctx, flight)
}

func (f *fakeFlightService) DeleteFlight(ctx context.Context, flightID string) error {
	return f.deleteFn(ctx, flightID)
}

type fakeMustDoService struct {
	services.MustDoService
	voteFn func(ctx context.Context, mustDoID, travelerID string) ([]string, error)
}

func (f *fakeMustDoService) ToggleVote(ctx context.Context, mustDoID, travelerID string) ([]string, error) {
	return f.voteFn(ctx, mustDoID, travelerID)
}

func newTestPlanner(trip *fakeTripService, itinerary *fakeItineraryService, flight *fakeFlightService, mustDo *fakeMustDoService) *TripPlanner {
	return NewTripPlanner(trip, itinerary, flight, nil, mustDo, nil, nil)
}

func seededTrip() *entities.TripData {
	return &entities.TripData{
		Days: []entities.Day{{
			Ref:   entities.PersistedRef("day-1"),
			Date:  "2026-06-12",
			Title: "Harbor day",
			Activities: []entities.Activity{
				{Ref: entities.PersistedRef("act-1"), Name: "Nyhavn", Type: entities.ActivityAttraction},
			},
		}},
		Flights: []entities.Flight{
			{Ref: entities.PersistedRef("flight-1"), Date: "2026-06-10", From: "CPH", To: "KEF"},
		},
		MustDos: []entities.MustDo{
			{Ref: entities.PersistedRef("md-1"), Name: "Northern lights", Votes: []string{"t1"}},
		},
	}
}

func TestPlannerLoadReplacesState(t *testing.T) {
	p := newTestPlanner(&fakeTripService{data: seededTrip()}, nil, nil, nil)

	require.NoError(t, p.Load(context.Background()))

	view := p.View()
	require.Len(t, view.Days, 1)
	assert.Equal(t, "Harbor day", view.Days[0].Title)
	require.Len(t, view.Flights, 1)
}

func TestPlannerLoadKeepsPartialResults(t *testing.T) {
	p := newTestPlanner(&fakeTripService{data: seededTrip(), err: errors.New("flights failed")}, nil, nil, nil)

	err := p.Load(context.Background())

	require.Error(t, err)
	assert.Len(t, p.View().Days, 1)
}

func TestPlannerAddActivityAssignsServerIdentifier(t *testing.T) {
	var sentDesired []entities.Activity
	itinerary := &fakeItineraryService{
		replaceFn: func(ctx context.Context, dayID string, desired []entities.Activity) ([]entities.Activity, error) {
			sentDesired = desired
			out := make([]entities.Activity, len(desired))
			for i, a := range desired {
				if !a.Ref.IsPersisted() {
					a.Ref = entities.PersistedRef("act-new")
				}
				out[i] = a
			}
			return out, nil
		},
	}
	p := newTestPlanner(&fakeTripService{data: seededTrip()}, itinerary, nil, nil)
	require.NoError(t, p.Load(context.Background()))

	created, err := p.AddActivity(context.Background(), "day-1", entities.Activity{
		Name: "Smorrebrod lunch",
		Type: entities.ActivityFood,
	})

	require.NoError(t, err)
	id, ok := created.Ref.ID()
	require.True(t, ok)
	assert.Equal(t, "act-new", id)
	require.Len(t, sentDesired, 2)

	view := p.View()
	assert.Len(t, view.Days[0].Activities, 2)
	for _, a := range view.Days[0].Activities {
		assert.True(t, a.Ref.IsPersisted())
	}
}

func TestPlannerAddActivityRollsBackOnRemoteFailure(t *testing.T) {
	itinerary := &fakeItineraryService{
		replaceFn: func(ctx context.Context, dayID string, desired []entities.Activity) ([]entities.Activity, error) {
			return nil, errors.New("store unavailable")
		},
	}
	p := newTestPlanner(&fakeTripService{data: seededTrip()}, itinerary, nil, nil)
	require.NoError(t, p.Load(context.Background()))
	before := p.View()

	_, err := p.AddActivity(context.Background(), "day-1", entities.Activity{
		Name: "Smorrebrod lunch",
		Type: entities.ActivityFood,
	})

	require.Error(t, err)
	assert.Equal(t, before, p.View())
}

func TestPlannerAddActivityUnknownDay(t *testing.T) {
	p := newTestPlanner(&fakeTripService{data: seededTrip()}, &fakeItineraryService{}, nil, nil)
	require.NoError(t, p.Load(context.Background()))

	_, err := p.AddActivity(context.Background(), "no-such-day", entities.Activity{Name: "x", Type: entities.ActivityFood})
	assert.ErrorIs(t, err, utils.ErrDayNotFound)
}

func TestPlannerMoveActivityReconcilesBothDays(t *testing.T) {
	trip := seededTrip()
	trip.Days = append(trip.Days, entities.Day{
		Ref:        entities.PersistedRef("day-2"),
		Date:       "2026-06-13",
		Title:      "Museum day",
		Activities: []entities.Activity{},
	})

	itinerary := &fakeItineraryService{
		moveFn: func(ctx context.Context, activityID, fromDayID, toDayID string) (*entities.Day, *entities.Day, error) {
			from := &entities.Day{Ref: entities.PersistedRef("day-1"), Activities: []entities.Activity{}}
			to := &entities.Day{Ref: entities.PersistedRef("day-2"), Activities: []entities.Activity{
				{Ref: entities.PersistedRef("act-1"), Name: "Nyhavn", Type: entities.ActivityAttraction},
			}}
			return from, to, nil
		},
	}
	p := newTestPlanner(&fakeTripService{data: trip}, itinerary, nil, nil)
	require.NoError(t, p.Load(context.Background()))

	require.NoError(t, p.MoveActivity(context.Background(), "act-1", "day-1", "day-2"))

	view := p.View()
	assert.Empty(t, view.Days[0].Activities)
	require.Len(t, view.Days[1].Activities, 1)
	assert.Equal(t, "act-1", view.Days[1].Activities[0].Ref.Key())
}

func TestPlannerAddFlightReplacesProvisionalEntry(t *testing.T) {
	flight := &fakeFlightService{
		addFn: func(ctx context.Context, f entities.Flight) (*entities.Flight, error) {
			f.Ref = entities.PersistedRef("flight-new")
			return &f, nil
		},
	}
	p := newTestPlanner(&fakeTripService{data: seededTrip()}, nil, flight, nil)
	require.NoError(t, p.Load(context.Background()))

	created, err := p.AddFlight(context.Background(), entities.Flight{
		Date: "2026-06-17", From: "KEF", To: "CPH",
	})

	require.NoError(t, err)
	assert.Equal(t, "flight-new", created.Ref.Key())

	view := p.View()
	require.Len(t, view.Flights, 2)
	for _, f := range view.Flights {
		assert.True(t, f.Ref.IsPersisted())
	}
}

func TestPlannerDeleteFlightRollsBackOnFailure(t *testing.T) {
	flight := &fakeFlightService{
		deleteFn: func(ctx context.Context, flightID string) error {
			return errors.New("store unavailable")
		},
	}
	p := newTestPlanner(&fakeTripService{data: seededTrip()}, nil, flight, nil)
	require.NoError(t, p.Load(context.Background()))

	err := p.DeleteFlight(context.Background(), "flight-1")

	require.Error(t, err)
	assert.Len(t, p.View().Flights, 1)
}

func TestPlannerVoteMustDoAdoptsServerVotes(t *testing.T) {
	mustDo := &fakeMustDoService{
		voteFn: func(ctx context.Context, mustDoID, travelerID string) ([]string, error) {
			return []string{"t1", "t2"}, nil
		},
	}
	p := newTestPlanner(&fakeTripService{data: seededTrip()}, nil, nil, mustDo)
	require.NoError(t, p.Load(context.Background()))

	votes, err := p.VoteMustDo(context.Background(), "md-1", "t2")

	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, votes)
	assert.Equal(t, []string{"t1", "t2"}, p.View().MustDos[0].Votes)
}
