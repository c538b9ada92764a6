package state

import (
	"context"

	"wayfarer/internal/models/entities"
	"wayfarer/internal/services"
	"wayfarer/internal/transform"
	"wayfarer/pkg/utils"
)

// Mutation keys. Itinerary edits share one key because a move touches two
// days at once.
const (
	keyDays        = "days"
	keyFlights     = "flights"
	keyHotels      = "hotels"
	keyMustDos     = "mustdos"
	keySavedPlaces = "savedplaces"
	keyTravelers   = "travelers"
)

// TripPlanner is the shared working copy of the trip. Every edit lands on
// the in-memory state immediately and is rolled back if the store write
// fails, so readers never wait on the database.
type TripPlanner struct {
	store *Store[TripState]

	tripSvc       services.TripService
	itinerarySvc  services.ItineraryService
	flightSvc     services.FlightService
	hotelSvc      services.HotelService
	mustDoSvc     services.MustDoService
	savedPlaceSvc services.SavedPlaceService
	travelerSvc   services.TravelerService
}

func NewTripPlanner(
	tripSvc services.TripService,
	itinerarySvc services.ItineraryService,
	flightSvc services.FlightService,
	hotelSvc services.HotelService,
	mustDoSvc services.MustDoService,
	savedPlaceSvc services.SavedPlaceService,
	travelerSvc services.TravelerService,
) *TripPlanner {
	return &TripPlanner{
		store:         NewStore(TripState{}, CloneTripState),
		tripSvc:       tripSvc,
		itinerarySvc:  itinerarySvc,
		flightSvc:     flightSvc,
		hotelSvc:      hotelSvc,
		mustDoSvc:     mustDoSvc,
		savedPlaceSvc: savedPlaceSvc,
		travelerSvc:   travelerSvc,
	}
}

// Load refreshes the working copy from the store. On a partial load the
// collections that did arrive still replace the state, and the joined
// error is returned.
func (p *TripPlanner) Load(ctx context.Context) error {
	data, err := p.tripSvc.LoadTrip(ctx)
	if data != nil {
		p.store.Replace(TripState{Data: *data})
	}
	return err
}

// View returns a deep copy of the current trip.
func (p *TripPlanner) View() entities.TripData {
	return p.store.View().Data
}

// --- itinerary ---

func (p *TripPlanner) AddActivity(ctx context.Context, dayID string, a entities.Activity) (*entities.Activity, error) {
	if a.Ref.IsZero() {
		a.Ref = entities.ProvisionalRef()
	}
	if a.Ref.IsPersisted() {
		return nil, utils.ErrInvalidInput
	}

	var desired []entities.Activity
	var priorIDs map[string]bool
	var created *entities.Activity

	err := p.store.Run(ctx, Mutation[TripState]{
		Key: keyDays,
		Apply: func(s *TripState) error {
			day := findDay(s, dayID)
			if day == nil {
				return utils.ErrDayNotFound
			}
			priorIDs = persistedIDs(day.Activities)
			day.Activities = append(day.Activities, a)
			sortDay(day)
			desired = append([]entities.Activity(nil), day.Activities...)
			return nil
		},
		Remote: func(ctx context.Context) (interface{}, error) {
			return p.itinerarySvc.ReplaceDayActivities(ctx, dayID, desired)
		},
		Reconcile: func(s *TripState, result interface{}) error {
			activities := result.([]entities.Activity)
			day := findDay(s, dayID)
			if day == nil {
				return utils.ErrDayNotFound
			}
			day.Activities = activities
			for i, act := range activities {
				if id, ok := act.Ref.ID(); ok && !priorIDs[id] {
					created = &activities[i]
					break
				}
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, utils.ErrActivityNotFound
	}
	c := cloneActivity(*created)
	return &c, nil
}

func (p *TripPlanner) EditActivity(ctx context.Context, dayID string, a entities.Activity) (*entities.Activity, error) {
	id, ok := a.Ref.ID()
	if !ok {
		return nil, utils.ErrNotPersisted
	}

	var desired []entities.Activity
	var updated *entities.Activity

	err := p.store.Run(ctx, Mutation[TripState]{
		Key: keyDays,
		Apply: func(s *TripState) error {
			day := findDay(s, dayID)
			if day == nil {
				return utils.ErrDayNotFound
			}
			i := findActivity(day.Activities, a.Ref.Key())
			if i == -1 {
				return utils.ErrActivityNotFound
			}
			day.Activities[i] = a
			sortDay(day)
			desired = append([]entities.Activity(nil), day.Activities...)
			return nil
		},
		Remote: func(ctx context.Context) (interface{}, error) {
			return p.itinerarySvc.ReplaceDayActivities(ctx, dayID, desired)
		},
		Reconcile: func(s *TripState, result interface{}) error {
			activities := result.([]entities.Activity)
			day := findDay(s, dayID)
			if day == nil {
				return utils.ErrDayNotFound
			}
			day.Activities = activities
			for i, act := range activities {
				if aid, ok := act.Ref.ID(); ok && aid == id {
					updated = &activities[i]
					break
				}
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, utils.ErrActivityNotFound
	}
	u := cloneActivity(*updated)
	return &u, nil
}

func (p *TripPlanner) DeleteActivity(ctx context.Context, dayID, activityID string) error {
	var desired []entities.Activity

	return p.store.Run(ctx, Mutation[TripState]{
		Key: keyDays,
		Apply: func(s *TripState) error {
			day := findDay(s, dayID)
			if day == nil {
				return utils.ErrDayNotFound
			}
			i := findActivity(day.Activities, activityID)
			if i == -1 {
				return utils.ErrActivityNotFound
			}
			day.Activities = append(day.Activities[:i], day.Activities[i+1:]...)
			desired = append([]entities.Activity(nil), day.Activities...)
			return nil
		},
		Remote: func(ctx context.Context) (interface{}, error) {
			return p.itinerarySvc.ReplaceDayActivities(ctx, dayID, desired)
		},
		Reconcile: func(s *TripState, result interface{}) error {
			day := findDay(s, dayID)
			if day == nil {
				return utils.ErrDayNotFound
			}
			day.Activities = result.([]entities.Activity)
			return nil
		},
	})
}

type movedDays struct {
	from *entities.Day
	to   *entities.Day
}

func (p *TripPlanner) MoveActivity(ctx context.Context, activityID, fromDayID, toDayID string) error {
	return p.store.Run(ctx, Mutation[TripState]{
		Key: keyDays,
		Apply: func(s *TripState) error {
			from := findDay(s, fromDayID)
			to := findDay(s, toDayID)
			if from == nil || to == nil {
				return utils.ErrDayNotFound
			}
			i := findActivity(from.Activities, activityID)
			if i == -1 {
				return utils.ErrActivityNotFound
			}
			moved := from.Activities[i]
			from.Activities = append(from.Activities[:i], from.Activities[i+1:]...)
			to.Activities = append(to.Activities, moved)
			sortDay(to)
			return nil
		},
		Remote: func(ctx context.Context) (interface{}, error) {
			from, to, err := p.itinerarySvc.MoveActivity(ctx, activityID, fromDayID, toDayID)
			if err != nil {
				return nil, err
			}
			return movedDays{from: from, to: to}, nil
		},
		Reconcile: func(s *TripState, result interface{}) error {
			moved := result.(movedDays)
			if day := findDay(s, fromDayID); day != nil {
				day.Activities = moved.from.Activities
			}
			if day := findDay(s, toDayID); day != nil {
				day.Activities = moved.to.Activities
			}
			return nil
		},
	})
}

// --- flights ---

func (p *TripPlanner) AddFlight(ctx context.Context, f entities.Flight) (*entities.Flight, error) {
	if f.Ref.IsZero() {
		f.Ref = entities.ProvisionalRef()
	}
	if f.Ref.IsPersisted() {
		return nil, utils.ErrInvalidInput
	}
	provisionalKey := f.Ref.Key()

	var created *entities.Flight
	err := p.store.Run(ctx, Mutation[TripState]{
		Key: keyFlights,
		Apply: func(s *TripState) error {
			s.Data.Flights = append(s.Data.Flights, f)
			return nil
		},
		Remote: func(ctx context.Context) (interface{}, error) {
			return p.flightSvc.AddFlight(ctx, f)
		},
		Reconcile: func(s *TripState, result interface{}) error {
			created = result.(*entities.Flight)
			for i := range s.Data.Flights {
				if s.Data.Flights[i].Ref.Key() == provisionalKey {
					s.Data.Flights[i] = *created
					return nil
				}
			}
			s.Data.Flights = append(s.Data.Flights, *created)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (p *TripPlanner) UpdateFlight(ctx context.Context, f entities.Flight) (*entities.Flight, error) {
	if !f.Ref.IsPersisted() {
		return nil, utils.ErrNotPersisted
	}

	var updated *entities.Flight
	err := p.store.Run(ctx, Mutation[TripState]{
		Key: keyFlights,
		Apply: func(s *TripState) error {
			for i := range s.Data.Flights {
				if s.Data.Flights[i].Ref.Key() == f.Ref.Key() {
					s.Data.Flights[i] = f
					return nil
				}
			}
			return utils.ErrFlightNotFound
		},
		Remote: func(ctx context.Context) (interface{}, error) {
			return p.flightSvc.UpdateFlight(ctx, f)
		},
		Reconcile: func(s *TripState, result interface{}) error {
			updated = result.(*entities.Flight)
			for i := range s.Data.Flights {
				if s.Data.Flights[i].Ref.Key() == f.Ref.Key() {
					s.Data.Flights[i] = *updated
					break
				}
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (p *TripPlanner) DeleteFlight(ctx context.Context, flightID string) error {
	return p.store.Run(ctx, Mutation[TripState]{
		Key: keyFlights,
		Apply: func(s *TripState) error {
			for i := range s.Data.Flights {
				if s.Data.Flights[i].Ref.Key() == flightID {
					s.Data.Flights = append(s.Data.Flights[:i], s.Data.Flights[i+1:]...)
					return nil
				}
			}
			return utils.ErrFlightNotFound
		},
		Remote: func(ctx context.Context) (interface{}, error) {
			return nil, p.flightSvc.DeleteFlight(ctx, flightID)
		},
	})
}

// --- hotels ---

func (p *TripPlanner) UpsertHotel(ctx context.Context, h entities.Hotel) (*entities.Hotel, error) {
	var stored *entities.Hotel
	err := p.store.Run(ctx, Mutation[TripState]{
		Key: keyHotels,
		Apply: func(s *TripState) error {
			for i := range s.Data.Hotels {
				if s.Data.Hotels[i].Destination == h.Destination {
					s.Data.Hotels[i] = h
					return nil
				}
			}
			s.Data.Hotels = append(s.Data.Hotels, h)
			return nil
		},
		Remote: func(ctx context.Context) (interface{}, error) {
			return p.hotelSvc.UpsertHotel(ctx, h)
		},
		Reconcile: func(s *TripState, result interface{}) error {
			stored = result.(*entities.Hotel)
			for i := range s.Data.Hotels {
				if s.Data.Hotels[i].Destination == stored.Destination {
					s.Data.Hotels[i] = *stored
					return nil
				}
			}
			s.Data.Hotels = append(s.Data.Hotels, *stored)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// --- must-dos ---

func (p *TripPlanner) AddMustDo(ctx context.Context, m entities.MustDo) (*entities.MustDo, error) {
	if m.Ref.IsZero() {
		m.Ref = entities.ProvisionalRef()
	}
	if m.Ref.IsPersisted() {
		return nil, utils.ErrInvalidInput
	}
	provisionalKey := m.Ref.Key()

	var created *entities.MustDo
	err := p.store.Run(ctx, Mutation[TripState]{
		Key: keyMustDos,
		Apply: func(s *TripState) error {
			s.Data.MustDos = append(s.Data.MustDos, m)
			return nil
		},
		Remote: func(ctx context.Context) (interface{}, error) {
			return p.mustDoSvc.AddMustDo(ctx, m)
		},
		Reconcile: func(s *TripState, result interface{}) error {
			created = result.(*entities.MustDo)
			for i := range s.Data.MustDos {
				if s.Data.MustDos[i].Ref.Key() == provisionalKey {
					s.Data.MustDos[i] = *created
					return nil
				}
			}
			s.Data.MustDos = append(s.Data.MustDos, *created)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (p *TripPlanner) UpdateMustDo(ctx context.Context, m entities.MustDo) (*entities.MustDo, error) {
	if !m.Ref.IsPersisted() {
		return nil, utils.ErrNotPersisted
	}

	var updated *entities.MustDo
	err := p.store.Run(ctx, Mutation[TripState]{
		Key: keyMustDos,
		Apply: func(s *TripState) error {
			i := findMustDo(s.Data.MustDos, m.Ref.Key())
			if i == -1 {
				return utils.ErrMustDoNotFound
			}
			s.Data.MustDos[i] = m
			return nil
		},
		Remote: func(ctx context.Context) (interface{}, error) {
			return p.mustDoSvc.UpdateMustDo(ctx, m)
		},
		Reconcile: func(s *TripState, result interface{}) error {
			updated = result.(*entities.MustDo)
			if i := findMustDo(s.Data.MustDos, m.Ref.Key()); i != -1 {
				s.Data.MustDos[i] = *updated
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (p *TripPlanner) DeleteMustDo(ctx context.Context, mustDoID string) error {
	return p.store.Run(ctx, Mutation[TripState]{
		Key: keyMustDos,
		Apply: func(s *TripState) error {
			i := findMustDo(s.Data.MustDos, mustDoID)
			if i == -1 {
				return utils.ErrMustDoNotFound
			}
			s.Data.MustDos = append(s.Data.MustDos[:i], s.Data.MustDos[i+1:]...)
			return nil
		},
		Remote: func(ctx context.Context) (interface{}, error) {
			return nil, p.mustDoSvc.DeleteMustDo(ctx, mustDoID)
		},
	})
}

func (p *TripPlanner) VoteMustDo(ctx context.Context, mustDoID, travelerID string) ([]string, error) {
	var votes []string
	err := p.store.Run(ctx, Mutation[TripState]{
		Key: keyMustDos,
		Apply: func(s *TripState) error {
			i := findMustDo(s.Data.MustDos, mustDoID)
			if i == -1 {
				return utils.ErrMustDoNotFound
			}
			s.Data.MustDos[i].Votes = toggleVote(s.Data.MustDos[i].Votes, travelerID)
			return nil
		},
		Remote: func(ctx context.Context) (interface{}, error) {
			return p.mustDoSvc.ToggleVote(ctx, mustDoID, travelerID)
		},
		Reconcile: func(s *TripState, result interface{}) error {
			votes = result.([]string)
			if i := findMustDo(s.Data.MustDos, mustDoID); i != -1 {
				s.Data.MustDos[i].Votes = votes
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return votes, nil
}

func (p *TripPlanner) CommentMustDo(ctx context.Context, mustDoID, travelerID, text string) (*entities.Comment, error) {
	provisional := entities.Comment{
		Ref:        entities.ProvisionalRef(),
		TravelerID: travelerID,
		Text:       text,
	}
	provisionalKey := provisional.Ref.Key()

	var created *entities.Comment
	err := p.store.Run(ctx, Mutation[TripState]{
		Key: keyMustDos,
		Apply: func(s *TripState) error {
			i := findMustDo(s.Data.MustDos, mustDoID)
			if i == -1 {
				return utils.ErrMustDoNotFound
			}
			s.Data.MustDos[i].Comments = append(s.Data.MustDos[i].Comments, provisional)
			return nil
		},
		Remote: func(ctx context.Context) (interface{}, error) {
			return p.mustDoSvc.AddComment(ctx, mustDoID, travelerID, text)
		},
		Reconcile: func(s *TripState, result interface{}) error {
			created = result.(*entities.Comment)
			i := findMustDo(s.Data.MustDos, mustDoID)
			if i == -1 {
				return nil
			}
			comments := s.Data.MustDos[i].Comments
			for j := range comments {
				if comments[j].Ref.Key() == provisionalKey {
					comments[j] = *created
					return nil
				}
			}
			s.Data.MustDos[i].Comments = append(comments, *created)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

type promotion struct {
	item *entities.MustDo
	day  *entities.Day
}

func (p *TripPlanner) PromoteMustDo(ctx context.Context, mustDoID, dayID string) (*entities.MustDo, error) {
	var promoted *entities.MustDo
	err := p.store.Run(ctx, Mutation[TripState]{
		Key: keyMustDos,
		Apply: func(s *TripState) error {
			i := findMustDo(s.Data.MustDos, mustDoID)
			if i == -1 {
				return utils.ErrMustDoNotFound
			}
			if s.Data.MustDos[i].AddedToItinerary {
				return utils.ErrAlreadyPromoted
			}
			day := findDay(s, dayID)
			if day == nil {
				return utils.ErrDayNotFound
			}
			s.Data.MustDos[i].AddedToItinerary = true
			date := day.Date
			s.Data.MustDos[i].AddedToDay = &date
			return nil
		},
		Remote: func(ctx context.Context) (interface{}, error) {
			item, day, err := p.mustDoSvc.PromoteToItinerary(ctx, mustDoID, dayID)
			if err != nil {
				return nil, err
			}
			return promotion{item: item, day: day}, nil
		},
		Reconcile: func(s *TripState, result interface{}) error {
			res := result.(promotion)
			promoted = res.item
			if i := findMustDo(s.Data.MustDos, mustDoID); i != -1 {
				s.Data.MustDos[i] = *res.item
			}
			if day := findDay(s, dayID); day != nil {
				day.Activities = res.day.Activities
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return promoted, nil
}

// --- saved places ---

func (p *TripPlanner) AddSavedPlace(ctx context.Context, place entities.SavedPlace) (*entities.SavedPlace, error) {
	if place.Ref.IsZero() {
		place.Ref = entities.ProvisionalRef()
	}
	if place.Ref.IsPersisted() {
		return nil, utils.ErrInvalidInput
	}
	provisionalKey := place.Ref.Key()

	var created *entities.SavedPlace
	err := p.store.Run(ctx, Mutation[TripState]{
		Key: keySavedPlaces,
		Apply: func(s *TripState) error {
			s.Data.SavedPlaces = append(s.Data.SavedPlaces, place)
			return nil
		},
		Remote: func(ctx context.Context) (interface{}, error) {
			return p.savedPlaceSvc.AddSavedPlace(ctx, place)
		},
		Reconcile: func(s *TripState, result interface{}) error {
			created = result.(*entities.SavedPlace)
			for i := range s.Data.SavedPlaces {
				if s.Data.SavedPlaces[i].Ref.Key() == provisionalKey {
					s.Data.SavedPlaces[i] = *created
					return nil
				}
			}
			s.Data.SavedPlaces = append(s.Data.SavedPlaces, *created)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (p *TripPlanner) DeleteSavedPlace(ctx context.Context, placeID string) error {
	return p.store.Run(ctx, Mutation[TripState]{
		Key: keySavedPlaces,
		Apply: func(s *TripState) error {
			for i := range s.Data.SavedPlaces {
				if s.Data.SavedPlaces[i].Ref.Key() == placeID {
					s.Data.SavedPlaces = append(s.Data.SavedPlaces[:i], s.Data.SavedPlaces[i+1:]...)
					return nil
				}
			}
			return utils.ErrNotFound
		},
		Remote: func(ctx context.Context) (interface{}, error) {
			return nil, p.savedPlaceSvc.DeleteSavedPlace(ctx, placeID)
		},
	})
}

// --- travelers ---

func (p *TripPlanner) UpdateTravelerAvatar(ctx context.Context, travelerID string, avatar *string) (*entities.Traveler, error) {
	var updated *entities.Traveler
	err := p.store.Run(ctx, Mutation[TripState]{
		Key: keyTravelers,
		Apply: func(s *TripState) error {
			for i := range s.Data.Travelers {
				if s.Data.Travelers[i].Ref.Key() == travelerID {
					s.Data.Travelers[i].Avatar = clonePtr(avatar)
					return nil
				}
			}
			return utils.ErrTravelerNotFound
		},
		Remote: func(ctx context.Context) (interface{}, error) {
			return p.travelerSvc.UpdateAvatar(ctx, travelerID, avatar)
		},
		Reconcile: func(s *TripState, result interface{}) error {
			updated = result.(*entities.Traveler)
			for i := range s.Data.Travelers {
				if s.Data.Travelers[i].Ref.Key() == travelerID {
					s.Data.Travelers[i] = *updated
					break
				}
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// --- helpers ---

func findDay(s *TripState, dayKey string) *entities.Day {
	for i := range s.Data.Days {
		if s.Data.Days[i].Ref.Key() == dayKey {
			return &s.Data.Days[i]
		}
	}
	return nil
}

func findActivity(activities []entities.Activity, key string) int {
	for i := range activities {
		if activities[i].Ref.Key() == key {
			return i
		}
	}
	return -1
}

func findMustDo(items []entities.MustDo, key string) int {
	for i := range items {
		if items[i].Ref.Key() == key {
			return i
		}
	}
	return -1
}

func persistedIDs(activities []entities.Activity) map[string]bool {
	ids := make(map[string]bool, len(activities))
	for _, a := range activities {
		if id, ok := a.Ref.ID(); ok {
			ids[id] = true
		}
	}
	return ids
}

func toggleVote(votes []string, travelerID string) []string {
	out := make([]string, 0, len(votes)+1)
	found := false
	for _, v := range votes {
		if v == travelerID {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, travelerID)
	}
	return out
}

func sortDay(day *entities.Day) {
	transform.SortActivities(day.Activities)
}
