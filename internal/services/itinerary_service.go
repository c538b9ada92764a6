package services

import (
	"context"

	"github.com/google/uuid"

	dbm "wayfarer/internal/models/db_models"
	"wayfarer/internal/models/entities"
	"wayfarer/internal/repositories"
	"wayfarer/internal/transform"
	"wayfarer/pkg/utils"
)

type ItineraryService interface {
	ListDays(ctx context.Context) ([]entities.Day, error)
	GetDay(ctx context.Context, dayID string) (*entities.Day, error)

	// ReplaceDayActivities persists the desired list as the day's full new
	// activity set. Stored rows omitted from the list are deleted, rows
	// without a server identifier are inserted, the rest are updated. The
	// canonical (time-sorted) result is returned.
	ReplaceDayActivities(ctx context.Context, dayID string, desired []entities.Activity) ([]entities.Activity, error)

	// MoveActivity relocates one activity between days atomically. The
	// activity keeps its identifier.
	MoveActivity(ctx context.Context, activityID, fromDayID, toDayID string) (*entities.Day, *entities.Day, error)
}

type itineraryService struct {
	tripService  TripService
	dayRepo      repositories.DayRepository
	activityRepo repositories.ActivityRepository
}

func NewItineraryService(
	tripService TripService,
	dayRepo repositories.DayRepository,
	activityRepo repositories.ActivityRepository,
) ItineraryService {
	return &itineraryService{
		tripService:  tripService,
		dayRepo:      dayRepo,
		activityRepo: activityRepo,
	}
}

func (s *itineraryService) ListDays(ctx context.Context) ([]entities.Day, error) {
	tripID, err := s.tripService.ResolveTripID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.dayRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	days := make([]entities.Day, 0, len(rows))
	for _, row := range rows {
		days = append(days, transform.DayFromRow(row))
	}
	return days, nil
}

func (s *itineraryService) GetDay(ctx context.Context, dayID string) (*entities.Day, error) {
	id, err := uuid.Parse(dayID)
	if err != nil {
		return nil, utils.ErrDayNotFound
	}

	row, err := s.dayRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	day := transform.DayFromRow(*row)
	return &day, nil
}

func (s *itineraryService) ReplaceDayActivities(ctx context.Context, dayID string, desired []entities.Activity) ([]entities.Activity, error) {
	id, err := uuid.Parse(dayID)
	if err != nil {
		return nil, utils.ErrDayNotFound
	}
	if _, err := s.dayRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	rows, err := desiredRows(id, desired)
	if err != nil {
		return nil, err
	}

	results, err := s.activityRepo.ReplaceForDays(ctx, []repositories.DayReplacement{
		{DayID: id, Desired: rows},
	})
	if err != nil {
		return nil, err
	}
	return activitiesFromRows(results[0]), nil
}

func (s *itineraryService) MoveActivity(ctx context.Context, activityID, fromDayID, toDayID string) (*entities.Day, *entities.Day, error) {
	fromID, err := uuid.Parse(fromDayID)
	if err != nil {
		return nil, nil, utils.ErrDayNotFound
	}
	toID, err := uuid.Parse(toDayID)
	if err != nil {
		return nil, nil, utils.ErrDayNotFound
	}
	if fromID == toID {
		return nil, nil, utils.ErrInvalidInput
	}

	fromRow, err := s.dayRepo.GetByID(ctx, fromID)
	if err != nil {
		return nil, nil, err
	}
	toRow, err := s.dayRepo.GetByID(ctx, toID)
	if err != nil {
		return nil, nil, err
	}

	var moved *dbm.Activity
	fromDesired := make([]dbm.Activity, 0, len(fromRow.Activities))
	for _, a := range fromRow.Activities {
		if a.ID.String() == activityID {
			moved = &a
			continue
		}
		fromDesired = append(fromDesired, a)
	}
	if moved == nil {
		return nil, nil, utils.ErrActivityNotFound
	}

	// The moved row keeps its identifier: the source day drops it (a hard
	// delete) and the target day re-inserts it with the id pre-set.
	moved.DayID = toID
	toDesired := append(toRow.Activities, *moved)

	results, err := s.activityRepo.ReplaceForDays(ctx, []repositories.DayReplacement{
		{DayID: fromID, Desired: fromDesired},
		{DayID: toID, Desired: toDesired},
	})
	if err != nil {
		return nil, nil, err
	}

	fromRow.Activities = results[0]
	toRow.Activities = results[1]
	fromDay := transform.DayFromRow(*fromRow)
	toDay := transform.DayFromRow(*toRow)
	return &fromDay, &toDay, nil
}

func desiredRows(dayID uuid.UUID, desired []entities.Activity) ([]dbm.Activity, error) {
	rows := make([]dbm.Activity, 0, len(desired))
	for _, a := range desired {
		if a.Name == "" || !a.Type.Valid() {
			return nil, utils.ErrInvalidInput
		}
		rows = append(rows, transform.ActivityToRow(a, dayID))
	}
	return rows, nil
}

func activitiesFromRows(rows []dbm.Activity) []entities.Activity {
	activities := make([]entities.Activity, 0, len(rows))
	for _, row := range rows {
		activities = append(activities, transform.ActivityFromRow(row))
	}
	transform.SortActivities(activities)
	return activities
}
