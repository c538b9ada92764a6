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

type MustDoService interface {
	ListMustDos(ctx context.Context) ([]entities.MustDo, error)
	AddMustDo(ctx context.Context, m entities.MustDo) (*entities.MustDo, error)
	UpdateMustDo(ctx context.Context, m entities.MustDo) (*entities.MustDo, error)

	// DeleteMustDo removes the item together with its comments.
	DeleteMustDo(ctx context.Context, mustDoID string) error

	// ToggleVote flips the traveler's membership in the vote list and
	// returns the updated list.
	ToggleVote(ctx context.Context, mustDoID, travelerID string) ([]string, error)

	AddComment(ctx context.Context, mustDoID, travelerID, text string) (*entities.Comment, error)

	// PromoteToItinerary copies the item onto a day as a booked-in activity
	// and marks it promoted. Promotion is one-way.
	PromoteToItinerary(ctx context.Context, mustDoID, dayID string) (*entities.MustDo, *entities.Day, error)
}

type mustDoService struct {
	tripService TripService
	mustDoRepo  repositories.MustDoRepository
	dayRepo     repositories.DayRepository
}

func NewMustDoService(
	tripService TripService,
	mustDoRepo repositories.MustDoRepository,
	dayRepo repositories.DayRepository,
) MustDoService {
	return &mustDoService{
		tripService: tripService,
		mustDoRepo:  mustDoRepo,
		dayRepo:     dayRepo,
	}
}

func (s *mustDoService) ListMustDos(ctx context.Context) ([]entities.MustDo, error) {
	tripID, err := s.tripService.ResolveTripID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.mustDoRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	items := make([]entities.MustDo, 0, len(rows))
	for _, row := range rows {
		items = append(items, transform.MustDoFromRow(row))
	}
	return items, nil
}

func (s *mustDoService) AddMustDo(ctx context.Context, m entities.MustDo) (*entities.MustDo, error) {
	if m.Ref.IsPersisted() {
		return nil, utils.ErrInvalidInput
	}
	if m.Name == "" || !m.Type.Valid() || m.TravelerID == "" {
		return nil, utils.ErrInvalidInput
	}
	if _, err := uuid.Parse(m.TravelerID); err != nil {
		return nil, utils.ErrInvalidInput
	}

	tripID, err := s.tripService.ResolveTripID(ctx)
	if err != nil {
		return nil, err
	}

	// A fresh item starts with its owner's vote.
	if len(m.Votes) == 0 {
		m.Votes = []string{m.TravelerID}
	}
	m.AddedToItinerary = false
	m.AddedToDay = nil

	row := transform.MustDoToRow(m, tripID)
	if err := s.mustDoRepo.Create(ctx, &row); err != nil {
		return nil, err
	}

	created := transform.MustDoFromRow(row)
	return &created, nil
}

func (s *mustDoService) UpdateMustDo(ctx context.Context, m entities.MustDo) (*entities.MustDo, error) {
	idStr, ok := m.Ref.ID()
	if !ok {
		return nil, utils.ErrNotPersisted
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, utils.ErrMustDoNotFound
	}
	if m.Name == "" || !m.Type.Valid() {
		return nil, utils.ErrInvalidInput
	}

	tripID, err := s.tripService.ResolveTripID(ctx)
	if err != nil {
		return nil, err
	}

	row := transform.MustDoToRow(m, tripID)
	if err := s.mustDoRepo.Update(ctx, id, row); err != nil {
		return nil, err
	}

	stored, err := s.mustDoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := transform.MustDoFromRow(*stored)
	return &updated, nil
}

func (s *mustDoService) DeleteMustDo(ctx context.Context, mustDoID string) error {
	id, err := uuid.Parse(mustDoID)
	if err != nil {
		return utils.ErrMustDoNotFound
	}
	return s.mustDoRepo.Delete(ctx, id)
}

func (s *mustDoService) ToggleVote(ctx context.Context, mustDoID, travelerID string) ([]string, error) {
	id, err := uuid.Parse(mustDoID)
	if err != nil {
		return nil, utils.ErrMustDoNotFound
	}
	if travelerID == "" {
		return nil, utils.ErrInvalidInput
	}

	item, err := s.mustDoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	votes := make([]string, 0, len(item.Votes)+1)
	found := false
	for _, v := range item.Votes {
		if v == travelerID {
			found = true
			continue
		}
		votes = append(votes, v)
	}
	if !found {
		votes = append(votes, travelerID)
	}

	if err := s.mustDoRepo.SetVotes(ctx, id, votes); err != nil {
		return nil, err
	}
	return votes, nil
}

func (s *mustDoService) AddComment(ctx context.Context, mustDoID, travelerID, text string) (*entities.Comment, error) {
	id, err := uuid.Parse(mustDoID)
	if err != nil {
		return nil, utils.ErrMustDoNotFound
	}
	tid, err := uuid.Parse(travelerID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if text == "" {
		return nil, utils.ErrInvalidInput
	}

	if _, err := s.mustDoRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	row := dbm.MustDoComment{MustDoID: id, TravelerID: tid, Text: text}
	if err := s.mustDoRepo.AddComment(ctx, &row); err != nil {
		return nil, err
	}

	comment := transform.CommentFromRow(row)
	return &comment, nil
}

func (s *mustDoService) PromoteToItinerary(ctx context.Context, mustDoID, dayID string) (*entities.MustDo, *entities.Day, error) {
	id, err := uuid.Parse(mustDoID)
	if err != nil {
		return nil, nil, utils.ErrMustDoNotFound
	}
	dID, err := uuid.Parse(dayID)
	if err != nil {
		return nil, nil, utils.ErrDayNotFound
	}

	item, err := s.mustDoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if item.AddedToItinerary != nil && *item.AddedToItinerary {
		return nil, nil, utils.ErrAlreadyPromoted
	}

	day, err := s.dayRepo.GetByID(ctx, dID)
	if err != nil {
		return nil, nil, err
	}

	description := ""
	if item.Description != nil {
		description = *item.Description
	}
	activity := dbm.Activity{
		DayID:       dID,
		Name:        item.Name,
		Type:        item.Type,
		Description: description,
		Address:     item.Address,
		BookingURL:  item.BookingURL,
		PriceRange:  item.PriceRange,
		Notes:       item.Notes,
		IsMustDo:    boolPtr(true),
		IsBooked:    boolPtr(false),
	}
	desired := append(day.Activities, activity)

	promoted := *item
	promoted.AddedToItinerary = boolPtr(true)
	promotedDay := day.Date
	promoted.AddedToDay = &promotedDay

	// Both writes commit or neither does; a failed attempt must not leave
	// an activity behind for a retry to duplicate.
	rows, err := s.mustDoRepo.Promote(ctx, id, promoted, repositories.DayReplacement{
		DayID: dID, Desired: desired,
	})
	if err != nil {
		return nil, nil, err
	}

	day.Activities = rows
	updatedDay := transform.DayFromRow(*day)
	updatedItem := transform.MustDoFromRow(promoted)
	return &updatedItem, &updatedDay, nil
}

func boolPtr(v bool) *bool { return &v }
