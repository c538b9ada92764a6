package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wayfarer/internal/models/entities"
	"wayfarer/internal/repositories"
	"wayfarer/internal/transform"
	"wayfarer/pkg/utils"
)

const sessionTTL = 30 * 24 * time.Hour

type TravelerService interface {
	ListTravelers(ctx context.Context) ([]entities.Traveler, error)
	GetTraveler(ctx context.Context, travelerID string) (*entities.Traveler, error)
	UpdateAvatar(ctx context.Context, travelerID string, avatar *string) (*entities.Traveler, error)

	// IssueSession mints a signed session token for the traveler.
	IssueSession(ctx context.Context, travelerID string) (string, error)
}

type travelerService struct {
	tripService  TripService
	travelerRepo repositories.TravelerRepository
	jwtSecret    string
}

func NewTravelerService(tripService TripService, travelerRepo repositories.TravelerRepository, jwtSecret string) TravelerService {
	return &travelerService{tripService: tripService, travelerRepo: travelerRepo, jwtSecret: jwtSecret}
}

func (s *travelerService) ListTravelers(ctx context.Context) ([]entities.Traveler, error) {
	tripID, err := s.tripService.ResolveTripID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.travelerRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	travelers := make([]entities.Traveler, 0, len(rows))
	for _, row := range rows {
		travelers = append(travelers, transform.TravelerFromRow(row))
	}
	return travelers, nil
}

func (s *travelerService) GetTraveler(ctx context.Context, travelerID string) (*entities.Traveler, error) {
	id, err := uuid.Parse(travelerID)
	if err != nil {
		return nil, utils.ErrTravelerNotFound
	}

	row, err := s.travelerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	traveler := transform.TravelerFromRow(*row)
	return &traveler, nil
}

func (s *travelerService) UpdateAvatar(ctx context.Context, travelerID string, avatar *string) (*entities.Traveler, error) {
	id, err := uuid.Parse(travelerID)
	if err != nil {
		return nil, utils.ErrTravelerNotFound
	}

	if err := s.travelerRepo.UpdateAvatar(ctx, id, avatar); err != nil {
		return nil, err
	}

	row, err := s.travelerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	traveler := transform.TravelerFromRow(*row)
	return &traveler, nil
}

func (s *travelerService) IssueSession(ctx context.Context, travelerID string) (string, error) {
	id, err := uuid.Parse(travelerID)
	if err != nil {
		return "", utils.ErrTravelerNotFound
	}

	row, err := s.travelerRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	return utils.CreateSessionToken(s.jwtSecret, row.ID.String(), row.IsOrganizer, sessionTTL)
}
