package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "wayfarer/internal/models/db_models"
	"wayfarer/pkg/utils"
)

type TravelerRepository interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Traveler, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.Traveler, error)
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatar *string) error
}

type travelerRepository struct {
	db *gorm.DB
}

func NewTravelerRepository(db *gorm.DB) TravelerRepository {
	return &travelerRepository{db: db}
}

func (r *travelerRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Traveler, error) {
	var travelers []dbm.Traveler
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("name").
		Find(&travelers).Error
	if err != nil {
		return nil, err
	}
	return travelers, nil
}

func (r *travelerRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Traveler, error) {
	var traveler dbm.Traveler
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&traveler).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrTravelerNotFound
		}
		return nil, err
	}
	return &traveler, nil
}

func (r *travelerRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, avatar *string) error {
	res := r.db.WithContext(ctx).
		Model(&dbm.Traveler{}).
		Where("id = ?", id).
		Update("avatar", avatar)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrTravelerNotFound
	}
	return nil
}
