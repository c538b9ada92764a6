package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "wayfarer/internal/models/db_models"
	"wayfarer/pkg/utils"
)

type TripRepository interface {
	// FirstTripID returns the identifier of the sole trip row.
	FirstTripID(ctx context.Context) (uuid.UUID, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) FirstTripID(ctx context.Context) (uuid.UUID, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).Select("id").Order("created_at").First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, utils.ErrTripNotFound
		}
		return uuid.Nil, err
	}
	return trip.ID, nil
}
