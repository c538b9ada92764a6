package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "wayfarer/internal/models/db_models"
	"wayfarer/pkg/utils"
)

type SavedPlaceRepository interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.SavedPlace, error)
	Create(ctx context.Context, row *dbm.SavedPlace) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type savedPlaceRepository struct {
	db *gorm.DB
}

func NewSavedPlaceRepository(db *gorm.DB) SavedPlaceRepository {
	return &savedPlaceRepository{db: db}
}

func (r *savedPlaceRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.SavedPlace, error) {
	var places []dbm.SavedPlace
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at").
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *savedPlaceRepository) Create(ctx context.Context, row *dbm.SavedPlace) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *savedPlaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&dbm.SavedPlace{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
