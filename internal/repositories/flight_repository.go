package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "wayfarer/internal/models/db_models"
	"wayfarer/pkg/utils"
)

type FlightRepository interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Flight, error)
	Create(ctx context.Context, row *dbm.Flight) error
	Update(ctx context.Context, id uuid.UUID, row dbm.Flight) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type flightRepository struct {
	db *gorm.DB
}

func NewFlightRepository(db *gorm.DB) FlightRepository {
	return &flightRepository{db: db}
}

func (r *flightRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Flight, error) {
	var flights []dbm.Flight
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("date").
		Find(&flights).Error
	if err != nil {
		return nil, err
	}
	return flights, nil
}

func (r *flightRepository) Create(ctx context.Context, row *dbm.Flight) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *flightRepository) Update(ctx context.Context, id uuid.UUID, row dbm.Flight) error {
	res := r.db.WithContext(ctx).
		Model(&dbm.Flight{}).
		Where("id = ?", id).
		Select("*").
		Omit("id", "trip_id", "created_at", "deleted_at").
		Updates(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrFlightNotFound
	}
	return nil
}

func (r *flightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&dbm.Flight{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrFlightNotFound
	}
	return nil
}
