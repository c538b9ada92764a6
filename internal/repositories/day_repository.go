package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "wayfarer/internal/models/db_models"
	"wayfarer/pkg/utils"
)

type DayRepository interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Day, error)
	GetByID(ctx context.Context, dayID uuid.UUID) (*dbm.Day, error)
	GetByDate(ctx context.Context, tripID uuid.UUID, date time.Time) (*dbm.Day, error)
}

type dayRepository struct {
	db *gorm.DB
}

func NewDayRepository(db *gorm.DB) DayRepository {
	return &dayRepository{db: db}
}

func (r *dayRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Day, error) {
	var days []dbm.Day
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Preload("Activities").
		Order("date").
		Find(&days).Error
	if err != nil {
		return nil, err
	}
	return days, nil
}

func (r *dayRepository) GetByID(ctx context.Context, dayID uuid.UUID) (*dbm.Day, error) {
	var day dbm.Day
	err := r.db.WithContext(ctx).
		Where("id = ?", dayID).
		Preload("Activities").
		First(&day).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrDayNotFound
		}
		return nil, err
	}
	return &day, nil
}

func (r *dayRepository) GetByDate(ctx context.Context, tripID uuid.UUID, date time.Time) (*dbm.Day, error) {
	var day dbm.Day
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND date = ?", tripID, date).
		First(&day).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrDayNotFound
		}
		return nil, err
	}
	return &day, nil
}
