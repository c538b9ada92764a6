package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "wayfarer/internal/models/db_models"
)

type BookingUploadRepository interface {
	Create(ctx context.Context, row *dbm.BookingUpload) error
	GetBySHA(ctx context.Context, tripID uuid.UUID, sha string) (*dbm.BookingUpload, error)
	ListRecent(ctx context.Context, tripID uuid.UUID, limit int) ([]dbm.BookingUpload, error)
}

type bookingUploadRepository struct {
	db *gorm.DB
}

func NewBookingUploadRepository(db *gorm.DB) BookingUploadRepository {
	return &bookingUploadRepository{db: db}
}

func (r *bookingUploadRepository) Create(ctx context.Context, row *dbm.BookingUpload) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *bookingUploadRepository) GetBySHA(ctx context.Context, tripID uuid.UUID, sha string) (*dbm.BookingUpload, error) {
	var row dbm.BookingUpload
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND image_sha = ?", tripID, sha).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *bookingUploadRepository) ListRecent(ctx context.Context, tripID uuid.UUID, limit int) ([]dbm.BookingUpload, error) {
	var rows []dbm.BookingUpload
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
