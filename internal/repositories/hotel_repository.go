package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "wayfarer/internal/models/db_models"
	"wayfarer/pkg/utils"
)

type HotelRepository interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Hotel, error)
	UpdateByID(ctx context.Context, id uuid.UUID, row dbm.Hotel) error

	// UpsertByDestination inserts the hotel or, when one already exists for
	// (trip, destination), overwrites it in place. The stored row is
	// written back into row.
	UpsertByDestination(ctx context.Context, row *dbm.Hotel) error
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Hotel, error) {
	var hotels []dbm.Hotel
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("check_in").
		Find(&hotels).Error
	if err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *hotelRepository) UpdateByID(ctx context.Context, id uuid.UUID, row dbm.Hotel) error {
	res := r.db.WithContext(ctx).
		Model(&dbm.Hotel{}).
		Where("id = ?", id).
		Select("*").
		Omit("id", "trip_id", "created_at", "deleted_at").
		Updates(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *hotelRepository) UpsertByDestination(ctx context.Context, row *dbm.Hotel) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "trip_id"}, {Name: "destination"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "address", "phone", "check_in", "check_out",
				"amenities", "booking_url", "notes", "updated_at",
			}),
		}).
		Create(row).Error
}
