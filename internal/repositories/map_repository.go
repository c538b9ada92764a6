package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "wayfarer/internal/models/db_models"
	"wayfarer/pkg/utils"
)

type MapRepository interface {
	GetByDay(ctx context.Context, dayID uuid.UUID) (*dbm.DailyMap, error)

	// Upsert keeps at most one map per day, replacing any previous render.
	Upsert(ctx context.Context, row *dbm.DailyMap) error
}

type mapRepository struct {
	db *gorm.DB
}

func NewMapRepository(db *gorm.DB) MapRepository {
	return &mapRepository{db: db}
}

func (r *mapRepository) GetByDay(ctx context.Context, dayID uuid.UUID) (*dbm.DailyMap, error) {
	var m dbm.DailyMap
	err := r.db.WithContext(ctx).Where("day_id = ?", dayID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *mapRepository) Upsert(ctx context.Context, row *dbm.DailyMap) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "day_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"image_url", "prompt_used", "is_fallback", "generated_by",
				"meta", "updated_at",
			}),
		}).
		Create(row).Error
}
