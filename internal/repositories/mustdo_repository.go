package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dbm "wayfarer/internal/models/db_models"
	"wayfarer/pkg/utils"
)

type MustDoRepository interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.MustDo, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.MustDo, error)
	Create(ctx context.Context, row *dbm.MustDo) error
	Update(ctx context.Context, id uuid.UUID, row dbm.MustDo) error

	// Delete removes the item and its comments in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	SetVotes(ctx context.Context, id uuid.UUID, votes []string) error
	AddComment(ctx context.Context, row *dbm.MustDoComment) error

	// Promote applies the target day's desired activity list and flags the
	// item as promoted in the same transaction, so a failure on either side
	// leaves neither write behind. Returns the day's resulting rows.
	Promote(ctx context.Context, id uuid.UUID, flags dbm.MustDo, replacement DayReplacement) ([]dbm.Activity, error)
}

type mustDoRepository struct {
	db *gorm.DB
}

func NewMustDoRepository(db *gorm.DB) MustDoRepository {
	return &mustDoRepository{db: db}
}

func (r *mustDoRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.MustDo, error) {
	var items []dbm.MustDo
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at")
		}).
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mustDoRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.MustDo, error) {
	var item dbm.MustDo
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at")
		}).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrMustDoNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *mustDoRepository) Create(ctx context.Context, row *dbm.MustDo) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *mustDoRepository) Update(ctx context.Context, id uuid.UUID, row dbm.MustDo) error {
	res := r.db.WithContext(ctx).
		Model(&dbm.MustDo{}).
		Where("id = ?", id).
		Select("name", "type", "destination", "description", "address",
			"booking_url", "price_range", "notes").
		Updates(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrMustDoNotFound
	}
	return nil
}

func (r *mustDoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("must_do_id = ?", id).Delete(&dbm.MustDoComment{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&dbm.MustDo{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrMustDoNotFound
		}
		return nil
	})
}

func (r *mustDoRepository) SetVotes(ctx context.Context, id uuid.UUID, votes []string) error {
	res := r.db.WithContext(ctx).
		Model(&dbm.MustDo{}).
		Where("id = ?", id).
		Update("votes", pq.StringArray(votes))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrMustDoNotFound
	}
	return nil
}

func (r *mustDoRepository) AddComment(ctx context.Context, row *dbm.MustDoComment) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *mustDoRepository) Promote(ctx context.Context, id uuid.UUID, flags dbm.MustDo, replacement DayReplacement) ([]dbm.Activity, error) {
	var rows []dbm.Activity
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		rows, err = replaceForDay(tx, replacement.DayID, replacement.Desired)
		if err != nil {
			return err
		}

		res := tx.Model(&dbm.MustDo{}).
			Where("id = ?", id).
			Select("added_to_itinerary", "added_to_day").
			Updates(flags)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrMustDoNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
