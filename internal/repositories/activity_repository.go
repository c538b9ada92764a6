package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "wayfarer/internal/models/db_models"
)

// DayReplacement is one day's desired full activity list. Rows with a zero
// identifier are inserts; rows with a known identifier keep it.
type DayReplacement struct {
	DayID   uuid.UUID
	Desired []dbm.Activity
}

type ActivityRepository interface {
	ListByDay(ctx context.Context, dayID uuid.UUID) ([]dbm.Activity, error)

	// ReplaceForDays applies the stored-vs-desired diff for each day, all
	// inside one transaction, and returns each day's resulting rows in the
	// order the replacements were given. A single-element slice is the
	// plain per-day replace; two elements express an activity move with
	// cross-day atomicity.
	ReplaceForDays(ctx context.Context, replacements []DayReplacement) ([][]dbm.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) ListByDay(ctx context.Context, dayID uuid.UUID) ([]dbm.Activity, error) {
	var activities []dbm.Activity
	err := r.db.WithContext(ctx).
		Where("day_id = ?", dayID).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) ReplaceForDays(ctx context.Context, replacements []DayReplacement) ([][]dbm.Activity, error) {
	results := make([][]dbm.Activity, len(replacements))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, rep := range replacements {
			rows, err := replaceForDay(tx, rep.DayID, rep.Desired)
			if err != nil {
				return err
			}
			results[i] = rows
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// activityDiff splits a desired list against the stored rows. Stored rows
// omitted from desired are deleted, desired rows whose id matches a stored
// row are updated in place, everything else is inserted. Re-applying an
// already-applied desired list therefore yields no deletes and no inserts.
func activityDiff(existing, desired []dbm.Activity) (toDelete []uuid.UUID, toUpdate, toInsert []dbm.Activity) {
	existingIDs := make(map[uuid.UUID]bool, len(existing))
	for _, a := range existing {
		existingIDs[a.ID] = true
	}
	desiredIDs := make(map[uuid.UUID]bool, len(desired))
	for _, a := range desired {
		if a.ID != uuid.Nil {
			desiredIDs[a.ID] = true
		}
	}

	for _, a := range existing {
		if !desiredIDs[a.ID] {
			toDelete = append(toDelete, a.ID)
		}
	}
	for _, a := range desired {
		if a.ID != uuid.Nil && existingIDs[a.ID] {
			toUpdate = append(toUpdate, a)
			continue
		}
		toInsert = append(toInsert, a)
	}
	return toDelete, toUpdate, toInsert
}

func replaceForDay(tx *gorm.DB, dayID uuid.UUID, desired []dbm.Activity) ([]dbm.Activity, error) {
	var existing []dbm.Activity
	if err := tx.Where("day_id = ?", dayID).Find(&existing).Error; err != nil {
		return nil, err
	}

	toDelete, toUpdate, toInsert := activityDiff(existing, desired)

	// Removal by omission is a real delete, so a later re-insert may reuse
	// the id (the move case).
	if len(toDelete) > 0 {
		if err := tx.Unscoped().Where("id IN ?", toDelete).Delete(&dbm.Activity{}).Error; err != nil {
			return nil, err
		}
	}

	for _, row := range toUpdate {
		row.DayID = dayID
		err := tx.Model(&dbm.Activity{}).
			Where("id = ?", row.ID).
			Select("*").
			Omit("id", "created_at", "deleted_at").
			Updates(row).Error
		if err != nil {
			return nil, err
		}
	}

	// A pre-set identifier (activity arriving from another day) survives
	// the create.
	for _, row := range toInsert {
		row.DayID = dayID
		if err := tx.Create(&row).Error; err != nil {
			return nil, err
		}
	}

	var all []dbm.Activity
	if err := tx.Where("day_id = ?", dayID).Find(&all).Error; err != nil {
		return nil, err
	}
	return all, nil
}
