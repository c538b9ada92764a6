package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DailyMap struct {
	BaseModel
	DayID      uuid.UUID `gorm:"uniqueIndex"`
	TripID     uuid.UUID `gorm:"index"`
	ImageURL   string    `gorm:"type:text"`
	PromptUsed string    `gorm:"type:text"`
	IsFallback bool
	GeneratedBy *uuid.UUID
	Meta        datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
