package db_models

import (
	"github.com/pgvector/pgvector-go"
)

type Recommendation struct {
	BaseModel
	Name        string
	Type        string
	Destination string
	Category    string
	Description string `gorm:"type:text"`
	Address     *string
	BookingURL  *string
	PriceRange  *string

	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
}
