package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Traveler struct {
	BaseModel
	TripID      uuid.UUID `gorm:"index"`
	Name        string
	Color       string
	Avatar      *string `gorm:"type:text"`
	IsOrganizer bool    `gorm:"default:false"`
}

type MustDo struct {
	BaseModel
	TripID      uuid.UUID `gorm:"index"`
	TravelerID  uuid.UUID
	Name        string
	Type        string
	Destination string
	Description *string `gorm:"type:text"`
	Address     *string
	BookingURL  *string
	PriceRange  *string
	Notes       *string        `gorm:"type:text"`
	Votes       pq.StringArray `gorm:"type:text[]"`

	AddedToItinerary *bool
	AddedToDay       *time.Time `gorm:"type:date"`

	Comments []MustDoComment `gorm:"foreignKey:MustDoID"`
}

type MustDoComment struct {
	BaseModel
	MustDoID   uuid.UUID `gorm:"index"`
	TravelerID uuid.UUID
	Text       string `gorm:"type:text"`
}

type SavedPlace struct {
	BaseModel
	TripID      uuid.UUID `gorm:"index"`
	Name        string
	Type        string
	Destination string
	Description *string `gorm:"type:text"`
	Address     *string
	BookingURL  *string
	PriceRange  *string
	Notes       *string `gorm:"type:text"`
	Category    string

	AvgEntreePrice      *float64
	PopularItems        pq.StringArray `gorm:"type:text[]"`
	Cuisine             *string
	ReservationRequired *bool
	AvailabilityStatus  *string
	ImageURL            *string `gorm:"type:text"`
}
