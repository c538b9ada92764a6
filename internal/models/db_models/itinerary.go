package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Day struct {
	BaseModel
	TripID      uuid.UUID `gorm:"index"`
	Date        time.Time `gorm:"type:date;index"`
	DayNumber   int
	DayOfWeek   string
	Destination string
	Title       string

	Activities []Activity
}

type Activity struct {
	BaseModel
	DayID       uuid.UUID `gorm:"index"`
	Name        string
	Type        string
	Time        *string
	Duration    *string
	Description string `gorm:"type:text"`
	Address     *string
	BookingURL  *string
	PriceRange  *string
	Notes       *string `gorm:"type:text"`
	IsBooked    *bool
	IsMustDo    *bool

	AvgEntreePrice      *float64
	PopularItems        pq.StringArray `gorm:"type:text[]"`
	Cuisine             *string
	ReservationRequired *bool
	AvailabilityStatus  *string
	ImageURL            *string `gorm:"type:text"`

	ConfirmationNumber *string
	Attendees          pq.StringArray `gorm:"type:text[]"`
	ScreenshotURL      *string        `gorm:"type:text"`
}
