package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Flight struct {
	BaseModel
	TripID             uuid.UUID `gorm:"index"`
	Date               time.Time `gorm:"type:date"`
	DepartureTime      string
	ArrivalTime        string
	FromCity           string
	FromCode           string
	ToCity             string
	ToCode             string
	Airline            *string
	FlightNumber       *string
	Notes              *string `gorm:"type:text"`
	ConfirmationNumber *string
	Travelers          pq.StringArray `gorm:"type:text[]"`
	ScreenshotURL      *string        `gorm:"type:text"`
	IsPersonal         *bool
}

type Hotel struct {
	BaseModel
	TripID      uuid.UUID `gorm:"index;uniqueIndex:idx_hotels_trip_destination"`
	Destination string    `gorm:"uniqueIndex:idx_hotels_trip_destination"`
	Name        string
	Address     string
	Phone       *string
	CheckIn     time.Time `gorm:"type:date"`
	CheckOut    time.Time `gorm:"type:date"`
	Amenities   pq.StringArray `gorm:"type:text[]"`
	BookingURL  *string
	Notes       *string `gorm:"type:text"`
}

// BookingUpload is an audit row for every screenshot extraction attempt,
// keyed by image digest so identical uploads are not re-billed.
type BookingUpload struct {
	BaseModel
	TripID     uuid.UUID `gorm:"index"`
	ImageSHA   string    `gorm:"uniqueIndex;size:64"`
	Kind       string
	Payload    datatypes.JSON `gorm:"type:jsonb"`
	TravelerID *uuid.UUID
}
