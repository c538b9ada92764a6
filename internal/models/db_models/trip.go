package db_models

import "time"

type Trip struct {
	BaseModel
	Name      string
	StartDate time.Time `gorm:"type:date"`
	EndDate   time.Time `gorm:"type:date"`

	Days        []Day
	Flights     []Flight
	Hotels      []Hotel
	Travelers   []Traveler
	MustDos     []MustDo
	SavedPlaces []SavedPlace
}
