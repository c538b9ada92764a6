package utils

import "errors"

var (
	ErrTripNotFound     = errors.New("trip not found")
	ErrDayNotFound      = errors.New("day not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrFlightNotFound   = errors.New("flight not found")
	ErrMustDoNotFound   = errors.New("must-do not found")
	ErrTravelerNotFound = errors.New("traveler not found")
	ErrNotFound         = errors.New("record not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotPersisted     = errors.New("entity has no server-assigned identifier")
	ErrAlreadyPromoted  = errors.New("must-do already added to itinerary")
	ErrDatabaseError    = errors.New("database error")
	ErrExtractionFailed = errors.New("could not extract booking details from image")
	ErrAIUnavailable    = errors.New("ai service unavailable")
	ErrRateLimited      = errors.New("ai service rate limited")
)
