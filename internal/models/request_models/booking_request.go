package request_models

import "wayfarer/internal/models/entities"

type AddFlightRequest struct {
	Flight entities.Flight `json:"flight" binding:"required"`
}

type UpdateFlightRequest struct {
	Flight entities.Flight `json:"flight" binding:"required"`
}

type UpsertHotelRequest struct {
	Hotel entities.Hotel `json:"hotel" binding:"required"`
}

// ExtractBookingRequest carries a base64-encoded screenshot.
type ExtractBookingRequest struct {
	Image      string  `json:"image" binding:"required"`
	MimeType   string  `json:"mimeType" binding:"required"`
	TravelerID *string `json:"travelerId,omitempty"`
}
