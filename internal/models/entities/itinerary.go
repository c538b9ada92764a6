package entities

// ActivityType is the fixed activity category set.
type ActivityType string

const (
	ActivityFood          ActivityType = "food"
	ActivityAttraction    ActivityType = "attraction"
	ActivityTour          ActivityType = "tour"
	ActivityTransport     ActivityType = "transport"
	ActivityAccommodation ActivityType = "accommodation"
	ActivityNightlife     ActivityType = "nightlife"
	ActivityShopping      ActivityType = "shopping"
	ActivityRelaxation    ActivityType = "relaxation"
	ActivityNature        ActivityType = "nature"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityFood, ActivityAttraction, ActivityTour, ActivityTransport,
		ActivityAccommodation, ActivityNightlife, ActivityShopping,
		ActivityRelaxation, ActivityNature:
		return true
	}
	return false
}

// Destination is a supported trip city.
type Destination string

const (
	DestinationCopenhagen Destination = "copenhagen"
	DestinationReykjavik  Destination = "reykjavik"
)

type Activity struct {
	Ref         Ref          `json:"id"`
	Name        string       `json:"name"`
	Type        ActivityType `json:"type"`
	Time        *string      `json:"time,omitempty"`
	Duration    *string      `json:"duration,omitempty"`
	Description string       `json:"description"`
	Address     *string      `json:"address,omitempty"`
	BookingURL  *string      `json:"bookingUrl,omitempty"`
	PriceRange  *string      `json:"priceRange,omitempty"`
	Notes       *string      `json:"notes,omitempty"`
	IsBooked    bool         `json:"isBooked"`
	IsMustDo    bool         `json:"isMustDo"`

	// Restaurant details, present only when known.
	AvgEntreePrice       *float64 `json:"avgEntreePrice,omitempty"`
	PopularItems         []string `json:"popularItems"`
	Cuisine              *string  `json:"cuisine,omitempty"`
	ReservationRequired  *bool    `json:"reservationRequired,omitempty"`
	AvailabilityStatus   *string  `json:"availabilityStatus,omitempty"`
	ImageURL             *string  `json:"imageUrl,omitempty"`

	// Booking metadata.
	ConfirmationNumber *string  `json:"confirmationNumber,omitempty"`
	Attendees          []string `json:"attendees"`
	ScreenshotURL      *string  `json:"screenshotUrl,omitempty"`
}

type Day struct {
	Ref         Ref         `json:"id"`
	Date        string      `json:"date"`
	DayNumber   int         `json:"dayNumber"`
	DayOfWeek   string      `json:"dayOfWeek"`
	Destination Destination `json:"destination"`
	Title       string      `json:"title"`
	Activities  []Activity  `json:"activities"`
}
