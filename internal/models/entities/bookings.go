package entities

type Flight struct {
	Ref                Ref      `json:"id"`
	Date               string   `json:"date"`
	DepartureTime      string   `json:"departureTime"`
	ArrivalTime        string   `json:"arrivalTime"`
	From               string   `json:"from"`
	FromCode           string   `json:"fromCode"`
	To                 string   `json:"to"`
	ToCode             string   `json:"toCode"`
	Airline            *string  `json:"airline,omitempty"`
	FlightNumber       *string  `json:"flightNumber,omitempty"`
	Notes              *string  `json:"notes,omitempty"`
	ConfirmationNumber *string  `json:"confirmationNumber,omitempty"`
	Travelers          []string `json:"travelers"`
	ScreenshotURL      *string  `json:"screenshotUrl,omitempty"`
	IsPersonal         bool     `json:"isPersonal"`
}

type Hotel struct {
	Ref         Ref         `json:"id"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Phone       *string     `json:"phone,omitempty"`
	CheckIn     string      `json:"checkIn"`
	CheckOut    string      `json:"checkOut"`
	Destination Destination `json:"destination"`
	Amenities   []string    `json:"amenities"`
	BookingURL  *string     `json:"bookingUrl,omitempty"`
	Notes       *string     `json:"notes,omitempty"`
}

// ExtractedBooking is the structure recovered from a booking screenshot.
// Exactly one of the three shapes applies, discriminated by Type.
type ExtractedBooking struct {
	Type string `json:"type"` // "flight" | "restaurant" | "tour"

	// Flight fields.
	Airline       *string `json:"airline,omitempty"`
	FlightNumber  *string `json:"flightNumber,omitempty"`
	From          *string `json:"from,omitempty"`
	FromCode      *string `json:"fromCode,omitempty"`
	To            *string `json:"to,omitempty"`
	ToCode        *string `json:"toCode,omitempty"`
	DepartureTime *string `json:"departureTime,omitempty"`
	ArrivalTime   *string `json:"arrivalTime,omitempty"`

	// Shared fields.
	Name               *string `json:"name,omitempty"`
	Date               *string `json:"date,omitempty"`
	Time               *string `json:"time,omitempty"`
	Address            *string `json:"address,omitempty"`
	ConfirmationNumber *string `json:"confirmationNumber,omitempty"`

	// Restaurant fields.
	PartySize *int `json:"partySize,omitempty"`

	// Tour fields.
	Duration *string `json:"duration,omitempty"`
}

func (b ExtractedBooking) ValidType() bool {
	return b.Type == "flight" || b.Type == "restaurant" || b.Type == "tour"
}
