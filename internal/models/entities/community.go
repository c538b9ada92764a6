package entities

type Traveler struct {
	Ref         Ref     `json:"id"`
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	Avatar      *string `json:"avatar,omitempty"`
	IsOrganizer bool    `json:"isOrganizer"`
}

type Comment struct {
	Ref        Ref    `json:"id"`
	TravelerID string `json:"travelerId"`
	Text       string `json:"text"`
	Timestamp  int64  `json:"timestamp"` // unix milliseconds
}

type MustDo struct {
	Ref         Ref          `json:"id"`
	TravelerID  string       `json:"travelerId"`
	Name        string       `json:"name"`
	Type        ActivityType `json:"type"`
	Destination Destination  `json:"destination"`
	Description *string      `json:"description,omitempty"`
	Address     *string      `json:"address,omitempty"`
	BookingURL  *string      `json:"bookingUrl,omitempty"`
	PriceRange  *string      `json:"priceRange,omitempty"`
	Notes       *string      `json:"notes,omitempty"`

	// Votes holds traveler IDs; membership toggles per voter.
	Votes    []string  `json:"votes"`
	Comments []Comment `json:"comments"`

	AddedToItinerary bool    `json:"addedToItinerary"`
	AddedToDay       *string `json:"addedToDay,omitempty"` // day date when added
}

type SavedPlace struct {
	Ref         Ref          `json:"id"`
	Name        string       `json:"name"`
	Type        ActivityType `json:"type"`
	Destination Destination  `json:"destination"`
	Description *string      `json:"description,omitempty"`
	Address     *string      `json:"address,omitempty"`
	BookingURL  *string      `json:"bookingUrl,omitempty"`
	PriceRange  *string      `json:"priceRange,omitempty"`
	Notes       *string      `json:"notes,omitempty"`
	Category    string       `json:"category"` // restaurant | bar | cafe | attraction | tour | other

	AvgEntreePrice      *float64 `json:"avgEntreePrice,omitempty"`
	PopularItems        []string `json:"popularItems"`
	Cuisine             *string  `json:"cuisine,omitempty"`
	ReservationRequired *bool    `json:"reservationRequired,omitempty"`
	AvailabilityStatus  *string  `json:"availabilityStatus,omitempty"`
	ImageURL            *string  `json:"imageUrl,omitempty"`
}

type Recommendation struct {
	Ref         Ref          `json:"id"`
	Name        string       `json:"name"`
	Type        ActivityType `json:"type"`
	Destination Destination  `json:"destination"`
	Category    string       `json:"category"`
	Description string       `json:"description"`
	Address     *string      `json:"address,omitempty"`
	BookingURL  *string      `json:"bookingUrl,omitempty"`
	PriceRange  *string      `json:"priceRange,omitempty"`
	Score       float64      `json:"score,omitempty"` // similarity score in search results
}
