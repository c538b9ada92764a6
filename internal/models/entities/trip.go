package entities

// TripData is the aggregate view assembled by the trip data service.
type TripData struct {
	Days        []Day        `json:"days"`
	Flights     []Flight     `json:"flights"`
	Hotels      []Hotel      `json:"hotels"`
	Travelers   []Traveler   `json:"travelers"`
	MustDos     []MustDo     `json:"mustDos"`
	SavedPlaces []SavedPlace `json:"savedPlaces"`
}

type DailyMap struct {
	Ref         Ref     `json:"id"`
	DayID       string  `json:"dayId"`
	ImageURL    string  `json:"imageUrl"`
	PromptUsed  string  `json:"promptUsed"`
	IsFallback  bool    `json:"isFallback"`
	GeneratedBy *string `json:"generatedByTravelerId,omitempty"`
	GeneratedAt int64   `json:"generatedAt"` // unix milliseconds
}
