package state

import "wayfarer/internal/models/entities"

// TripState is the in-memory working copy of the trip that optimistic
// mutations edit before the store confirms them.
type TripState struct {
	Data entities.TripData
}

// CloneTripState is a deep copy: every slice and every pointer field is
// duplicated, so a snapshot is immune to later edits.
func CloneTripState(s TripState) TripState {
	return TripState{Data: entities.TripData{
		Days:        cloneDays(s.Data.Days),
		Flights:     cloneFlights(s.Data.Flights),
		Hotels:      cloneHotels(s.Data.Hotels),
		Travelers:   cloneTravelers(s.Data.Travelers),
		MustDos:     cloneMustDos(s.Data.MustDos),
		SavedPlaces: cloneSavedPlaces(s.Data.SavedPlaces),
	}}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func cloneActivity(a entities.Activity) entities.Activity {
	a.Time = clonePtr(a.Time)
	a.Duration = clonePtr(a.Duration)
	a.Address = clonePtr(a.Address)
	a.BookingURL = clonePtr(a.BookingURL)
	a.PriceRange = clonePtr(a.PriceRange)
	a.Notes = clonePtr(a.Notes)
	a.AvgEntreePrice = clonePtr(a.AvgEntreePrice)
	a.PopularItems = cloneStrings(a.PopularItems)
	a.Cuisine = clonePtr(a.Cuisine)
	a.ReservationRequired = clonePtr(a.ReservationRequired)
	a.AvailabilityStatus = clonePtr(a.AvailabilityStatus)
	a.ImageURL = clonePtr(a.ImageURL)
	a.ConfirmationNumber = clonePtr(a.ConfirmationNumber)
	a.Attendees = cloneStrings(a.Attendees)
	a.ScreenshotURL = clonePtr(a.ScreenshotURL)
	return a
}

func cloneDays(days []entities.Day) []entities.Day {
	out := make([]entities.Day, len(days))
	for i, d := range days {
		activities := make([]entities.Activity, len(d.Activities))
		for j, a := range d.Activities {
			activities[j] = cloneActivity(a)
		}
		d.Activities = activities
		out[i] = d
	}
	return out
}

func cloneFlights(flights []entities.Flight) []entities.Flight {
	out := make([]entities.Flight, len(flights))
	for i, f := range flights {
		f.Airline = clonePtr(f.Airline)
		f.FlightNumber = clonePtr(f.FlightNumber)
		f.Notes = clonePtr(f.Notes)
		f.ConfirmationNumber = clonePtr(f.ConfirmationNumber)
		f.Travelers = cloneStrings(f.Travelers)
		f.ScreenshotURL = clonePtr(f.ScreenshotURL)
		out[i] = f
	}
	return out
}

func cloneHotels(hotels []entities.Hotel) []entities.Hotel {
	out := make([]entities.Hotel, len(hotels))
	for i, h := range hotels {
		h.Phone = clonePtr(h.Phone)
		h.Amenities = cloneStrings(h.Amenities)
		h.BookingURL = clonePtr(h.BookingURL)
		h.Notes = clonePtr(h.Notes)
		out[i] = h
	}
	return out
}

func cloneTravelers(travelers []entities.Traveler) []entities.Traveler {
	out := make([]entities.Traveler, len(travelers))
	for i, t := range travelers {
		t.Avatar = clonePtr(t.Avatar)
		out[i] = t
	}
	return out
}

func cloneMustDos(items []entities.MustDo) []entities.MustDo {
	out := make([]entities.MustDo, len(items))
	for i, m := range items {
		m.Description = clonePtr(m.Description)
		m.Address = clonePtr(m.Address)
		m.BookingURL = clonePtr(m.BookingURL)
		m.PriceRange = clonePtr(m.PriceRange)
		m.Notes = clonePtr(m.Notes)
		m.Votes = cloneStrings(m.Votes)
		comments := make([]entities.Comment, len(m.Comments))
		copy(comments, m.Comments)
		m.Comments = comments
		m.AddedToDay = clonePtr(m.AddedToDay)
		out[i] = m
	}
	return out
}

func cloneSavedPlaces(places []entities.SavedPlace) []entities.SavedPlace {
	out := make([]entities.SavedPlace, len(places))
	for i, p := range places {
		p.Description = clonePtr(p.Description)
		p.Address = clonePtr(p.Address)
		p.BookingURL = clonePtr(p.BookingURL)
		p.PriceRange = clonePtr(p.PriceRange)
		p.Notes = clonePtr(p.Notes)
		p.AvgEntreePrice = clonePtr(p.AvgEntreePrice)
		p.PopularItems = cloneStrings(p.PopularItems)
		p.Cuisine = clonePtr(p.Cuisine)
		p.ReservationRequired = clonePtr(p.ReservationRequired)
		p.AvailabilityStatus = clonePtr(p.AvailabilityStatus)
		p.ImageURL = clonePtr(p.ImageURL)
		out[i] = p
	}
	return out
}
