package transform

import (
	"github.com/google/uuid"

	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/entities"
)

func TravelerFromRow(row db_models.Traveler) entities.Traveler {
	return entities.Traveler{
		Ref:         entities.PersistedRef(row.ID.String()),
		Name:        row.Name,
		Color:       row.Color,
		Avatar:      row.Avatar,
		IsOrganizer: row.IsOrganizer,
	}
}

func CommentFromRow(row db_models.MustDoComment) entities.Comment {
	return entities.Comment{
		Ref:        entities.PersistedRef(row.ID.String()),
		TravelerID: row.TravelerID.String(),
		Text:       row.Text,
		Timestamp:  row.CreatedAt * 1000,
	}
}

func MustDoFromRow(row db_models.MustDo) entities.MustDo {
	comments := make([]entities.Comment, 0, len(row.Comments))
	for _, c := range row.Comments {
		comments = append(comments, CommentFromRow(c))
	}

	var addedToDay *string
	if row.AddedToDay != nil {
		d := formatDate(*row.AddedToDay)
		addedToDay = &d
	}

	return entities.MustDo{
		Ref:              entities.PersistedRef(row.ID.String()),
		TravelerID:       row.TravelerID.String(),
		Name:             row.Name,
		Type:             entities.ActivityType(row.Type),
		Destination:      entities.Destination(row.Destination),
		Description:      row.Description,
		Address:          row.Address,
		BookingURL:       row.BookingURL,
		PriceRange:       row.PriceRange,
		Notes:            row.Notes,
		Votes:            stringList(row.Votes),
		Comments:         comments,
		AddedToItinerary: boolValue(row.AddedToItinerary),
		AddedToDay:       addedToDay,
	}
}

func MustDoToRow(m entities.MustDo, tripID uuid.UUID) db_models.MustDo {
	row := db_models.MustDo{
		TripID:           tripID,
		TravelerID:       mustUUID(m.TravelerID),
		Name:             m.Name,
		Type:             string(m.Type),
		Destination:      string(m.Destination),
		Description:      m.Description,
		Address:          m.Address,
		BookingURL:       m.BookingURL,
		PriceRange:       m.PriceRange,
		Notes:            m.Notes,
		Votes:            textArray(m.Votes),
		AddedToItinerary: boolColumn(m.AddedToItinerary),
	}
	if m.AddedToDay != nil {
		d := mustDate(*m.AddedToDay)
		row.AddedToDay = &d
	}
	row.ID = rowID(m.Ref)
	return row
}

func SavedPlaceFromRow(row db_models.SavedPlace) entities.SavedPlace {
	return entities.SavedPlace{
		Ref:         entities.PersistedRef(row.ID.String()),
		Name:        row.Name,
		Type:        entities.ActivityType(row.Type),
		Destination: entities.Destination(row.Destination),
		Description: row.Description,
		Address:     row.Address,
		BookingURL:  row.BookingURL,
		PriceRange:  row.PriceRange,
		Notes:       row.Notes,
		Category:    row.Category,

		AvgEntreePrice:      row.AvgEntreePrice,
		PopularItems:        stringList(row.PopularItems),
		Cuisine:             row.Cuisine,
		ReservationRequired: row.ReservationRequired,
		AvailabilityStatus:  row.AvailabilityStatus,
		ImageURL:            row.ImageURL,
	}
}

func SavedPlaceToRow(p entities.SavedPlace, tripID uuid.UUID) db_models.SavedPlace {
	row := db_models.SavedPlace{
		TripID:      tripID,
		Name:        p.Name,
		Type:        string(p.Type),
		Destination: string(p.Destination),
		Description: p.Description,
		Address:     p.Address,
		BookingURL:  p.BookingURL,
		PriceRange:  p.PriceRange,
		Notes:       p.Notes,
		Category:    p.Category,

		AvgEntreePrice:      p.AvgEntreePrice,
		PopularItems:        textArray(p.PopularItems),
		Cuisine:             p.Cuisine,
		ReservationRequired: p.ReservationRequired,
		AvailabilityStatus:  p.AvailabilityStatus,
		ImageURL:            p.ImageURL,
	}
	row.ID = rowID(p.Ref)
	return row
}
