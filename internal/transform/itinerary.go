package transform

import (
	"github.com/google/uuid"

	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/entities"
)

func ActivityFromRow(row db_models.Activity) entities.Activity {
	return entities.Activity{
		Ref:         entities.PersistedRef(row.ID.String()),
		Name:        row.Name,
		Type:        entities.ActivityType(row.Type),
		Time:        row.Time,
		Duration:    row.Duration,
		Description: row.Description,
		Address:     row.Address,
		BookingURL:  row.BookingURL,
		PriceRange:  row.PriceRange,
		Notes:       row.Notes,
		IsBooked:    boolValue(row.IsBooked),
		IsMustDo:    boolValue(row.IsMustDo),

		AvgEntreePrice:      row.AvgEntreePrice,
		PopularItems:        stringList(row.PopularItems),
		Cuisine:             row.Cuisine,
		ReservationRequired: row.ReservationRequired,
		AvailabilityStatus:  row.AvailabilityStatus,
		ImageURL:            row.ImageURL,

		ConfirmationNumber: row.ConfirmationNumber,
		Attendees:          stringList(row.Attendees),
		ScreenshotURL:      row.ScreenshotURL,
	}
}

func ActivityToRow(a entities.Activity, dayID uuid.UUID) db_models.Activity {
	row := db_models.Activity{
		DayID:       dayID,
		Name:        a.Name,
		Type:        string(a.Type),
		Time:        a.Time,
		Duration:    a.Duration,
		Description: a.Description,
		Address:     a.Address,
		BookingURL:  a.BookingURL,
		PriceRange:  a.PriceRange,
		Notes:       a.Notes,
		IsBooked:    boolColumn(a.IsBooked),
		IsMustDo:    boolColumn(a.IsMustDo),

		AvgEntreePrice:      a.AvgEntreePrice,
		PopularItems:        textArray(a.PopularItems),
		Cuisine:             a.Cuisine,
		ReservationRequired: a.ReservationRequired,
		AvailabilityStatus:  a.AvailabilityStatus,
		ImageURL:            a.ImageURL,

		ConfirmationNumber: a.ConfirmationNumber,
		Attendees:          textArray(a.Attendees),
		ScreenshotURL:      a.ScreenshotURL,
	}
	row.ID = rowID(a.Ref)
	return row
}

func DayFromRow(row db_models.Day) entities.Day {
	activities := make([]entities.Activity, 0, len(row.Activities))
	for _, a := range row.Activities {
		activities = append(activities, ActivityFromRow(a))
	}
	SortActivities(activities)

	return entities.Day{
		Ref:         entities.PersistedRef(row.ID.String()),
		Date:        formatDate(row.Date),
		DayNumber:   row.DayNumber,
		DayOfWeek:   row.DayOfWeek,
		Destination: entities.Destination(row.Destination),
		Title:       row.Title,
		Activities:  activities,
	}
}
