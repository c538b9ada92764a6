package transform

import (
	"github.com/google/uuid"

	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/entities"
)

func FlightFromRow(row db_models.Flight) entities.Flight {
	return entities.Flight{
		Ref:                entities.PersistedRef(row.ID.String()),
		Date:               formatDate(row.Date),
		DepartureTime:      row.DepartureTime,
		ArrivalTime:        row.ArrivalTime,
		From:               row.FromCity,
		FromCode:           row.FromCode,
		To:                 row.ToCity,
		ToCode:             row.ToCode,
		Airline:            row.Airline,
		FlightNumber:       row.FlightNumber,
		Notes:              row.Notes,
		ConfirmationNumber: row.ConfirmationNumber,
		Travelers:          stringList(row.Travelers),
		ScreenshotURL:      row.ScreenshotURL,
		IsPersonal:         boolValue(row.IsPersonal),
	}
}

func FlightToRow(f entities.Flight, tripID uuid.UUID) db_models.Flight {
	row := db_models.Flight{
		TripID:             tripID,
		Date:               mustDate(f.Date),
		DepartureTime:      f.DepartureTime,
		ArrivalTime:        f.ArrivalTime,
		FromCity:           f.From,
		FromCode:           f.FromCode,
		ToCity:             f.To,
		ToCode:             f.ToCode,
		Airline:            f.Airline,
		FlightNumber:       f.FlightNumber,
		Notes:              f.Notes,
		ConfirmationNumber: f.ConfirmationNumber,
		Travelers:          textArray(f.Travelers),
		ScreenshotURL:      f.ScreenshotURL,
		IsPersonal:         boolColumn(f.IsPersonal),
	}
	row.ID = rowID(f.Ref)
	return row
}

func HotelFromRow(row db_models.Hotel) entities.Hotel {
	return entities.Hotel{
		Ref:         entities.PersistedRef(row.ID.String()),
		Name:        row.Name,
		Address:     row.Address,
		Phone:       row.Phone,
		CheckIn:     formatDate(row.CheckIn),
		CheckOut:    formatDate(row.CheckOut),
		Destination: entities.Destination(row.Destination),
		Amenities:   stringList(row.Amenities),
		BookingURL:  row.BookingURL,
		Notes:       row.Notes,
	}
}

func HotelToRow(h entities.Hotel, tripID uuid.UUID) db_models.Hotel {
	row := db_models.Hotel{
		TripID:      tripID,
		Destination: string(h.Destination),
		Name:        h.Name,
		Address:     h.Address,
		Phone:       h.Phone,
		CheckIn:     mustDate(h.CheckIn),
		CheckOut:    mustDate(h.CheckOut),
		Amenities:   textArray(h.Amenities),
		BookingURL:  h.BookingURL,
		Notes:       h.Notes,
	}
	row.ID = rowID(h.Ref)
	return row
}
