package tripfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfarer/internal/api/controllers"
	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
	"wayfarer/internal/state"
)

var Module = fx.Provide(
	provideTripRepo, provideTripService, provideTripController,
)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	dayRepo repositories.DayRepository,
	flightRepo repositories.FlightRepository,
	hotelRepo repositories.HotelRepository,
	travelerRepo repositories.TravelerRepository,
	mustDoRepo repositories.MustDoRepository,
	savedPlaceRepo repositories.SavedPlaceRepository,
) services.TripService {
	return services.NewTripService(tripRepo, dayRepo, flightRepo, hotelRepo, travelerRepo, mustDoRepo, savedPlaceRepo)
}

func provideTripController(tripService services.TripService, planner *state.TripPlanner) *controllers.TripController {
	return controllers.NewTripController(tripService, planner)
}
