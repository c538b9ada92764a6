package itineraryfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfarer/internal/api/controllers"
	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
	"wayfarer/internal/state"
)

var Module = fx.Provide(
	provideDayRepo, provideActivityRepo, provideItineraryService, provideItineraryController,
)

func provideDayRepo(db *gorm.DB) repositories.DayRepository {
	return repositories.NewDayRepository(db)
}

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideItineraryService(
	tripService services.TripService,
	dayRepo repositories.DayRepository,
	activityRepo repositories.ActivityRepository,
) services.ItineraryService {
	return services.NewItineraryService(tripService, dayRepo, activityRepo)
}

func provideItineraryController(itineraryService services.ItineraryService, planner *state.TripPlanner) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService, planner)
}
