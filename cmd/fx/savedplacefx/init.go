package savedplacefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfarer/internal/api/controllers"
	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
	"wayfarer/internal/state"
)

var Module = fx.Provide(
	provideSavedPlaceRepo, provideSavedPlaceService, provideSavedPlaceController,
)

func provideSavedPlaceRepo(db *gorm.DB) repositories.SavedPlaceRepository {
	return repositories.NewSavedPlaceRepository(db)
}

func provideSavedPlaceService(tripService services.TripService, savedPlaceRepo repositories.SavedPlaceRepository) services.SavedPlaceService {
	return services.NewSavedPlaceService(tripService, savedPlaceRepo)
}

func provideSavedPlaceController(savedPlaceService services.SavedPlaceService, planner *state.TripPlanner) *controllers.SavedPlaceController {
	return controllers.NewSavedPlaceController(savedPlaceService, planner)
}
