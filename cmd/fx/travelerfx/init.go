package travelerfx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfarer/internal/api/controllers"
	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
	"wayfarer/internal/state"
)

var Module = fx.Provide(
	provideTravelerRepo, provideTravelerService, provideTravelerController,
)

func provideTravelerRepo(db *gorm.DB) repositories.TravelerRepository {
	return repositories.NewTravelerRepository(db)
}

func provideTravelerService(tripService services.TripService, travelerRepo repositories.TravelerRepository) services.TravelerService {
	return services.NewTravelerService(tripService, travelerRepo, os.Getenv("JWT_SECRET"))
}

func provideTravelerController(travelerService services.TravelerService, planner *state.TripPlanner) *controllers.TravelerController {
	return controllers.NewTravelerController(travelerService, planner)
}
