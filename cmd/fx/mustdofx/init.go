package mustdofx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfarer/internal/api/controllers"
	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
	"wayfarer/internal/state"
)

var Module = fx.Provide(
	provideMustDoRepo, provideMustDoService, provideMustDoController,
)

func provideMustDoRepo(db *gorm.DB) repositories.MustDoRepository {
	return repositories.NewMustDoRepository(db)
}

func provideMustDoService(
	tripService services.TripService,
	mustDoRepo repositories.MustDoRepository,
	dayRepo repositories.DayRepository,
) services.MustDoService {
	return services.NewMustDoService(tripService, mustDoRepo, dayRepo)
}

func provideMustDoController(mustDoService services.MustDoService, planner *state.TripPlanner) *controllers.MustDoController {
	return controllers.NewMustDoController(mustDoService, planner)
}
