package mapfx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfarer/internal/api/controllers"
	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
	"wayfarer/pkg/memcache"
	"wayfarer/pkg/utils"
)

var Module = fx.Provide(
	provideMapRepo, provideMapService, provideMapController,
)

func provideMapRepo(db *gorm.DB) repositories.MapRepository {
	return repositories.NewMapRepository(db)
}

func provideMapService(
	dayRepo repositories.DayRepository,
	mapRepo repositories.MapRepository,
	cache *memcache.PayloadCache,
) services.MapService {
	imageClient := utils.NewHFImageClient(os.Getenv("HF_API_KEY"))
	return services.NewMapService(dayRepo, mapRepo, imageClient, cache)
}

func provideMapController(mapService services.MapService) *controllers.MapController {
	return controllers.NewMapController(mapService)
}
