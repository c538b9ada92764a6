package bookingfx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfarer/internal/api/controllers"
	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
	"wayfarer/internal/state"
	"wayfarer/pkg/memcache"
	"wayfarer/pkg/utils"
)

var Module = fx.Provide(
	provideFlightRepo, provideHotelRepo, provideBookingUploadRepo,
	provideFlightService, provideHotelService, provideExtractionService,
	provideFlightController, provideHotelController, provideBookingController,
)

func provideFlightRepo(db *gorm.DB) repositories.FlightRepository {
	return repositories.NewFlightRepository(db)
}

func provideHotelRepo(db *gorm.DB) repositories.HotelRepository {
	return repositories.NewHotelRepository(db)
}

func provideBookingUploadRepo(db *gorm.DB) repositories.BookingUploadRepository {
	return repositories.NewBookingUploadRepository(db)
}

func provideFlightService(tripService services.TripService, flightRepo repositories.FlightRepository) services.FlightService {
	return services.NewFlightService(tripService, flightRepo)
}

func provideHotelService(tripService services.TripService, hotelRepo repositories.HotelRepository) services.HotelService {
	return services.NewHotelService(tripService, hotelRepo)
}

func provideExtractionService(
	tripService services.TripService,
	cache *memcache.PayloadCache,
	uploadRepo repositories.BookingUploadRepository,
) services.ExtractionService {
	var primary utils.VisionClientInterface
	if client, err := utils.NewGeminiVisionClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL")); err == nil {
		primary = client
	} else {
		log.Printf("Gemini vision backend not configured: %v", err)
	}

	var fallback utils.VisionClientInterface
	if client, err := utils.NewOpenAIVisionClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_VISION_MODEL")); err == nil {
		fallback = client
	} else {
		log.Printf("OpenAI vision backend not configured: %v", err)
	}

	return services.NewExtractionService(tripService, primary, fallback, cache, uploadRepo)
}

func provideFlightController(flightService services.FlightService, planner *state.TripPlanner) *controllers.FlightController {
	return controllers.NewFlightController(flightService, planner)
}

func provideHotelController(hotelService services.HotelService, planner *state.TripPlanner) *controllers.HotelController {
	return controllers.NewHotelController(hotelService, planner)
}

func provideBookingController(extractionService services.ExtractionService) *controllers.BookingController {
	return controllers.NewBookingController(extractionService)
}
