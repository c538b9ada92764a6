package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wayfarer/cmd/fx/bookingfx"
	"wayfarer/cmd/fx/dbfx"
	"wayfarer/cmd/fx/itineraryfx"
	"wayfarer/cmd/fx/mapfx"
	"wayfarer/cmd/fx/memcachefx"
	"wayfarer/cmd/fx/mustdofx"
	"wayfarer/cmd/fx/plannerfx"
	"wayfarer/cmd/fx/recommendationfx"
	"wayfarer/cmd/fx/savedplacefx"
	"wayfarer/cmd/fx/travelerfx"
	"wayfarer/cmd/fx/tripfx"
	"wayfarer/internal/api/controllers"
	"wayfarer/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		dbfx.Module,
		memcachefx.Module,
		tripfx.Module,
		itineraryfx.Module,
		bookingfx.Module,
		mustdofx.Module,
		savedplacefx.Module,
		travelerfx.Module,
		mapfx.Module,
		recommendationfx.Module,
		plannerfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tripController *controllers.TripController,
	itineraryController *controllers.ItineraryController,
	flightController *controllers.FlightController,
	hotelController *controllers.HotelController,
	mustDoController *controllers.MustDoController,
	savedPlaceController *controllers.SavedPlaceController,
	travelerController *controllers.TravelerController,
	bookingController *controllers.BookingController,
	mapController *controllers.MapController,
	recommendationController *controllers.RecommendationController,
) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.SessionMiddleware())

	RegisterRoutes(r,
		tripController, itineraryController, flightController, hotelController,
		mustDoController, savedPlaceController, travelerController,
		bookingController, mapController, recommendationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	itineraryController *controllers.ItineraryController,
	flightController *controllers.FlightController,
	hotelController *controllers.HotelController,
	mustDoController *controllers.MustDoController,
	savedPlaceController *controllers.SavedPlaceController,
	travelerController *controllers.TravelerController,
	bookingController *controllers.BookingController,
	mapController *controllers.MapController,
	recommendationController *controllers.RecommendationController) {

	tripGroup := r.Group("/trip")
	tripGroup.GET("", tripController.GetTrip)
	tripGroup.POST("/refresh", tripController.RefreshTrip)
	tripGroup.DELETE("/cache", tripController.ClearTripCache)

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.GET("/days", itineraryController.ListDays)
	itineraryGroup.GET("/days/:dayId", itineraryController.GetDay)
	itineraryGroup.POST("/days/:dayId/activities", itineraryController.AddActivity)
	itineraryGroup.PUT("/days/:dayId/activities", itineraryController.UpdateActivity)
	itineraryGroup.DELETE("/days/:dayId/activities/:activityId", itineraryController.DeleteActivity)
	itineraryGroup.POST("/activities/move", itineraryController.MoveActivity)
	itineraryGroup.GET("/days/:dayId/map", mapController.GetDayMap)
	itineraryGroup.POST("/days/:dayId/map", mapController.GenerateDayMap)

	flightGroup := r.Group("/flights")
	flightGroup.GET("", flightController.ListFlights)
	flightGroup.POST("", flightController.AddFlight)
	flightGroup.PUT("", flightController.UpdateFlight)
	flightGroup.DELETE("/:flightId", flightController.DeleteFlight)

	hotelGroup := r.Group("/hotels")
	hotelGroup.GET("", hotelController.ListHotels)
	hotelGroup.PUT("", hotelController.UpsertHotel)

	mustDoGroup := r.Group("/mustdos")
	mustDoGroup.GET("", mustDoController.ListMustDos)
	mustDoGroup.POST("", mustDoController.AddMustDo)
	mustDoGroup.PUT("", mustDoController.UpdateMustDo)
	mustDoGroup.DELETE("/:mustDoId", mustDoController.DeleteMustDo)
	mustDoGroup.POST("/:mustDoId/vote", mustDoController.VoteMustDo)
	mustDoGroup.POST("/:mustDoId/comments", mustDoController.CommentMustDo)
	mustDoGroup.POST("/:mustDoId/promote", mustDoController.PromoteMustDo)

	savedPlaceGroup := r.Group("/savedplaces")
	savedPlaceGroup.GET("", savedPlaceController.ListSavedPlaces)
	savedPlaceGroup.POST("", savedPlaceController.AddSavedPlace)
	savedPlaceGroup.DELETE("/:placeId", savedPlaceController.DeleteSavedPlace)

	travelerGroup := r.Group("/travelers")
	travelerGroup.GET("", travelerController.ListTravelers)
	travelerGroup.PUT("/:travelerId/avatar", travelerController.UpdateAvatar)
	travelerGroup.POST("/session", travelerController.CreateSession)

	bookingGroup := r.Group("/bookings")
	bookingGroup.POST("/extract", bookingController.ExtractBooking)

	recommendationGroup := r.Group("/recommendations")
	recommendationGroup.GET("", recommendationController.ListRecommendations)
	recommendationGroup.POST("", middleware.RequireOrganizer(), recommendationController.AddRecommendation)
	recommendationGroup.POST("/search", recommendationController.SearchRecommendations)
}
