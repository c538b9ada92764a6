package plannerfx

import (
	"context"
	"log"

	"go.uber.org/fx"

	"wayfarer/internal/services"
	"wayfarer/internal/state"
)

var Module = fx.Options(
	fx.Provide(provideTripPlanner),
	fx.Invoke(loadOnStart),
)

func provideTripPlanner(
	tripService services.TripService,
	itineraryService services.ItineraryService,
	flightService services.FlightService,
	hotelService services.HotelService,
	mustDoService services.MustDoService,
	savedPlaceService services.SavedPlaceService,
	travelerService services.TravelerService,
) *state.TripPlanner {
	return state.NewTripPlanner(
		tripService, itineraryService, flightService, hotelService,
		mustDoService, savedPlaceService, travelerService,
	)
}

// loadOnStart warms the working copy. A partial load is logged but does not
// block startup; the refresh endpoint can retry later.
func loadOnStart(lc fx.Lifecycle, planner *state.TripPlanner) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := planner.Load(ctx); err != nil {
				log.Printf("Initial trip load incomplete: %v", err)
			}
			return nil
		},
	})
}
