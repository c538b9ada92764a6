package controllers

import (
	"github.com/gin-gonic/gin"

	"wayfarer/internal/services"
	"wayfarer/internal/state"
	"wayfarer/pkg/utils"
)

type TripController struct {
	tripService services.TripService
	planner     *state.TripPlanner
}

func NewTripController(tripService services.TripService, planner *state.TripPlanner) *TripController {
	return &TripController{tripService: tripService, planner: planner}
}

// GetTrip godoc
// @Summary Get the trip
// @Description Get the full trip aggregate from the shared working copy
// @Tags Trip
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /trip [get]
func (t *TripController) GetTrip(c *gin.Context) {
	utils.RespondSuccess(c, t.planner.View(), "Trip fetched successfully")
}

// RefreshTrip godoc
// @Summary Refresh the trip
// @Description Reload the trip aggregate from the store. Collections that
// fail to load are reported but do not discard the ones that succeeded.
// @Tags Trip
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /trip/refresh [post]
func (t *TripController) RefreshTrip(c *gin.Context) {
	err := t.planner.Load(c.Request.Context())
	data := t.planner.View()

	if err != nil {
		if len(data.Days) == 0 && len(data.Travelers) == 0 {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, data, "Trip loaded with partial results")
		return
	}
	utils.RespondSuccess(c, data, "Trip refreshed successfully")
}

// ClearTripCache godoc
// @Summary Clear the cached trip identifier
// @Tags Trip
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /trip/cache [delete]
func (t *TripController) ClearTripCache(c *gin.Context) {
	t.tripService.ClearTripCache()
	utils.RespondSuccess(c, nil, "Trip cache cleared")
}
