package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/internal/state"
	"wayfarer/pkg/utils"
)

type FlightController struct {
	flightService services.FlightService
	planner       *state.TripPlanner
}

func NewFlightController(flightService services.FlightService, planner *state.TripPlanner) *FlightController {
	return &FlightController{flightService: flightService, planner: planner}
}

// ListFlights godoc
// @Summary List flights
// @Tags Flights
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /flights [get]
func (f *FlightController) ListFlights(c *gin.Context) {
	flights, err := f.flightService.ListFlights(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, flights, "Flights fetched successfully")
}

// AddFlight godoc
// @Summary Add a flight
// @Tags Flights
// @Accept json
// @Produce json
// @Param request body request_models.AddFlightRequest true "Flight payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /flights [post]
func (f *FlightController) AddFlight(c *gin.Context) {
	var req request_models.AddFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	created, err := f.planner.AddFlight(c.Request.Context(), req.Flight)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, created, "Flight added successfully")
}

// UpdateFlight godoc
// @Summary Update a flight
// @Tags Flights
// @Accept json
// @Produce json
// @Param request body request_models.UpdateFlightRequest true "Flight payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /flights [put]
func (f *FlightController) UpdateFlight(c *gin.Context) {
	var req request_models.UpdateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updated, err := f.planner.UpdateFlight(c.Request.Context(), req.Flight)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, updated, "Flight updated successfully")
}

// DeleteFlight godoc
// @Summary Delete a flight
// @Tags Flights
// @Produce json
// @Param flightId path string true "Flight ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /flights/{flightId} [delete]
func (f *FlightController) DeleteFlight(c *gin.Context) {
	if err := f.planner.DeleteFlight(c.Request.Context(), c.Param("flightId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Flight deleted successfully")
}
