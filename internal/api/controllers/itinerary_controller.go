package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/internal/state"
	"wayfarer/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryService
	planner          *state.TripPlanner
}

func NewItineraryController(itineraryService services.ItineraryService, planner *state.TripPlanner) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService, planner: planner}
}

// ListDays godoc
// @Summary List itinerary days
// @Tags Itinerary
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /itinerary/days [get]
func (i *ItineraryController) ListDays(c *gin.Context) {
	days, err := i.itineraryService.ListDays(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, days, "Days fetched successfully")
}

// GetDay godoc
// @Summary Get one day with its activities
// @Tags Itinerary
// @Produce json
// @Param dayId path string true "Day ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/days/{dayId} [get]
func (i *ItineraryController) GetDay(c *gin.Context) {
	day, err := i.itineraryService.GetDay(c.Request.Context(), c.Param("dayId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, day, "Day fetched successfully")
}

// AddActivity godoc
// @Summary Add an activity to a day
// @Description Add an activity optimistically; the response carries the
// server-assigned identifier.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param dayId path string true "Day ID"
// @Param request body request_models.AddActivityRequest true "Activity payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itinerary/days/{dayId}/activities [post]
func (i *ItineraryController) AddActivity(c *gin.Context) {
	var req request_models.AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	created, err := i.planner.AddActivity(c.Request.Context(), c.Param("dayId"), req.Activity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, created, "Activity added successfully")
}

// UpdateActivity godoc
// @Summary Update an activity
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param dayId path string true "Day ID"
// @Param request body request_models.UpdateActivityRequest true "Activity payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itinerary/days/{dayId}/activities [put]
func (i *ItineraryController) UpdateActivity(c *gin.Context) {
	var req request_models.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updated, err := i.planner.EditActivity(c.Request.Context(), c.Param("dayId"), req.Activity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, updated, "Activity updated successfully")
}

// DeleteActivity godoc
// @Summary Delete an activity
// @Tags Itinerary
// @Produce json
// @Param dayId path string true "Day ID"
// @Param activityId path string true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/days/{dayId}/activities/{activityId} [delete]
func (i *ItineraryController) DeleteActivity(c *gin.Context) {
	err := i.planner.DeleteActivity(c.Request.Context(), c.Param("dayId"), c.Param("activityId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Activity deleted successfully")
}

// MoveActivity godoc
// @Summary Move an activity between days
// @Description Remove the activity from the source day and add it to the
// target day in one atomic step.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.MoveActivityRequest true "Move payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itinerary/activities/move [post]
func (i *ItineraryController) MoveActivity(c *gin.Context) {
	var req request_models.MoveActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := i.planner.MoveActivity(c.Request.Context(), req.ActivityID, req.FromDayID, req.ToDayID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Activity moved successfully")
}
