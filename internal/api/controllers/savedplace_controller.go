package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/internal/state"
	"wayfarer/pkg/utils"
)

type SavedPlaceController struct {
	savedPlaceService services.SavedPlaceService
	planner           *state.TripPlanner
}

func NewSavedPlaceController(savedPlaceService services.SavedPlaceService, planner *state.TripPlanner) *SavedPlaceController {
	return &SavedPlaceController{savedPlaceService: savedPlaceService, planner: planner}
}

// ListSavedPlaces godoc
// @Summary List saved places
// @Tags SavedPlaces
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /savedplaces [get]
func (s *SavedPlaceController) ListSavedPlaces(c *gin.Context) {
	places, err := s.savedPlaceService.ListSavedPlaces(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, places, "Saved places fetched successfully")
}

// AddSavedPlace godoc
// @Summary Save a place
// @Tags SavedPlaces
// @Accept json
// @Produce json
// @Param request body request_models.AddSavedPlaceRequest true "Place payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /savedplaces [post]
func (s *SavedPlaceController) AddSavedPlace(c *gin.Context) {
	var req request_models.AddSavedPlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	created, err := s.planner.AddSavedPlace(c.Request.Context(), req.Place)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, created, "Place saved successfully")
}

// DeleteSavedPlace godoc
// @Summary Delete a saved place
// @Tags SavedPlaces
// @Produce json
// @Param placeId path string true "Place ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /savedplaces/{placeId} [delete]
func (s *SavedPlaceController) DeleteSavedPlace(c *gin.Context) {
	if err := s.planner.DeleteSavedPlace(c.Request.Context(), c.Param("placeId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Place deleted successfully")
}
