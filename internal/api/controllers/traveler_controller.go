package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/internal/state"
	"wayfarer/pkg/utils"
)

type TravelerController struct {
	travelerService services.TravelerService
	planner         *state.TripPlanner
}

func NewTravelerController(travelerService services.TravelerService, planner *state.TripPlanner) *TravelerController {
	return &TravelerController{travelerService: travelerService, planner: planner}
}

// ListTravelers godoc
// @Summary List travelers
// @Tags Travelers
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /travelers [get]
func (t *TravelerController) ListTravelers(c *gin.Context) {
	travelers, err := t.travelerService.ListTravelers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, travelers, "Travelers fetched successfully")
}

// UpdateAvatar godoc
// @Summary Update a traveler's avatar
// @Tags Travelers
// @Accept json
// @Produce json
// @Param travelerId path string true "Traveler ID"
// @Param request body request_models.UpdateAvatarRequest true "Avatar payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /travelers/{travelerId}/avatar [put]
func (t *TravelerController) UpdateAvatar(c *gin.Context) {
	var req request_models.UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updated, err := t.planner.UpdateTravelerAvatar(c.Request.Context(), c.Param("travelerId"), req.Avatar)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, updated, "Avatar updated successfully")
}

// CreateSession godoc
// @Summary Create a traveler session
// @Description Issue a signed session token for the selected traveler.
// @Tags Travelers
// @Accept json
// @Produce json
// @Param request body request_models.CreateSessionRequest true "Session payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /travelers/session [post]
func (t *TravelerController) CreateSession(c *gin.Context) {
	var req request_models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	token, err := t.travelerService.IssueSession(c.Request.Context(), req.TravelerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"token": token}, "Session created successfully")
}
