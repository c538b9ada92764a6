package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/internal/state"
	"wayfarer/pkg/utils"
)

type HotelController struct {
	hotelService services.HotelService
	planner      *state.TripPlanner
}

func NewHotelController(hotelService services.HotelService, planner *state.TripPlanner) *HotelController {
	return &HotelController{hotelService: hotelService, planner: planner}
}

// ListHotels godoc
// @Summary List hotels
// @Tags Hotels
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /hotels [get]
func (h *HotelController) ListHotels(c *gin.Context) {
	hotels, err := h.hotelService.ListHotels(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, hotels, "Hotels fetched successfully")
}

// UpsertHotel godoc
// @Summary Add or replace a hotel
// @Description One hotel per destination: writing a hotel for a destination
// that already has one replaces it.
// @Tags Hotels
// @Accept json
// @Produce json
// @Param request body request_models.UpsertHotelRequest true "Hotel payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /hotels [put]
func (h *HotelController) UpsertHotel(c *gin.Context) {
	var req request_models.UpsertHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	stored, err := h.planner.UpsertHotel(c.Request.Context(), req.Hotel)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stored, "Hotel saved successfully")
}
