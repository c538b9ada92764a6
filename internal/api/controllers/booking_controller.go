package controllers

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type BookingController struct {
	extractionService services.ExtractionService
}

func NewBookingController(extractionService services.ExtractionService) *BookingController {
	return &BookingController{extractionService: extractionService}
}

// ExtractBooking godoc
// @Summary Extract booking details from a screenshot
// @Description Run the vision model over a booking confirmation screenshot
// and return the structured flight, restaurant, or tour details it shows.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.ExtractBookingRequest true "Screenshot payload"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /bookings/extract [post]
func (b *BookingController) ExtractBooking(c *gin.Context) {
	var req request_models.ExtractBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	image, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Image must be base64 encoded")
		return
	}

	booking, err := b.extractionService.ExtractBooking(c.Request.Context(), req.MimeType, image, req.TravelerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Booking extracted successfully")
}
