package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type MapController struct {
	mapService services.MapService
}

func NewMapController(mapService services.MapService) *MapController {
	return &MapController{mapService: mapService}
}

// GenerateDayMap godoc
// @Summary Get or generate a day's illustrated map
// @Description Returns the stored render when one exists; force replaces
// it. A local poster is substituted when the image backend is unavailable.
// @Tags Maps
// @Accept json
// @Produce json
// @Param dayId path string true "Day ID"
// @Param request body request_models.GenerateMapRequest false "Generation options"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/days/{dayId}/map [post]
func (m *MapController) GenerateDayMap(c *gin.Context) {
	// The body is optional; an empty request means "return or render with
	// defaults".
	var req request_models.GenerateMapRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
			return
		}
	}

	dayMap, err := m.mapService.GenerateDayMap(c.Request.Context(), c.Param("dayId"), req.Force, req.RequestedBy)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, dayMap, "Map generated successfully")
}

// GetDayMap godoc
// @Summary Get a day's stored map
// @Tags Maps
// @Produce json
// @Param dayId path string true "Day ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/days/{dayId}/map [get]
func (m *MapController) GetDayMap(c *gin.Context) {
	dayMap, err := m.mapService.GetDayMap(c.Request.Context(), c.Param("dayId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, dayMap, "Map fetched successfully")
}
