package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/entities"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationService
}

func NewRecommendationController(recommendationService services.RecommendationService) *RecommendationController {
	return &RecommendationController{recommendationService: recommendationService}
}

// ListRecommendations godoc
// @Summary List recommendations for a destination
// @Description With q set, results are ranked against the query by
// embedding similarity instead of listed in insertion order.
// @Tags Recommendations
// @Produce json
// @Param destination query string true "Destination"
// @Param q query string false "Free-text query"
// @Success 200 {object} utils.APIResponse
// @Router /recommendations [get]
func (r *RecommendationController) ListRecommendations(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "destination is required")
		return
	}

	if q := c.Query("q"); q != "" {
		recs, err := r.recommendationService.Search(c.Request.Context(), entities.Destination(destination), q, 0)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, recs, "Recommendations ranked successfully")
		return
	}

	recs, err := r.recommendationService.ListRecommendations(c.Request.Context(), entities.Destination(destination))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, recs, "Recommendations fetched successfully")
}

// AddRecommendation godoc
// @Summary Add a recommendation
// @Description Store a recommendation with its description embedded for
// similarity search. Organizer only.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body request_models.AddRecommendationRequest true "Recommendation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /recommendations [post]
func (r *RecommendationController) AddRecommendation(c *gin.Context) {
	var req request_models.AddRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	created, err := r.recommendationService.AddRecommendation(c.Request.Context(), req.Recommendation)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, created, "Recommendation added successfully")
}

// SearchRecommendations godoc
// @Summary Search recommendations by free text
// @Description Rank a destination's recommendations against the query by
// embedding similarity.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body request_models.SearchRecommendationsRequest true "Search payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /recommendations/search [post]
func (r *RecommendationController) SearchRecommendations(c *gin.Context) {
	var req request_models.SearchRecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	recs, err := r.recommendationService.Search(c.Request.Context(), entities.Destination(req.Destination), req.Query, req.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, recs, "Recommendations ranked successfully")
}
