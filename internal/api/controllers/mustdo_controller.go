package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/internal/state"
	"wayfarer/pkg/utils"
)

type MustDoController struct {
	mustDoService services.MustDoService
	planner       *state.TripPlanner
}

func NewMustDoController(mustDoService services.MustDoService, planner *state.TripPlanner) *MustDoController {
	return &MustDoController{mustDoService: mustDoService, planner: planner}
}

// ListMustDos godoc
// @Summary List must-do items
// @Tags MustDos
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /mustdos [get]
func (m *MustDoController) ListMustDos(c *gin.Context) {
	items, err := m.mustDoService.ListMustDos(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "Must-dos fetched successfully")
}

// AddMustDo godoc
// @Summary Add a must-do item
// @Tags MustDos
// @Accept json
// @Produce json
// @Param request body request_models.AddMustDoRequest true "Must-do payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /mustdos [post]
func (m *MustDoController) AddMustDo(c *gin.Context) {
	var req request_models.AddMustDoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	created, err := m.planner.AddMustDo(c.Request.Context(), req.MustDo)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, created, "Must-do added successfully")
}

// UpdateMustDo godoc
// @Summary Update a must-do item
// @Tags MustDos
// @Accept json
// @Produce json
// @Param request body request_models.UpdateMustDoRequest true "Must-do payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /mustdos [put]
func (m *MustDoController) UpdateMustDo(c *gin.Context) {
	var req request_models.UpdateMustDoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updated, err := m.planner.UpdateMustDo(c.Request.Context(), req.MustDo)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, updated, "Must-do updated successfully")
}

// DeleteMustDo godoc
// @Summary Delete a must-do item and its comments
// @Tags MustDos
// @Produce json
// @Param mustDoId path string true "Must-do ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /mustdos/{mustDoId} [delete]
func (m *MustDoController) DeleteMustDo(c *gin.Context) {
	if err := m.planner.DeleteMustDo(c.Request.Context(), c.Param("mustDoId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Must-do deleted successfully")
}

// VoteMustDo godoc
// @Summary Toggle a traveler's vote
// @Description Voting twice with the same traveler removes the vote.
// @Tags MustDos
// @Accept json
// @Produce json
// @Param mustDoId path string true "Must-do ID"
// @Param request body request_models.VoteRequest true "Vote payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /mustdos/{mustDoId}/vote [post]
func (m *MustDoController) VoteMustDo(c *gin.Context) {
	var req request_models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	votes, err := m.planner.VoteMustDo(c.Request.Context(), c.Param("mustDoId"), req.TravelerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, votes, "Vote recorded successfully")
}

// CommentMustDo godoc
// @Summary Add a comment to a must-do item
// @Tags MustDos
// @Accept json
// @Produce json
// @Param mustDoId path string true "Must-do ID"
// @Param request body request_models.AddCommentRequest true "Comment payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /mustdos/{mustDoId}/comments [post]
func (m *MustDoController) CommentMustDo(c *gin.Context) {
	var req request_models.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	comment, err := m.planner.CommentMustDo(c.Request.Context(), c.Param("mustDoId"), req.TravelerID, req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, comment, "Comment added successfully")
}

// PromoteMustDo godoc
// @Summary Promote a must-do item onto a day
// @Description Copies the item into the day's activity list and marks it
// promoted. Promotion cannot be repeated.
// @Tags MustDos
// @Accept json
// @Produce json
// @Param mustDoId path string true "Must-do ID"
// @Param request body request_models.PromoteMustDoRequest true "Promotion payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /mustdos/{mustDoId}/promote [post]
func (m *MustDoController) PromoteMustDo(c *gin.Context) {
	var req request_models.PromoteMustDoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	promoted, err := m.planner.PromoteMustDo(c.Request.Context(), c.Param("mustDoId"), req.DayID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, promoted, "Must-do promoted successfully")
}
