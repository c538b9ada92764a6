package request_models

import "wayfarer/internal/models/entities"

type AddMustDoRequest struct {
	MustDo entities.MustDo `json:"mustDo" binding:"required"`
}

type UpdateMustDoRequest struct {
	MustDo entities.MustDo `json:"mustDo" binding:"required"`
}

type VoteRequest struct {
	TravelerID string `json:"travelerId" binding:"required"`
}

type AddCommentRequest struct {
	TravelerID string `json:"travelerId" binding:"required"`
	Text       string `json:"text" binding:"required"`
}

type PromoteMustDoRequest struct {
	DayID string `json:"dayId" binding:"required"`
}

type AddSavedPlaceRequest struct {
	Place entities.SavedPlace `json:"place" binding:"required"`
}

type UpdateAvatarRequest struct {
	Avatar *string `json:"avatar"`
}

type CreateSessionRequest struct {
	TravelerID string `json:"travelerId" binding:"required"`
}
