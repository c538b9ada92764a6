package request_models

import "wayfarer/internal/models/entities"

type AddRecommendationRequest struct {
	Recommendation entities.Recommendation `json:"recommendation" binding:"required"`
}

type SearchRecommendationsRequest struct {
	Destination string `json:"destination" binding:"required"`
	Query       string `json:"query" binding:"required"`
	Limit       int    `json:"limit"`
}
