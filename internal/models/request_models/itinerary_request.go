package request_models

import "wayfarer/internal/models/entities"

type AddActivityRequest struct {
	Activity entities.Activity `json:"activity" binding:"required"`
}

type UpdateActivityRequest struct {
	Activity entities.Activity `json:"activity" binding:"required"`
}

type MoveActivityRequest struct {
	ActivityID string `json:"activityId" binding:"required"`
	FromDayID  string `json:"fromDayId" binding:"required"`
	ToDayID    string `json:"toDayId" binding:"required"`
}

type ReplaceActivitiesRequest struct {
	Activities []entities.Activity `json:"activities"`
}
