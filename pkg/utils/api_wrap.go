package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service-layer sentinel errors to HTTP responses.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTripNotFound),
		errors.Is(err, ErrDayNotFound),
		errors.Is(err, ErrActivityNotFound),
		errors.Is(err, ErrFlightNotFound),
		errors.Is(err, ErrMustDoNotFound),
		errors.Is(err, ErrTravelerNotFound),
		errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNotPersisted):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrAlreadyPromoted):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrExtractionFailed):
		RespondError(c, http.StatusUnprocessableEntity, "Could not read booking details from the image. Please enter them manually.")
	case errors.Is(err, ErrRateLimited):
		RespondError(c, http.StatusTooManyRequests, "AI service is temporarily busy. Please try again in a minute.")
	case errors.Is(err, ErrAIUnavailable):
		RespondError(c, http.StatusServiceUnavailable, "AI service is not configured.")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
