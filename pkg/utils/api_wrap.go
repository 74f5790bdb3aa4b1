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

// HandleServiceError maps service-layer sentinel errors onto HTTP
// responses. Anything unrecognized is logged and reported as a 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "An account with this email already exists")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrProfileNotFound),
		errors.Is(err, ErrCityNotFound),
		errors.Is(err, ErrLocationNotFound),
		errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrQuotaExceeded):
		RespondError(c, http.StatusPaymentRequired, "You have used all your free runs for this feature. Upgrade to keep going.")
	case errors.Is(err, ErrAIKeyNotConfigured):
		RespondError(c, http.StatusInternalServerError, err.Error())
	case errors.Is(err, ErrAIUpstream), errors.Is(err, ErrMalformedAIResponse):
		// Upstream errors keep the provider's own message appended by the
		// service layer, so the user sees the verbatim cause.
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrAIUnavailable), errors.Is(err, ErrWeatherUnavailable):
		RespondError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
