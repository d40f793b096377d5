package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-platform/internal/logger"
	"blog-platform/internal/middleware"
	"blog-platform/internal/service"
)

// Envelope is the uniform response shape: a success flag, a human-readable
// message, and an optional payload.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
	})
}

// respondServiceError translates service errors into envelope responses.
// Unexpected errors are logged with the request id and surfaced generically.
func respondServiceError(c *gin.Context, err error, operation string) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		respondError(c, http.StatusBadRequest, verrs.Error())
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrForbidden):
		respondError(c, http.StatusForbidden, "forbidden")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrEmailTaken):
		respondError(c, http.StatusConflict, "email already registered")
	default:
		logger.Error("operation failed",
			"request_id", middleware.GetRequestID(c),
			"operation", operation,
			"error", err.Error())
		respondError(c, http.StatusInternalServerError, "something went wrong")
	}
}
