package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cidgate/internal/domain"
)

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Error: msg})
}

// MapDomainError translates domain errors to HTTP status codes and client
// messages. Anything unrecognised is an internal error.
func MapDomainError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid Token"
	case errors.Is(err, domain.ErrNoFile):
		return http.StatusBadRequest, "No file uploaded"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusBadRequest, "File too large"
	case errors.Is(err, domain.ErrImageNotFound):
		return http.StatusNotFound, "Image not found"
	case errors.Is(err, domain.ErrRegisterFailed):
		return http.StatusInternalServerError, "Error registering user"
	case errors.Is(err, domain.ErrLookupFailed):
		return http.StatusInternalServerError, "Failed to fetch CIDs"
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
// Details of internal errors are logged, never returned.
func HandleError(c *gin.Context, logger *zap.Logger, err error) {
	status, msg := MapDomainError(err)
	if status >= 500 {
		logger.Error("internal error",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	RespondError(c, status, msg)
}
