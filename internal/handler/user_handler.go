package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cidgate/internal/middleware"
	"cidgate/internal/service"
)

// UserHandler handles user registration.
type UserHandler struct {
	registrationService service.RegistrationService
	logger              *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(registrationService service.RegistrationService, logger *zap.Logger) *UserHandler {
	return &UserHandler{registrationService: registrationService, logger: logger}
}

// Register handles POST /register
// @Summary Register the caller
// @Description Upsert the authenticated user by uid. Repeating the call overwrites the stored email.
// @Tags users
// @Produce json
// @Success 200 {object} MessageResponse "User registered"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Persistence failure"
// @Security BearerAuth
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	if err := h.registrationService.Register(c.Request.Context(), identity); err != nil {
		HandleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "User registered"})
}
