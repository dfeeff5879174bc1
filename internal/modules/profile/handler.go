package profile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/middleware"
	"tasktracker/internal/pkg/apperr"
	"tasktracker/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/me", h.Get)
	protected.PUT("/me", h.Update)
}

func (h *Handler) Get(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.Error(apperr.Unauthorized("Authentication required"))
		return
	}

	user, err := h.service.Get(c.Request.Context(), identity.UserID)
	if err != nil {
		c.Error(mapProfileError(err))
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) Update(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.Error(apperr.Unauthorized("Authentication required"))
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.Validation(validator.FieldErrors(err)))
		return
	}

	user, err := h.service.Update(c.Request.Context(), identity.UserID, req)
	if err != nil {
		c.Error(mapProfileError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

func mapProfileError(err error) error {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return apperr.NotFound("User not found")
	case errors.Is(err, ErrEmailTaken):
		return apperr.Conflict("Email is already in use")
	default:
		return err
	}
}
