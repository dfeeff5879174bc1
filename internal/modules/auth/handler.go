package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/pkg/apperr"
	"tasktracker/internal/pkg/validator"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.Validation(validator.FieldErrors(err)))
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		c.Error(mapAuthError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "User registered successfully",
		"user":         result.User,
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.Validation(validator.FieldErrors(err)))
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		c.Error(mapAuthError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"user":         result.User,
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
	})
}

func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.Validation(validator.FieldErrors(err)))
		return
	}

	accessToken, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.Error(mapAuthError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}

func (h *Handler) Logout(c *gin.Context) {
	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.Validation(validator.FieldErrors(err)))
		return
	}

	if err := h.service.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, ErrEmailAlreadyExists):
		return apperr.Conflict("User with this email already exists")
	case errors.Is(err, ErrInvalidCredentials):
		return apperr.Unauthorized("Invalid email or password")
	case errors.Is(err, ErrInvalidRefreshToken):
		return apperr.Unauthorized("Invalid refresh token")
	default:
		return err
	}
}
