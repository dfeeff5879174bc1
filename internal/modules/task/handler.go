package task

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
	tasks := protected.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.GET("/:id", h.Get)
		tasks.PATCH("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.PATCH("/:id/toggle", h.Toggle)
	}
}

func (h *Handler) List(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.Error(apperr.Unauthorized("Authentication required"))
		return
	}

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.Error(apperr.Validation(validator.FieldErrors(err)))
		return
	}

	tasks, pagination, err := h.service.List(c.Request.Context(), identity.UserID, q)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "pagination": pagination})
}

func (h *Handler) Get(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.Error(apperr.Unauthorized("Authentication required"))
		return
	}

	t, err := h.service.Get(c.Request.Context(), identity.UserID, c.Param("id"))
	if err != nil {
		c.Error(mapTaskError(err))
		return
	}

	c.JSON(http.StatusOK, t)
}

func (h *Handler) Create(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.Error(apperr.Unauthorized("Authentication required"))
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.Validation(validator.FieldErrors(err)))
		return
	}

	t, err := h.service.Create(c.Request.Context(), identity.UserID, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, t)
}

func (h *Handler) Update(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.Error(apperr.Unauthorized("Authentication required"))
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.Validation(validator.FieldErrors(err)))
		return
	}

	t, err := h.service.Update(c.Request.Context(), identity.UserID, c.Param("id"), req)
	if err != nil {
		c.Error(mapTaskError(err))
		return
	}

	c.JSON(http.StatusOK, t)
}

func (h *Handler) Delete(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.Error(apperr.Unauthorized("Authentication required"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity.UserID, c.Param("id")); err != nil {
		c.Error(mapTaskError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func (h *Handler) Toggle(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.Error(apperr.Unauthorized("Authentication required"))
		return
	}

	t, err := h.service.Toggle(c.Request.Context(), identity.UserID, c.Param("id"))
	if err != nil {
		c.Error(mapTaskError(err))
		return
	}

	c.JSON(http.StatusOK, t)
}

func mapTaskError(err error) error {
	if errors.Is(err, ErrTaskNotFound) {
		return apperr.NotFound("Task not found")
	}
	return err
}
