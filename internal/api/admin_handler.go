package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"astroguru-backend-go/internal/core"
	"astroguru-backend-go/internal/middleware"
	"astroguru-backend-go/internal/models"
)

// AdminHandler handles the administrator panels: the shared Gemini key,
// the user listing, and broadcast notifications.
type AdminHandler struct {
	settingsService     core.SettingsService
	userService         core.UserService
	notificationService core.NotificationService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(ss core.SettingsService, us core.UserService, ns core.NotificationService) *AdminHandler {
	return &AdminHandler{
		settingsService:     ss,
		userService:         us,
		notificationService: ns,
	}
}

// GetGeminiKeyStatus handles GET /api/v1/admin/config/gemini-key. Only the
// last four characters of the active key are ever exposed. A store read
// failure reports the key as unconfigured with a warning rather than
// failing the panel.
func (h *AdminHandler) GetGeminiKeyStatus(c *gin.Context) {
	status := h.settingsService.GetKeyStatus(c.Request.Context())
	c.JSON(http.StatusOK, status)
}

// SetGeminiKey handles PUT /api/v1/admin/config/gemini-key.
func (h *AdminHandler) SetGeminiKey(c *gin.Context) {
	var req models.SetGeminiKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid key request", Details: err.Error()})
		return
	}
	adminUID := c.GetString(middleware.ContextUserID)
	if err := h.settingsService.SetGeminiKey(c.Request.Context(), adminUID, req.Key); err != nil {
		log.Printf("SetGeminiKey Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save API key", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "API key saved"})
}

// DeleteGeminiKey handles DELETE /api/v1/admin/config/gemini-key.
// Deleting an absent key is an idempotent no-op.
func (h *AdminHandler) DeleteGeminiKey(c *gin.Context) {
	adminUID := c.GetString(middleware.ContextUserID)
	if err := h.settingsService.DeleteGeminiKey(c.Request.Context(), adminUID); err != nil {
		log.Printf("DeleteGeminiKey Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete API key", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "API key removed"})
}

// ListUsers handles GET /api/v1/admin/users. The panel refreshes on
// demand and has no pagination; profile deletion is deliberately not
// offered here.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		log.Printf("ListUsers Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list users", Details: err.Error()})
		return
	}
	if users == nil {
		users = []*models.UserProfile{}
	}
	c.JSON(http.StatusOK, users)
}

// CreateNotification handles POST /api/v1/admin/notifications.
func (h *AdminHandler) CreateNotification(c *gin.Context) {
	var req models.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid notification request", Details: err.Error()})
		return
	}
	adminUID := c.GetString(middleware.ContextUserID)
	n, err := h.notificationService.Create(c.Request.Context(), adminUID, req)
	if err != nil {
		log.Printf("CreateNotification Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create notification", Details: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, n)
}

// ListNotifications handles GET /api/v1/admin/notifications and the
// user-facing GET /api/v1/notifications.
func (h *AdminHandler) ListNotifications(c *gin.Context) {
	notifications, err := h.notificationService.List(c.Request.Context())
	if err != nil {
		log.Printf("ListNotifications Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list notifications", Details: err.Error()})
		return
	}
	if notifications == nil {
		notifications = []*models.Notification{}
	}
	c.JSON(http.StatusOK, notifications)
}

// DeleteNotification handles DELETE /api/v1/admin/notifications/:id.
func (h *AdminHandler) DeleteNotification(c *gin.Context) {
	id := c.Param("id")
	adminUID := c.GetString(middleware.ContextUserID)
	if err := h.notificationService.Delete(c.Request.Context(), adminUID, id); err != nil {
		if errors.Is(err, core.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Notification not found"})
			return
		}
		log.Printf("DeleteNotification Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete notification", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Notification deleted"})
}
