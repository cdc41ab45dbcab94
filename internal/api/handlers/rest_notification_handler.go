package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TomSchuck/yardcrop/internal/services"
)

// RestNotificationHandler exposes the live toast queue.
type RestNotificationHandler struct {
	toastService services.IToastService
}

// NewRestNotificationHandler creates a new RestNotificationHandler.
func NewRestNotificationHandler(toastService services.IToastService) *RestNotificationHandler {
	return &RestNotificationHandler{toastService: toastService}
}

// ListNotifications handles GET /v1/notifications
func (h *RestNotificationHandler) ListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.toastService.Active()})
}

// DismissNotification handles DELETE /v1/notifications/:id
func (h *RestNotificationHandler) DismissNotification(c *gin.Context) {
	h.toastService.Dismiss(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
