package http

import (
	"net/http"
	"strconv"

	"kamstim/internal/notifier"
	"kamstim/pkg/logger"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifier *notifier.Notifier
	logger   *logger.Logger
}

func NewNotificationHandler(n *notifier.Notifier, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notifier: n,
		logger:   logger,
	}
}

// GetNotifications godoc
// @Summary      List the caller's notifications
// @Description  Recent activity on the caller's posts, newest first
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query int false "Page size (default 20)"
// @Param        offset query int false "Offset (default 0)"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /notifications [get]
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID := c.GetString("user_id")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	notifications, total, err := h.notifier.GetNotifications(userID, limit, offset)
	if err != nil {
		h.logger.Error("Failed to get notifications: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"total":         total,
	})
}
