package http

import (
	"net/http"

	"kamstim/internal/entity"
	"kamstim/internal/settings"
	"kamstim/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	store  settings.Store
	logger *logger.Logger
}

func NewSettingsHandler(store settings.Store, logger *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		store:  store,
		logger: logger,
	}
}

// GetSettings godoc
// @Summary      Get application settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.Settings
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID := c.GetString("user_id")

	s, err := h.store.Get(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to load settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	c.JSON(http.StatusOK, s)
}

// PutSettings godoc
// @Summary      Update application settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.Settings true "Settings"
// @Success      200  {object}  entity.Settings
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /settings [put]
func (h *SettingsHandler) PutSettings(c *gin.Context) {
	userID := c.GetString("user_id")

	var s entity.Settings
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.store.Put(c.Request.Context(), userID, s); err != nil {
		h.logger.Error("Failed to store settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store settings"})
		return
	}

	c.JSON(http.StatusOK, s)
}
