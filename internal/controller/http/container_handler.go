package http

import (
	"net/http"

	"kamstim/internal/mapview"
	"kamstim/internal/usecase"
	"kamstim/pkg/geo"
	"kamstim/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ContainerHandler struct {
	containerUseCase usecase.ContainerUseCase
	geoClient        *geo.Client
	logger           *logger.Logger
}

func NewContainerHandler(containerUseCase usecase.ContainerUseCase, geoClient *geo.Client, logger *logger.Logger) *ContainerHandler {
	return &ContainerHandler{
		containerUseCase: containerUseCase,
		geoClient:        geoClient,
		logger:           logger,
	}
}

// GetContainers godoc
// @Summary      Get recycling container locations
// @Description  GeoJSON feature collection of municipal recycling containers
// @Tags         containers
// @Produce      json
// @Success      200  {object}  entity.FeatureCollection
// @Failure      500  {object}  map[string]string
// @Router       /containers [get]
func (h *ContainerHandler) GetContainers(c *gin.Context) {
	fc, err := h.containerUseCase.GetContainers()
	if err != nil {
		h.logger.Error("Failed to load containers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read container dataset"})
		return
	}

	// The dataset is static; let clients cache it for an hour.
	c.Header("Cache-Control", "public, max-age=3600")
	c.JSON(http.StatusOK, fc)
}

// Geocode godoc
// @Summary      Geocode an address
// @Description  Resolve a free-form address to coordinates, biased to Brno
// @Tags         containers
// @Produce      json
// @Param        q query string true "Address to search"
// @Success      200  {object}  mapview.Coords
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /geocode [get]
func (h *ContainerHandler) Geocode(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query parameter q"})
		return
	}

	result, err := h.geoClient.Search(c.Request.Context(), query)
	if err != nil {
		if err == geo.ErrNoMatch {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found, try a more specific query"})
			return
		}
		h.logger.Error("Geocoding failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Geocoding service unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"coords":       mapview.Coords{Lat: result.Lat, Lon: result.Lon},
		"display_name": result.DisplayName,
	})
}
