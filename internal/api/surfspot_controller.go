package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"surfquest/server/internal/models"
	"surfquest/server/internal/services"
)

// SurfSpotController mirrors SurfZoneController for individual breaks.
type SurfSpotController struct {
	service *services.SurfSpotService
}

func NewSurfSpotController(service *services.SurfSpotService) *SurfSpotController {
	return &SurfSpotController{service: service}
}

// GetSpots handles GET /api/v1/surfspots
func (sc *SurfSpotController) GetSpots(c *gin.Context) {
	spots, err := sc.service.ListSpots()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, spots)
}

// GetSpot handles GET /api/v1/surfspots/:id
func (sc *SurfSpotController) GetSpot(c *gin.Context) {
	spot, err := sc.service.GetSpot(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, spot)
}

// CreateSpot handles POST /api/v1/surfspots
func (sc *SurfSpotController) CreateSpot(c *gin.Context) {
	var spot models.SurfSpot
	if err := c.ShouldBindJSON(&spot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := sc.service.CreateSpot(&spot); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, spot)
}

// GetSpotsLite handles GET /api/v1/surfspots-lite with the spot filter set.
func (sc *SurfSpotController) GetSpotsLite(c *gin.Context) {
	filters, err := services.ParseSpotFilters(c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}

	spots, err := sc.service.ListSpotsLite(filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, spotLiteList(spots))
}

// GetSpotDetail handles GET /api/v1/surfspots-detail/:id
func (sc *SurfSpotController) GetSpotDetail(c *gin.Context) {
	spot, err := sc.service.GetSpotDetail(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, spot)
}

// GetSpotImages handles GET /api/v1/surfspots/:id/images
func (sc *SurfSpotController) GetSpotImages(c *gin.Context) {
	images, err := sc.service.ListSpotImages(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// AddSpotImage handles POST /api/v1/surfspots/:id/images
func (sc *SurfSpotController) AddSpotImage(c *gin.Context) {
	var image models.SurfSpotImage
	if err := c.ShouldBindJSON(&image); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := sc.service.AddSpotImage(c.Param("id"), &image); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}
