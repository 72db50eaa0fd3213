package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"surfquest/server/internal/models"
	"surfquest/server/internal/services"
)

// SurfZoneController serves the zone collections: the legacy full payloads,
// the filtered lite listing, the detail payload, and image attachment.
type SurfZoneController struct {
	service *services.SurfZoneService
}

func NewSurfZoneController(service *services.SurfZoneService) *SurfZoneController {
	return &SurfZoneController{service: service}
}

// GetZones handles GET /api/v1/surfzones
func (zc *SurfZoneController) GetZones(c *gin.Context) {
	zones, err := zc.service.ListZones()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, zones)
}

// GetZone handles GET /api/v1/surfzones/:id
func (zc *SurfZoneController) GetZone(c *gin.Context) {
	zone, err := zc.service.GetZone(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, zone)
}

// CreateZone handles POST /api/v1/surfzones
func (zc *SurfZoneController) CreateZone(c *gin.Context) {
	var zone models.SurfZone
	if err := c.ShouldBindJSON(&zone); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := zc.service.CreateZone(&zone); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, zone)
}

// GetZonesLite handles GET /api/v1/surfzones-lite with the full filter set.
func (zc *SurfZoneController) GetZonesLite(c *gin.Context) {
	filters, err := services.ParseZoneFilters(c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}

	zones, err := zc.service.ListZonesLite(filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, zoneLiteList(zones))
}

// GetZoneDetail handles GET /api/v1/surfzones-detail/:id
func (zc *SurfZoneController) GetZoneDetail(c *gin.Context) {
	zone, err := zc.service.GetZoneDetail(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, zone)
}

// GetZoneImages handles GET /api/v1/surfzones/:id/images
func (zc *SurfZoneController) GetZoneImages(c *gin.Context) {
	images, err := zc.service.ListZoneImages(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// AddZoneImage handles POST /api/v1/surfzones/:id/images
func (zc *SurfZoneController) AddZoneImage(c *gin.Context) {
	var image models.SurfZoneImage
	if err := c.ShouldBindJSON(&image); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := zc.service.AddZoneImage(c.Param("id"), &image); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}
