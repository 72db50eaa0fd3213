package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"surfquest/server/internal/models"
	"surfquest/server/internal/services"
)

// GeoController exposes the continent/country collections: public reads,
// authenticated creates for seeding.
type GeoController struct {
	service *services.GeoService
}

func NewGeoController(service *services.GeoService) *GeoController {
	return &GeoController{service: service}
}

// GetContinents handles GET /api/v1/continents
func (gc *GeoController) GetContinents(c *gin.Context) {
	continents, err := gc.service.ListContinents()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, continents)
}

// GetContinent handles GET /api/v1/continents/:id
func (gc *GeoController) GetContinent(c *gin.Context) {
	continent, err := gc.service.GetContinent(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, continent)
}

// CreateContinent handles POST /api/v1/continents
func (gc *GeoController) CreateContinent(c *gin.Context) {
	var continent models.Continent
	if err := c.ShouldBindJSON(&continent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := gc.service.CreateContinent(&continent); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, continent)
}

// GetCountries handles GET /api/v1/countries
func (gc *GeoController) GetCountries(c *gin.Context) {
	countries, err := gc.service.ListCountries()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, countries)
}

// GetCountry handles GET /api/v1/countries/:id
func (gc *GeoController) GetCountry(c *gin.Context) {
	country, err := gc.service.GetCountry(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, country)
}

// CreateCountry handles POST /api/v1/countries
func (gc *GeoController) CreateCountry(c *gin.Context) {
	var country models.Country
	if err := c.ShouldBindJSON(&country); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := gc.service.CreateCountry(&country); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, country)
}
