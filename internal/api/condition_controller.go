package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"surfquest/server/internal/models"
	"surfquest/server/internal/services"
)

// ConditionController exposes the monthly condition records: public reads,
// authenticated create for seeding.
type ConditionController struct {
	service *services.ConditionService
}

func NewConditionController(service *services.ConditionService) *ConditionController {
	return &ConditionController{service: service}
}

// GetConditions handles GET /api/v1/conditions
func (cc *ConditionController) GetConditions(c *gin.Context) {
	conditions, err := cc.service.ListConditions()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conditions)
}

// GetCondition handles GET /api/v1/conditions/:id
func (cc *ConditionController) GetCondition(c *gin.Context) {
	condition, err := cc.service.GetCondition(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, condition)
}

// CreateCondition handles POST /api/v1/conditions. A duplicate
// (zone, month) pair is a 409.
func (cc *ConditionController) CreateCondition(c *gin.Context) {
	var condition models.Condition
	if err := c.ShouldBindJSON(&condition); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := cc.service.CreateCondition(&condition); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, condition)
}
