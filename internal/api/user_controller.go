package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"surfquest/server/internal/services"
)

// UserController exposes registration (public) and self-service profile
// management. Detail routes are owner-scoped: a caller asking about someone
// else's id gets 404, not 403, so ids cannot be probed for existence.
type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// GetUsers handles GET /api/v1/users
func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.service.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"count": len(users),
	})
}

// Register handles POST /api/v1/users
func (uc *UserController) Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	user, err := uc.service.Register(&input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetUser handles GET /api/v1/users/:id (self only)
func (uc *UserController) GetUser(c *gin.Context) {
	id := c.Param("id")
	if id != authUserID(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	user, err := uc.service.GetUser(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserBySlug handles GET /api/v1/users/by-slug/:slug (public profile)
func (uc *UserController) GetUserBySlug(c *gin.Context) {
	user, err := uc.service.GetUserBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /api/v1/users/:id (self only)
func (uc *UserController) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	if id != authUserID(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	var input services.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	user, err := uc.service.UpdateUser(id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/v1/users/:id (self only)
func (uc *UserController) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if id != authUserID(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	if err := uc.service.DeleteUser(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// Protected handles GET /api/v1/protected-endpoint, an auth smoke check.
func (uc *UserController) Protected(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "This is a protected view"})
}
