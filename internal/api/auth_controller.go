package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"surfquest/server/internal/services"
	"surfquest/server/internal/utils"
)

// AuthController issues and refreshes JWT token pairs.
type AuthController struct {
	users  *services.UserService
	tokens *utils.TokenManager
}

func NewAuthController(users *services.UserService, tokens *utils.TokenManager) *AuthController {
	return &AuthController{users: users, tokens: tokens}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// Login handles POST /api/login/
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	user, err := ac.users.Authenticate(req.Username, req.Password)
	if err != nil {
		// Same body for unknown username and wrong password.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	pair, err := ac.tokens.CreateTokenPair(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// Refresh handles POST /api/login/refresh/
func (ac *AuthController) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	pair, err := ac.tokens.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
		return
	}
	c.JSON(http.StatusOK, pair)
}
