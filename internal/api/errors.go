package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"surfquest/server/internal/services"
)

// respondError maps service errors onto HTTP statuses: validation errors
// become 400 with per-field messages, not-found 404, conflict 409, and
// anything else a 500 that does not leak internals.
func respondError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": vErr.Fields,
		})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
