package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"surfquest/server/internal/services"
)

// ReviewController serves the public review feed plus the caller's own
// reviews under /user-reviews. The author always comes from the token.
type ReviewController struct {
	service *services.ReviewService
}

func NewReviewController(service *services.ReviewService) *ReviewController {
	return &ReviewController{service: service}
}

// GetReviews handles GET /api/v1/reviews?surf_zone=&surf_spot=
func (rc *ReviewController) GetReviews(c *gin.Context) {
	reviews, err := rc.service.ListReviews(c.Query("surf_zone"), c.Query("surf_spot"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview handles POST /api/v1/reviews (authenticated)
func (rc *ReviewController) CreateReview(c *gin.Context) {
	var input services.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	review, err := rc.service.CreateReview(authUserID(c), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// GetUserReviews handles GET /api/v1/user-reviews
func (rc *ReviewController) GetUserReviews(c *gin.Context) {
	reviews, err := rc.service.ListUserReviews(authUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetUserReview handles GET /api/v1/user-reviews/:id. Someone else's
// review id yields 404.
func (rc *ReviewController) GetUserReview(c *gin.Context) {
	review, err := rc.service.GetUserReview(authUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// UpdateUserReview handles PUT /api/v1/user-reviews/:id
func (rc *ReviewController) UpdateUserReview(c *gin.Context) {
	var input services.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	review, err := rc.service.UpdateUserReview(authUserID(c), c.Param("id"), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// DeleteUserReview handles DELETE /api/v1/user-reviews/:id
func (rc *ReviewController) DeleteUserReview(c *gin.Context) {
	if err := rc.service.DeleteUserReview(authUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}
