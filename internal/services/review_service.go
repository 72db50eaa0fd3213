package services

import (
	"fmt"
	"unicode/utf8"

	"gorm.io/gorm"

	"surfquest/server/internal/models"
)

// ReviewService enforces one review per user per target and owner-only
// mutation. Cross-user lookups report not-found rather than forbidden, so a
// probing client cannot confirm that a review id exists.
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// ReviewInput is the create/update payload. Exactly one of SurfZone or
// SurfSpot must be set.
type ReviewInput struct {
	SurfZone *string `json:"surf_zone"`
	SurfSpot *string `json:"surf_spot"`
	Rating   int     `json:"rating" binding:"required"`
	Comment  string  `json:"comment"`
}

func (in *ReviewInput) validate() error {
	problems := map[string]string{}
	zoneSet := in.SurfZone != nil && *in.SurfZone != ""
	spotSet := in.SurfSpot != nil && *in.SurfSpot != ""
	switch {
	case !zoneSet && !spotSet:
		problems["surf_zone"] = "you must provide either a surf zone or a surf spot"
	case zoneSet && spotSet:
		problems["surf_zone"] = "provide a surf zone or a surf spot, not both"
	}
	if in.Rating < 1 || in.Rating > 5 {
		problems["rating"] = "must be between 1 and 5"
	}
	// varchar(2000) counts characters, so the limit is in runes, not bytes.
	if utf8.RuneCountInString(in.Comment) > 2000 {
		problems["comment"] = "must be at most 2000 characters"
	}
	if len(problems) > 0 {
		return &ValidationError{Fields: problems}
	}
	return nil
}

// checkDuplicate rejects a second review by the same user for the same
// target. excludeID carries the id of the review being updated, so an update
// never collides with itself.
func (s *ReviewService) checkDuplicate(userID string, in *ReviewInput, excludeID string) error {
	qs := s.db.Model(&models.Review{}).Where("user_id = ?", userID)
	if in.SurfZone != nil && *in.SurfZone != "" {
		qs = qs.Where("surf_zone_id = ?", *in.SurfZone)
	} else {
		qs = qs.Where("surf_spot_id = ?", *in.SurfSpot)
	}
	if excludeID != "" {
		qs = qs.Where("id <> ?", excludeID)
	}
	var count int64
	if err := qs.Count(&count).Error; err != nil {
		return fmt.Errorf("checking existing reviews: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: you have already reviewed this surf zone or surf spot", ErrConflict)
	}
	return nil
}

func (s *ReviewService) targetExists(in *ReviewInput) error {
	if in.SurfZone != nil && *in.SurfZone != "" {
		var zone models.SurfZone
		if err := s.db.First(&zone, "id = ?", *in.SurfZone).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return newValidationError("surf_zone", "surf zone does not exist")
			}
			return fmt.Errorf("checking surf zone: %w", err)
		}
	}
	if in.SurfSpot != nil && *in.SurfSpot != "" {
		var spot models.SurfSpot
		if err := s.db.First(&spot, "id = ?", *in.SurfSpot).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return newValidationError("surf_spot", "surf spot does not exist")
			}
			return fmt.Errorf("checking surf spot: %w", err)
		}
	}
	return nil
}

// ListReviews is the public listing, optionally filtered by target.
func (s *ReviewService) ListReviews(zoneID, spotID string) ([]models.Review, error) {
	qs := s.db.
		Preload("User").
		Preload("SurfZone").
		Preload("SurfSpot").
		Order("created_at DESC")
	if zoneID != "" {
		qs = qs.Where("surf_zone_id = ?", zoneID)
	}
	if spotID != "" {
		qs = qs.Where("surf_spot_id = ?", spotID)
	}
	var reviews []models.Review
	if err := qs.Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("listing reviews: %w", err)
	}
	return reviews, nil
}

// CreateReview stores a review authored by userID. The author always comes
// from the verified token, never from the payload.
func (s *ReviewService) CreateReview(userID string, in *ReviewInput) (*models.Review, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := s.targetExists(in); err != nil {
		return nil, err
	}
	if err := s.checkDuplicate(userID, in, ""); err != nil {
		return nil, err
	}

	review := &models.Review{
		UserID:  userID,
		Rating:  in.Rating,
		Comment: in.Comment,
	}
	if in.SurfZone != nil && *in.SurfZone != "" {
		review.SurfZoneID = in.SurfZone
	}
	if in.SurfSpot != nil && *in.SurfSpot != "" {
		review.SurfSpotID = in.SurfSpot
	}
	if err := s.db.Create(review).Error; err != nil {
		return nil, translateDBError(err)
	}
	return s.getWithRelations(review.ID)
}

// ListUserReviews returns only the requesting user's reviews.
func (s *ReviewService) ListUserReviews(userID string) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.
		Preload("SurfZone").
		Preload("SurfSpot").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("listing user reviews: %w", err)
	}
	return reviews, nil
}

// GetUserReview fetches one review scoped to its owner. A review belonging
// to someone else is not found, by design.
func (s *ReviewService) GetUserReview(userID, id string) (*models.Review, error) {
	var review models.Review
	err := s.db.
		Preload("SurfZone").
		Preload("SurfSpot").
		First(&review, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, translateDBError(err)
	}
	return &review, nil
}

// UpdateUserReview replaces the review's target, rating and comment,
// re-running the duplicate check with the review itself excluded.
func (s *ReviewService) UpdateUserReview(userID, id string, in *ReviewInput) (*models.Review, error) {
	review, err := s.GetUserReview(userID, id)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := s.targetExists(in); err != nil {
		return nil, err
	}
	if err := s.checkDuplicate(userID, in, review.ID); err != nil {
		return nil, err
	}

	review.SurfZoneID = nil
	review.SurfSpotID = nil
	if in.SurfZone != nil && *in.SurfZone != "" {
		review.SurfZoneID = in.SurfZone
	}
	if in.SurfSpot != nil && *in.SurfSpot != "" {
		review.SurfSpotID = in.SurfSpot
	}
	review.Rating = in.Rating
	review.Comment = in.Comment

	if err := s.db.Save(review).Error; err != nil {
		return nil, translateDBError(err)
	}
	return s.getWithRelations(review.ID)
}

// DeleteUserReview removes the review, owner-scoped.
func (s *ReviewService) DeleteUserReview(userID, id string) error {
	result := s.db.Delete(&models.Review{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return translateDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ReviewService) getWithRelations(id string) (*models.Review, error) {
	var review models.Review
	err := s.db.
		Preload("User").
		Preload("SurfZone").
		Preload("SurfSpot").
		First(&review, "id = ?", id).Error
	if err != nil {
		return nil, translateDBError(err)
	}
	return &review, nil
}
