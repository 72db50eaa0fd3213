package services

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"surfquest/server/internal/models"
	"surfquest/server/internal/utils"
)

// SurfSpotService manages surf spots, their images, and the filtered
// lite/detail listings.
type SurfSpotService struct {
	db *gorm.DB
}

func NewSurfSpotService(db *gorm.DB) *SurfSpotService {
	return &SurfSpotService{db: db}
}

// ListSpots returns every spot with its zone and images, ordered by name.
func (s *SurfSpotService) ListSpots() ([]models.SurfSpot, error) {
	var spots []models.SurfSpot
	err := s.db.
		Preload("SurfZone").
		Preload("SurfZone.Country").
		Preload("SpotImages", orderedSpotImages).
		Order("name").
		Find(&spots).Error
	if err != nil {
		return nil, fmt.Errorf("listing surf spots: %w", err)
	}
	return spots, nil
}

func (s *SurfSpotService) GetSpot(id string) (*models.SurfSpot, error) {
	var spot models.SurfSpot
	err := s.db.
		Preload("SurfZone").
		Preload("SurfZone.Country").
		Preload("SpotImages", orderedSpotImages).
		First(&spot, "id = ?", id).Error
	if err != nil {
		return nil, translateDBError(err)
	}
	return &spot, nil
}

// CreateSpot validates choice fields and the parent zone, then inserts.
// Spot slugs are globally unique; a clash is a conflict, not a crash.
func (s *SurfSpotService) CreateSpot(spot *models.SurfSpot) error {
	if spot.Name == "" {
		return newValidationError("name", "required")
	}
	if spot.SurfZoneID == "" {
		return newValidationError("surfzone_id", "required")
	}
	if problems := validateSpotChoices(spot); len(problems) > 0 {
		return &ValidationError{Fields: problems}
	}

	var zone models.SurfZone
	if err := s.db.First(&zone, "id = ?", spot.SurfZoneID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return newValidationError("surfzone_id", "surf zone does not exist")
		}
		return fmt.Errorf("checking surf zone: %w", err)
	}

	if err := s.db.Create(spot).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}

func validateSpotChoices(spot *models.SurfSpot) map[string]string {
	problems := spot.ValidateRanges()
	if !models.IsChoice(spot.BreakType, models.BreakTypes) {
		problems["break_type"] = "unknown break type"
	}
	if !models.IsChoice(spot.WaveDirection, models.WaveDirections) {
		problems["wave_direction"] = "unknown wave direction"
	}
	if !models.IsChoice(spot.BestWindDirection, models.WindDirections) {
		problems["best_wind_direction"] = "unknown direction"
	}
	if !models.IsChoice(spot.BestSwellDirection, models.WindDirections) {
		problems["best_swell_direction"] = "unknown direction"
	}
	if !models.AreChoices(spot.BestTide, models.Tides) {
		problems["best_tide"] = "contains an unknown tide"
	}
	if !models.AreChoices(spot.SurfLevel, models.SurfLevels) {
		problems["surf_level"] = "contains an unknown surf level"
	}
	if !models.AreChoices(spot.BestMonths, models.Months) {
		problems["best_months"] = "contains an unknown month"
	}
	return problems
}

// ListSpotsLite runs the composed filter query for the lite listing. All
// filters hit the spot row itself (array containment or scalar equality), so
// no DISTINCT step is needed; the zone join only serves the slug filter.
func (s *SurfSpotService) ListSpotsLite(f *SpotFilters) ([]models.SurfSpot, error) {
	qs := s.db.Model(&models.SurfSpot{}).
		Preload("SurfZone").
		Preload("SurfZone.Country").
		Preload("SpotImages", orderedSpotImages)

	if f.SurfZoneSlug != "" {
		qs = qs.Joins("JOIN surf_zones ON surf_zones.id = surf_spots.surfzone_id").
			Where("surf_zones.slug = ?", f.SurfZoneSlug)
	}
	if f.SurfZoneID != "" {
		qs = qs.Where("surf_spots.surfzone_id = ?", f.SurfZoneID)
	}
	if f.BestMonth != "" {
		qs = qs.Where("surf_spots.best_months @> ?", pq.StringArray{f.BestMonth})
	}
	if f.SurfLevel != "" {
		qs = qs.Where("surf_spots.surf_level @> ?", pq.StringArray{f.SurfLevel})
	}
	if f.BestTide != "" {
		qs = qs.Where("surf_spots.best_tide @> ?", pq.StringArray{f.BestTide})
	}
	if f.BreakType != "" {
		qs = qs.Where("surf_spots.break_type = ?", f.BreakType)
	}
	if f.WaveDirection != "" {
		qs = qs.Where("surf_spots.wave_direction = ?", f.WaveDirection)
	}
	if f.BestWindDirection != "" {
		qs = qs.Where("surf_spots.best_wind_direction = ?", f.BestWindDirection)
	}
	if f.BestSwellDirection != "" {
		qs = qs.Where("surf_spots.best_swell_direction = ?", f.BestSwellDirection)
	}
	if f.BestSwellSizeMeterMin != nil {
		qs = qs.Where("surf_spots.best_swell_size_meter >= ?", *f.BestSwellSizeMeterMin)
	}
	if f.BestSwellSizeMeterMax != nil {
		qs = qs.Where("surf_spots.best_swell_size_meter <= ?", *f.BestSwellSizeMeterMax)
	}

	var spots []models.SurfSpot
	if err := qs.Order("surf_spots.name").Find(&spots).Error; err != nil {
		return nil, fmt.Errorf("filtering surf spots: %w", err)
	}
	return spots, nil
}

// GetSpotDetail loads one spot with its zone and ordered images.
func (s *SurfSpotService) GetSpotDetail(id string) (*models.SurfSpot, error) {
	return s.GetSpot(id)
}

// AddSpotImage appends an image to a spot, with a timestamped slug.
func (s *SurfSpotService) AddSpotImage(spotID string, image *models.SurfSpotImage) error {
	if image.Image == "" {
		return newValidationError("image", "required")
	}

	var spot models.SurfSpot
	if err := s.db.First(&spot, "id = ?", spotID).Error; err != nil {
		return translateDBError(err)
	}

	image.SurfSpotID = spot.ID
	if image.Slug == "" {
		image.Slug = utils.TimestampedSlug(spot.Name, time.Now())
	}
	if err := s.db.Create(image).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}

// ListSpotImages returns a spot's images in carousel order.
func (s *SurfSpotService) ListSpotImages(spotID string) ([]models.SurfSpotImage, error) {
	var spot models.SurfSpot
	if err := s.db.First(&spot, "id = ?", spotID).Error; err != nil {
		return nil, translateDBError(err)
	}
	var images []models.SurfSpotImage
	if err := s.db.Where("surfspot_id = ?", spotID).Order("created_at").Find(&images).Error; err != nil {
		return nil, fmt.Errorf("listing spot images: %w", err)
	}
	return images, nil
}
