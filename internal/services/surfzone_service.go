package services

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"surfquest/server/internal/models"
	"surfquest/server/internal/utils"
)

// SurfZoneService manages surf zones, their images, and the filtered
// lite/detail listings.
type SurfZoneService struct {
	db *gorm.DB
}

func NewSurfZoneService(db *gorm.DB) *SurfZoneService {
	return &SurfZoneService{db: db}
}

// orderedZoneImages keeps the image relation in its stable carousel order.
func orderedZoneImages(db *gorm.DB) *gorm.DB {
	return db.Order("surf_zone_images.created_at")
}

func orderedSpotImages(db *gorm.DB) *gorm.DB {
	return db.Order("surf_spot_images.created_at")
}

// ListZones returns every zone with its full relations, ordered by name.
func (s *SurfZoneService) ListZones() ([]models.SurfZone, error) {
	var zones []models.SurfZone
	err := s.db.
		Preload("Country").
		Preload("ZoneImages", orderedZoneImages).
		Preload("Conditions").
		Order("name").
		Find(&zones).Error
	if err != nil {
		return nil, fmt.Errorf("listing surf zones: %w", err)
	}
	return zones, nil
}

func (s *SurfZoneService) GetZone(id string) (*models.SurfZone, error) {
	var zone models.SurfZone
	err := s.db.
		Preload("Country").
		Preload("ZoneImages", orderedZoneImages).
		Preload("Conditions").
		First(&zone, "id = ?", id).Error
	if err != nil {
		return nil, translateDBError(err)
	}
	return &zone, nil
}

// CreateZone validates choice fields and the parent country, then inserts.
func (s *SurfZoneService) CreateZone(zone *models.SurfZone) error {
	if zone.Name == "" {
		return newValidationError("name", "required")
	}
	if zone.CountryID == "" {
		return newValidationError("country_id", "required")
	}
	if problems := validateZoneChoices(zone); len(problems) > 0 {
		return &ValidationError{Fields: problems}
	}

	var country models.Country
	if err := s.db.First(&country, "id = ?", zone.CountryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return newValidationError("country_id", "country does not exist")
		}
		return fmt.Errorf("checking country: %w", err)
	}

	var count int64
	s.db.Model(&models.SurfZone{}).
		Where("name = ? AND country_id = ?", zone.Name, zone.CountryID).
		Count(&count)
	if count > 0 {
		return fmt.Errorf("%w: surf zone %q already exists in this country", ErrConflict, zone.Name)
	}

	if err := s.db.Create(zone).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}

func validateZoneChoices(zone *models.SurfZone) map[string]string {
	problems := map[string]string{}
	if !models.AreChoices(zone.TravelerType, models.TravelerTypes) {
		problems["traveler_type"] = "contains an unknown traveler type"
	}
	if !models.AreChoices(zone.BestMonths, models.Months) {
		problems["best_months"] = "contains an unknown month"
	}
	if !models.IsChoice(zone.Safety, models.SafetyLevels) {
		problems["safety"] = "unknown safety level"
	}
	if !models.IsChoice(zone.Comfort, models.ComfortLevels) {
		problems["confort"] = "unknown comfort level"
	}
	if !models.IsChoice(zone.Cost, models.CostLevels) {
		problems["cost"] = "unknown cost level"
	}
	if !models.IsChoice(zone.MainWaveDirection, models.WaveDirections) {
		problems["main_wave_direction"] = "unknown wave direction"
	}
	return problems
}

// ListZonesLite runs the composed filter query for the lite listing.
//
// Country filters join countries; any condition-level filter joins conditions
// and therefore requires DISTINCT, because the one-to-many join multiplies
// zone rows. Images and the country are attached by bulk Preload, one extra
// query per relation regardless of row count.
func (s *SurfZoneService) ListZonesLite(f *ZoneFilters) ([]models.SurfZone, error) {
	qs := s.db.Model(&models.SurfZone{}).
		Preload("Country").
		Preload("ZoneImages", orderedZoneImages)

	if f.CountryCode != "" || f.CountrySlug != "" {
		qs = qs.Joins("JOIN countries ON countries.id = surf_zones.country_id")
	}
	if f.CountryID != "" {
		qs = qs.Where("surf_zones.country_id = ?", f.CountryID)
	}
	if f.CountryCode != "" {
		qs = qs.Where("countries.code = ?", f.CountryCode)
	}
	if f.CountrySlug != "" {
		qs = qs.Where("countries.slug = ?", f.CountrySlug)
	}
	if f.TravelerType != "" {
		qs = qs.Where("surf_zones.traveler_type @> ?", pq.StringArray{f.TravelerType})
	}
	if f.Safety != "" {
		qs = qs.Where("surf_zones.safety = ?", f.Safety)
	}
	if f.Comfort != "" {
		qs = qs.Where("surf_zones.confort = ?", f.Comfort)
	}
	if f.Cost != "" {
		qs = qs.Where("surf_zones.cost = ?", f.Cost)
	}
	if f.MainWaveDirection != "" {
		qs = qs.Where("surf_zones.main_wave_direction = ?", f.MainWaveDirection)
	}

	if f.HasConditionFilter() {
		qs = qs.Joins("JOIN conditions ON conditions.surfzone_id = surf_zones.id")
		if f.Month != "" {
			qs = qs.Where("conditions.month = ?", f.Month)
		}
		if f.SurfLevel != "" {
			qs = qs.Where("conditions.surf_level @> ?", pq.StringArray{f.SurfLevel})
		}
		if f.Crowd != "" {
			qs = qs.Where("conditions.crowd = ?", f.Crowd)
		}
		if f.SunnyDaysMin != nil {
			qs = qs.Where("conditions.sunny_days >= ?", *f.SunnyDaysMin)
		}
		if f.SunnyDaysMax != nil {
			qs = qs.Where("conditions.sunny_days <= ?", *f.SunnyDaysMax)
		}
		if f.RainDaysMin != nil {
			qs = qs.Where("conditions.rain_days >= ?", *f.RainDaysMin)
		}
		if f.RainDaysMax != nil {
			qs = qs.Where("conditions.rain_days <= ?", *f.RainDaysMax)
		}
		if f.WaterTempCMin != nil {
			qs = qs.Where("conditions.water_temp_c >= ?", *f.WaterTempCMin)
		}
		if f.WaterTempCMax != nil {
			qs = qs.Where("conditions.water_temp_c <= ?", *f.WaterTempCMax)
		}
		if f.SurfRatingMin != nil {
			qs = qs.Where("conditions.world_surf_rating >= ?", *f.SurfRatingMin)
		}
		if f.SwellSizeMeterMin != nil {
			qs = qs.Where("conditions.swell_size_meter >= ?", *f.SwellSizeMeterMin)
		}
		if f.SwellSizeMeterMax != nil {
			qs = qs.Where("conditions.swell_size_meter <= ?", *f.SwellSizeMeterMax)
		}
		qs = qs.Distinct("surf_zones.*")
	}

	var zones []models.SurfZone
	if err := qs.Order("surf_zones.name").Find(&zones).Error; err != nil {
		return nil, fmt.Errorf("filtering surf zones: %w", err)
	}
	return zones, nil
}

// GetZoneDetail loads one zone with everything the detail payload needs:
// country, ordered images, conditions, and spots with their own ordered
// images. Each relation is a single bulk query.
func (s *SurfZoneService) GetZoneDetail(id string) (*models.SurfZone, error) {
	var zone models.SurfZone
	err := s.db.
		Preload("Country").
		Preload("ZoneImages", orderedZoneImages).
		Preload("Conditions").
		Preload("SurfSpots", func(db *gorm.DB) *gorm.DB {
			return db.Order("surf_spots.name")
		}).
		Preload("SurfSpots.SpotImages", orderedSpotImages).
		First(&zone, "id = ?", id).Error
	if err != nil {
		return nil, translateDBError(err)
	}
	return &zone, nil
}

// AddZoneImage appends an image to a zone. The slug embeds a microsecond
// timestamp so back-to-back uploads stay unique.
func (s *SurfZoneService) AddZoneImage(zoneID string, image *models.SurfZoneImage) error {
	if image.Image == "" {
		return newValidationError("image", "required")
	}

	var zone models.SurfZone
	if err := s.db.First(&zone, "id = ?", zoneID).Error; err != nil {
		return translateDBError(err)
	}

	image.SurfZoneID = zone.ID
	if image.Slug == "" {
		image.Slug = utils.TimestampedSlug(zone.Name, time.Now())
	}
	if err := s.db.Create(image).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}

// ListZoneImages returns a zone's images in carousel order.
func (s *SurfZoneService) ListZoneImages(zoneID string) ([]models.SurfZoneImage, error) {
	var zone models.SurfZone
	if err := s.db.First(&zone, "id = ?", zoneID).Error; err != nil {
		return nil, translateDBError(err)
	}
	var images []models.SurfZoneImage
	if err := s.db.Where("surfzone_id = ?", zoneID).Order("created_at").Find(&images).Error; err != nil {
		return nil, fmt.Errorf("listing zone images: %w", err)
	}
	return images, nil
}
