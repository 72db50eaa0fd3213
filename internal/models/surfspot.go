package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"surfquest/server/internal/utils"
)

// SurfSpot is an individual break within a surf zone.
type SurfSpot struct {
	ID                 string         `json:"id" gorm:"type:uuid;primaryKey"`
	Name               string         `json:"name" gorm:"type:varchar(100);not null"`
	SurfZoneID         string         `json:"surfzone_id" gorm:"type:uuid;not null;index;column:surfzone_id"`
	Latitude           *float64       `json:"latitude"`
	Longitude          *float64       `json:"longitude"`
	BreakType          string         `json:"break_type" gorm:"type:varchar(20)"`
	WaveDirection      string         `json:"wave_direction" gorm:"type:varchar(20)"`
	BestWindDirection  string         `json:"best_wind_direction" gorm:"type:varchar(5)"`
	BestSwellDirection string         `json:"best_swell_direction" gorm:"type:varchar(5)"`
	BestSwellSizeFeet  *float64       `json:"best_swell_size_feet"`
	BestSwellSizeMeter *float64       `json:"best_swell_size_meter"`
	BestTide           pq.StringArray `json:"best_tide" gorm:"type:text[]"`
	SurfLevel          pq.StringArray `json:"surf_level" gorm:"type:text[]"`
	SurfHazards        pq.StringArray `json:"surf_hazards" gorm:"type:text[]"`
	BestMonths         pq.StringArray `json:"best_months" gorm:"type:text[]"`
	Description        string         `json:"description" gorm:"type:varchar(500)"`
	Slug               string         `json:"slug" gorm:"type:varchar(150);uniqueIndex"`

	SurfZone   *SurfZone       `json:"surfzone,omitempty" gorm:"foreignKey:SurfZoneID;references:ID"`
	SpotImages []SurfSpotImage `json:"spot_images,omitempty" gorm:"foreignKey:SurfSpotID;constraint:OnDelete:CASCADE"`
	Reviews    []Review        `json:"reviews,omitempty" gorm:"foreignKey:SurfSpotID;constraint:OnDelete:CASCADE"`
}

func (SurfSpot) TableName() string {
	return "surf_spots"
}

func (s *SurfSpot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Slug == "" {
		s.Slug = utils.Slugify(s.Name)
	}
	return nil
}

// ValidateRanges checks the numeric bounds on swell sizes.
func (s *SurfSpot) ValidateRanges() map[string]string {
	problems := map[string]string{}
	if s.BestSwellSizeFeet != nil && (*s.BestSwellSizeFeet < 0 || *s.BestSwellSizeFeet > 100) {
		problems["best_swell_size_feet"] = "must be between 0 and 100"
	}
	if s.BestSwellSizeMeter != nil && (*s.BestSwellSizeMeter < 0 || *s.BestSwellSizeMeter > 100) {
		problems["best_swell_size_meter"] = "must be between 0 and 100"
	}
	return problems
}
