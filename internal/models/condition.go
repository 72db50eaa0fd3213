package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"surfquest/server/internal/utils"
)

// Condition holds the monthly climate and surf metrics for a zone.
// One row per (surf zone, month); every metric is independently optional.
type Condition struct {
	ID               string         `json:"id" gorm:"type:uuid;primaryKey"`
	SurfZoneID       string         `json:"surfzone_id" gorm:"type:uuid;not null;index;column:surfzone_id;uniqueIndex:idx_condition_zone_month"`
	Month            string         `json:"month" gorm:"type:varchar(12);not null;uniqueIndex:idx_condition_zone_month"`
	WaterTempC       *int           `json:"water_temp_c"`
	WaterTempF       *int           `json:"water_temp_f"`
	SwellSizeFt      *float64       `json:"swell_size_ft"`
	SwellSizeMeter   *float64       `json:"swell_size_meter"`
	SwellConsistency *int           `json:"swell_consistency"` // % of days with surfable swell
	SwellDirection   string         `json:"swell_direction" gorm:"type:varchar(10)"`
	SurfLevel        pq.StringArray `json:"surf_level" gorm:"type:text[]"`
	Crowd            string         `json:"crowd" gorm:"type:varchar(10)"`
	LocalSurfRating  int            `json:"local_surf_rating" gorm:"default:3;check:local_surf_rating >= 1 AND local_surf_rating <= 5"`
	WorldSurfRating  int            `json:"world_surf_rating" gorm:"default:3;check:world_surf_rating >= 1 AND world_surf_rating <= 5"`
	MinAirTempC      *int           `json:"min_air_temp_c"`
	MinAirTempF      *int           `json:"min_air_temp_f"`
	MaxAirTempC      *int           `json:"max_air_temp_c"`
	MaxAirTempF      *int           `json:"max_air_temp_f"`
	RainQuantity     *int           `json:"rain_quantity"` // total mm for the month
	RainDays         *int           `json:"rain_days"`
	SunnyDays        *int           `json:"sunny_days"`
	WindForce        *int           `json:"wind_force"`
	WindDirection    string         `json:"wind_direction" gorm:"type:varchar(10)"`
	WindConsistency  *int           `json:"wind_consistency"` // % of days with consistent wind
	Slug             string         `json:"slug" gorm:"type:varchar(150);uniqueIndex"`

	SurfZone *SurfZone `json:"surfzone,omitempty" gorm:"foreignKey:SurfZoneID;references:ID"`
}

func (Condition) TableName() string {
	return "conditions"
}

func (c *Condition) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// SetSlug derives the slug from the owning zone's name and the month.
// Called by the service once the zone has been loaded; never regenerates.
func (c *Condition) SetSlug(zoneName string) {
	if c.Slug == "" {
		c.Slug = utils.Slugify(fmt.Sprintf("%s-%s", zoneName, c.Month))
	}
}

func intRange(problems map[string]string, field string, v *int, min, max int) {
	if v != nil && (*v < min || *v > max) {
		problems[field] = fmt.Sprintf("must be between %d and %d", min, max)
	}
}

// ValidateRanges checks every bounded metric and returns per-field messages.
// Celsius and Fahrenheit twins are validated independently and never
// cross-checked against each other.
func (c *Condition) ValidateRanges() map[string]string {
	problems := map[string]string{}

	if !IsChoice(c.Month, Months) || c.Month == "" {
		problems["month"] = "must be a month name, e.g. \"July\""
	}
	intRange(problems, "water_temp_c", c.WaterTempC, 0, 30)
	intRange(problems, "water_temp_f", c.WaterTempF, 32, 86)
	intRange(problems, "min_air_temp_c", c.MinAirTempC, -100, 100)
	intRange(problems, "min_air_temp_f", c.MinAirTempF, -148, 212)
	intRange(problems, "max_air_temp_c", c.MaxAirTempC, 0, 100)
	intRange(problems, "max_air_temp_f", c.MaxAirTempF, 32, 212)
	intRange(problems, "wind_force", c.WindForce, 1, 5)
	if c.SwellSizeFt != nil && (*c.SwellSizeFt < 0 || *c.SwellSizeFt > 100) {
		problems["swell_size_ft"] = "must be between 0 and 100"
	}
	if c.SwellSizeMeter != nil && (*c.SwellSizeMeter < 0 || *c.SwellSizeMeter > 30) {
		problems["swell_size_meter"] = "must be between 0 and 30"
	}
	if c.LocalSurfRating != 0 && (c.LocalSurfRating < 1 || c.LocalSurfRating > 5) {
		problems["local_surf_rating"] = "must be between 1 and 5"
	}
	if c.WorldSurfRating != 0 && (c.WorldSurfRating < 1 || c.WorldSurfRating > 5) {
		problems["world_surf_rating"] = "must be between 1 and 5"
	}
	if !AreChoices(c.SurfLevel, SurfLevels) {
		problems["surf_level"] = "contains an unknown surf level"
	}
	if !IsChoice(c.Crowd, CrowdLevels) {
		problems["crowd"] = "unknown crowd level"
	}
	if !IsChoice(c.SwellDirection, WindDirections) {
		problems["swell_direction"] = "unknown direction"
	}
	if !IsChoice(c.WindDirection, WindDirections) {
		problems["wind_direction"] = "unknown direction"
	}
	return problems
}
