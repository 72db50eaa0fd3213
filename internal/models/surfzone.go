package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"surfquest/server/internal/utils"
)

// SurfZone is a named surf destination inside a country: travel metadata plus
// the spots, monthly conditions, images and reviews attached to it.
type SurfZone struct {
	ID                string         `json:"id" gorm:"type:uuid;primaryKey"`
	Name              string         `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_surf_zone_name_country"`
	CountryID         string         `json:"country_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_surf_zone_name_country"`
	Latitude          *float64       `json:"latitude"`
	Longitude         *float64       `json:"longitude"`
	NearestCity       string         `json:"nearest_city" gorm:"type:varchar(50)"`
	NearestAirport    string         `json:"nearest_airport" gorm:"type:varchar(50)"`
	AirportLatitude   *float64       `json:"airport_latitude"`
	AirportLongitude  *float64       `json:"airport_longitude"`
	TravelerType      pq.StringArray `json:"traveler_type" gorm:"type:text[]"`
	Safety            string         `json:"safety" gorm:"type:varchar(100)"`
	HealthHazards     pq.StringArray `json:"health_hazards" gorm:"type:text[]"`
	SurfHazards       pq.StringArray `json:"surf_hazards" gorm:"type:text[]"`
	BestMonths        pq.StringArray `json:"best_months" gorm:"type:text[]"`
	Comfort           string         `json:"confort" gorm:"type:varchar(20);column:confort"` // historical column/field name
	Cost              string         `json:"cost" gorm:"type:varchar(10)"`
	Language          string         `json:"language" gorm:"type:varchar(100)"`
	Currency          string         `json:"currency" gorm:"type:varchar(100)"`
	Religion          string         `json:"religion" gorm:"type:varchar(100)"`
	Surroundings      string         `json:"surroundings" gorm:"type:varchar(100)"`
	Description       string         `json:"description" gorm:"type:text"`
	MainWaveDirection string         `json:"main_wave_direction" gorm:"type:varchar(20)"`
	Slug              string         `json:"slug" gorm:"type:varchar(150);uniqueIndex"`

	Country    *Country        `json:"country,omitempty" gorm:"foreignKey:CountryID;references:ID"`
	SurfSpots  []SurfSpot      `json:"surf_spots,omitempty" gorm:"foreignKey:SurfZoneID;constraint:OnDelete:RESTRICT"`
	Conditions []Condition     `json:"conditions,omitempty" gorm:"foreignKey:SurfZoneID;constraint:OnDelete:CASCADE"`
	ZoneImages []SurfZoneImage `json:"zone_images,omitempty" gorm:"foreignKey:SurfZoneID;constraint:OnDelete:CASCADE"`
	Reviews    []Review        `json:"reviews,omitempty" gorm:"foreignKey:SurfZoneID;constraint:OnDelete:CASCADE"`
}

func (SurfZone) TableName() string {
	return "surf_zones"
}

func (z *SurfZone) BeforeCreate(tx *gorm.DB) error {
	if z.ID == "" {
		z.ID = uuid.New().String()
	}
	if z.Slug == "" {
		z.Slug = utils.Slugify(z.Name)
	}
	return nil
}
