package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"surfquest/server/internal/utils"
)

// Country belongs to a continent, keyed by ISO 3166-1 alpha-3 code.
type Country struct {
	ID          string `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_country_name_continent"`
	Code        string `json:"code" gorm:"type:varchar(3);not null;unique"` // e.g. "FRA"
	ContinentID string `json:"continent_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_country_name_continent"`
	Slug        string `json:"slug" gorm:"type:varchar(150);uniqueIndex"`

	Continent *Continent `json:"continent,omitempty" gorm:"foreignKey:ContinentID;references:ID"`
	SurfZones []SurfZone `json:"surf_zones,omitempty" gorm:"foreignKey:CountryID;constraint:OnDelete:RESTRICT"`
}

func (Country) TableName() string {
	return "countries"
}

func (c *Country) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Slug == "" {
		c.Slug = utils.Slugify(c.Name)
	}
	return nil
}
