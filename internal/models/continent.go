package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"surfquest/server/internal/utils"
)

// Continent is the top of the geography chain, keyed by ISO 3166-1 alpha-2 code.
type Continent struct {
	ID   string `json:"id" gorm:"type:uuid;primaryKey"`
	Name string `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_continent_name_code"`
	Code string `json:"code" gorm:"type:varchar(2);not null;unique;uniqueIndex:idx_continent_name_code"` // e.g. "EU"
	Slug string `json:"slug" gorm:"type:varchar(150);uniqueIndex"`

	Countries []Country `json:"countries,omitempty" gorm:"foreignKey:ContinentID;constraint:OnDelete:RESTRICT"`
}

func (Continent) TableName() string {
	return "continents"
}

// BeforeCreate assigns the UUID and derives the slug from the name.
// An already-populated slug is never regenerated.
func (c *Continent) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Slug == "" {
		c.Slug = utils.Slugify(c.Name)
	}
	return nil
}
