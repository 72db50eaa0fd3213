package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SurfZoneImage is one of an ordered sequence of images attached to a zone.
// Ordering is by created_at ascending; the slug embeds a high-resolution
// timestamp so repeated uploads in the same second stay unique (the slug is
// assigned by the service, which knows the parent's name).
type SurfZoneImage struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	SurfZoneID  string    `json:"surfzone_id" gorm:"type:uuid;not null;index;column:surfzone_id"`
	Image       string    `json:"image" gorm:"type:varchar(255);not null"` // path under the media root
	Description string    `json:"description" gorm:"type:text"`
	Slug        string    `json:"slug" gorm:"type:varchar(150);uniqueIndex"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	SurfZone *SurfZone `json:"surfzone,omitempty" gorm:"foreignKey:SurfZoneID;references:ID"`
}

func (SurfZoneImage) TableName() string {
	return "surf_zone_images"
}

func (i *SurfZoneImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}

// SurfSpotImage mirrors SurfZoneImage for spots.
type SurfSpotImage struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	SurfSpotID  string    `json:"surfspot_id" gorm:"type:uuid;not null;index;column:surfspot_id"`
	Image       string    `json:"image" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Slug        string    `json:"slug" gorm:"type:varchar(150);uniqueIndex"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	SurfSpot *SurfSpot `json:"surfspot,omitempty" gorm:"foreignKey:SurfSpotID;references:ID"`
}

func (SurfSpotImage) TableName() string {
	return "surf_spot_images"
}

func (i *SurfSpotImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
