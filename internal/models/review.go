package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review links a user to exactly one of surf zone or surf spot. The two
// composite unique indexes enforce at most one review per user per target;
// Postgres treats NULL as distinct, so a zone review never collides with a
// spot review by the same user.
type Review struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     string    `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_review_user_zone;uniqueIndex:idx_review_user_spot"`
	SurfZoneID *string   `json:"surf_zone" gorm:"type:uuid;index;column:surf_zone_id;uniqueIndex:idx_review_user_zone"`
	SurfSpotID *string   `json:"surf_spot" gorm:"type:uuid;index;column:surf_spot_id;uniqueIndex:idx_review_user_spot"`
	Rating     int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment    string    `json:"comment" gorm:"type:varchar(2000)"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	SurfZone *SurfZone `json:"surf_zone_details,omitempty" gorm:"foreignKey:SurfZoneID;references:ID"`
	SurfSpot *SurfSpot `json:"surf_spot_details,omitempty" gorm:"foreignKey:SurfSpotID;references:ID"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
