package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"surfquest/server/internal/utils"
)

// User is a surf traveler profile. Password holds the bcrypt hash and is
// never serialized.
type User struct {
	ID             string         `json:"id" gorm:"type:uuid;primaryKey"`
	Username       string         `json:"username" gorm:"type:varchar(150);not null;uniqueIndex"`
	Password       string         `json:"-" gorm:"type:varchar(255);not null"`
	Email          *string        `json:"email" gorm:"type:varchar(255);uniqueIndex"` // optional, unique when present
	FirstName      string         `json:"first_name" gorm:"type:varchar(150)"`
	LastName       string         `json:"last_name" gorm:"type:varchar(150)"`
	Country        string         `json:"country" gorm:"type:varchar(100)"`
	State          string         `json:"state" gorm:"type:varchar(100)"`
	City           string         `json:"city" gorm:"type:varchar(100)"`
	ZipCode        string         `json:"zip_code" gorm:"type:varchar(10)"`
	Latitude       *float64       `json:"latitude"`
	Longitude      *float64       `json:"longitude"`
	NearestAirport string         `json:"nearest_airport" gorm:"type:varchar(100)"`
	Avatar         string         `json:"avatar" gorm:"type:varchar(255)"` // path under the media root
	Bio            string         `json:"bio" gorm:"type:varchar(500)"`
	Preferences    datatypes.JSON `json:"preferences"` // free-form surfing preferences
	Budget         *float64       `json:"budget" gorm:"type:decimal(10,2)"`
	Slug           string         `json:"slug" gorm:"type:varchar(150);uniqueIndex"`
	CreatedAt      time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `json:"updated_at" gorm:"autoUpdateTime"`

	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns the UUID and derives the slug from the username.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Slug == "" {
		u.Slug = utils.Slugify(u.Username)
	}
	return nil
}
