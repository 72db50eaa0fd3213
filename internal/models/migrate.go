package models

import "gorm.io/gorm"

// AutoMigrate creates or updates every table. Parents first so the FK
// constraints resolve.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Continent{},
		&Country{},
		&SurfZone{},
		&SurfSpot{},
		&Condition{},
		&SurfZoneImage{},
		&SurfSpotImage{},
		&User{},
		&Review{},
	)
}
