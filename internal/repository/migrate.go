package repository

import "gorm.io/gorm"

// AutoMigrate creates the schema for every table the repositories own.
// Postgres deployments additionally apply migrations/0001_no_overlap.sql
// for the exclusion constraint, which gorm cannot express.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&storeModel{},
		&serviceModel{},
		&customerModel{},
		&reviewModel{},
		&reservationModel{},
	)
}
