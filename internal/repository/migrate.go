package repository

import "gorm.io/gorm"

// Migrate creates the schema for all aggregates owned by this package.
// The assignments unique index on request_id comes with it; that index
// is what makes double assignment impossible.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&vendorModel{},
		&designModel{},
		&requestModel{},
		&requestPhotoModel{},
		&assignmentModel{},
		&assignmentImageModel{},
	)
}
