package repositories

import (
	"gorm.io/gorm"
	"brand-connector.backend/internal/infrastructure/models"
)

// AutoMigrate creates or updates the tables backing the repositories
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Brand{},
		&models.Influencer{},
	)
}
