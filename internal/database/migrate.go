package database

import (
	"fmt"

	"github.com/spring-security-spring-cloud/auth-service/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Role{}, &models.User{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// SeedRoles inserts the role catalog rows if they do not exist yet.
// Seeding is idempotent so it runs unconditionally at startup.
func SeedRoles(db *gorm.DB) error {
	for _, name := range models.AllRoleNames() {
		role := models.Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", name, err)
		}
	}
	return nil
}
