package database

import (
	"fmt"

	"github.com/tnmai/schoolhub-api/internal/models"
	"gorm.io/gorm"
)

// Migrate runs schema auto-migration for all persisted models.
// Audit and login-history tables carry their FK actions (SET NULL / CASCADE)
// in the model tags, so they must migrate after users.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Teacher{},
		&models.Class{},
		&models.Student{},
		&models.Subject{},
		&models.Score{},
		&models.TeachingAssignment{},
		&models.AuditLog{},
		&models.LoginHistory{},
	); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}
