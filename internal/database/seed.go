package database

import (
	"errors"
	"log"

	"github.com/quotery/quotes-api/internal/config"
	"github.com/quotery/quotes-api/internal/models"
	"github.com/quotery/quotes-api/internal/utils"
	"gorm.io/gorm"
)

// SeedAdmin creates the initial ADMIN account from config. Skipped when
// credentials are not configured or the username is already taken.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil
	}

	var existing models.User
	err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: cfg.AdminUsername,
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Seeded admin user %q (id=%d)", admin.Username, admin.ID)
	return nil
}
