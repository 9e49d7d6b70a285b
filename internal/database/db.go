package database

import (
	"fmt"
	"log"

	"github.com/quotery/quotes-api/internal/config"
	"github.com/quotery/quotes-api/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	DB = db

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := models.EnsureEnum(db); err != nil {
		return fmt.Errorf("failed to create moderation_status enum: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Author{},
		&models.Category{},
		&models.Quote{},
	)
	if err != nil {
		return err
	}
	log.Println("Database migrated successfully!")
	return nil
}
