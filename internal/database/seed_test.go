package database_test

import (
	"testing"

	"github.com/quotery/quotes-api/internal/config"
	"github.com/quotery/quotes-api/internal/database"
	"github.com/quotery/quotes-api/internal/models"
	"github.com/quotery/quotes-api/internal/utils"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func seedDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func TestSeedAdminCreatesAccount(t *testing.T) {
	db := seedDB(t)
	cfg := &config.Config{AdminUsername: "root", AdminPassword: "bootstrap-secret"}

	assert.NoError(t, database.SeedAdmin(db, cfg))

	var admin models.User
	assert.NoError(t, db.Where("username = ?", "root").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, utils.CheckPasswordHash("bootstrap-secret", admin.Password))
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	db := seedDB(t)
	cfg := &config.Config{AdminUsername: "root", AdminPassword: "bootstrap-secret"}

	assert.NoError(t, database.SeedAdmin(db, cfg))
	assert.NoError(t, database.SeedAdmin(db, cfg))

	var count int64
	db.Model(&models.User{}).Where("username = ?", "root").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSeedAdminSkipsWithoutCredentials(t *testing.T) {
	db := seedDB(t)

	assert.NoError(t, database.SeedAdmin(db, &config.Config{}))

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
