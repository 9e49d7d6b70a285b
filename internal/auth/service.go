package auth

import (
	"errors"
	"fmt"

	"github.com/quotery/quotes-api/internal/database"
	"github.com/quotery/quotes-api/internal/models"
	"github.com/quotery/quotes-api/internal/utils"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

func RegisterUser(username, password string) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := models.User{
		Username: username,
		Password: hashedPassword,
		Role:     models.RoleUser,
	}

	if err := database.DB.Create(&u).Error; err != nil {
		return nil, err
	}

	return &u, nil
}

// LoginUser verifies credentials and issues a signed token. Soft-deleted
// accounts fail the same way unknown usernames do.
func LoginUser(username, password string) (string, error) {
	var user models.User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if user.IsDeleted || !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(user.ID, user.Username, user.Role)
}
