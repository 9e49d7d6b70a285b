package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/quotery/quotes-api/internal/database"
	"github.com/quotery/quotes-api/internal/models"
	"github.com/quotery/quotes-api/internal/moderation"
)

// View is the externally visible shape of a user row. Role is only
// populated for the owner or an admin caller.
type View struct {
	ID        uint            `json:"id"`
	Username  string          `json:"username"`
	Role      models.UserRole `json:"role,omitempty"`
	IsDeleted bool            `json:"isDeleted"`
	CreatedAt time.Time       `json:"createdAt"`
}

func toView(u *models.User, includeRole bool) View {
	v := View{
		ID:        u.ID,
		Username:  u.Username,
		IsDeleted: u.IsDeleted,
		CreatedAt: u.CreatedAt,
	}
	if includeRole {
		v.Role = u.Role
	}
	return v
}

type ListFilters struct {
	Username string
	ID       uint
	Role     *models.UserRole
}

func List(f ListFilters) ([]models.User, error) {
	q := database.DB.Model(&models.User{})

	if f.Username != "" {
		q = q.Where("LOWER(username) LIKE ?", "%"+strings.ToLower(f.Username)+"%")
	}
	if f.ID != 0 {
		q = q.Where("id = ?", f.ID)
	}
	if f.Role != nil {
		q = q.Where("role = ?", *f.Role)
	}

	var users []models.User
	err := q.Find(&users).Error
	return users, err
}

func GetByID(id uint) (*models.User, error) {
	var u models.User
	if err := database.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func UsernameExists(username string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func QuotesByUser(userID uint, statuses []models.Status) ([]models.Quote, error) {
	var quotes []models.Quote
	err := database.DB.Model(&models.Quote{}).
		Scopes(moderation.Scope("quotes.status", statuses)).
		Where("submitted_by_id = ?", userID).
		Preload("Author").
		Preload("Categories").
		Find(&quotes).Error
	return quotes, err
}

// SoftDelete marks the account deleted and anonymizes the username; the
// row stays so submitted quotes keep their reference.
func SoftDelete(u *models.User) error {
	u.IsDeleted = true
	u.Username = fmt.Sprintf("deleteduser%d", u.ID)
	return database.DB.Save(u).Error
}
