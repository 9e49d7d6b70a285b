package author

import (
	"strings"

	"github.com/quotery/quotes-api/internal/database"
	"github.com/quotery/quotes-api/internal/models"
	"github.com/quotery/quotes-api/internal/moderation"
)

type ListFilters struct {
	Name      string
	Qualifier string
	ID        uint
}

func List(f ListFilters, statuses []models.Status) ([]models.Author, error) {
	q := database.DB.Model(&models.Author{}).
		Scopes(moderation.Scope("authors.status", statuses))

	if f.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Name)+"%")
	}
	if f.Qualifier != "" {
		q = q.Where("LOWER(qualifier) LIKE ?", "%"+strings.ToLower(f.Qualifier)+"%")
	}
	if f.ID != 0 {
		q = q.Where("id = ?", f.ID)
	}

	var authors []models.Author
	err := q.Find(&authors).Error
	return authors, err
}

func GetByID(id uint, statuses []models.Status) (*models.Author, error) {
	var a models.Author
	err := database.DB.
		Scopes(moderation.Scope("authors.status", statuses)).
		First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// NameExists drives the same-name collision check: a duplicate name is
// allowed only when disambiguated by a qualifier.
func NameExists(name string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Author{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func QuoteCount(authorID uint) (int64, error) {
	var count int64
	err := database.DB.Model(&models.Quote{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

func QuotesByAuthor(authorID uint, statuses []models.Status) ([]models.Quote, error) {
	var quotes []models.Quote
	err := database.DB.Model(&models.Quote{}).
		Scopes(moderation.Scope("quotes.status", statuses)).
		Where("author_id = ?", authorID).
		Preload("Categories").
		Find(&quotes).Error
	return quotes, err
}
