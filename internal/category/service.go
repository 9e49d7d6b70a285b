package category

import (
	"strings"

	"github.com/quotery/quotes-api/internal/database"
	"github.com/quotery/quotes-api/internal/models"
	"github.com/quotery/quotes-api/internal/moderation"
)

type ListFilters struct {
	Name string
	ID   uint
}

func List(f ListFilters, statuses []models.Status) ([]models.Category, error) {
	q := database.DB.Model(&models.Category{}).
		Scopes(moderation.Scope("categories.status", statuses))

	if f.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Name)+"%")
	}
	if f.ID != 0 {
		q = q.Where("id = ?", f.ID)
	}

	var categories []models.Category
	err := q.Find(&categories).Error
	return categories, err
}

func GetByID(id uint, statuses []models.Status) (*models.Category, error) {
	var cat models.Category
	err := database.DB.
		Scopes(moderation.Scope("categories.status", statuses)).
		First(&cat, id).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func NameExists(name string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func QuoteCount(categoryID uint) (int64, error) {
	var count int64
	err := database.DB.Table("quote_categories").Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func QuotesByCategory(categoryID uint, statuses []models.Status) ([]models.Quote, error) {
	var quotes []models.Quote
	err := database.DB.Model(&models.Quote{}).
		Scopes(moderation.Scope("quotes.status", statuses)).
		Joins("JOIN quote_categories qc ON qc.quote_id = quotes.id").
		Where("qc.category_id = ?", categoryID).
		Select("quotes.*").
		Preload("Author").
		Find(&quotes).Error
	return quotes, err
}
