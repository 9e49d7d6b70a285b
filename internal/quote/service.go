package quote

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/quotery/quotes-api/internal/database"
	"github.com/quotery/quotes-api/internal/models"
	"github.com/quotery/quotes-api/internal/moderation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListFilters are the explicit query filters composed with the caller's
// visibility scope. Zero values mean "not filtered".
type ListFilters struct {
	Search        string
	ID            uint
	Category      string
	CategoryID    uint
	Language      string
	Author        string
	AuthorID      uint
	SubmittedBy   string
	SubmittedByID uint
}

// activeDiscriminators counts the filters that narrow a random draw.
// Language deliberately doesn't count; it partitions rather than narrows.
func (f ListFilters) activeDiscriminators() int {
	n := 0
	if f.Search != "" {
		n++
	}
	if f.Category != "" {
		n++
	}
	if f.CategoryID != 0 {
		n++
	}
	if f.Author != "" {
		n++
	}
	if f.AuthorID != 0 {
		n++
	}
	return n
}

func applyFilters(q *gorm.DB, f ListFilters) *gorm.DB {
	if f.Search != "" {
		q = q.Where("LOWER(quotes.content) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}
	if f.ID != 0 {
		q = q.Where("quotes.id = ?", f.ID)
	}
	if f.Category != "" {
		q = q.Joins("JOIN quote_categories qc_name ON qc_name.quote_id = quotes.id").
			Joins("JOIN categories c_name ON c_name.id = qc_name.category_id").
			Where("LOWER(c_name.name) = ?", strings.ToLower(f.Category))
	}
	if f.CategoryID != 0 {
		q = q.Joins("JOIN quote_categories qc_id ON qc_id.quote_id = quotes.id").
			Where("qc_id.category_id = ?", f.CategoryID)
	}
	if f.Language != "" {
		q = q.Where("LOWER(quotes.language) LIKE ?", "%"+strings.ToLower(f.Language)+"%")
	}
	if f.Author != "" {
		q = q.Joins("JOIN authors ON authors.id = quotes.author_id").
			Where("LOWER(authors.name) LIKE ?", "%"+strings.ToLower(f.Author)+"%")
	}
	if f.AuthorID != 0 {
		q = q.Where("quotes.author_id = ?", f.AuthorID)
	}
	if f.SubmittedBy != "" {
		q = q.Joins("JOIN users ON users.id = quotes.submitted_by_id").
			Where("LOWER(users.username) LIKE ?", "%"+strings.ToLower(f.SubmittedBy)+"%")
	}
	if f.SubmittedByID != 0 {
		q = q.Where("quotes.submitted_by_id = ?", f.SubmittedByID)
	}
	return q
}

// baseQuery carries no select of its own so it can feed both counts and
// row fetches; row fetches add Select("quotes.*") to drop joined columns.
func baseQuery(f ListFilters, statuses []models.Status) *gorm.DB {
	q := database.DB.Model(&models.Quote{}).
		Scopes(moderation.Scope("quotes.status", statuses))
	return applyFilters(q, f)
}

func List(f ListFilters, statuses []models.Status) ([]models.Quote, error) {
	var quotes []models.Quote
	err := baseQuery(f, statuses).
		Select("quotes.*").
		Preload("Author").
		Preload("Categories").
		Preload("SubmittedBy").
		Find(&quotes).Error
	return quotes, err
}

// Random draws a uniformly random quote from the APPROVED rows matching
// the filters. Returns nil without error when nothing matches.
func Random(f ListFilters) (*models.Quote, error) {
	approved := []models.Status{models.StatusApproved}

	var count int64
	if err := baseQuery(f, approved).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	var quotes []models.Quote
	err := baseQuery(f, approved).
		Select("quotes.*").
		Preload("Author").
		Preload("Categories").
		Preload("SubmittedBy").
		Offset(rand.Intn(int(count))).
		Limit(1).
		Find(&quotes).Error
	if err != nil || len(quotes) == 0 {
		return nil, err
	}
	return &quotes[0], nil
}

func GetByID(id uint, statuses []models.Status) (*models.Quote, error) {
	var quote models.Quote
	err := database.DB.
		Scopes(moderation.Scope("quotes.status", statuses)).
		Preload("Author").
		Preload("Categories").
		Preload("SubmittedBy").
		First(&quote, id).Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// ContentExists checks quote-text uniqueness before insert. The unique
// index remains the source of truth; this is the friendly error path.
func ContentExists(content string, excludeID uint) (bool, error) {
	q := database.DB.Model(&models.Quote{}).Where("content = ?", content)
	if excludeID != 0 {
		q = q.Where("id != ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ResolveCategories loads the referenced categories and reports how many
// ids did not resolve.
func ResolveCategories(ids []uint) ([]models.Category, int, error) {
	unique := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	var categories []models.Category
	if err := database.DB.Where("id IN ?", unique).Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, len(unique) - len(categories), nil
}

func AuthorExists(id uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Author{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func Create(content, language string, authorID uint, categories []models.Category, submittedByID uint, status models.Status) (*models.Quote, error) {
	q := models.Quote{
		Content:       content,
		Language:      language,
		AuthorID:      authorID,
		Categories:    categories,
		SubmittedByID: &submittedByID,
		Status:        status,
	}

	if err := database.DB.Create(&q).Error; err != nil {
		return nil, err
	}

	return GetByID(q.ID, nil)
}

func Update(q *models.Quote, categories []models.Category) (*models.Quote, error) {
	if categories != nil {
		if err := database.DB.Model(q).Association("Categories").Replace(categories); err != nil {
			return nil, err
		}
	}

	if err := database.DB.Omit(clause.Associations).Save(q).Error; err != nil {
		return nil, err
	}

	return GetByID(q.ID, nil)
}

func Delete(q *models.Quote) error {
	err := database.DB.Select("Categories").Delete(q).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
