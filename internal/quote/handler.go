package quote

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/quotery/quotes-api/internal/auth"
	"github.com/quotery/quotes-api/internal/config"
	"github.com/quotery/quotes-api/internal/models"
	"github.com/quotery/quotes-api/internal/moderation"
	"github.com/quotery/quotes-api/internal/response"
	"github.com/quotery/quotes-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type quoteRequest struct {
	Content       interface{} `json:"content"`
	AuthorID      interface{} `json:"authorId"`
	CategoriesIDs interface{} `json:"categoriesIds"`
	Language      interface{} `json:"language"`
	Status        interface{} `json:"status"`
}

// toUint accepts only positive integral JSON numbers.
func toUint(v interface{}) (uint, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || f <= 0 {
		return 0, false
	}
	return uint(f), true
}

func toUintSlice(v interface{}) ([]uint, bool) {
	arr, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	ids := make([]uint, 0, len(arr))
	for _, item := range arr {
		id, ok := toUint(item)
		if !ok {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

func normalizeContent(raw string) string {
	return utils.Capitalize(strings.TrimSpace(utils.SanitizeText(raw)))
}

func parseListFilters(c *fiber.Ctx) (ListFilters, error) {
	f := ListFilters{
		Search:      c.Query("search"),
		Category:    c.Query("category"),
		Language:    c.Query("language"),
		Author:      c.Query("author"),
		SubmittedBy: c.Query("submittedBy"),
	}

	if raw := c.Query("id"); raw != "" {
		id, err := utils.ParseID(raw)
		if err != nil {
			return f, errors.New("Invalid ID")
		}
		f.ID = id
	}
	if raw := c.Query("categoryId"); raw != "" {
		id, err := utils.ParseID(raw)
		if err != nil {
			return f, errors.New("Invalid category Id")
		}
		f.CategoryID = id
	}
	if raw := c.Query("authorId"); raw != "" {
		id, err := utils.ParseID(raw)
		if err != nil {
			return f, errors.New("Invalid author ID")
		}
		f.AuthorID = id
	}
	if raw := c.Query("submittedById"); raw != "" {
		id, err := utils.ParseID(raw)
		if err != nil {
			return f, errors.New("Invalid user ID")
		}
		f.SubmittedByID = id
	}

	return f, nil
}

func ListQuotesHandler(c *fiber.Ctx) error {
	ident := auth.CurrentIdentity(c)

	requested, err := moderation.RequestedStatus(c.Query("status"))
	if err != nil {
		return response.BadRequest(c, "Invalid status")
	}

	f, err := parseListFilters(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	quotes, err := List(f, moderation.ListVisibility(ident.IsAdmin(), requested))
	if err != nil {
		return response.InternalError(c, "Failed to fetch quotes")
	}

	return response.Success(c, quotes, "")
}

func RandomQuoteHandler(c *fiber.Ctx) error {
	f, err := parseListFilters(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	f.ID = 0
	f.SubmittedBy = ""
	f.SubmittedByID = 0

	// Narrowing a random draw with several filters at once rarely does
	// what the caller expects; warn but serve the request.
	message := ""
	if f.activeDiscriminators() > 1 {
		message = "Warning: you're filtering multiple parameters in a random request"
	}

	q, err := Random(f)
	if err != nil {
		return response.InternalError(c, "Failed to fetch a random quote")
	}
	if q == nil {
		return response.Success(c, nil, message)
	}

	return response.Success(c, q, message)
}

func GetQuoteHandler(c *fiber.Ctx) error {
	ident := auth.CurrentIdentity(c)

	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	q, err := GetByID(id, moderation.FetchVisibility(ident.IsAdmin()))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Quote")
		}
		return response.InternalError(c, "Failed to fetch quote")
	}

	return response.Success(c, q, "")
}

func CreateQuoteHandler(c *fiber.Ctx) error {
	ident := auth.CurrentIdentity(c)

	var body quoteRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if body.Content == nil || body.AuthorID == nil || body.CategoriesIDs == nil || body.Language == nil {
		return response.BadRequest(c, "Missing required fields.")
	}

	if err := utils.ValidateFields([]utils.Field{
		{Value: body.Content, Label: "Content"},
		{Value: body.Language, Label: "Language"},
	}); err != nil {
		return response.BadRequest(c, err.Error())
	}

	authorID, ok := toUint(body.AuthorID)
	if !ok {
		return response.BadRequest(c, "Author Id it's not a valid integer")
	}

	categoryIDs, ok := toUintSlice(body.CategoriesIDs)
	if !ok {
		return response.BadRequest(c, "categories it's not a list of integers")
	}
	if len(categoryIDs) == 0 {
		return response.BadRequest(c, "At least one category is required")
	}

	content := normalizeContent(body.Content.(string))

	exists, err := ContentExists(content, 0)
	if err != nil {
		return response.InternalError(c, "Failed to check quote uniqueness")
	}
	if exists {
		return response.Conflict(c, "Quote text already exists.")
	}

	authorOK, err := AuthorExists(authorID)
	if err != nil {
		return response.InternalError(c, "Failed to look up author")
	}
	if !authorOK {
		return response.BadRequest(c, "Author Id not found")
	}

	categories, missing, err := ResolveCategories(categoryIDs)
	if err != nil {
		return response.InternalError(c, "Failed to look up categories")
	}
	if missing > 0 {
		return response.BadRequest(c, missingCategoriesMessage(missing))
	}

	status := moderation.InitialStatus(config.AutoApproveEnabled())

	q, err := Create(content, body.Language.(string), authorID, categories, ident.ID, status)
	if err != nil {
		return response.InternalError(c, "Failed to create quote")
	}

	return response.Created(c, q, "New quote added")
}

func UpdateQuoteHandler(c *fiber.Ctx) error {
	ident := auth.CurrentIdentity(c)

	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var body quoteRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	q, err := GetByID(id, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Quote")
		}
		return response.InternalError(c, "Failed to fetch quote")
	}

	if !ident.IsAdmin() && (q.SubmittedByID == nil || *q.SubmittedByID != ident.ID) {
		return response.Forbidden(c, "Forbidden")
	}

	if !ident.IsAdmin() && body.Status != nil {
		return response.Forbidden(c, "You are not authorized to update the status of a quote.")
	}

	if err := utils.ValidateFields([]utils.Field{
		{Value: body.Content, Label: "Content"},
		{Value: body.Language, Label: "Language"},
	}); err != nil {
		return response.BadRequest(c, err.Error())
	}

	if body.Status != nil {
		raw, ok := body.Status.(string)
		if !ok {
			return response.BadRequest(c, "Invalid status")
		}
		status, valid := models.ParseStatus(raw)
		if !valid {
			return response.BadRequest(c, "Invalid status")
		}
		q.Status = status
	}

	if body.Content != nil {
		content := normalizeContent(body.Content.(string))

		exists, err := ContentExists(content, q.ID)
		if err != nil {
			return response.InternalError(c, "Failed to check quote uniqueness")
		}
		if exists {
			return response.Conflict(c, "Quote text already exists.")
		}
		q.Content = content
	}

	if body.Language != nil {
		q.Language = body.Language.(string)
	}

	if body.AuthorID != nil {
		authorID, ok := toUint(body.AuthorID)
		if !ok {
			return response.BadRequest(c, "Author Id it's not a valid integer")
		}
		authorOK, err := AuthorExists(authorID)
		if err != nil {
			return response.InternalError(c, "Failed to look up author")
		}
		if !authorOK {
			return response.BadRequest(c, "Author Id not found")
		}
		q.AuthorID = authorID
		q.Author = nil
	}

	var categories []models.Category
	if body.CategoriesIDs != nil {
		categoryIDs, ok := toUintSlice(body.CategoriesIDs)
		if !ok {
			return response.BadRequest(c, "categories it's not a list of integers")
		}
		if len(categoryIDs) == 0 {
			return response.BadRequest(c, "At least one category is required")
		}

		var missing int
		categories, missing, err = ResolveCategories(categoryIDs)
		if err != nil {
			return response.InternalError(c, "Failed to look up categories")
		}
		if missing > 0 {
			return response.BadRequest(c, missingCategoriesMessage(missing))
		}
	}

	updated, err := Update(q, categories)
	if err != nil {
		return response.InternalError(c, "Failed to update quote")
	}

	return response.Success(c, updated, "Quote updated")
}

func DeleteQuoteHandler(c *fiber.Ctx) error {
	ident := auth.CurrentIdentity(c)

	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	q, err := GetByID(id, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Quote")
		}
		return response.InternalError(c, "Failed to fetch quote")
	}

	if !ident.IsAdmin() && (q.SubmittedByID == nil || *q.SubmittedByID != ident.ID) {
		return response.Forbidden(c, "Forbidden")
	}

	if err := Delete(q); err != nil {
		return response.InternalError(c, "Failed to delete quote")
	}

	return response.Success(c, q, "Quote deleted")
}

func missingCategoriesMessage(missing int) string {
	if missing == 1 {
		return "1 category ID was not found"
	}
	return fmt.Sprintf("%d category IDs were not found", missing)
}
