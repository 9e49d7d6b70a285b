package category

import (
	"errors"
	"strings"

	"github.com/quotery/quotes-api/internal/auth"
	"github.com/quotery/quotes-api/internal/config"
	"github.com/quotery/quotes-api/internal/database"
	"github.com/quotery/quotes-api/internal/models"
	"github.com/quotery/quotes-api/internal/moderation"
	"github.com/quotery/quotes-api/internal/response"
	"github.com/quotery/quotes-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type categoryRequest struct {
	Name   interface{} `json:"name"`
	Status interface{} `json:"status"`
}

func ListCategoriesHandler(c *fiber.Ctx) error {
	ident := auth.CurrentIdentity(c)

	requested, err := moderation.RequestedStatus(c.Query("status"))
	if err != nil {
		return response.BadRequest(c, "Invalid status")
	}

	f := ListFilters{Name: c.Query("name")}
	if raw := c.Query("id"); raw != "" {
		id, err := utils.ParseID(raw)
		if err != nil {
			return response.BadRequest(c, "Invalid ID")
		}
		f.ID = id
	}

	categories, err := List(f, moderation.ListVisibility(ident.IsAdmin(), requested))
	if err != nil {
		return response.InternalError(c, "Failed to fetch categories")
	}

	return response.Success(c, categories, "")
}

func GetCategoryHandler(c *fiber.Ctx) error {
	ident := auth.CurrentIdentity(c)

	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	cat, err := GetByID(id, moderation.FetchVisibility(ident.IsAdmin()))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Category")
		}
		return response.InternalError(c, "Failed to fetch category")
	}

	return response.Success(c, cat, "")
}

func GetCategoryQuotesHandler(c *fiber.Ctx) error {
	ident := auth.CurrentIdentity(c)

	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if _, err := GetByID(id, moderation.FetchVisibility(ident.IsAdmin())); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Category")
		}
		return response.InternalError(c, "Failed to fetch category")
	}

	quotes, err := QuotesByCategory(id, moderation.FetchVisibility(ident.IsAdmin()))
	if err != nil {
		return response.InternalError(c, "Failed to fetch quotes")
	}

	return response.Success(c, quotes, "")
}

func CreateCategoryHandler(c *fiber.Ctx) error {
	var body categoryRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if body.Name == nil {
		return response.BadRequest(c, "Category missing a name")
	}

	if err := utils.ValidateFields([]utils.Field{
		{Value: body.Name, Label: "Name"},
	}); err != nil {
		return response.BadRequest(c, err.Error())
	}

	name := utils.Capitalize(strings.TrimSpace(utils.SanitizeText(body.Name.(string))))

	exists, err := NameExists(name)
	if err != nil {
		return response.InternalError(c, "Failed to check category name")
	}
	if exists {
		return response.Conflict(c, "Category already exists")
	}

	cat := models.Category{
		Name:   name,
		Status: moderation.InitialStatus(config.AutoApproveEnabled()),
	}
	if err := database.DB.Create(&cat).Error; err != nil {
		return response.InternalError(c, "Failed to create category")
	}

	return response.Created(c, cat, "New category added")
}

func UpdateCategoryHandler(c *fiber.Ctx) error {
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var body categoryRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := utils.ValidateFields([]utils.Field{
		{Value: body.Name, Label: "Name"},
	}); err != nil {
		return response.BadRequest(c, err.Error())
	}

	cat, err := GetByID(id, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Category")
		}
		return response.InternalError(c, "Failed to fetch category")
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
		cat.Status = status
	}

	if body.Name != nil {
		name := utils.Capitalize(strings.TrimSpace(utils.SanitizeText(body.Name.(string))))

		exists, err := NameExists(name)
		if err != nil {
			return response.InternalError(c, "Failed to check category name")
		}
		if exists && name != cat.Name {
			return response.Conflict(c, "Category already exists")
		}
		cat.Name = name
	}

	if err := database.DB.Save(cat).Error; err != nil {
		return response.InternalError(c, "Failed to update category")
	}

	return response.Success(c, cat, "Category updated")
}

func DeleteCategoryHandler(c *fiber.Ctx) error {
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	cat, err := GetByID(id, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Category")
		}
		return response.InternalError(c, "Failed to fetch category")
	}

	count, err := QuoteCount(id)
	if err != nil {
		return response.InternalError(c, "Failed to check category quotes")
	}
	if count > 0 {
		return response.Conflict(c, "Cannot delete category. Category has quotes associated with it")
	}

	if err := database.DB.Delete(cat).Error; err != nil {
		return response.InternalError(c, "Failed to delete category")
	}

	return response.Success(c, cat, "Category deleted")
}
