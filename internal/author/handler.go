package author

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

type authorRequest struct {
	Name      interface{} `json:"name"`
	Qualifier interface{} `json:"qualifier"`
	ImageURL  interface{} `json:"imageUrl"`
	Status    interface{} `json:"status"`
}

func ListAuthorsHandler(c *fiber.Ctx) error {
	ident := auth.CurrentIdentity(c)

	requested, err := moderation.RequestedStatus(c.Query("status"))
	if err != nil {
		return response.BadRequest(c, "Invalid status")
	}

	f := ListFilters{
		Name:      c.Query("name"),
		Qualifier: c.Query("qualifier"),
	}
	if raw := c.Query("id"); raw != "" {
		id, err := utils.ParseID(raw)
		if err != nil {
			return response.BadRequest(c, "Invalid ID")
		}
		f.ID = id
	}

	authors, err := List(f, moderation.ListVisibility(ident.IsAdmin(), requested))
	if err != nil {
		return response.InternalError(c, "Failed to fetch authors")
	}

	return response.Success(c, authors, "")
}

func GetAuthorHandler(c *fiber.Ctx) error {
	ident := auth.CurrentIdentity(c)

	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	a, err := GetByID(id, moderation.FetchVisibility(ident.IsAdmin()))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Author")
		}
		return response.InternalError(c, "Failed to fetch author")
	}

	return response.Success(c, a, "")
}

func GetAuthorQuotesHandler(c *fiber.Ctx) error {
	ident := auth.CurrentIdentity(c)

	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if _, err := GetByID(id, moderation.FetchVisibility(ident.IsAdmin())); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Author")
		}
		return response.InternalError(c, "Failed to fetch author")
	}

	quotes, err := QuotesByAuthor(id, moderation.FetchVisibility(ident.IsAdmin()))
	if err != nil {
		return response.InternalError(c, "Failed to fetch quotes")
	}

	return response.Success(c, quotes, "")
}

func CreateAuthorHandler(c *fiber.Ctx) error {
	var body authorRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if body.Name == nil {
		return response.BadRequest(c, "Author missing a name")
	}

	if err := utils.ValidateFields([]utils.Field{
		{Value: body.Name, Label: "Name"},
		{Value: body.Qualifier, Label: "Qualifier"},
		{Value: body.ImageURL, Label: "ImageUrl"},
	}); err != nil {
		return response.BadRequest(c, err.Error())
	}

	name := utils.Capitalize(strings.TrimSpace(utils.SanitizeText(body.Name.(string))))
	qualifier, _ := body.Qualifier.(string)
	imageURL, _ := body.ImageURL.(string)

	exists, err := NameExists(name)
	if err != nil {
		return response.InternalError(c, "Failed to check author name")
	}
	if exists && qualifier == "" {
		return response.Conflict(c, "Author with same name already exist, please add a qualifier")
	}

	a := models.Author{
		Name:      name,
		Qualifier: qualifier,
		ImageURL:  imageURL,
		Status:    moderation.InitialStatus(config.AutoApproveEnabled()),
	}
	if err := database.DB.Create(&a).Error; err != nil {
		return response.InternalError(c, "Failed to create author")
	}

	return response.Created(c, a, "New author added")
}

func UpdateAuthorHandler(c *fiber.Ctx) error {
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var body authorRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := utils.ValidateFields([]utils.Field{
		{Value: body.Name, Label: "Name"},
		{Value: body.Qualifier, Label: "Qualifier"},
		{Value: body.ImageURL, Label: "ImageUrl"},
	}); err != nil {
		return response.BadRequest(c, err.Error())
	}

	a, err := GetByID(id, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Author")
		}
		return response.InternalError(c, "Failed to fetch author")
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
		a.Status = status
	}

	if body.Name != nil {
		a.Name = utils.Capitalize(strings.TrimSpace(utils.SanitizeText(body.Name.(string))))
	}
	if body.Qualifier != nil {
		a.Qualifier = body.Qualifier.(string)
	}
	if body.ImageURL != nil {
		a.ImageURL = body.ImageURL.(string)
	}

	if err := database.DB.Save(a).Error; err != nil {
		return response.InternalError(c, "Failed to update author")
	}

	return response.Success(c, a, "Author updated")
}

func DeleteAuthorHandler(c *fiber.Ctx) error {
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	a, err := GetByID(id, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Author")
		}
		return response.InternalError(c, "Failed to fetch author")
	}

	count, err := QuoteCount(id)
	if err != nil {
		return response.InternalError(c, "Failed to check author quotes")
	}
	if count > 0 {
		return response.Conflict(c, "Cannot delete author. Author has quotes associated with it")
	}

	if err := database.DB.Delete(a).Error; err != nil {
		return response.InternalError(c, "Failed to delete author")
	}

	if strings.HasPrefix(a.ImageURL, "/uploads/") {
		_ = utils.DeleteImage(a.ImageURL)
	}

	return response.Success(c, a, "Author deleted")
}

func UploadAuthorImageHandler(c *fiber.Ctx) error {
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	a, err := GetByID(id, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Author")
		}
		return response.InternalError(c, "Failed to fetch author")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "Missing image file")
	}

	url, err := utils.UploadImage(file)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	oldURL := a.ImageURL
	a.ImageURL = url
	if err := database.DB.Save(a).Error; err != nil {
		_ = utils.DeleteImage(url)
		return response.InternalError(c, "Failed to update author image")
	}

	if strings.HasPrefix(oldURL, "/uploads/") {
		_ = utils.DeleteImage(oldURL)
	}

	return response.Success(c, a, "Author image updated")
}
