package auth

import (
	"errors"
	"strings"

	"github.com/quotery/quotes-api/internal/database"
	"github.com/quotery/quotes-api/internal/models"
	"github.com/quotery/quotes-api/internal/response"
	"github.com/quotery/quotes-api/internal/utils"
	"github.com/gofiber/fiber/v2"
)

type credentialsRequest struct {
	Username interface{} `json:"username"`
	Password interface{} `json:"password"`
}

func (b *credentialsRequest) validate() (string, string, error) {
	if b.Username == nil {
		return "", "", errors.New("Username is required")
	}
	if b.Password == nil {
		return "", "", errors.New("Password is required")
	}

	if err := utils.ValidateFields([]utils.Field{
		{Value: b.Username, Label: "Username"},
		{Value: b.Password, Label: "Password"},
	}); err != nil {
		return "", "", err
	}

	return b.Username.(string), b.Password.(string), nil
}

func RegisterHandler(c *fiber.Ctx) error {
	var body credentialsRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	username, password, err := body.validate()
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	// The persistence hook trims on write, so the existence check has to
	// look at the trimmed value or padded duplicates slip past it.
	username = strings.TrimSpace(username)

	var existing models.User
	if err := database.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		return response.Conflict(c, "Username already exists")
	}

	u, err := RegisterUser(username, password)
	if err != nil {
		return response.InternalError(c, "Failed to create user")
	}

	return response.Created(c, fiber.Map{
		"id":       u.ID,
		"username": u.Username,
	}, "New user created")
}

func LoginHandler(c *fiber.Ctx) error {
	var body credentialsRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	username, password, err := body.validate()
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	token, err := LoginUser(username, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return response.Unauthorized(c, "Incorrect username or password.")
		}
		return response.InternalError(c, "Failed to log in")
	}

	return response.Success(c, token, "User logged")
}
