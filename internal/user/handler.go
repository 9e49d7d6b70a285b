package user

import (
	"errors"

	"github.com/quotery/quotes-api/internal/auth"
	"github.com/quotery/quotes-api/internal/database"
	"github.com/quotery/quotes-api/internal/models"
	"github.com/quotery/quotes-api/internal/moderation"
	"github.com/quotery/quotes-api/internal/response"
	"github.com/quotery/quotes-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type userRequest struct {
	Username  interface{} `json:"username"`
	Password  interface{} `json:"password"`
	Role      interface{} `json:"role"`
	IsDeleted interface{} `json:"isDeleted"`
}

// toBool tolerates the boolean-as-string form some clients send.
func toBool(v interface{}) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case string:
		if val == "true" {
			return true, true
		}
		if val == "false" {
			return false, true
		}
	}
	return false, false
}

func ListUsersHandler(c *fiber.Ctx) error {
	ident := auth.CurrentIdentity(c)

	f := ListFilters{Username: c.Query("username")}

	if raw := c.Query("id"); raw != "" {
		id, err := utils.ParseID(raw)
		if err != nil {
			return response.BadRequest(c, "Invalid ID.")
		}
		f.ID = id
	}

	if raw := c.Query("role"); raw != "" && ident.IsAdmin() {
		role, ok := models.ParseRole(raw)
		if !ok {
			return response.BadRequest(c, "Invalid Role.")
		}
		f.Role = &role
	}

	users, err := List(f)
	if err != nil {
		return response.InternalError(c, "Failed to fetch users")
	}

	views := make([]View, 0, len(users))
	for i := range users {
		views = append(views, toView(&users[i], ident.IsAdmin()))
	}

	return response.Success(c, views, "")
}

func GetUserHandler(c *fiber.Ctx) error {
	ident := auth.CurrentIdentity(c)

	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid ID.")
	}

	u, err := GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.Error(c, fiber.StatusNotFound, "User not found.")
		}
		return response.InternalError(c, "Failed to fetch user")
	}

	includeRole := ident.IsAdmin() || (ident != nil && ident.ID == id)
	return response.Success(c, toView(u, includeRole), "")
}

func GetUserQuotesHandler(c *fiber.Ctx) error {
	ident := auth.CurrentIdentity(c)

	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid ID.")
	}

	if _, err := GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.Error(c, fiber.StatusNotFound, "User not found.")
		}
		return response.InternalError(c, "Failed to fetch user")
	}

	// The owner sees their whole submission history, rejections included.
	isOwner := ident != nil && ident.ID == id
	quotes, err := QuotesByUser(id, moderation.FetchVisibility(ident.IsAdmin() || isOwner))
	if err != nil {
		return response.InternalError(c, "Failed to fetch quotes")
	}

	return response.Success(c, quotes, "")
}

func UpdateUserHandler(c *fiber.Ctx) error {
	ident := auth.CurrentIdentity(c)

	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid ID.")
	}

	var body userRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var isDeleted *bool
	if body.IsDeleted != nil {
		val, ok := toBool(body.IsDeleted)
		if !ok {
			return response.BadRequest(c, "isDeleted is neither true or false.")
		}
		isDeleted = &val
	}

	var role *models.UserRole
	if body.Role != nil && ident.IsAdmin() {
		raw, ok := body.Role.(string)
		if !ok {
			return response.BadRequest(c, "Invalid Role")
		}
		parsed, valid := models.ParseRole(raw)
		if !valid {
			return response.BadRequest(c, "Invalid Role")
		}
		role = &parsed
	}

	if err := utils.ValidateFields([]utils.Field{
		{Value: body.Username, Label: "Username"},
		{Value: body.Password, Label: "Password"},
	}); err != nil {
		return response.BadRequest(c, err.Error())
	}

	if body.Username != nil {
		exists, err := UsernameExists(body.Username.(string))
		if err != nil {
			return response.InternalError(c, "Failed to check username")
		}
		if exists {
			return response.Conflict(c, "Username already exists.")
		}
	}

	u, err := GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.Error(c, fiber.StatusNotFound, "User not found.")
		}
		return response.InternalError(c, "Failed to fetch user")
	}

	if ident.ID != id && !ident.IsAdmin() {
		return response.Forbidden(c, "Forbidden")
	}

	if !ident.IsAdmin() && (body.Role != nil || body.IsDeleted != nil) {
		return response.Forbidden(c, "Users cannot change their own roles or modify isDeleted directly.")
	}

	if ident.ID != id && body.Password != nil {
		return response.Forbidden(c, "Admins cannot change a user password.")
	}

	if body.Username != nil {
		u.Username = body.Username.(string)
	}
	if body.Password != nil {
		hashed, err := utils.HashPassword(body.Password.(string))
		if err != nil {
			return response.InternalError(c, "Failed to hash password")
		}
		u.Password = hashed
	}
	if role != nil {
		u.Role = *role
	}
	if isDeleted != nil {
		u.IsDeleted = *isDeleted
	}

	if err := database.DB.Save(u).Error; err != nil {
		return response.InternalError(c, "Failed to update user")
	}

	return response.Success(c, toView(u, true), "User updated.")
}

func DeleteUserHandler(c *fiber.Ctx) error {
	ident := auth.CurrentIdentity(c)

	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid ID.")
	}

	u, err := GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.Error(c, fiber.StatusNotFound, "User not found.")
		}
		return response.InternalError(c, "Failed to fetch user")
	}

	if ident.ID != id && !ident.IsAdmin() {
		return response.Forbidden(c, "Only admins or the respective user can delete an account.")
	}

	if err := SoftDelete(u); err != nil {
		return response.InternalError(c, "Failed to delete user")
	}

	return response.Success(c, toView(u, true), "User deleted.")
}
