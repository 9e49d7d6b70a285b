package auth

import (
	"strings"

	"github.com/quotery/quotes-api/internal/database"
	"github.com/quotery/quotes-api/internal/models"
	"github.com/quotery/quotes-api/internal/response"
	"github.com/quotery/quotes-api/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// Identity is the verified caller attached to the request by Required or
// Optional.
type Identity struct {
	ID       uint
	Username string
	Role     models.UserRole
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == models.RoleAdmin
}

// CurrentIdentity returns the caller's identity, or nil for anonymous
// requests.
func CurrentIdentity(c *fiber.Ctx) *Identity {
	ident, _ := c.Locals("identity").(*Identity)
	return ident
}

func setIdentity(c *fiber.Ctx, ident *Identity) {
	c.Locals("identity", ident)
	c.Locals("user_role", string(ident.Role))
}

// Required rejects unauthenticated callers. A valid token is not trusted
// blindly: the user is re-fetched so tokens outliving a deleted account
// stop working.
func Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header missing.")
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return response.Unauthorized(c, "Authorization token of invalid type. Please provide a valid Bearer token.")
		}

		claims, err := utils.ParseJWT(tokenParts[1])
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		var user models.User
		if err := database.DB.First(&user, claims.UserID).Error; err != nil || user.IsDeleted {
			return response.BadRequest(c, "User not found or is deleted.")
		}

		setIdentity(c, &Identity{
			ID:       claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		})
		return c.Next()
	}
}

// Optional attaches an identity when a valid bearer token is present and
// proceeds anonymously otherwise.
func Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := utils.ParseJWT(token); err == nil {
				setIdentity(c, &Identity{
					ID:       claims.UserID,
					Username: claims.Username,
					Role:     claims.Role,
				})
			}
		}
		return c.Next()
	}
}

// RoleRequired composes after Required and gates on an allowed role set.
func RoleRequired(allowedRoles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident := CurrentIdentity(c)
		if ident == nil {
			return response.Forbidden(c, "Access denied!")
		}

		for _, role := range allowedRoles {
			if ident.Role == role {
				return c.Next()
			}
		}

		return response.Forbidden(c, "Access denied!")
	}
}
