package response

import (
	"github.com/gofiber/fiber/v2"
)

// Envelope is the shape of every API response. Authenticated and Role are
// derived from the identity the auth middleware stored on the request.
type Envelope struct {
	Success       bool        `json:"success"`
	Authenticated bool        `json:"authenticated"`
	Role          *string     `json:"role"`
	Message       string      `json:"message,omitempty"`
	Data          interface{} `json:"data,omitempty"`
}

func build(c *fiber.Ctx, success bool, message string, data interface{}) Envelope {
	env := Envelope{
		Success: success,
		Message: message,
		Data:    data,
	}

	if role, ok := c.Locals("user_role").(string); ok && role != "" {
		env.Authenticated = true
		env.Role = &role
	}

	return env
}

func Success(c *fiber.Ctx, data interface{}, message string) error {
	return c.JSON(build(c, true, message, data))
}

func Created(c *fiber.Ctx, data interface{}, message string) error {
	return c.Status(fiber.StatusCreated).JSON(build(c, true, message, data))
}

func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(build(c, false, message, nil))
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

func NotFound(c *fiber.Ctx, resource string) error {
	return Error(c, fiber.StatusNotFound, resource+" not found")
}

func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, message)
}

func InternalError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}
