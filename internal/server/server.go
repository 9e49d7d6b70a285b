package server

import (
	"errors"
	"log"

	"github.com/quotery/quotes-api/internal/response"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func New(db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		// Single catch-all responder: anything escaping a handler is
		// logged server-side and answered with a generic body.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) && fiberErr.Code != fiber.StatusInternalServerError {
				return response.Error(c, fiberErr.Code, fiberErr.Message)
			}

			log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
			return response.InternalError(c, "Something went wrong")
		},
	})

	app.Use(recover.New())

	app.Static("/uploads", "./uploads", fiber.Static{
		Compress:  true,
		ByteRange: true,
		Browse:    false,
		MaxAge:    3600,
	})

	SetupRoutes(app)

	return app
}
