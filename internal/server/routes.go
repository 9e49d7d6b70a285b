package server

import (
	"time"

	"github.com/quotery/quotes-api/internal/auth"
	"github.com/quotery/quotes-api/internal/author"
	"github.com/quotery/quotes-api/internal/category"
	"github.com/quotery/quotes-api/internal/models"
	"github.com/quotery/quotes-api/internal/quote"
	"github.com/quotery/quotes-api/internal/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func SetupRoutes(app *fiber.App) {
	// Middleware
	app.Use(logger.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, DELETE, OPTIONS, PATCH",
	}))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Quotes API is running",
		})
	})

	// ==========================================
	// AUTHENTICATION
	// ==========================================
	authGroup := app.Group("/authentication")
	authGroup.Post("/register", auth.RegisterHandler)
	authGroup.Post("/login", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), auth.LoginHandler)

	// ==========================================
	// QUOTES
	// ==========================================
	quoteGroup := app.Group("/quotes")
	quoteGroup.Get("/", auth.Optional(), quote.ListQuotesHandler)
	quoteGroup.Get("/random", auth.Optional(), quote.RandomQuoteHandler)
	quoteGroup.Get("/:id", auth.Optional(), quote.GetQuoteHandler)
	quoteGroup.Post("/", auth.Required(), quote.CreateQuoteHandler)
	quoteGroup.Patch("/:id", auth.Required(), quote.UpdateQuoteHandler)
	quoteGroup.Delete("/:id", auth.Required(), quote.DeleteQuoteHandler)

	// ==========================================
	// AUTHORS
	// ==========================================
	authorGroup := app.Group("/authors")
	authorGroup.Get("/", auth.Optional(), author.ListAuthorsHandler)
	authorGroup.Get("/:id", auth.Optional(), author.GetAuthorHandler)
	authorGroup.Get("/:id/quotes", auth.Optional(), author.GetAuthorQuotesHandler)
	authorGroup.Post("/", auth.Required(), author.CreateAuthorHandler)
	authorGroup.Post("/:id/image",
		auth.Required(),
		auth.RoleRequired(models.RoleAdmin),
		author.UploadAuthorImageHandler)
	authorGroup.Patch("/:id",
		auth.Required(),
		auth.RoleRequired(models.RoleAdmin),
		author.UpdateAuthorHandler)
	authorGroup.Delete("/:id",
		auth.Required(),
		auth.RoleRequired(models.RoleAdmin),
		author.DeleteAuthorHandler)

	// ==========================================
	// CATEGORIES
	// ==========================================
	categoryGroup := app.Group("/categories")
	categoryGroup.Get("/", auth.Optional(), category.ListCategoriesHandler)
	categoryGroup.Get("/:id", auth.Optional(), category.GetCategoryHandler)
	categoryGroup.Get("/:id/quotes", auth.Optional(), category.GetCategoryQuotesHandler)
	categoryGroup.Post("/", auth.Required(), category.CreateCategoryHandler)
	categoryGroup.Patch("/:id",
		auth.Required(),
		auth.RoleRequired(models.RoleAdmin),
		category.UpdateCategoryHandler)
	categoryGroup.Delete("/:id",
		auth.Required(),
		auth.RoleRequired(models.RoleAdmin),
		category.DeleteCategoryHandler)

	// ==========================================
	// USERS
	// ==========================================
	userGroup := app.Group("/users")
	userGroup.Get("/", auth.Optional(), user.ListUsersHandler)
	userGroup.Get("/:id", auth.Optional(), user.GetUserHandler)
	userGroup.Get("/:id/quotes", auth.Optional(), user.GetUserQuotesHandler)
	userGroup.Patch("/:id", auth.Required(), user.UpdateUserHandler)
	userGroup.Delete("/:id", auth.Required(), user.DeleteUserHandler)
}
