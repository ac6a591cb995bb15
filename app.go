package main

import (
	"time"

	"catalog/internal/config"
	"catalog/internal/dto"
	"catalog/internal/handlers"
	"catalog/internal/logger"
	"catalog/internal/mapper"
	"catalog/internal/middleware"
	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// NewApp wires repositories, services and handlers into a Fiber app.
// publisher may be nil to disable product events.
func NewApp(cfg config.Config, log zerolog.Logger, publisher services.EventPublisher) *fiber.App {
	productRepo := repositories.NewInMemoryProductRepository()
	userRepo := repositories.NewInMemoryUserRepository()

	productService := services.NewProductService(productRepo, mapper.NewProductMapper(), publisher, log)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)

	if cfg.SeedProducts {
		seedProducts(productService, log)
	}

	validate := handlers.NewValidator()
	productHandler := handlers.NewProductHandler(productService, validate)
	authHandler := handlers.NewAuthHandler(authService, validate)

	app := fiber.New(fiber.Config{
		AppName:               "catalog",
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger(log))

	apiV1 := app.Group("/api/v1")
	authHandler.RegisterRoutes(apiV1)
	productHandler.RegisterRoutes(apiV1, middleware.AuthRequired(authService))

	events := "disabled"
	if publisher != nil {
		events = "enabled"
	}
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"events": events,
		})
	})

	return app
}

// seedProducts fills an empty catalog with a few products.
func seedProducts(service *services.ProductService, log zerolog.Logger) {
	products := []dto.Product{
		{Name: "Laptop", Description: "High performance laptop", Price: decimal.RequireFromString("1200.00")},
		{Name: "Keyboard", Description: "Mechanical keyboard", Price: decimal.RequireFromString("75.00")},
		{Name: "Mouse", Description: "Ergonomic wireless mouse", Price: decimal.RequireFromString("25.00")},
	}

	for _, p := range products {
		id := service.Create(p)
		log.Debug().Str(logger.KeyProductID, id.String()).Str("name", p.Name).Msg("seeded product")
	}
}
