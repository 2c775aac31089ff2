package routes

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kisanlink/agrostock-backend/internal/config"
	"github.com/kisanlink/agrostock-backend/internal/dto"
	"github.com/kisanlink/agrostock-backend/internal/handlers"
	"github.com/kisanlink/agrostock-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	productHandler *handlers.ProductHandler,
	transferHandler *handlers.StockTransferHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	// Auth. Login and register are public; /me is the only route that
	// requires a token.
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)
	auth.Get("/me", middleware.JWTProtected(cfg), authHandler.Me)

	// Users. No auth gate on these routes; see DESIGN.md.
	api.Get("/users/:id", userHandler.GetByID)
	api.Get("/users", userHandler.List)
	api.Post("/users", userHandler.Create)

	// Products
	api.Get("/products", productHandler.List)
	api.Post("/products", productHandler.Create)

	// Stock transfers
	api.Get("/stock-transfers", transferHandler.List)
	api.Get("/stock-transfers/user/:userId", transferHandler.ListByUser)
	api.Post("/stock-transfers", transferHandler.Create)
	api.Put("/stock-transfers/:id", transferHandler.Update)
	api.Patch("/stock-transfers/:id", transferHandler.UpdateStatus)

	// Static frontend bundle with SPA fallback: any unmatched non-API
	// GET serves the entry document so client-side routing works.
	app.Static("/", cfg.StaticDir)
	app.Get("/*", func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Not found",
			})
		}
		return c.SendFile(filepath.Join(cfg.StaticDir, "index.html"))
	})
}
