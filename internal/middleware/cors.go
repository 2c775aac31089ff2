package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/kisanlink/agrostock-backend/internal/config"
)

// CORS permits requests without an Origin header (native and CLI
// callers never send one, so the middleware is skipped for them), the
// local dev servers, the configured frontend, and any subdomain of the
// hosting platform. Credentials are allowed and preflights cached for
// ten minutes.
func CORS(cfg *config.Config) fiber.Handler {
	return cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return allowOrigin(origin, cfg.FrontendURL)
		},
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowMethods:     "GET, POST, PUT, DELETE, PATCH, OPTIONS",
		ExposeHeaders:    "Content-Range, X-Content-Range",
		AllowCredentials: true,
		MaxAge:           600,
	})
}

func allowOrigin(origin, frontendURL string) bool {
	switch origin {
	case "http://localhost:5173", "http://localhost:3000":
		return true
	}
	if frontendURL != "" && origin == frontendURL {
		return true
	}
	return strings.HasSuffix(origin, ".onrender.com")
}
