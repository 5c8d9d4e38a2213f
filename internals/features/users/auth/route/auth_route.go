package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "surveyku_backend/internals/features/users/auth/service"
	middlewares "surveyku_backend/internals/middlewares"
)

// AuthRoutes — endpoint publik, dibatasi rate limiter masing-masing.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	authRoutes := api.Group("/auth")

	authRoutes.Post("/register", middlewares.RegisterRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Register(db, c)
	})
	authRoutes.Post("/login", middlewares.LoginRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Login(db, c)
	})
}
