package authRoutes

import (
	authControllers "shattak/controllers/auth"
	"shattak/middleware"
	authValidators "shattak/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/login", authValidators.AdminLogin(), authControllers.AdminLogin)
	authGroup.Post("/logout", middleware.AdminJWTMiddleware, authControllers.Logout)
	authGroup.Get("/session", middleware.AdminJWTMiddleware, authControllers.Session)
}
