package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "sciventure/controllers/auth"
	"sciventure/middleware"
	"sciventure/storage"
	authValidator "sciventure/validators/auth"
)

func SetupAuthRoutes(app *fiber.App, store storage.Storage) {
	ctl := authController.New(store)

	app.Post("/api/auth/login", authValidator.Login(), ctl.Login)
	app.Get("/api/auth/profile", middleware.JWTMiddleware, ctl.Profile)
}
