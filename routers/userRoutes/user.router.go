package userRoutes

import (
	"github.com/gofiber/fiber/v2"

	userController "sciventure/controllers/user"
	"sciventure/storage"
	userValidator "sciventure/validators/user"
)

func SetupUserRoutes(app *fiber.App, store storage.Storage) {
	ctl := userController.New(store)

	app.Get("/api/users/:id", userValidator.GetByID(), ctl.GetUser)
	app.Post("/api/users", userValidator.Create(), ctl.CreateUser)
}
