package progressRoutes

import (
	"github.com/gofiber/fiber/v2"

	progressController "sciventure/controllers/progress"
	"sciventure/storage"
	progressValidator "sciventure/validators/progress"
	userValidator "sciventure/validators/user"
)

func SetupProgressRoutes(app *fiber.App, store storage.Storage) {
	ctl := progressController.New(store)

	app.Get("/api/users/:userId/progress", userValidator.UserIDParam(), ctl.GetUserProgress)
	app.Post("/api/progress", progressValidator.Upsert(), ctl.UpsertProgress)
}
