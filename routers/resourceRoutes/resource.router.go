package resourceRoutes

import (
	"github.com/gofiber/fiber/v2"

	resourceController "sciventure/controllers/resource"
	"sciventure/storage"
	resourceValidator "sciventure/validators/resource"
)

func SetupResourceRoutes(app *fiber.App, store storage.Storage) {
	ctl := resourceController.New(store)

	app.Get("/api/resources", ctl.GetAllResources)
	app.Get("/api/resources/:id", resourceValidator.GetByID(), ctl.GetResource)
	app.Get("/api/resources/:id/download", resourceValidator.GetByID(), ctl.DownloadResource)
	app.Post("/api/resources", resourceValidator.Create(), ctl.CreateResource)
}
