package moduleRoutes

import (
	"github.com/gofiber/fiber/v2"

	moduleController "sciventure/controllers/module"
	"sciventure/storage"
	moduleValidator "sciventure/validators/module"
)

func SetupModuleRoutes(app *fiber.App, store storage.Storage) {
	ctl := moduleController.New(store)

	app.Get("/api/modules", ctl.GetAllModules)
	app.Get("/api/modules/:id", moduleValidator.GetByID(), ctl.GetModule)
	app.Post("/api/modules", moduleValidator.Create(), ctl.CreateModule)
}
