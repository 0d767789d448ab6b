package projectRoutes

import (
	"github.com/gofiber/fiber/v2"

	projectController "sciventure/controllers/project"
	"sciventure/storage"
	projectValidator "sciventure/validators/project"
)

func SetupProjectRoutes(app *fiber.App, store storage.Storage) {
	ctl := projectController.New(store)

	app.Get("/api/projects", ctl.GetAllProjects)
	app.Get("/api/projects/:id", projectValidator.GetByID(), ctl.GetProject)
	app.Post("/api/projects", projectValidator.Create(), ctl.CreateProject)
}
