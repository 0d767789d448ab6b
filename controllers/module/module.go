package moduleController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"sciventure/middleware"
	"sciventure/models"
	"sciventure/storage"
	moduleValidator "sciventure/validators/module"
)

// Controller serves the learning-module endpoints.
type Controller struct {
	Store storage.Storage
}

func New(store storage.Storage) *Controller {
	return &Controller{Store: store}
}

// GetAllModules returns the full module catalog.
func (ctl *Controller) GetAllModules(c *fiber.Ctx) error {
	modules, err := ctl.Store.GetAllModules()
	if err != nil {
		log.Printf("[MODULE] failed to list modules: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully.", modules)
}

// GetModule returns a single module.
func (ctl *Controller) GetModule(c *fiber.Ctx) error {
	id, ok := c.Locals("moduleID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module ID!", nil)
	}

	module, err := ctl.Store.GetModule(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		}
		log.Printf("[MODULE] failed to fetch module %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully.", module)
}

// CreateModule adds a module to the catalog.
func (ctl *Controller) CreateModule(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedModule").(*moduleValidator.CreateModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module := &models.Module{
		Title:          reqData.Title,
		Description:    reqData.Description,
		Subject:        reqData.Subject,
		Thumbnail:      reqData.Thumbnail,
		Language:       reqData.Language,
		EducationLevel: reqData.EducationLevel,
	}
	if len(reqData.Content) > 0 {
		module.Content = datatypes.JSON(reqData.Content)
	}

	if err := ctl.Store.CreateModule(module); err != nil {
		log.Printf("[MODULE] failed to create module %q: %v", reqData.Title, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully.", module)
}
