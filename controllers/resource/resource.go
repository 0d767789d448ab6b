package resourceController

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"sciventure/middleware"
	"sciventure/models"
	"sciventure/storage"
	resourceValidator "sciventure/validators/resource"
)

// Controller serves the downloadable-resource endpoints.
type Controller struct {
	Store storage.Storage
}

func New(store storage.Storage) *Controller {
	return &Controller{Store: store}
}

// GetAllResources returns the full resource catalog.
func (ctl *Controller) GetAllResources(c *fiber.Ctx) error {
	resources, err := ctl.Store.GetAllResources()
	if err != nil {
		log.Printf("[RESOURCE] failed to list resources: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch resources!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resources fetched successfully.", resources)
}

// GetResource returns a single resource descriptor.
func (ctl *Controller) GetResource(c *fiber.Ctx) error {
	id, ok := c.Locals("resourceID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resource ID!", nil)
	}

	resource, err := ctl.Store.GetResource(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
		}
		log.Printf("[RESOURCE] failed to fetch resource %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource fetched successfully.", resource)
}

// CreateResource adds a resource descriptor to the catalog.
func (ctl *Controller) CreateResource(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResource").(*resourceValidator.CreateResourceRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	resource := &models.Resource{
		Title:       reqData.Title,
		Description: reqData.Description,
		FileSize:    reqData.FileSize,
		Subject:     reqData.Subject,
		FilePath:    reqData.FilePath,
		Thumbnail:   reqData.Thumbnail,
		Language:    reqData.Language,
	}
	if len(reqData.Tags) > 0 {
		tags, err := json.Marshal(reqData.Tags)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tags!", nil)
		}
		resource.Tags = datatypes.JSON(tags)
	}

	if err := ctl.Store.CreateResource(resource); err != nil {
		log.Printf("[RESOURCE] failed to create resource %q: %v", reqData.Title, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resource created successfully.", resource)
}

// DownloadResource serves the generated document for a resource. Only the
// built-in study materials have generated content; everything else 404s.
func (ctl *Controller) DownloadResource(c *fiber.Ctx) error {
	id, ok := c.Locals("resourceID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resource ID!", nil)
	}

	resource, err := ctl.Store.GetResource(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
		}
		log.Printf("[RESOURCE] failed to fetch resource %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch resource!", nil)
	}

	var body string
	switch id {
	case 1:
		body = generateBiologyLabManual()
	case 2:
		body = generateChemistryHandbook()
	default:
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No downloadable content for this resource!", nil)
	}

	filename := strings.ToLower(strings.ReplaceAll(resource.Title, " ", "_")) + ".txt"

	c.Set("Content-Type", "text/plain; charset=utf-8")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	return c.SendString(body)
}
