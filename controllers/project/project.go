package projectController

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"sciventure/middleware"
	"sciventure/models"
	"sciventure/storage"
	projectValidator "sciventure/validators/project"
)

// Controller serves the community-project endpoints.
type Controller struct {
	Store storage.Storage
}

func New(store storage.Storage) *Controller {
	return &Controller{Store: store}
}

// GetAllProjects returns every community project listing.
func (ctl *Controller) GetAllProjects(c *fiber.Ctx) error {
	projects, err := ctl.Store.GetAllProjects()
	if err != nil {
		log.Printf("[PROJECT] failed to list projects: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch projects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Projects fetched successfully.", projects)
}

// GetProject returns a single project.
func (ctl *Controller) GetProject(c *fiber.Ctx) error {
	id, ok := c.Locals("projectID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid project ID!", nil)
	}

	project, err := ctl.Store.GetProject(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
		}
		log.Printf("[PROJECT] failed to fetch project %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project fetched successfully.", project)
}

// CreateProject publishes a new community project.
func (ctl *Controller) CreateProject(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProject").(*projectValidator.CreateProjectRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	project := &models.Project{
		Title:             reqData.Title,
		Description:       reqData.Description,
		Subject:           reqData.Subject,
		ParticipationType: reqData.ParticipationType,
		Location:          reqData.Location,
		Difficulty:        reqData.Difficulty,
		IsActive:          true,
	}
	if project.Difficulty == 0 {
		project.Difficulty = 1
	}
	if reqData.EndDate != "" {
		// Already validated as RFC3339.
		endDate, _ := time.Parse(time.RFC3339, reqData.EndDate)
		project.EndDate = &endDate
	}
	if reqData.IsActive != nil {
		project.IsActive = *reqData.IsActive
	}

	if err := ctl.Store.CreateProject(project); err != nil {
		log.Printf("[PROJECT] failed to create project %q: %v", reqData.Title, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Project created successfully.", project)
}
