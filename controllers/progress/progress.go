package progressController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"sciventure/middleware"
	"sciventure/models"
	"sciventure/storage"
	progressValidator "sciventure/validators/progress"
)

// Controller serves the learning-progress endpoints.
type Controller struct {
	Store storage.Storage
}

func New(store storage.Storage) *Controller {
	return &Controller{Store: store}
}

// GetUserProgress returns all progress rows for one user.
func (ctl *Controller) GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	progress, err := ctl.Store.GetUserProgress(userID)
	if err != nil {
		log.Printf("[PROGRESS] failed to list progress for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully.", progress)
}

// UpsertProgress records a completion update. Repeated submissions for the
// same (user, module) pair update the existing row rather than adding one.
func (ctl *Controller) UpsertProgress(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProgress").(*progressValidator.UpsertProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	item := &models.Progress{
		UserID:               reqData.UserID,
		ModuleID:             reqData.ModuleID,
		CompletionPercentage: reqData.CompletionPercentage,
		LastAccessed:         time.Now(),
	}

	saved, err := ctl.Store.UpsertProgress(item)
	if err != nil {
		log.Printf("[PROGRESS] failed to upsert progress for user %d module %d: %v", reqData.UserID, reqData.ModuleID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Progress saved successfully.", saved)
}
