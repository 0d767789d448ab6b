package achievementController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"sciventure/middleware"
	"sciventure/models"
	"sciventure/storage"
	achievementValidator "sciventure/validators/achievement"
)

// Controller serves the achievement endpoints.
type Controller struct {
	Store storage.Storage
}

func New(store storage.Storage) *Controller {
	return &Controller{Store: store}
}

// GetUserAchievements returns all achievements earned by one user.
func (ctl *Controller) GetUserAchievements(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	achievements, err := ctl.Store.GetUserAchievements(userID)
	if err != nil {
		log.Printf("[ACHIEVEMENT] failed to list achievements for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch achievements!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Achievements fetched successfully.", achievements)
}

// CreateAchievement awards a badge. The store credits the user's points and
// recomputes their level as part of the same operation.
func (ctl *Controller) CreateAchievement(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAchievement").(*achievementValidator.CreateAchievementRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	achievement := &models.Achievement{
		UserID:      reqData.UserID,
		Title:       reqData.Title,
		Description: reqData.Description,
		Points:      reqData.Points,
		EarnedAt:    time.Now(),
		ModuleID:    reqData.ModuleID,
		Type:        reqData.Type,
		Icon:        reqData.Icon,
	}

	if err := ctl.Store.CreateAchievement(achievement); err != nil {
		log.Printf("[ACHIEVEMENT] failed to create achievement for user %d: %v", reqData.UserID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create achievement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Achievement created successfully.", achievement)
}
