package achievementValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"sciventure/middleware"
)

// CreateAchievementRequest is the validated achievement creation body.
type CreateAchievementRequest struct {
	UserID      uint   `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	ModuleID    *uint  `json:"moduleId"`
	Type        string `json:"type"`
	Icon        string `json:"icon"`
}

// Create validates the achievement creation body.
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateAchievementRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["userId"] = "User ID is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}
		if strings.TrimSpace(reqData.Type) == "" {
			errors["type"] = "Type is required!"
		}
		if reqData.Points < 0 {
			errors["points"] = "Points cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAchievement", reqData)
		return c.Next()
	}
}
