package progressValidator

import (
	"github.com/gofiber/fiber/v2"

	"sciventure/middleware"
)

// UpsertProgressRequest is the validated progress update body.
type UpsertProgressRequest struct {
	UserID               uint `json:"userId"`
	ModuleID             uint `json:"moduleId"`
	CompletionPercentage int  `json:"completionPercentage"`
}

// Upsert validates the progress update body.
func Upsert() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpsertProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["userId"] = "User ID is required!"
		}
		if reqData.ModuleID == 0 {
			errors["moduleId"] = "Module ID is required!"
		}
		if reqData.CompletionPercentage < 0 || reqData.CompletionPercentage > 100 {
			errors["completionPercentage"] = "Completion percentage must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
