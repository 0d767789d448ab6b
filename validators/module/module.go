package moduleValidator

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"sciventure/middleware"
)

// CreateModuleRequest is the validated learning-module creation body.
type CreateModuleRequest struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Subject        string          `json:"subject"`
	Thumbnail      string          `json:"thumbnail"`
	Content        json.RawMessage `json:"content"`
	Language       string          `json:"language"`
	EducationLevel string          `json:"educationLevel"`
}

// Create validates the module creation body.
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}
		if strings.TrimSpace(reqData.Subject) == "" {
			errors["subject"] = "Subject is required!"
		}
		if len(reqData.Content) > 0 && !json.Valid(reqData.Content) {
			errors["content"] = "Content must be valid JSON!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// GetByID validates the :id path parameter.
func GetByID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module ID!", nil)
		}

		c.Locals("moduleID", uint(id))
		return c.Next()
	}
}
