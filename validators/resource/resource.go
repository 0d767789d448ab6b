package resourceValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"sciventure/middleware"
)

// CreateResourceRequest is the validated downloadable resource creation body.
type CreateResourceRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Subject     string   `json:"subject"`
	FileSize    string   `json:"fileSize"`
	Tags        []string `json:"tags"`
	FilePath    string   `json:"filePath"`
	Thumbnail   string   `json:"thumbnail"`
	Language    string   `json:"language"`
}

// Create validates the resource creation body.
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateResourceRequest)
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
		if strings.TrimSpace(reqData.FilePath) == "" {
			errors["filePath"] = "File path is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResource", reqData)
		return c.Next()
	}
}

// GetByID validates the :id path parameter.
func GetByID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resource ID!", nil)
		}

		c.Locals("resourceID", uint(id))
		return c.Next()
	}
}
