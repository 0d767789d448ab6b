package projectValidator

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"sciventure/middleware"
)

// CreateProjectRequest is the validated community project creation body.
type CreateProjectRequest struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	Subject           string `json:"subject"`
	ParticipationType string `json:"participationType"`
	EndDate           string `json:"endDate"`
	Location          string `json:"location"`
	Difficulty        int    `json:"difficulty"`
	IsActive          *bool  `json:"isActive"`
}

// Create validates the project creation body.
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateProjectRequest)
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
		if strings.TrimSpace(reqData.ParticipationType) == "" {
			errors["participationType"] = "Participation type is required!"
		}
		if reqData.Difficulty != 0 && (reqData.Difficulty < 1 || reqData.Difficulty > 4) {
			errors["difficulty"] = "Difficulty must be between 1 and 4!"
		}
		if reqData.EndDate != "" {
			if _, err := time.Parse(time.RFC3339, reqData.EndDate); err != nil {
				errors["endDate"] = "End date must be a valid RFC3339 timestamp!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProject", reqData)
		return c.Next()
	}
}

// GetByID validates the :id path parameter.
func GetByID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid project ID!", nil)
		}

		c.Locals("projectID", uint(id))
		return c.Next()
	}
}
