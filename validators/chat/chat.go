package chatValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"sciventure/ai"
	"sciventure/middleware"
)

// ChatRequest is the validated conversation body.
type ChatRequest struct {
	UserID             uint         `json:"userId"`
	Message            string       `json:"message"`
	TranslateToBengali bool         `json:"translate_to_bengali"`
	History            []ai.Message `json:"history"`
}

// ResearchRequest is the validated deep-research body.
type ResearchRequest struct {
	Text   string `json:"text"`
	UserID uint   `json:"userId"`
}

// Chat validates the conversation body.
func Chat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ChatRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["userId"] = "User ID is required!"
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}
		for _, turn := range reqData.History {
			if turn.Role != ai.RoleUser && turn.Role != ai.RoleAssistant {
				errors["history"] = "History roles must be 'user' or 'assistant'!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChat", reqData)
		return c.Next()
	}
}

// Research validates the deep-research body.
func Research() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ResearchRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Text) == "" {
			errors["text"] = "Text is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResearch", reqData)
		return c.Next()
	}
}
