package chatController

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"sciventure/ai"
	"sciventure/middleware"
	"sciventure/storage"
	"sciventure/utils"
	chatValidator "sciventure/validators/chat"
)

// Controller serves the Curio conversation endpoints.
type Controller struct {
	Store storage.Storage
	Orch  *ai.Orchestrator
}

func New(store storage.Storage, orch *ai.Orchestrator) *Controller {
	return &Controller{Store: store, Orch: orch}
}

// GetChatHistory returns a user's conversation history in insertion order.
func (ctl *Controller) GetChatHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	history, err := ctl.Store.GetUserChatHistory(userID)
	if err != nil {
		log.Printf("[CHAT] failed to list chat history for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch chat history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chat history fetched successfully.", history)
}

// PostChat runs one turn of a Curio conversation. The reply always succeeds
// from the learner's point of view; upstream failures degrade to a friendly
// fallback message and the exchange is persisted either way.
func (ctl *Controller) PostChat(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedChat").(*chatValidator.ChatRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	mode := ai.ModeFromQuery(c.Query("type"))
	direction := ai.DirectionFromQuery(c.Query("direction"))
	ctx := c.Context()

	reply := ctl.Orch.GenerateReply(ctx, reqData.History, reqData.Message, mode, direction)
	bengali := ctl.Orch.MaybeTranslate(ctx, reply, reqData.TranslateToBengali)

	saved, err := ctl.Orch.PersistExchange(reqData.UserID, reqData.Message, reply)
	if err != nil {
		log.Printf("[CHAT] failed to persist exchange for user %d: %v", reqData.UserID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save chat message!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message processed successfully.", fiber.Map{
		"id":                  saved.ID,
		"userId":              saved.UserID,
		"message":             saved.Message,
		"response":            saved.Response,
		"timestamp":           saved.Timestamp,
		"bengali_translation": bengali,
	})
}

// CurioResearch runs a standalone deep-research request. The exchange is
// only persisted when the caller identifies a user.
func (ctl *Controller) CurioResearch(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResearch").(*chatValidator.ResearchRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reply := ctl.Orch.GenerateReply(c.Context(), nil, reqData.Text, ai.ModeDeepResearch, ai.EnglishToBengali)

	if reqData.UserID > 0 {
		if _, err := ctl.Orch.PersistExchange(reqData.UserID, reqData.Text, reply); err != nil {
			log.Printf("[CHAT] failed to persist research exchange for user %d: %v", reqData.UserID, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Research completed successfully.", fiber.Map{
		"response": reply,
	})
}

// UploadDocument accepts a PDF, DOCX, or TXT upload, extracts its text via
// the Python parser, and runs a Curio analysis over the extracted content.
// The response keeps the upload pipeline's own success/failure shape rather
// than the standard envelope so clients can surface parser errors verbatim.
func (ctl *Controller) UploadDocument(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No file uploaded",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[CHAT] failed to open upload %q: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to read uploaded file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("[CHAT] failed to read upload %q: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to read uploaded file",
		})
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	parsed := utils.ProcessUpload(c.Context(), data, fileHeader.Filename, mimeType)
	if !parsed.Success {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": parsed.Error,
		})
	}

	analysis := ctl.Orch.AnalyzeDocument(c.Context(), parsed.Text)

	if c.FormValue("saveToChat") == "true" {
		userID := uint(1)
		if v, err := strconv.Atoi(c.FormValue("userId")); err == nil && v > 0 {
			userID = uint(v)
		}
		message := fmt.Sprintf("Analyzed document: %s", fileHeader.Filename)
		if _, err := ctl.Orch.PersistExchange(userID, message, analysis); err != nil {
			log.Printf("[CHAT] failed to persist document analysis for user %d: %v", userID, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"fileName": fileHeader.Filename,
		"fileType": mimeType,
		"fileSize": fileHeader.Size,
		"text":     parsed.Text,
		"analysis": analysis,
	})
}
