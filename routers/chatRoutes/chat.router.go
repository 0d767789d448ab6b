package chatRoutes

import (
	"github.com/gofiber/fiber/v2"

	"sciventure/ai"
	chatController "sciventure/controllers/chat"
	"sciventure/storage"
	chatValidator "sciventure/validators/chat"
	userValidator "sciventure/validators/user"
)

func SetupChatRoutes(app *fiber.App, store storage.Storage, orch *ai.Orchestrator) {
	ctl := chatController.New(store, orch)

	app.Get("/api/users/:userId/chat", userValidator.UserIDParam(), ctl.GetChatHistory)
	app.Post("/api/chat", chatValidator.Chat(), ctl.PostChat)
	app.Post("/api/curio/research", chatValidator.Research(), ctl.CurioResearch)
	app.Post("/api/document/upload", ctl.UploadDocument)
}
