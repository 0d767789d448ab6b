package achievementRoutes

import (
	"github.com/gofiber/fiber/v2"

	achievementController "sciventure/controllers/achievement"
	"sciventure/storage"
	achievementValidator "sciventure/validators/achievement"
	userValidator "sciventure/validators/user"
)

func SetupAchievementRoutes(app *fiber.App, store storage.Storage) {
	ctl := achievementController.New(store)

	app.Get("/api/users/:userId/achievements", userValidator.UserIDParam(), ctl.GetUserAchievements)
	app.Post("/api/achievements", achievementValidator.Create(), ctl.CreateAchievement)
}
