package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"sciventure/ai"
	"sciventure/config"
	achievementRoutes "sciventure/routers/achievementRoutes"
	authRoutes "sciventure/routers/authRoutes"
	chatRoutes "sciventure/routers/chatRoutes"
	moduleRoutes "sciventure/routers/moduleRoutes"
	progressRoutes "sciventure/routers/progressRoutes"
	projectRoutes "sciventure/routers/projectRoutes"
	resourceRoutes "sciventure/routers/resourceRoutes"
	userRoutes "sciventure/routers/userRoutes"
	"sciventure/storage"
)

func main() {
	config.LoadConfig()

	var store storage.Storage
	if config.AppConfig.DatabaseURL != "" {
		pg, err := storage.NewPostgresStorage(config.AppConfig.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to the database: %v", err)
		}
		log.Println("Using PostgreSQL storage")
		store = pg
	} else {
		log.Println("DATABASE_URL not set, using in-memory storage with demo data")
		store = storage.NewMemoryStorage()
	}

	gemini := ai.NewGeminiClient(config.AppConfig.GoogleAPIKey, config.AppConfig.GeminiModel)
	orch := ai.NewOrchestrator(store, gemini)

	app := fiber.New(fiber.Config{
		BodyLimit: config.AppConfig.MaxUploadMB * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, store)
	userRoutes.SetupUserRoutes(app, store)
	moduleRoutes.SetupModuleRoutes(app, store)
	progressRoutes.SetupProgressRoutes(app, store)
	achievementRoutes.SetupAchievementRoutes(app, store)
	projectRoutes.SetupProjectRoutes(app, store)
	resourceRoutes.SetupResourceRoutes(app, store)
	chatRoutes.SetupChatRoutes(app, store, orch)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
