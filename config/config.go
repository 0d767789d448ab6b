package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port        string
	DatabaseURL string
	JWTKey      string
	SaltRound   int

	GoogleAPIKey string
	GeminiModel  string

	MaxUploadMB int
	UploadDir   string
	PythonBin   string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:        getEnv("PORT", "5000"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWTKey:      getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound:   getEnvInt("SALT_ROUND", 10),

		GoogleAPIKey: getEnv("GOOGLE_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 50),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		PythonBin:   getEnv("PYTHON_BIN", "python3"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL is not set. Falling back to the in-memory store.")
	}
	if AppConfig.GoogleAPIKey == "" {
		log.Println("Warning: GOOGLE_API_KEY is not set. AI endpoints will reply with fallback messages.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
