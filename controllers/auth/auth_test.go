package authController

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"sciventure/config"
	"sciventure/middleware"
	"sciventure/models"
	"sciventure/storage"
	authValidator "sciventure/validators/auth"
)

var app *fiber.App

func TestMain(m *testing.M) {
	config.LoadConfig()

	store := storage.NewEmptyMemoryStorage()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	store.CreateUser(&models.User{Username: "anika", Password: string(hashed)})

	ctl := New(store)
	app = fiber.New()
	app.Post("/api/auth/login", authValidator.Login(), ctl.Login)
	app.Get("/api/auth/profile", middleware.JWTMiddleware, ctl.Profile)

	os.Exit(m.Run())
}

func postLogin(t *testing.T, username, password string) (*fiber.Map, int) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)

	var result fiber.Map
	json.NewDecoder(resp.Body).Decode(&result)
	return &result, resp.StatusCode
}

func TestLoginIssuesToken(t *testing.T) {
	result, status := postLogin(t, "anika", "password123")
	assert.Equal(t, fiber.StatusOK, status)

	data := (*result)["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	user := data["user"].(map[string]interface{})
	assert.Equal(t, "anika", user["username"])
	assert.NotContains(t, user, "password")
}

func TestLoginWrongPassword(t *testing.T) {
	_, status := postLogin(t, "anika", "wrongpass")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestLoginUnknownUser(t *testing.T) {
	_, status := postLogin(t, "nobody", "password123")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestProfileRequiresToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/auth/profile", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProfileWithToken(t *testing.T) {
	result, status := postLogin(t, "anika", "password123")
	assert.Equal(t, fiber.StatusOK, status)
	token := (*result)["data"].(map[string]interface{})["token"].(string)

	req := httptest.NewRequest("GET", "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&body)
	user := body["data"].(map[string]interface{})
	assert.Equal(t, "anika", user["username"])
	assert.NotContains(t, user, "password")
}
