package chatController

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"sciventure/ai"
	"sciventure/config"
	"sciventure/storage"
	chatValidator "sciventure/validators/chat"
	userValidator "sciventure/validators/user"
)

// scriptedGenerator returns a fixed result and records what it was asked.
type scriptedGenerator struct {
	lastHistory []ai.Message
	lastPrompt  string
	result      ai.Result
}

func (g *scriptedGenerator) Generate(ctx context.Context, history []ai.Message, prompt string) ai.Result {
	g.lastHistory = history
	g.lastPrompt = prompt
	return g.result
}

var (
	app   *fiber.App
	store *storage.MemoryStorage
	gen   *scriptedGenerator
)

func TestMain(m *testing.M) {
	config.LoadConfig()

	store = storage.NewEmptyMemoryStorage()
	gen = &scriptedGenerator{}
	ctl := New(store, ai.NewOrchestrator(store, gen))

	app = fiber.New()
	app.Get("/api/users/:userId/chat", userValidator.UserIDParam(), ctl.GetChatHistory)
	app.Post("/api/chat", chatValidator.Chat(), ctl.PostChat)
	app.Post("/api/curio/research", chatValidator.Research(), ctl.CurioResearch)
	app.Post("/api/document/upload", ctl.UploadDocument)

	os.Exit(m.Run())
}

func postChat(t *testing.T, path string, payload map[string]interface{}) (*fiber.Map, int) {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)

	var result fiber.Map
	json.NewDecoder(resp.Body).Decode(&result)
	return &result, resp.StatusCode
}

func TestPostChatReturnsAndPersistsReply(t *testing.T) {
	gen.result = ai.Result{Text: "Gravity pulls things together!", Outcome: ai.OutcomeOK}

	result, status := postChat(t, "/api/chat", map[string]interface{}{
		"userId":  1,
		"message": "What is gravity?",
	})
	assert.Equal(t, fiber.StatusCreated, status)

	data := (*result)["data"].(map[string]interface{})
	assert.Equal(t, "What is gravity?", data["message"])
	assert.Equal(t, "Gravity pulls things together!", data["response"])
	assert.Nil(t, data["bengali_translation"])

	history, err := store.GetUserChatHistory(1)
	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, "Gravity pulls things together!", history[0].Response)
}

func TestPostChatFallbackIsFriendlyAndPersisted(t *testing.T) {
	gen.result = ai.Result{Outcome: ai.OutcomeTransient, Err: errors.New("429 too many requests")}

	result, status := postChat(t, "/api/chat", map[string]interface{}{
		"userId":  2,
		"message": "Explain photosynthesis",
	})
	assert.Equal(t, fiber.StatusCreated, status)

	data := (*result)["data"].(map[string]interface{})
	response := data["response"].(string)
	assert.NotContains(t, response, "429")
	assert.Contains(t, response, "Curio")

	history, err := store.GetUserChatHistory(2)
	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, response, history[0].Response)
}

func TestPostChatBengaliTranslationSentinel(t *testing.T) {
	gen.result = ai.Result{Outcome: ai.OutcomeTransient, Err: errors.New("503")}

	result, status := postChat(t, "/api/chat", map[string]interface{}{
		"userId":               3,
		"message":              "Hello",
		"translate_to_bengali": true,
	})
	assert.Equal(t, fiber.StatusCreated, status)

	data := (*result)["data"].(map[string]interface{})
	assert.Equal(t, ai.TranslationUnavailable, data["bengali_translation"])
}

func TestPostChatForwardsNormalizedHistory(t *testing.T) {
	gen.result = ai.Result{Text: "ok", Outcome: ai.OutcomeOK}

	_, status := postChat(t, "/api/chat", map[string]interface{}{
		"userId":  4,
		"message": "follow-up",
		"history": []map[string]string{
			{"role": "assistant", "content": "welcome"},
			{"role": "user", "content": "first"},
		},
	})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Len(t, gen.lastHistory, 1)
	assert.Equal(t, ai.RoleUser, gen.lastHistory[0].Role)
}

func TestPostChatValidation(t *testing.T) {
	_, status := postChat(t, "/api/chat", map[string]interface{}{
		"userId": 1,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	_, status = postChat(t, "/api/chat", map[string]interface{}{
		"userId":  1,
		"message": "hi",
		"history": []map[string]string{{"role": "system", "content": "x"}},
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestCurioResearchWithoutUserDoesNotPersist(t *testing.T) {
	gen.result = ai.Result{Text: "Deep dive into black holes", Outcome: ai.OutcomeOK}
	before, _ := store.GetUserChatHistory(5)

	result, status := postChat(t, "/api/curio/research", map[string]interface{}{
		"text": "black holes",
	})
	assert.Equal(t, fiber.StatusOK, status)

	data := (*result)["data"].(map[string]interface{})
	assert.Equal(t, "Deep dive into black holes", data["response"])

	after, _ := store.GetUserChatHistory(5)
	assert.Len(t, after, len(before))
}

func TestCurioResearchWithUserPersists(t *testing.T) {
	gen.result = ai.Result{Text: "All about volcanoes", Outcome: ai.OutcomeOK}

	_, status := postChat(t, "/api/curio/research", map[string]interface{}{
		"text":   "volcanoes",
		"userId": 6,
	})
	assert.Equal(t, fiber.StatusOK, status)

	history, err := store.GetUserChatHistory(6)
	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, "volcanoes", history[0].Message)
}

func TestUploadDocumentRejectsUnsupportedType(t *testing.T) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="photo.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	part.Write([]byte("not really a png"))
	writer.Close()

	req := httptest.NewRequest("POST", "/api/document/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, false, result["success"])
	assert.Contains(t, result["message"], "image/png")
}

func TestUploadDocumentMissingFile(t *testing.T) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("saveToChat", "true")
	writer.Close()

	req := httptest.NewRequest("POST", "/api/document/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, false, result["success"])
}

func TestGetChatHistoryEmptyForUnknownUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/users/99/chat", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Empty(t, result["data"].([]interface{}))
}
