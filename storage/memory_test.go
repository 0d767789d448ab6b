package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sciventure/models"
)

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	s := NewEmptyMemoryStorage()

	err := s.CreateUser(&models.User{Username: "anika", Password: "hash"})
	assert.NoError(t, err)

	err = s.CreateUser(&models.User{Username: "anika", Password: "otherhash"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestCreateUserForcesFreshGamificationState(t *testing.T) {
	s := NewEmptyMemoryStorage()

	user := &models.User{Username: "rahim", Password: "hash", Points: 900, Level: 10}
	err := s.CreateUser(user)
	assert.NoError(t, err)
	assert.Equal(t, 0, user.Points)
	assert.Equal(t, 1, user.Level)
	assert.Equal(t, "en", user.Language)
}

func TestGetUserNotFound(t *testing.T) {
	s := NewEmptyMemoryStorage()

	_, err := s.GetUser(42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetUserByUsername("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertProgressNeverDuplicatesRows(t *testing.T) {
	s := NewEmptyMemoryStorage()

	first, err := s.UpsertProgress(&models.Progress{UserID: 1, ModuleID: 3, CompletionPercentage: 64})
	assert.NoError(t, err)
	assert.Equal(t, 64, first.CompletionPercentage)

	second, err := s.UpsertProgress(&models.Progress{UserID: 1, ModuleID: 3, CompletionPercentage: 90})
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 90, second.CompletionPercentage)

	items, err := s.GetUserProgress(1)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 90, items[0].CompletionPercentage)
}

func TestUpsertProgressKeepsOtherModulesSeparate(t *testing.T) {
	s := NewEmptyMemoryStorage()

	_, err := s.UpsertProgress(&models.Progress{UserID: 1, ModuleID: 1, CompletionPercentage: 10})
	assert.NoError(t, err)
	_, err = s.UpsertProgress(&models.Progress{UserID: 1, ModuleID: 2, CompletionPercentage: 20})
	assert.NoError(t, err)
	_, err = s.UpsertProgress(&models.Progress{UserID: 2, ModuleID: 1, CompletionPercentage: 30})
	assert.NoError(t, err)

	items, err := s.GetUserProgress(1)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCreateAchievementCreditsPointsAndLevel(t *testing.T) {
	s := NewEmptyMemoryStorage()

	user := &models.User{Username: "anika", Password: "hash"}
	assert.NoError(t, s.CreateUser(user))

	assert.NoError(t, s.CreateAchievement(&models.Achievement{
		UserID: user.ID, Title: "Perfect Quiz Score!", Description: "Aced it", Points: 50, Type: "quiz",
	}))

	got, err := s.GetUser(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 50, got.Points)
	assert.Equal(t, 1, got.Level)

	// Crossing the 100-point boundary bumps the level.
	assert.NoError(t, s.CreateAchievement(&models.Achievement{
		UserID: user.ID, Title: "5-Day Streak!", Description: "Kept it up", Points: 75, Type: "streak",
	}))

	got, err = s.GetUser(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 125, got.Points)
	assert.Equal(t, 2, got.Level)
}

func TestLevelForPoints(t *testing.T) {
	assert.Equal(t, 1, LevelForPoints(0))
	assert.Equal(t, 1, LevelForPoints(99))
	assert.Equal(t, 2, LevelForPoints(100))
	assert.Equal(t, 4, LevelForPoints(350))
}

func TestChatHistoryReturnsInsertionOrder(t *testing.T) {
	s := NewEmptyMemoryStorage()

	assert.NoError(t, s.CreateChatMessage(&models.ChatMessage{UserID: 1, Message: "What is photosynthesis?", Response: "It is how plants make food."}))
	assert.NoError(t, s.CreateChatMessage(&models.ChatMessage{UserID: 2, Message: "Hello", Response: "Hi!"}))
	assert.NoError(t, s.CreateChatMessage(&models.ChatMessage{UserID: 1, Message: "And respiration?", Response: "The reverse process."}))

	history, err := s.GetUserChatHistory(1)
	assert.NoError(t, err)
	assert.Len(t, history, 2)
	assert.Equal(t, "What is photosynthesis?", history[0].Message)
	assert.Equal(t, "And respiration?", history[1].Message)
}

func TestSeededStoreHasDemoData(t *testing.T) {
	s := NewMemoryStorage()

	user, err := s.GetUserByUsername("anika")
	assert.NoError(t, err)
	assert.Equal(t, "Anika", user.FirstName)

	modules, err := s.GetAllModules()
	assert.NoError(t, err)
	assert.Len(t, modules, 4)

	progress, err := s.GetUserProgress(user.ID)
	assert.NoError(t, err)
	assert.Len(t, progress, 3)

	resources, err := s.GetAllResources()
	assert.NoError(t, err)
	assert.Len(t, resources, 2)
}
