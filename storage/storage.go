package storage

import (
	"errors"

	"sciventure/models"
)

var (
	// ErrNotFound marks a lookup for an id that does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUsernameTaken marks a create that violates the username uniqueness constraint.
	ErrUsernameTaken = errors.New("username already taken")
)

// Storage is the persistence contract shared by the in-memory and PostgreSQL
// implementations. Handlers only ever see this interface, so the two stores
// are drop-in substitutes for each other.
type Storage interface {
	// User operations
	GetUser(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user *models.User) error

	// Module operations
	GetAllModules() ([]models.Module, error)
	GetModule(id uint) (*models.Module, error)
	CreateModule(module *models.Module) error

	// Progress operations
	GetUserProgress(userID uint) ([]models.Progress, error)
	GetModuleProgress(userID, moduleID uint) (*models.Progress, error)
	// UpsertProgress updates the existing (userID, moduleID) row in place or
	// creates it; there is never more than one row per pair.
	UpsertProgress(item *models.Progress) (*models.Progress, error)

	// Achievement operations. CreateAchievement also credits the owning
	// user's points and recomputes their level in the same logical operation.
	GetUserAchievements(userID uint) ([]models.Achievement, error)
	CreateAchievement(achievement *models.Achievement) error

	// Project operations
	GetAllProjects() ([]models.Project, error)
	GetProject(id uint) (*models.Project, error)
	CreateProject(project *models.Project) error

	// Resource operations
	GetAllResources() ([]models.Resource, error)
	GetResource(id uint) (*models.Resource, error)
	CreateResource(resource *models.Resource) error

	// Chat operations
	GetUserChatHistory(userID uint) ([]models.ChatMessage, error)
	CreateChatMessage(message *models.ChatMessage) error
}

// LevelForPoints maps a points total to a level: one level per 100 points.
func LevelForPoints(points int) int {
	return points/100 + 1
}
