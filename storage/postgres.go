package storage

import (
	"errors"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sciventure/models"
)

// PostgresStorage is the relational implementation of Storage, selected when
// DATABASE_URL is configured.
type PostgresStorage struct {
	db *gorm.DB
}

// NewPostgresStorage connects to PostgreSQL, configures the connection pool
// and runs migrations.
func NewPostgresStorage(dsn string) (*PostgresStorage, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	log.Println("Running Migrations...")
	if err := db.AutoMigrate(
		&models.User{},
		&models.Module{},
		&models.Progress{},
		&models.Achievement{},
		&models.Project{},
		&models.Resource{},
		&models.ChatMessage{},
	); err != nil {
		return nil, err
	}
	log.Println("Migrations completed successfully.")

	return &PostgresStorage{db: db}, nil
}

// User operations

func (s *PostgresStorage) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *PostgresStorage) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *PostgresStorage) CreateUser(user *models.User) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrUsernameTaken
	}
	user.Points = 0
	user.Level = 1
	if user.Language == "" {
		user.Language = "en"
	}
	return s.db.Create(user).Error
}

// Module operations

func (s *PostgresStorage) GetAllModules() ([]models.Module, error) {
	var modules []models.Module
	if err := s.db.Order("id asc").Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (s *PostgresStorage) GetModule(id uint) (*models.Module, error) {
	var module models.Module
	if err := s.db.First(&module, id).Error; err != nil {
		return nil, translate(err)
	}
	return &module, nil
}

func (s *PostgresStorage) CreateModule(module *models.Module) error {
	if module.Language == "" {
		module.Language = "en"
	}
	return s.db.Create(module).Error
}

// Progress operations

func (s *PostgresStorage) GetUserProgress(userID uint) ([]models.Progress, error) {
	var items []models.Progress
	if err := s.db.Where("user_id = ?", userID).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *PostgresStorage) GetModuleProgress(userID, moduleID uint) (*models.Progress, error) {
	var item models.Progress
	err := s.db.Where("user_id = ? AND module_id = ?", userID, moduleID).First(&item).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (s *PostgresStorage) UpsertProgress(item *models.Progress) (*models.Progress, error) {
	existing, err := s.GetModuleProgress(item.UserID, item.ModuleID)
	if err == nil {
		existing.CompletionPercentage = item.CompletionPercentage
		existing.LastAccessed = time.Now()
		if err := s.db.Save(existing).Error; err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	item.LastAccessed = time.Now()
	if err := s.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Achievement operations

func (s *PostgresStorage) GetUserAchievements(userID uint) ([]models.Achievement, error) {
	var items []models.Achievement
	if err := s.db.Where("user_id = ?", userID).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *PostgresStorage) CreateAchievement(achievement *models.Achievement) error {
	achievement.EarnedAt = time.Now()
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(achievement).Error; err != nil {
			return err
		}
		// Single UPDATE so concurrent grants cannot lose point increments.
		// Integer division matches floor(points/100) for non-negative totals.
		return tx.Model(&models.User{}).
			Where("id = ?", achievement.UserID).
			Updates(map[string]interface{}{
				"points": gorm.Expr("points + ?", achievement.Points),
				"level":  gorm.Expr("(points + ?) / 100 + 1", achievement.Points),
			}).Error
	})
}

// Project operations

func (s *PostgresStorage) GetAllProjects() ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Order("id asc").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *PostgresStorage) GetProject(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		return nil, translate(err)
	}
	return &project, nil
}

func (s *PostgresStorage) CreateProject(project *models.Project) error {
	return s.db.Create(project).Error
}

// Resource operations

func (s *PostgresStorage) GetAllResources() ([]models.Resource, error) {
	var resources []models.Resource
	if err := s.db.Order("id asc").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (s *PostgresStorage) GetResource(id uint) (*models.Resource, error) {
	var resource models.Resource
	if err := s.db.First(&resource, id).Error; err != nil {
		return nil, translate(err)
	}
	return &resource, nil
}

func (s *PostgresStorage) CreateResource(resource *models.Resource) error {
	if resource.Language == "" {
		resource.Language = "en"
	}
	return s.db.Create(resource).Error
}

// Chat operations

func (s *PostgresStorage) GetUserChatHistory(userID uint) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := s.db.Where("user_id = ?", userID).Order("id asc").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *PostgresStorage) CreateChatMessage(message *models.ChatMessage) error {
	message.Timestamp = time.Now()
	return s.db.Create(message).Error
}

// translate maps GORM's not-found error to the storage sentinel.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
