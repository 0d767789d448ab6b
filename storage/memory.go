package storage

import (
	"sort"
	"sync"
	"time"

	"sciventure/models"
)

// MemoryStorage keeps everything in process-wide maps. It is selected when no
// DATABASE_URL is configured and comes pre-seeded with demo data so the API
// is usable without a database. All mutation happens under one mutex, so
// concurrent achievement grants for the same user cannot lose point updates.
type MemoryStorage struct {
	mu sync.Mutex

	users        map[uint]models.User
	modules      map[uint]models.Module
	progress     map[uint]models.Progress
	achievements map[uint]models.Achievement
	projects     map[uint]models.Project
	resources    map[uint]models.Resource
	chatMessages map[uint]models.ChatMessage

	userID        uint
	moduleID      uint
	progressID    uint
	achievementID uint
	projectID     uint
	resourceID    uint
	chatMessageID uint
}

// NewMemoryStorage creates a seeded in-memory store.
func NewMemoryStorage() *MemoryStorage {
	s := NewEmptyMemoryStorage()
	s.seed()
	return s
}

// NewEmptyMemoryStorage creates an unseeded in-memory store, used by tests.
func NewEmptyMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:        make(map[uint]models.User),
		modules:      make(map[uint]models.Module),
		progress:     make(map[uint]models.Progress),
		achievements: make(map[uint]models.Achievement),
		projects:     make(map[uint]models.Project),
		resources:    make(map[uint]models.Resource),
		chatMessages: make(map[uint]models.ChatMessage),
	}
}

// User operations

func (s *MemoryStorage) GetUser(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStorage) GetUserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == user.Username {
			return ErrUsernameTaken
		}
	}
	s.userID++
	user.ID = s.userID
	user.Points = 0
	user.Level = 1
	if user.Language == "" {
		user.Language = "en"
	}
	s.users[user.ID] = *user
	return nil
}

// Module operations

func (s *MemoryStorage) GetAllModules() ([]models.Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	modules := make([]models.Module, 0, len(s.modules))
	for _, module := range s.modules {
		modules = append(modules, module)
	}
	sort.Slice(modules, func(i, j int) bool { return modules[i].ID < modules[j].ID })
	return modules, nil
}

func (s *MemoryStorage) GetModule(id uint) (*models.Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	module, ok := s.modules[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &module, nil
}

func (s *MemoryStorage) CreateModule(module *models.Module) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moduleID++
	module.ID = s.moduleID
	if module.Language == "" {
		module.Language = "en"
	}
	s.modules[module.ID] = *module
	return nil
}

// Progress operations

func (s *MemoryStorage) GetUserProgress(userID uint) ([]models.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.Progress, 0)
	for _, item := range s.progress {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *MemoryStorage) GetModuleProgress(userID, moduleID uint) (*models.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moduleProgressLocked(userID, moduleID)
}

func (s *MemoryStorage) moduleProgressLocked(userID, moduleID uint) (*models.Progress, error) {
	for _, item := range s.progress {
		if item.UserID == userID && item.ModuleID == moduleID {
			p := item
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) UpsertProgress(item *models.Progress) (*models.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.moduleProgressLocked(item.UserID, item.ModuleID)
	if err == nil {
		existing.CompletionPercentage = item.CompletionPercentage
		existing.LastAccessed = time.Now()
		s.progress[existing.ID] = *existing
		return existing, nil
	}

	s.progressID++
	item.ID = s.progressID
	item.LastAccessed = time.Now()
	s.progress[item.ID] = *item
	return item, nil
}

// Achievement operations

func (s *MemoryStorage) GetUserAchievements(userID uint) ([]models.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.Achievement, 0)
	for _, item := range s.achievements {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *MemoryStorage) CreateAchievement(achievement *models.Achievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.achievementID++
	achievement.ID = s.achievementID
	achievement.EarnedAt = time.Now()
	s.achievements[achievement.ID] = *achievement

	// Credit the owning user while still holding the lock, so two grants for
	// the same user cannot race on the points read-modify-write.
	if user, ok := s.users[achievement.UserID]; ok {
		user.Points += achievement.Points
		user.Level = LevelForPoints(user.Points)
		s.users[user.ID] = user
	}
	return nil
}

// Project operations

func (s *MemoryStorage) GetAllProjects() ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	projects := make([]models.Project, 0, len(s.projects))
	for _, project := range s.projects {
		projects = append(projects, project)
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })
	return projects, nil
}

func (s *MemoryStorage) GetProject(id uint) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, ok := s.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &project, nil
}

func (s *MemoryStorage) CreateProject(project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projectID++
	project.ID = s.projectID
	s.projects[project.ID] = *project
	return nil
}

// Resource operations

func (s *MemoryStorage) GetAllResources() ([]models.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resources := make([]models.Resource, 0, len(s.resources))
	for _, resource := range s.resources {
		resources = append(resources, resource)
	}
	sort.Slice(resources, func(i, j int) bool { return resources[i].ID < resources[j].ID })
	return resources, nil
}

func (s *MemoryStorage) GetResource(id uint) (*models.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resource, ok := s.resources[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &resource, nil
}

func (s *MemoryStorage) CreateResource(resource *models.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resourceID++
	resource.ID = s.resourceID
	if resource.Language == "" {
		resource.Language = "en"
	}
	s.resources[resource.ID] = *resource
	return nil
}

// Chat operations

func (s *MemoryStorage) GetUserChatHistory(userID uint) ([]models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := make([]models.ChatMessage, 0)
	for _, message := range s.chatMessages {
		if message.UserID == userID {
			messages = append(messages, message)
		}
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID < messages[j].ID })
	return messages, nil
}

func (s *MemoryStorage) CreateChatMessage(message *models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatMessageID++
	message.ID = s.chatMessageID
	message.Timestamp = time.Now()
	s.chatMessages[message.ID] = *message
	return nil
}
