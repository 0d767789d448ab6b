package storage

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"sciventure/models"
)

// seed fills the in-memory store with demo content so the platform works
// without a database: one demo user with progress, achievements and a chat
// greeting, plus starter modules, projects and resources.
func (s *MemoryStorage) seed() {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[SEED] Failed to hash demo password: %v", err)
		hashed = []byte("password123")
	}

	demoUser := models.User{
		Username:  "anika",
		Password:  string(hashed),
		FirstName: "Anika",
		LastName:  "Rahman",
		Email:     "anika@example.com",
		Language:  "en",
	}
	if err := s.CreateUser(&demoUser); err != nil {
		log.Printf("[SEED] Failed to create demo user: %v", err)
		return
	}

	modules := []models.Module{
		{
			Title:        "Cellular Systems",
			Description:  "Explore the structure and function of cells, the fundamental building blocks of life.",
			Subject:      "Biology",
			Thumbnail:    "https://images.unsplash.com/photo-1516339901601-2e1b62dc0c45",
			Rating:       4.8,
			StudentCount: 2400,
			Content:      datatypes.JSON([]byte(`{"lessons":[]}`)),
		},
		{
			Title:        "Elements & Compounds",
			Description:  "Learn about the periodic table, chemical reactions and atomic structures.",
			Subject:      "Chemistry",
			Thumbnail:    "https://images.unsplash.com/photo-1603126857599-f6e157fa2fe6",
			Rating:       4.6,
			StudentCount: 3200,
			Content:      datatypes.JSON([]byte(`{"lessons":[]}`)),
		},
		{
			Title:        "Motion & Forces",
			Description:  "Discover Newton's laws, motion principles, and the forces that shape our world.",
			Subject:      "Physics",
			Thumbnail:    "https://images.unsplash.com/photo-1576319155264-99536e0be1ee",
			Rating:       4.7,
			StudentCount: 2800,
			Content:      datatypes.JSON([]byte(`{"lessons":[]}`)),
		},
		{
			Title:        "Algebra Fundamentals",
			Description:  "Master the core concepts of algebra, equations, and mathematical reasoning.",
			Subject:      "Mathematics",
			Thumbnail:    "https://images.unsplash.com/photo-1635070041078-e363dbe005cb",
			Rating:       4.5,
			StudentCount: 3500,
			Content:      datatypes.JSON([]byte(`{"lessons":[]}`)),
		},
	}
	for i := range modules {
		s.CreateModule(&modules[i])
	}

	progressItems := []models.Progress{
		{UserID: demoUser.ID, ModuleID: 1, CompletionPercentage: 32},
		{UserID: demoUser.ID, ModuleID: 2, CompletionPercentage: 78},
		{UserID: demoUser.ID, ModuleID: 3, CompletionPercentage: 64},
	}
	for i := range progressItems {
		s.UpsertProgress(&progressItems[i])
	}

	moduleTwo := uint(2)
	achievements := []models.Achievement{
		{
			UserID:      demoUser.ID,
			Title:       "Perfect Quiz Score!",
			Description: "Chemistry: Elements & Compounds",
			Points:      50,
			ModuleID:    &moduleTwo,
			Type:        "quiz",
			Icon:        "check-circle",
		},
		{
			UserID:      demoUser.ID,
			Title:       "5-Day Streak!",
			Description: "Learning consistency bonus",
			Points:      25,
			Type:        "streak",
			Icon:        "zap",
		},
	}
	for i := range achievements {
		s.CreateAchievement(&achievements[i])
	}

	inTwoWeeks := time.Now().Add(14 * 24 * time.Hour)
	inThreeWeeks := time.Now().Add(21 * 24 * time.Hour)
	projects := []models.Project{
		{
			Title:             "Local River Water Quality Analysis",
			Description:       "Collect and analyze water samples from local rivers to monitor pollution levels and biodiversity indicators.",
			Subject:           "Environmental Science",
			ParticipationType: "Open Participation",
			EndDate:           &inTwoWeeks,
			Location:          "Dhaka Region",
			Difficulty:        2,
			IsActive:          true,
		},
		{
			Title:             "Renewable Energy Model Development",
			Description:       "Design and build small-scale renewable energy models to demonstrate alternative power generation.",
			Subject:           "Physics",
			ParticipationType: "By Invitation",
			EndDate:           &inThreeWeeks,
			Location:          "Chittagong",
			Difficulty:        3,
			IsActive:          true,
		},
		{
			Title:             "Night Sky Observation Network",
			Description:       "Create a collaborative observation network to document celestial events and light pollution across Bangladesh.",
			Subject:           "Astronomy",
			ParticipationType: "Open Participation",
			Location:          "Multiple Regions",
			Difficulty:        4,
			IsActive:          true,
		},
	}
	for i := range projects {
		s.CreateProject(&projects[i])
	}

	resources := []models.Resource{
		{
			Title:         "Experimental Biology Lab Manual",
			Description:   "A comprehensive guide to basic biology experiments that can be conducted with minimal equipment. Includes safety guidelines and detailed procedures.",
			FileSize:      "4.2 MB",
			Subject:       "Biology",
			Tags:          datatypes.JSON([]byte(`["Cell Biology","Microscopy","Lab Techniques","Safety Protocols"]`)),
			DownloadCount: 1245,
			FilePath:      "/resources/experimental-biology-lab-manual.pdf",
			Thumbnail:     "https://images.unsplash.com/photo-1581093588401-fbb62a02f120",
		},
		{
			Title:         "Chemistry Formula Handbook",
			Description:   "A comprehensive reference guide containing essential chemistry formulas, equations, and periodic table information for offline study.",
			FileSize:      "3.8 MB",
			Subject:       "Chemistry",
			Tags:          datatypes.JSON([]byte(`["Organic Chemistry","Periodic Table","Chemical Reactions","Formulas"]`)),
			DownloadCount: 2143,
			FilePath:      "/resources/chemistry-formula-handbook.pdf",
			Thumbnail:     "https://images.unsplash.com/photo-1532634922-8fe0b757fb13",
		},
	}
	for i := range resources {
		s.CreateResource(&resources[i])
	}

	s.CreateChatMessage(&models.ChatMessage{
		UserID:   demoUser.ID,
		Message:  "Hello! I need help with a science question.",
		Response: "Hello! I'm your science research assistant. How can I help you today?",
	})
}
