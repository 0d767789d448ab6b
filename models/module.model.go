package models

import "gorm.io/datatypes"

// Module is a single learning unit (lessons, quizzes, reading material).
type Module struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `gorm:"not null" json:"description"`
	Subject        string         `gorm:"not null" json:"subject"`
	Thumbnail      string         `json:"thumbnail"`
	Rating         float32        `gorm:"default:0" json:"rating"`
	StudentCount   int            `gorm:"default:0" json:"studentCount"`
	Content        datatypes.JSON `json:"content"`
	Language       string         `gorm:"default:'en'" json:"language"`
	EducationLevel string         `json:"educationLevel"`
}
