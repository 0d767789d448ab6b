package models

import "gorm.io/datatypes"

// Resource is a downloadable asset descriptor (lab manuals, handbooks, etc.).
type Resource struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `gorm:"not null" json:"description"`
	FileSize       string         `json:"fileSize"` // human readable, e.g. "4.2 MB"
	Subject        string         `gorm:"not null" json:"subject"`
	Tags           datatypes.JSON `json:"tags"`
	DownloadCount  int            `gorm:"default:0" json:"downloadCount"`
	FilePath       string         `gorm:"not null" json:"filePath"`
	Thumbnail      string         `json:"thumbnail"`
	Language       string         `gorm:"default:'en'" json:"language"`
	EducationLevel string         `json:"educationLevel"`
}
