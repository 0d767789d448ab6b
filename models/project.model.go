package models

import "time"

// Project is a collaborative initiative listing.
type Project struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Title             string     `gorm:"not null" json:"title"`
	Description       string     `gorm:"not null" json:"description"`
	Subject           string     `gorm:"not null" json:"subject"`
	ParticipationType string     `gorm:"not null" json:"participationType"`
	EndDate           *time.Time `json:"endDate"`
	Location          string     `json:"location"`
	Difficulty        int        `gorm:"default:1" json:"difficulty"` // 1 (beginner) to 4 (advanced)
	IsActive          bool       `gorm:"default:true" json:"isActive"`
}
