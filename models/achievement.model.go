package models

import "time"

// Achievement is an earned badge event. Creating one also credits the
// owning user's points and recomputes their level (1 level per 100 points).
type Achievement struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Points      int       `gorm:"default:0" json:"points"`
	EarnedAt    time.Time `json:"earnedAt"`
	ModuleID    *uint     `json:"moduleId"`
	Type        string    `gorm:"not null" json:"type"`
	Icon        string    `json:"icon"`
}
