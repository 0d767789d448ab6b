package models

import "time"

// Progress tracks how far a user has come in one module. At most one row
// exists per (UserID, ModuleID) pair; writes go through upsert semantics.
type Progress struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	UserID               uint      `gorm:"not null;uniqueIndex:idx_progress_user_module" json:"userId"`
	ModuleID             uint      `gorm:"not null;uniqueIndex:idx_progress_user_module" json:"moduleId"`
	CompletionPercentage int       `gorm:"default:0" json:"completionPercentage"`
	LastAccessed         time.Time `json:"lastAccessed"`
}
