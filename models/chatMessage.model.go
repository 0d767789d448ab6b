package models

import "time"

// ChatMessage is one turn-pair of a Curio conversation: the user's text and
// the assistant's reply. Append-only; read back in insertion order as history.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Message   string    `gorm:"not null" json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
