package models

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	Password  string `gorm:"not null" json:"-"` // never serialized, stored as a bcrypt hash
	FirstName string `gorm:"default:''" json:"firstName"`
	LastName  string `gorm:"default:''" json:"lastName"`
	Email     string `gorm:"default:''" json:"email"`
	Points    int    `gorm:"default:0" json:"points"`
	Level     int    `gorm:"default:1" json:"level"`
	Language  string `gorm:"default:'en'" json:"language"`
}
