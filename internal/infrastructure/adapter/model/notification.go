package model

import (
	"time"
)

// Notification represents a message stored for a guest
type Notification struct {
	ID        string         `gorm:"primaryKey;size:36"`
	UserID    string         `gorm:"not null;size:36;index"`
	Type      string         `gorm:"not null;size:32"`
	Title     string         `gorm:"not null;size:128"`
	Message   string         `gorm:"type:text"`
	Data      map[string]any `gorm:"serializer:json;type:jsonb"`
	IsRead    bool           `gorm:"not null;default:false"`
	CreatedAt time.Time      `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
