package model

import (
	"time"
)

// User represents the database model for guests
type User struct {
	ID         string    `gorm:"primaryKey;size:36"`
	Name       string    `gorm:"not null;size:64"`
	Balance    int64     `gorm:"not null;check:chk_users_balance_floor,balance >= 0"`
	HasRevived bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
