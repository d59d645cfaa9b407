package model

import (
	"time"
)

// Transaction represents one append-only ledger row
type Transaction struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	ToUserID    string    `gorm:"not null;size:36;index"`
	Amount      int64     `gorm:"not null"`
	Type        string    `gorm:"not null;size:32"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:ToUserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
