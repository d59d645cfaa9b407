package entity

import (
	"fmt"
	"time"
)

// NotificationType classifies a user notification
type NotificationType string

// Notification types
const (
	NotificationRevive   NotificationType = "revive"
	NotificationGameOver NotificationType = "game_over"
)

// GameOverReasonAlreadyRevived is the data reason of a game over after the revive was spent
const GameOverReasonAlreadyRevived = "already_revived"

// Notification is a message shown to a guest. The UI owns its read lifecycle.
type Notification struct {
	ID        string
	UserID    string
	Type      NotificationType
	Title     string
	Message   string
	Data      map[string]any
	IsRead    bool
	CreatedAt time.Time
}

// NewReviveNotification tells a guest they were revived with amount coins
func NewReviveNotification(userID string, amount int64, now time.Time) *Notification {
	return &Notification{
		UserID:    userID,
		Type:      NotificationRevive,
		Title:     "You've been revived!",
		Message:   fmt.Sprintf("You hit zero, so the bank gave you %d coins. This only happens once.", amount),
		Data:      map[string]any{"amount": amount},
		CreatedAt: now,
	}
}

// NewGameOverNotification tells a guest their balance is at the floor for good
func NewGameOverNotification(userID, reason string, now time.Time) *Notification {
	return &Notification{
		UserID:    userID,
		Type:      NotificationGameOver,
		Title:     "Game over",
		Message:   "You are out of coins and your revive has already been used.",
		Data:      map[string]any{"reason": reason},
		CreatedAt: now,
	}
}
