package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviveGateway implements the revive persistence contract using GORM
type ReviveGateway struct {
	base
}

// NewReviveGateway creates a new ReviveGateway instance
func NewReviveGateway(db *gorm.DB, deps Deps) *ReviveGateway {
	return &ReviveGateway{base: newBase(db, deps)}
}

// GetUserRevivedFlag reads has_revived
func (g *ReviveGateway) GetUserRevivedFlag(ctx context.Context, userID string) (bool, error) {
	var userModel model.User
	err := g.read(ctx, "read_revive_flag", userID, func(db *gorm.DB) error {
		return db.Select("id", "has_revived").Where("id = ?", userID).First(&userModel).Error
	})
	if err != nil {
		return false, g.classifier.ToDomain("read_revive_flag", userID, err)
	}
	return userModel.HasRevived, nil
}

// ConditionalGrantRevive runs
//
//	UPDATE users SET balance = ?, has_revived = true
//	WHERE id = ? AND has_revived = false AND balance <= ?
//
// Under READ COMMITTED a second writer blocks on the row and re-checks the
// predicate after the first commits, so at most one grant per user succeeds,
// and a credit committed after the floor hit keeps the revive unspent.
// Zero affected rows is classified by re-reading the row.
func (g *ReviveGateway) ConditionalGrantRevive(ctx context.Context, userID string, amount, floor int64) error {
	err := g.observe(ctx, "conditional_grant", userID, func(db *gorm.DB) error {
		result := db.Model(&model.User{}).
			Where("id = ? AND has_revived = ? AND balance <= ?", userID, false, floor).
			Updates(map[string]any{
				"balance":     amount,
				"has_revived": true,
				"updated_at":  g.deps.TimeProvider.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 1 {
			return nil
		}

		var current model.User
		err := db.Select("id", "balance", "has_revived").Where("id = ?", userID).First(&current).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrUserNotFound
		}
		if err != nil {
			return err
		}
		if current.HasRevived {
			return errs.ErrAlreadyRevived
		}
		return errs.NewBalanceMovedError(userID, current.Balance)
	})
	return g.classifier.ToDomain("conditional_grant", userID, err)
}

// AppendTransaction inserts a ledger row and copies the assigned ID back
func (g *ReviveGateway) AppendTransaction(ctx context.Context, tx *entity.Transaction) error {
	row := model.Transaction{
		ToUserID:    tx.ToUserID,
		Amount:      tx.Amount,
		Type:        string(tx.Type),
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt,
	}
	err := g.observe(ctx, "append_transaction", tx.ToUserID, func(db *gorm.DB) error {
		return db.Omit("User").Create(&row).Error
	})
	if err != nil {
		return g.classifier.ToDomain("append_transaction", tx.ToUserID, err)
	}
	tx.ID = row.ID
	return nil
}

// AppendNotification inserts a notification, assigning a UUID when none is set
func (g *ReviveGateway) AppendNotification(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	row := model.Notification{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Type:      string(notification.Type),
		Title:     notification.Title,
		Message:   notification.Message,
		Data:      notification.Data,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
	err := g.observe(ctx, "append_notification", notification.UserID, func(db *gorm.DB) error {
		return db.Omit("User").Create(&row).Error
	})
	return g.classifier.ToDomain("append_notification", notification.UserID, err)
}
