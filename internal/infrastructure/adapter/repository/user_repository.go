package repository

import (
	"context"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	base
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, deps Deps) *UserRepository {
	return &UserRepository{base: newBase(db, deps)}
}

func userToEntity(m *model.User) *entity.User {
	return entity.RestoreUser(m.ID, m.Name, m.Balance, m.HasRevived, m.CreatedAt, m.UpdatedAt)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	err := r.read(ctx, "get_user", id, func(db *gorm.DB) error {
		return db.Where("id = ?", id).First(&userModel).Error
	})
	if err != nil {
		return nil, r.classifier.ToDomain("get_user", id, err)
	}

	r.deps.Logger.Debug("User retrieved", map[string]any{
		"user_id": id,
		"balance": userModel.Balance,
	})
	return userToEntity(&userModel), nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		ID:         user.ID,
		Name:       user.Name,
		Balance:    user.Balance(),
		HasRevived: user.HasRevived,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}

	err := r.observe(ctx, "create_user", user.ID, func(db *gorm.DB) error {
		return db.Create(&userModel).Error
	})
	if err != nil {
		mapped := r.classifier.ToDomain("create_user", user.ID, err)
		r.deps.Logger.Error("Failed to create user", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return mapped
	}
	return nil
}

// ApplyCoinChange locks the row with SELECT ... FOR UPDATE, then stores the
// balance clamped to floor. Concurrent changes to one user serialize on the lock.
func (r *UserRepository) ApplyCoinChange(ctx context.Context, userID string, delta, floor int64) (previous, raw int64, err error) {
	var userModel model.User
	apply := func(db *gorm.DB) error {
		if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", userID).
			First(&userModel).Error; err != nil {
			return err
		}

		previous = userModel.Balance
		raw = previous + delta
		return db.Model(&model.User{}).
			Where("id = ?", userID).
			Updates(map[string]any{
				"balance":    entity.ClampBalance(raw, floor),
				"updated_at": r.deps.TimeProvider.Now(),
			}).Error
	}

	err = r.observe(ctx, "apply_coin_change", userID, func(db *gorm.DB) error {
		if r.deps.Transactional {
			return apply(db)
		}
		// The row lock only lasts as long as a transaction
		return db.Transaction(apply)
	})
	if err != nil {
		return 0, 0, r.classifier.ToDomain("apply_coin_change", userID, err)
	}

	r.deps.Logger.Debug("Coin change applied", map[string]any{
		"user_id":  userID,
		"delta":    delta,
		"previous": previous,
		"raw":      raw,
	})
	return previous, raw, nil
}
