package user

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/party-bank/internal/domain/port/core"
	"github.com/amirhossein-jamali/party-bank/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/party-bank/internal/domain/port/usecase"
)

// MaxCoinChange bounds the magnitude of a single coin change
const MaxCoinChange int64 = 1_000_000

// Settings holds the bank amounts used by the user use case
type Settings struct {
	StartingBalance int64
	MinBalance      int64
}

// DefaultSettings returns the standard party bank amounts
func DefaultSettings() Settings {
	return Settings{
		StartingBalance: 20,
		MinBalance:      entity.MinBalance,
	}
}

// UserUseCase handles guest accounts and every coin change
type UserUseCase struct {
	userRepo     persistence.UserRepository
	uow          persistence.UnitOfWork
	guard        usecase.BalanceGuard
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	settings     Settings
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	uow persistence.UnitOfWork,
	guard usecase.BalanceGuard,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	settings Settings,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		uow:          uow,
		guard:        guard,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
		settings:     settings,
	}
}

// UserExists checks if a user with the given ID exists
func (u *UserUseCase) UserExists(ctx context.Context, userID string) (bool, error) {
	if strings.TrimSpace(userID) == "" {
		return false, errs.ErrInvalidUserID
	}

	_, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetUserBalance returns the balance view of a guest
func (u *UserUseCase) GetUserBalance(ctx context.Context, userID string) (*usecase.UserBalance, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.ErrInvalidUserID
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, errs.ErrUserNotFound) {
			u.logger.Error("Failed to get user", map[string]any{
				"userId": userID,
				"error":  err.Error(),
			})
		}
		return nil, err
	}

	return &usecase.UserBalance{
		UserID:     user.ID,
		Name:       user.Name,
		Balance:    user.Balance(),
		HasRevived: user.HasRevived,
		State:      user.FloorState(),
	}, nil
}

// rollback undoes a unit of work and logs if that fails too
func (u *UserUseCase) rollback(txCtx context.Context, operation, userID string) {
	if err := u.uow.Rollback(txCtx); err != nil {
		u.logger.Error("Failed to roll back unit of work", map[string]any{
			"operation": operation,
			"userId":    userID,
			"error":     err.Error(),
		})
	}
}
