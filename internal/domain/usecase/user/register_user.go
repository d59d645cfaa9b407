package user

import (
	"context"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
)

// RegisterUser creates a guest with the starting balance. The user row and its
// registration ledger entry are written in one unit of work.
func (u *UserUseCase) RegisterUser(ctx context.Context, name string) (*entity.User, error) {
	user, err := entity.NewUser(u.idGenerator.NewID(), name, u.settings.StartingBalance, u.timeProvider)
	if err != nil {
		return nil, err
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	if err := u.uow.UserRepository(txCtx).Create(txCtx, user); err != nil {
		u.rollback(txCtx, "register", user.ID)
		u.logger.Error("Failed to create user", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return nil, err
	}

	entry := entity.NewTransaction(user.ID, user.Balance(), entity.TypeRegistration, "Welcome to the party", u.timeProvider)
	if err := u.uow.ReviveGateway(txCtx).AppendTransaction(txCtx, entry); err != nil {
		u.rollback(txCtx, "register", user.ID)
		u.logger.Error("Failed to record registration", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return nil, err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		u.rollback(txCtx, "register", user.ID)
		return nil, err
	}

	u.logger.Info("Guest registered", map[string]any{
		"userId":          user.ID,
		"name":            user.Name,
		"startingBalance": user.Balance(),
	})
	return user, nil
}
