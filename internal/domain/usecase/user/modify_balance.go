package user

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
	"github.com/amirhossein-jamali/party-bank/internal/domain/port/usecase"
)

// ModifyBalance applies a signed coin change and settles the balance floor.
//
// The balance update and its ledger entry share one unit of work. The ledger
// records the change actually applied, so a loss that hits the floor is
// recorded only up to the coins the guest had. The floor is settled after
// commit against the raw, unclamped balance.
func (u *UserUseCase) ModifyBalance(
	ctx context.Context,
	userID string,
	delta int64,
	txType entity.TransactionType,
	description string,
) (*usecase.BalanceChange, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.ErrInvalidUserID
	}
	if delta == 0 || delta > MaxCoinChange || delta < -MaxCoinChange {
		return nil, errs.ErrInvalidAmount
	}
	if !txType.IsValid() || txType == entity.TypeRevive || txType == entity.TypeRegistration {
		return nil, errs.ErrInvalidRequest
	}

	previous, raw, err := u.applyCoinChange(ctx, userID, delta, txType, description)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			u.logger.Warn("Attempt to modify balance of non-existent user", map[string]any{
				"userId": userID,
				"type":   string(txType),
			})
			return nil, err
		}
		balanceErr := &errs.BalanceError{UserID: userID, Amount: delta, Reason: "apply coin change", Err: err}
		u.logger.Error("Failed to modify balance", balanceErr.LogFields())
		return nil, balanceErr
	}

	outcome := u.guard.SettleFloor(ctx, userID, raw)

	change := &usecase.BalanceChange{
		UserID:     userID,
		Requested:  delta,
		Applied:    entity.ClampBalance(raw, u.settings.MinBalance) - previous,
		RawBalance: raw,
		Balance:    outcome.NewBalance,
		Revived:    outcome.Revived,
		GameOver:   outcome.GameOver,
	}

	u.logger.Info("User balance modified", map[string]any{
		"userId":     userID,
		"type":       string(txType),
		"requested":  delta,
		"applied":    change.Applied,
		"rawBalance": raw,
		"newBalance": change.Balance,
		"revived":    change.Revived,
		"gameOver":   change.GameOver,
	})
	return change, nil
}

func (u *UserUseCase) applyCoinChange(
	ctx context.Context,
	userID string,
	delta int64,
	txType entity.TransactionType,
	description string,
) (previous, raw int64, err error) {
	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return 0, 0, err
	}

	previous, raw, err = u.uow.UserRepository(txCtx).ApplyCoinChange(txCtx, userID, delta, u.settings.MinBalance)
	if err != nil {
		u.rollback(txCtx, "modify_balance", userID)
		return 0, 0, err
	}

	if applied := entity.ClampBalance(raw, u.settings.MinBalance) - previous; applied != 0 {
		entry := entity.NewTransaction(userID, applied, txType, description, u.timeProvider)
		if err := u.uow.ReviveGateway(txCtx).AppendTransaction(txCtx, entry); err != nil {
			u.rollback(txCtx, "modify_balance", userID)
			return 0, 0, err
		}
	}

	if err := u.uow.Commit(txCtx); err != nil {
		u.rollback(txCtx, "modify_balance", userID)
		return 0, 0, err
	}
	return previous, raw, nil
}
