package usecase

import (
	"context"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
)

// BalanceGuard enforces the balance floor and the one-time revive
type BalanceGuard interface {
	// NormalizeBalance clamps a raw balance to the floor
	NormalizeBalance(raw int64) int64

	// SettleFloor evaluates a raw balance against the floor and grants the
	// revive or ends the game. It never fails; gateway errors fold into the outcome.
	SettleFloor(ctx context.Context, userID string, raw int64) entity.FloorOutcome
}
