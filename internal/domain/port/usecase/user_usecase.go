package usecase

import (
	"context"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
)

// UserBalance is the balance view of a guest
type UserBalance struct {
	UserID     string
	Name       string
	Balance    int64
	HasRevived bool
	State      entity.FloorState
}

// BalanceChange is the settled result of one coin change
type BalanceChange struct {
	UserID     string
	Requested  int64 // Coin change asked for by the caller
	Applied    int64 // Change actually applied after clamping at the floor
	RawBalance int64 // Unclamped balance the floor was settled against
	Balance    int64 // Balance after settling the floor
	Revived    bool
	GameOver   bool
}

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// RegisterUser creates a guest with the starting balance and a registration ledger entry
	RegisterUser(ctx context.Context, name string) (*entity.User, error)

	// GetUserBalance returns the balance view of a guest
	GetUserBalance(ctx context.Context, userID string) (*UserBalance, error)

	// UserExists checks if a user exists with the given ID
	UserExists(ctx context.Context, userID string) (bool, error)

	// ModifyBalance applies a signed coin change, records it in the ledger and
	// settles the balance floor. Every balance-changing flow goes through here.
	ModifyBalance(ctx context.Context, userID string, delta int64, txType entity.TransactionType, description string) (*BalanceChange, error)
}
