package persistence

import (
	"context"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
)

// ReviveGateway is the persistence contract consumed by the balance guard
type ReviveGateway interface {
	// GetUserRevivedFlag reads the one-time revive flag
	//
	// Possible errors:
	// - ErrUserNotFound: If the user doesn't exist
	// - ErrGatewayUnavailable: On transport failure or timeout
	GetUserRevivedFlag(ctx context.Context, userID string) (bool, error)

	// ConditionalGrantRevive sets balance to amount and flips the revive flag,
	// only if the flag is still false and the balance is still at or below floor
	// at write time
	//
	// Possible errors:
	// - ErrAlreadyRevived: If the flag was already true (including a lost race)
	// - *BalanceMovedError: If a concurrent credit lifted the balance above floor
	// - ErrUserNotFound: If the user doesn't exist
	// - ErrGatewayUnavailable: On transport failure or timeout
	ConditionalGrantRevive(ctx context.Context, userID string, amount, floor int64) error

	// AppendTransaction appends a ledger entry
	//
	// Possible errors:
	// - ErrGatewayUnavailable: On transport failure or timeout
	AppendTransaction(ctx context.Context, tx *entity.Transaction) error

	// AppendNotification appends a notification. An empty ID is assigned by the store.
	//
	// Possible errors:
	// - ErrGatewayUnavailable: On transport failure or timeout
	AppendNotification(ctx context.Context, notification *entity.Notification) error
}
