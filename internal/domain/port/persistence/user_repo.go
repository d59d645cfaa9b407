package persistence

import (
	"context"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrGatewayUnavailable: If the store cannot be reached
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// Create stores a newly registered user
	//
	// Possible errors:
	// - ErrDuplicateUser: If user with same ID already exists
	// - ErrGatewayUnavailable: If the store cannot be reached
	Create(ctx context.Context, user *entity.User) error

	// ApplyCoinChange locks the user row, adds delta to the balance and stores
	// the result clamped to floor. It returns the previous balance and the raw,
	// unclamped new balance so the caller can record the effective change and
	// settle the floor.
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrGatewayUnavailable: If the store cannot be reached
	ApplyCoinChange(ctx context.Context, userID string, delta, floor int64) (previous, raw int64, err error)
}
