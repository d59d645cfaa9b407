package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// UserRepository returns a user repository bound to the current transaction
	UserRepository(ctx context.Context) UserRepository

	// ReviveGateway returns a gateway bound to the current transaction
	ReviveGateway(ctx context.Context) ReviveGateway
}
