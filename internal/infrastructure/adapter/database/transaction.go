package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/party-bank/internal/domain/port/core"
	"github.com/amirhossein-jamali/party-bank/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

type txKey struct{}

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db     *gorm.DB
	logger coreport.Logger
	deps   repository.Deps
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, deps repository.Deps) *UnitOfWork {
	return &UnitOfWork{
		db:     db,
		logger: deps.Logger,
		deps:   deps,
	}
}

// Begin starts a READ COMMITTED transaction. The conditional revive grant
// relies on Postgres re-checking its WHERE clause after a blocking writer
// commits; SERIALIZABLE would fail the loser with 40001 instead.
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, errs.NewGatewayError("begin", "", tx.Error)
	}
	return context.WithValue(ctx, txKey{}, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return errs.NewGatewayError("commit", "", err)
	}
	return nil
}

// Rollback rolls back the current transaction. Rolling back a finished one is not an error.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	err := tx.Rollback().Error
	if errors.Is(err, sql.ErrTxDone) {
		u.logger.Warn("Transaction has already been committed or rolled back", nil)
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return errs.NewGatewayError("rollback", "", err)
	}
	return nil
}

// UserRepository returns a user repository in the current transaction
func (u *UnitOfWork) UserRepository(ctx context.Context) persistence.UserRepository {
	db, deps := u.bind(ctx)
	return repository.NewUserRepository(db, deps)
}

// ReviveGateway returns a revive gateway in the current transaction
func (u *UnitOfWork) ReviveGateway(ctx context.Context) persistence.ReviveGateway {
	db, deps := u.bind(ctx)
	return repository.NewReviveGateway(db, deps)
}

// bind returns the transaction in ctx, or the pool when there is none
func (u *UnitOfWork) bind(ctx context.Context) (*gorm.DB, repository.Deps) {
	deps := u.deps
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		deps.Transactional = true
		return tx, deps
	}
	return u.db, deps
}
