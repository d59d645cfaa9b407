package repository

import (
	"context"
	"errors"
	"time"

	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/party-bank/internal/domain/port/core"
	"gorm.io/gorm"
)

// Options tunes the GORM repositories
type Options struct {
	QueryTimeout  time.Duration // Per statement; zero leaves the deadline to the caller
	SlowThreshold time.Duration
	Retry         RetryConfig // Applied to reads outside a unit of work
}

// DefaultOptions returns the repository defaults
func DefaultOptions() Options {
	return Options{
		QueryTimeout:  5 * time.Second,
		SlowThreshold: 200 * time.Millisecond,
		Retry:         DefaultRetryConfig(),
	}
}

// Deps groups the collaborators shared by the GORM repositories
type Deps struct {
	TimeProvider coreport.TimeProvider
	Metrics      coreport.Metrics
	Logger       coreport.Logger
	Options      Options
	// Transactional is set when the handle is an open transaction. Reads are
	// then never retried, since a failed statement aborts the transaction.
	Transactional bool
}

// base carries the handle and the instrumentation of one repository
type base struct {
	db         *gorm.DB
	deps       Deps
	classifier *ErrorClassifier
}

func newBase(db *gorm.DB, deps Deps) base {
	return base{db: db, deps: deps, classifier: NewErrorClassifier()}
}

// observe runs one statement under the query timeout, records it and warns on slow queries
func (b *base) observe(ctx context.Context, operation, userID string, fn func(db *gorm.DB) error) error {
	queryCtx, cancel := b.deps.TimeProvider.WithTimeout(ctx, coreport.Duration(b.deps.Options.QueryTimeout))
	defer cancel()

	start := b.deps.TimeProvider.Now()
	err := fn(b.db.WithContext(queryCtx))
	elapsed := b.deps.TimeProvider.Since(start).Std()

	b.deps.Metrics.RecordGatewayOperation(operation, isFailure(err), elapsed)
	if b.deps.Options.SlowThreshold > 0 && elapsed > b.deps.Options.SlowThreshold {
		b.deps.Logger.Warn("Slow database query detected", map[string]any{
			"operation":   operation,
			"user_id":     userID,
			"duration_ms": elapsed.Milliseconds(),
			"failed":      err != nil,
		})
	}
	return err
}

// read wraps observe in the retry policy unless the handle is a transaction
func (b *base) read(ctx context.Context, operation, userID string, fn func(db *gorm.DB) error) error {
	if b.deps.Transactional {
		return b.observe(ctx, operation, userID, fn)
	}
	return RetryOnTransientError(ctx, b.deps.Options.Retry, b.classifier, b.deps.Logger, func(ctx context.Context) error {
		return b.observe(ctx, operation, userID, fn)
	})
}

// isFailure reports transport failures; domain outcomes are not failures of the gateway
func isFailure(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, gorm.ErrRecordNotFound) &&
		!errors.Is(err, errs.ErrUserNotFound) &&
		!errors.Is(err, errs.ErrAlreadyRevived) &&
		!errors.Is(err, errs.ErrBalanceMoved)
}
