package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	ForeignKeyError   ErrorType = "foreign_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// PostgreSQL SQLSTATE codes the classifier understands
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateCheckViolation      = "23514"
	sqlStateNotNullViolation    = "23502"
	sqlStateSerialization       = "40001"
	sqlStateDeadlock            = "40P01"
	sqlStateLockNotAvailable    = "55P03"
	sqlStateQueryCanceled       = "57014"
	sqlStateTooManyConnections  = "53300"
	sqlStateAdminShutdown       = "57P01"
)

// ErrorClassifier provides methods to classify database errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error, or "" when it is not a known database failure
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == sqlStateUniqueViolation:
			return DuplicateKeyError
		case pgErr.Code == sqlStateForeignKeyViolation:
			return ForeignKeyError
		case pgErr.Code == sqlStateCheckViolation || pgErr.Code == sqlStateNotNullViolation:
			return ConstraintError
		case pgErr.Code == sqlStateSerialization || pgErr.Code == sqlStateDeadlock || pgErr.Code == sqlStateLockNotAvailable:
			return LockError
		case pgErr.Code == sqlStateQueryCanceled || pgErr.Code == sqlStateTooManyConnections:
			return TransientError
		case pgErr.Code == sqlStateAdminShutdown || strings.HasPrefix(pgErr.Code, "08"):
			return ConnectionError
		default:
			return ""
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return TransientError
	}
	if pgconn.SafeToRetry(err) {
		return ConnectionError
	}

	// Dial and driver errors that never reached the server carry no SQLSTATE
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "server closed") ||
		strings.Contains(msg, "eof"):
		return ConnectionError
	case strings.Contains(msg, "timeout"):
		return TransientError
	}
	return ""
}

// IsRetryable reports whether a failed read can be attempted again
func (c *ErrorClassifier) IsRetryable(err error) bool {
	switch c.Classify(err) {
	case TransientError, LockError, ConnectionError:
		return true
	default:
		return false
	}
}

// ToDomain maps a database error onto the domain error contract
func (c *ErrorClassifier) ToDomain(operation, userID string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}
	// Already a domain outcome
	if errors.Is(err, errs.ErrUserNotFound) || errors.Is(err, errs.ErrAlreadyRevived) ||
		errors.Is(err, errs.ErrBalanceMoved) || errors.Is(err, errs.ErrDuplicateUser) ||
		errors.Is(err, errs.ErrGatewayUnavailable) {
		return err
	}

	switch c.Classify(err) {
	case DuplicateKeyError:
		return errs.ErrDuplicateUser
	case ForeignKeyError:
		return errs.ErrUserNotFound
	case ConstraintError:
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	default:
		return errs.NewGatewayError(operation, userID, err)
	}
}
