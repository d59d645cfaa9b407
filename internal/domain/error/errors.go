package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount        = 4002
	CodeInvalidUserID        = 4003
	CodeInvalidName          = 4004
	CodeConstraintViolation  = 4005
	CodeInvalidRequest       = 4006
	CodeConfirmationRequired = 4007
	CodeSelfConfirmation     = 4008
	CodeUserNotFound         = 4040
	CodeUnknownCode          = 4041
	CodeUnknownTrait         = 4042
	CodeUnknownMission       = 4043
	CodeDuplicateUser        = 4090
	CodeScanLimitReached     = 4091
	CodeAlreadyClaimed       = 4092
	CodeHuntOutOfOrder       = 4093
	CodeRateLimited          = 4290

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeEmptyCatalog       = 5001
	CodeGatewayUnavailable = 5030
)

// Base error types
var (
	// ErrInvalidAmount is returned when a coin change is zero or otherwise unusable
	ErrInvalidAmount = errors.New("amount must be a non-zero integer")

	// ErrInvalidUserID is returned when the user ID is empty or malformed
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrInvalidName is returned when a guest registers without a usable name
	ErrInvalidName = errors.New("name must be between 1 and 64 characters")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrAlreadyRevived is returned by the gateway when the one-time revive has been spent.
	// A conditional grant that lost a race reports this too.
	ErrAlreadyRevived = errors.New("user has already been revived")

	// ErrBalanceMoved is returned by a conditional grant when the balance left the
	// floor after settlement started. The revive stays unspent.
	ErrBalanceMoved = errors.New("balance moved off the floor")

	// ErrGatewayUnavailable is returned when the persistence gateway cannot be reached or times out
	ErrGatewayUnavailable = errors.New("persistence gateway unavailable")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrUnknownCode is returned for scan codes that belong to no catalog
	ErrUnknownCode = errors.New("unknown scan code")

	// ErrUnknownTrait is returned when a trait id is not in the catalog
	ErrUnknownTrait = errors.New("unknown trait")

	// ErrUnknownMission is returned when a mission index is out of range for a trait
	ErrUnknownMission = errors.New("unknown mission")

	// ErrScanLimitReached is returned when a hidden QR code has hit its scan cap
	ErrScanLimitReached = errors.New("scan limit reached for this code")

	// ErrAlreadyClaimed is returned when a guest claims the same reward twice
	ErrAlreadyClaimed = errors.New("reward already claimed")

	// ErrHuntOutOfOrder is returned when a hunt step is scanned before its predecessor
	ErrHuntOutOfOrder = errors.New("previous hunt step has not been found yet")

	// ErrConfirmationRequired is returned when a mission needs a confirming guest
	ErrConfirmationRequired = errors.New("mission requires confirmation by another guest")

	// ErrSelfConfirmation is returned when a guest tries to confirm their own mission
	ErrSelfConfirmation = errors.New("guests cannot confirm their own missions")

	// ErrEmptyCatalog is returned when a draw is attempted over an empty table
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrRateLimited is returned when a client sends requests too quickly
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidName):
		return CodeInvalidName
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrConfirmationRequired):
		return CodeConfirmationRequired
	case errors.Is(err, ErrSelfConfirmation):
		return CodeSelfConfirmation
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrUnknownCode):
		return CodeUnknownCode
	case errors.Is(err, ErrUnknownTrait):
		return CodeUnknownTrait
	case errors.Is(err, ErrUnknownMission):
		return CodeUnknownMission
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrScanLimitReached):
		return CodeScanLimitReached
	case errors.Is(err, ErrAlreadyClaimed):
		return CodeAlreadyClaimed
	case errors.Is(err, ErrHuntOutOfOrder):
		return CodeHuntOutOfOrder
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrEmptyCatalog):
		return CodeEmptyCatalog
	case errors.Is(err, ErrGatewayUnavailable):
		return CodeGatewayUnavailable
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	default:
		return CodeInternalServer
	}
}

// BalanceError represents a failed coin change for a user
type BalanceError struct {
	UserID string
	Amount int64
	Reason string
	Err    error
}

// Error implements the error interface for BalanceError
func (e *BalanceError) Error() string {
	return fmt.Sprintf("coin change of %d failed for user %s: %s: %v", e.Amount, e.UserID, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *BalanceError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *BalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "balance_error",
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewBalanceError wraps err with the user and amount of the failed coin change
func NewBalanceError(userID string, amount int64, reason string, err error) error {
	return &BalanceError{
		UserID: userID,
		Amount: amount,
		Reason: reason,
		Err:    err,
	}
}

// GatewayError carries the operation that failed against the persistence gateway
type GatewayError struct {
	Operation string
	UserID    string
	Err       error
}

// Error implements the error interface
func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway operation %s failed for user %s: %v", e.Operation, e.UserID, e.Err)
}

// Unwrap returns the underlying error
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrGatewayUnavailable
func (e *GatewayError) Is(target error) bool {
	return target == ErrGatewayUnavailable
}

// NewGatewayError creates a transport-level gateway error
func NewGatewayError(operation, userID string, err error) error {
	return &GatewayError{
		Operation: operation,
		UserID:    userID,
		Err:       err,
	}
}

// BalanceMovedError reports the balance found by a conditional grant that
// matched no row at the floor
type BalanceMovedError struct {
	UserID  string
	Balance int64
}

// Error implements the error interface
func (e *BalanceMovedError) Error() string {
	return fmt.Sprintf("%v: user %s now holds %d", ErrBalanceMoved, e.UserID, e.Balance)
}

// Is reports whether target is ErrBalanceMoved
func (e *BalanceMovedError) Is(target error) bool {
	return target == ErrBalanceMoved
}

// NewBalanceMovedError creates a BalanceMovedError
func NewBalanceMovedError(userID string, balance int64) error {
	return &BalanceMovedError{UserID: userID, Balance: balance}
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsAlreadyRevivedError checks if the error reports a spent revive
func IsAlreadyRevivedError(err error) bool {
	return errors.Is(err, ErrAlreadyRevived)
}

// IsGatewayUnavailableError checks if the error is a transport failure of the gateway
func IsGatewayUnavailableError(err error) bool {
	return errors.Is(err, ErrGatewayUnavailable)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrUnknownCode) ||
		errors.Is(err, ErrUnknownTrait) ||
		errors.Is(err, ErrUnknownMission)
}

// IsConflictError checks if the error is a claim or limit conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateUser) ||
		errors.Is(err, ErrScanLimitReached) ||
		errors.Is(err, ErrAlreadyClaimed) ||
		errors.Is(err, ErrHuntOutOfOrder)
}

// IsValidationError checks if the error is caused by bad caller input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrConfirmationRequired) ||
		errors.Is(err, ErrSelfConfirmation)
}
