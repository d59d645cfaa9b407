package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/party-bank/internal/domain/port/core"
)

// MaxNameLength bounds a guest display name, in runes
const MaxNameLength = 64

// User represents a guest account holding a coin balance
type User struct {
	ID         string    // Opaque unique identifier
	Name       string    // Display name
	balance    int64     // Coins, never below MinBalance once stored
	HasRevived bool      // Set once when the one-time revive is spent
	CreatedAt  time.Time // When the user was created
	UpdatedAt  time.Time // When the user was last updated
}

// NewUser creates a new guest with the given starting balance
func NewUser(id, name string, startingBalance int64, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.ErrInvalidUserID
	}

	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return nil, errs.ErrInvalidName
	}

	if startingBalance < MinBalance {
		return nil, errs.ErrInvalidAmount
	}

	now := timeProvider.Now()
	return &User{
		ID:        id,
		Name:      name,
		balance:   startingBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreUser rebuilds a user from persisted fields without validation
func RestoreUser(id, name string, balance int64, hasRevived bool, createdAt, updatedAt time.Time) *User {
	return &User{
		ID:         id,
		Name:       name,
		balance:    balance,
		HasRevived: hasRevived,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

// Balance returns the stored coin balance
func (u *User) Balance() int64 {
	return u.balance
}

// ApplyCoinChange adds delta to the balance and returns the raw, unclamped result.
// The stored balance is clamped to floor.
func (u *User) ApplyCoinChange(delta, floor int64, timeProvider coreport.TimeProvider) int64 {
	raw := u.balance + delta
	u.balance = ClampBalance(raw, floor)
	u.UpdatedAt = timeProvider.Now()
	return raw
}

// GrantRevive sets the revive balance and spends the one-time flag
func (u *User) GrantRevive(amount int64, timeProvider coreport.TimeProvider) error {
	if u.HasRevived {
		return errs.ErrAlreadyRevived
	}
	u.balance = amount
	u.HasRevived = true
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// FloorState derives the balance-floor state of the user
func (u *User) FloorState() FloorState {
	return DeriveFloorState(u.balance, u.HasRevived)
}
