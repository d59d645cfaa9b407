package dto

import (
	"time"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
	"github.com/amirhossein-jamali/party-bank/internal/domain/port/usecase"
)

// RegisterUserRequest represents the API request for registering a guest
type RegisterUserRequest struct {
	Name string `json:"name" binding:"required,max=64"`
}

// UserResponse represents a newly registered guest
type UserResponse struct {
	UserID     string    `json:"userId"`
	Name       string    `json:"name"`
	Balance    int64     `json:"balance"`
	HasRevived bool      `json:"hasRevived"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BalanceResponse represents the API response for a guest's balance
type BalanceResponse struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Balance    int64  `json:"balance"`
	HasRevived bool   `json:"hasRevived"`
	State      string `json:"state"`
}

// NewUserResponse maps a user entity
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		UserID:     u.ID,
		Name:       u.Name,
		Balance:    u.Balance(),
		HasRevived: u.HasRevived,
		CreatedAt:  u.CreatedAt,
	}
}

// NewBalanceResponse maps a balance view
func NewBalanceResponse(b *usecase.UserBalance) BalanceResponse {
	return BalanceResponse{
		UserID:     b.UserID,
		Name:       b.Name,
		Balance:    b.Balance,
		HasRevived: b.HasRevived,
		State:      string(b.State),
	}
}
