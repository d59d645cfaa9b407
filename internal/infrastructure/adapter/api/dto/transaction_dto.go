package dto

import "github.com/amirhossein-jamali/party-bank/internal/domain/port/usecase"

// TransactionRequest represents a manual coin adjustment. Zero is rejected by binding.
type TransactionRequest struct {
	Amount      int64  `json:"amount" binding:"required"`
	Description string `json:"description" binding:"max=200"`
}

// BalanceChangeResponse is the settled result of any coin change
type BalanceChangeResponse struct {
	UserID    string `json:"userId"`
	Requested int64  `json:"requested"`
	Applied   int64  `json:"applied"`
	Balance   int64  `json:"balance"`
	Revived   bool   `json:"revived"`
	GameOver  bool   `json:"gameOver"`
}

// NewBalanceChangeResponse maps a settled change; nil stays nil
func NewBalanceChangeResponse(c *usecase.BalanceChange) *BalanceChangeResponse {
	if c == nil {
		return nil
	}
	return &BalanceChangeResponse{
		UserID:    c.UserID,
		Requested: c.Requested,
		Applied:   c.Applied,
		Balance:   c.Balance,
		Revived:   c.Revived,
		GameOver:  c.GameOver,
	}
}
