package game

import (
	"context"

	"github.com/amirhossein-jamali/party-bank/internal/domain/catalog"
	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
	"github.com/amirhossein-jamali/party-bank/internal/domain/port/usecase"
)

// DrawRiskCard draws a weighted card from the risk deck and applies its coin change.
// Cards without a coin change leave the balance alone and only report it.
func (s *GameService) DrawRiskCard(ctx context.Context, userID string) (*usecase.RiskDrawResult, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	card, err := catalog.Draw(catalog.RiskDeck(), s.rng)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordCardDraw(string(card.Type))

	s.logger.Debug("Risk card drawn", map[string]any{
		"userId":     userID,
		"cardId":     card.ID,
		"coinChange": card.CoinChange,
	})

	change, err := s.payout(ctx, userID, card.CoinChange, entity.TypeRiskCard, "Risk card: "+card.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.RiskDrawResult{Card: card, Change: change}, nil
}

// payout applies a reward through the user use case. A zero reward reads the
// current balance instead and never touches the floor.
func (s *GameService) payout(
	ctx context.Context,
	userID string,
	amount int64,
	txType entity.TransactionType,
	description string,
) (*usecase.BalanceChange, error) {
	if amount != 0 {
		return s.users.ModifyBalance(ctx, userID, amount, txType, description)
	}

	view, err := s.users.GetUserBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &usecase.BalanceChange{
		UserID:     userID,
		RawBalance: view.Balance,
		Balance:    view.Balance,
		GameOver:   view.State == entity.StateAtFloorExhausted,
	}, nil
}
