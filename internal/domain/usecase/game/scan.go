package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/party-bank/internal/domain/catalog"
	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
	"github.com/amirhossein-jamali/party-bank/internal/domain/port/usecase"
)

// Counter keys
func hiddenCapKey(code string) string           { return "qr:" + code }
func hiddenClaimKey(code, userID string) string { return "qr:" + code + ":" + userID }
func huntStepKey(chainID string, step int, userID string) string {
	return fmt.Sprintf("hunt:%s:%d:%s", chainID, step, userID)
}

// ScanCode pays out a hidden QR code or a scavenger-hunt step
func (s *GameService) ScanCode(ctx context.Context, userID, code string) (*usecase.ScanResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	kind := catalog.ClassifyCode(code)
	if kind == catalog.CodeUnknown {
		return nil, errs.ErrUnknownCode
	}

	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	if kind == catalog.CodeHunt {
		return s.scanHuntStep(ctx, userID, code)
	}
	return s.scanHiddenQR(ctx, userID, code)
}

func (s *GameService) scanHiddenQR(ctx context.Context, userID, code string) (*usecase.ScanResult, error) {
	entry, ok := catalog.FindHiddenQR(code)
	if !ok {
		return nil, errs.ErrUnknownCode
	}

	// The guest's own claim goes first so a rescan never spends a shared slot
	claimKey, capKey := hiddenClaimKey(code, userID), hiddenCapKey(code)
	_, ok, err := s.takeSlot(ctx, claimKey, 1)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.ErrAlreadyClaimed
	}

	scans, ok, err := s.takeSlot(ctx, capKey, entry.MaxScans)
	if err != nil {
		s.releaseSlots(ctx, claimKey)
		return nil, err
	}
	if !ok {
		s.releaseSlots(ctx, claimKey)
		return nil, errs.ErrScanLimitReached
	}

	result := &usecase.ScanResult{
		Code:    code,
		Kind:    string(catalog.CodeHidden),
		Message: entry.Message,
	}

	var amount int64
	switch entry.RewardType {
	case entity.RewardCoins, entity.RewardTrap:
		amount = entry.RewardAmount
	case entity.RewardCard:
		card, ok := catalog.FindRiskCard(entry.RewardCardID)
		if !ok {
			s.logger.Error("Hidden code references a missing risk card", map[string]any{
				"code":   code,
				"cardId": entry.RewardCardID,
			})
			s.releaseSlots(ctx, capKey, claimKey)
			return nil, errs.ErrInternalServer
		}
		result.Card = &card
		amount = card.CoinChange
	}

	change, err := s.payout(ctx, userID, amount, entity.TypeHiddenQR, "Hidden code: "+code)
	if err != nil {
		s.releaseSlots(ctx, capKey, claimKey)
		return nil, err
	}
	result.Change = change

	s.logger.Info("Hidden code claimed", map[string]any{
		"userId": userID,
		"code":   code,
		"scan":   scans,
		"amount": amount,
	})
	return result, nil
}

func (s *GameService) scanHuntStep(ctx context.Context, userID, code string) (*usecase.ScanResult, error) {
	chain, idx, ok := catalog.FindHuntStep(code)
	if !ok {
		return nil, errs.ErrUnknownCode
	}

	if idx > 0 {
		found, err := s.counter.Count(ctx, huntStepKey(chain.ID, idx-1, userID))
		if err != nil {
			return nil, err
		}
		if found < 1 {
			return nil, errs.ErrHuntOutOfOrder
		}
	}

	stepKey := huntStepKey(chain.ID, idx, userID)
	_, ok, err := s.takeSlot(ctx, stepKey, 1)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.ErrAlreadyClaimed
	}

	step := chain.Steps[idx]
	result := &usecase.ScanResult{
		Code:    code,
		Kind:    string(catalog.CodeHunt),
		ChainID: chain.ID,
		Step:    idx + 1,
	}
	if idx+1 < len(chain.Steps) {
		result.NextClue = chain.Steps[idx+1].Clue
		result.Message = fmt.Sprintf("%s: step %d of %d found.", chain.Name, idx+1, len(chain.Steps))
	} else {
		result.Message = fmt.Sprintf("%s complete!", chain.Name)
	}

	change, err := s.payout(ctx, userID, step.Reward, entity.TypeScavengerHunt,
		fmt.Sprintf("%s step %d", chain.Name, idx+1))
	if err != nil {
		s.releaseSlots(ctx, stepKey)
		return nil, err
	}
	result.Change = change
	return result, nil
}
