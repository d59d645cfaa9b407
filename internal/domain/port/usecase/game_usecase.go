package usecase

import (
	"context"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
)

// RiskDrawResult is a drawn risk card with its settled coin change
type RiskDrawResult struct {
	Card   entity.RiskCard
	Change *BalanceChange
}

// ScanResult describes what a scanned code paid out
type ScanResult struct {
	Code     string
	Kind     string
	Message  string
	Card     *entity.RiskCard
	ChainID  string
	Step     int
	NextClue string
	Change   *BalanceChange
}

// MissionClaimResult is a rewarded mission
type MissionClaimResult struct {
	TraitID     string
	Index       int
	Mission     entity.MissionTemplate
	ConfirmedBy string
	Change      *BalanceChange
}

// GameUseCase defines the mini-game operations that move coins
type GameUseCase interface {
	// DrawRiskCard draws a weighted risk card and applies its coin change
	DrawRiskCard(ctx context.Context, userID string) (*RiskDrawResult, error)

	// ScanCode pays out a hidden QR code or scavenger-hunt step
	ScanCode(ctx context.Context, userID, code string) (*ScanResult, error)

	// ClaimMission rewards a completed trait mission once per guest
	ClaimMission(ctx context.Context, userID, traitID string, index int, confirmedBy string) (*MissionClaimResult, error)

	// ListTraits returns every trait with its missions
	ListTraits() []entity.Trait

	// MissionsForTrait returns the ordered missions of a trait
	MissionsForTrait(traitID string) ([]entity.MissionTemplate, error)
}
