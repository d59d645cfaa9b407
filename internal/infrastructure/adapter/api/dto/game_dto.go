package dto

import (
	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
	"github.com/amirhossein-jamali/party-bank/internal/domain/port/usecase"
)

// RiskCardDTO is a risk card as shown to guests
type RiskCardDTO struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	Effect         string `json:"effect"`
	Text           string `json:"text"`
	CoinChange     int64  `json:"coinChange"`
	Task           string `json:"task,omitempty"`
	Special        string `json:"special,omitempty"`
	CanDrinkCancel bool   `json:"canDrinkCancel"`
}

// RiskDrawResponse is a drawn card and its effect on the balance
type RiskDrawResponse struct {
	Card   RiskCardDTO            `json:"card"`
	Change *BalanceChangeResponse `json:"change"`
}

// ScanResponse describes what a scanned code paid out
type ScanResponse struct {
	Code     string                 `json:"code"`
	Kind     string                 `json:"kind"`
	Message  string                 `json:"message"`
	Card     *RiskCardDTO           `json:"card,omitempty"`
	ChainID  string                 `json:"chainId,omitempty"`
	Step     int                    `json:"step,omitempty"`
	NextClue string                 `json:"nextClue,omitempty"`
	Change   *BalanceChangeResponse `json:"change"`
}

// MissionClaimRequest names the guest vouching for a mission
type MissionClaimRequest struct {
	ConfirmedBy string `json:"confirmedBy"`
}

// MissionDTO is one mission of a trait
type MissionDTO struct {
	Index                int    `json:"index"`
	Title                string `json:"title"`
	Description          string `json:"description"`
	Reward               int64  `json:"reward"`
	Verification         string `json:"verification"`
	RequiresConfirmation bool   `json:"requiresConfirmation"`
}

// TraitDTO is a trait with its missions
type TraitDTO struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Emoji       string       `json:"emoji"`
	Description string       `json:"description"`
	Missions    []MissionDTO `json:"missions"`
}

// MissionClaimResponse is a rewarded mission
type MissionClaimResponse struct {
	TraitID     string                 `json:"traitId"`
	Index       int                    `json:"index"`
	Mission     MissionDTO             `json:"mission"`
	ConfirmedBy string                 `json:"confirmedBy,omitempty"`
	Change      *BalanceChangeResponse `json:"change"`
}

// NewRiskCardDTO maps a risk card
func NewRiskCardDTO(c entity.RiskCard) RiskCardDTO {
	return RiskCardDTO{
		ID:             c.ID,
		Type:           string(c.Type),
		Effect:         c.Effect,
		Text:           c.Text,
		CoinChange:     c.CoinChange,
		Task:           c.Task,
		Special:        c.Special,
		CanDrinkCancel: c.CanDrinkCancel,
	}
}

// NewRiskDrawResponse maps a draw result
func NewRiskDrawResponse(r *usecase.RiskDrawResult) RiskDrawResponse {
	return RiskDrawResponse{
		Card:   NewRiskCardDTO(r.Card),
		Change: NewBalanceChangeResponse(r.Change),
	}
}

// NewScanResponse maps a scan result
func NewScanResponse(r *usecase.ScanResult) ScanResponse {
	resp := ScanResponse{
		Code:     r.Code,
		Kind:     r.Kind,
		Message:  r.Message,
		ChainID:  r.ChainID,
		Step:     r.Step,
		NextClue: r.NextClue,
		Change:   NewBalanceChangeResponse(r.Change),
	}
	if r.Card != nil {
		card := NewRiskCardDTO(*r.Card)
		resp.Card = &card
	}
	return resp
}

// NewMissionDTO maps a mission template at its index
func NewMissionDTO(index int, m entity.MissionTemplate) MissionDTO {
	return MissionDTO{
		Index:                index,
		Title:                m.Title,
		Description:          m.Description,
		Reward:               m.Reward,
		Verification:         string(m.Verification),
		RequiresConfirmation: m.NeedsConfirmer(),
	}
}

// NewMissionDTOs maps an ordered mission list
func NewMissionDTOs(missions []entity.MissionTemplate) []MissionDTO {
	out := make([]MissionDTO, 0, len(missions))
	for i, m := range missions {
		out = append(out, NewMissionDTO(i, m))
	}
	return out
}

// NewTraitDTOs maps the trait catalog
func NewTraitDTOs(traits []entity.Trait) []TraitDTO {
	out := make([]TraitDTO, 0, len(traits))
	for _, t := range traits {
		out = append(out, TraitDTO{
			ID:          t.ID,
			Name:        t.Name,
			Emoji:       t.Emoji,
			Description: t.Description,
			Missions:    NewMissionDTOs(t.Missions),
		})
	}
	return out
}

// NewMissionClaimResponse maps a claim result
func NewMissionClaimResponse(r *usecase.MissionClaimResult) MissionClaimResponse {
	return MissionClaimResponse{
		TraitID:     r.TraitID,
		Index:       r.Index,
		Mission:     NewMissionDTO(r.Index, r.Mission),
		ConfirmedBy: r.ConfirmedBy,
		Change:      NewBalanceChangeResponse(r.Change),
	}
}
