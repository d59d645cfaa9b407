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

func missionClaimKey(traitID string, index int, userID string) string {
	return fmt.Sprintf("mission:%s:%d:%s", traitID, index, userID)
}

// ClaimMission rewards a completed mission once per guest. Missions that are
// not on the honor system need another existing guest to confirm them.
func (s *GameService) ClaimMission(
	ctx context.Context,
	userID, traitID string,
	index int,
	confirmedBy string,
) (*usecase.MissionClaimResult, error) {
	mission, ok := catalog.FindMission(traitID, index)
	if !ok {
		if _, traitOK := catalog.FindTrait(traitID); !traitOK {
			return nil, errs.ErrUnknownTrait
		}
		return nil, errs.ErrUnknownMission
	}

	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	confirmedBy = strings.TrimSpace(confirmedBy)
	if mission.NeedsConfirmer() {
		if confirmedBy == "" {
			return nil, errs.ErrConfirmationRequired
		}
		if confirmedBy == userID {
			return nil, errs.ErrSelfConfirmation
		}
		exists, err := s.users.UserExists(ctx, confirmedBy)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, errs.ErrUserNotFound
		}
	}

	claimKey := missionClaimKey(traitID, index, userID)
	_, claimed, err := s.takeSlot(ctx, claimKey, 1)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, errs.ErrAlreadyClaimed
	}

	change, err := s.payout(ctx, userID, mission.Reward, entity.TypeMission, "Mission: "+mission.Title)
	if err != nil {
		s.releaseSlots(ctx, claimKey)
		return nil, err
	}

	s.logger.Info("Mission claimed", map[string]any{
		"userId":      userID,
		"traitId":     traitID,
		"index":       index,
		"confirmedBy": confirmedBy,
		"reward":      mission.Reward,
	})

	return &usecase.MissionClaimResult{
		TraitID:     traitID,
		Index:       index,
		Mission:     mission,
		ConfirmedBy: confirmedBy,
		Change:      change,
	}, nil
}
