package game

import (
	"context"

	"github.com/amirhossein-jamali/party-bank/internal/domain/catalog"
	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/party-bank/internal/domain/port/core"
	"github.com/amirhossein-jamali/party-bank/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/party-bank/internal/domain/port/usecase"
)

// GameService runs the party mini-games. Every payout goes through the user
// use case so the balance floor is settled the same way for all of them.
type GameService struct {
	users   usecase.UserUseCase
	counter persistence.ScanCounter
	rng     coreport.RandomSource
	metrics coreport.Metrics
	logger  coreport.Logger
}

// NewGameService creates a new GameService
func NewGameService(
	users usecase.UserUseCase,
	counter persistence.ScanCounter,
	rng coreport.RandomSource,
	metrics coreport.Metrics,
	logger coreport.Logger,
) *GameService {
	return &GameService{
		users:   users,
		counter: counter,
		rng:     rng,
		metrics: metrics,
		logger:  logger,
	}
}

// ListTraits returns every trait with its missions
func (s *GameService) ListTraits() []entity.Trait {
	return catalog.Traits()
}

// MissionsForTrait returns the ordered missions of a trait
func (s *GameService) MissionsForTrait(traitID string) ([]entity.MissionTemplate, error) {
	missions, ok := catalog.MissionsForTrait(traitID)
	if !ok {
		return nil, errs.ErrUnknownTrait
	}
	return missions, nil
}

// requireUser fails fast for unknown guests before any counter is touched
func (s *GameService) requireUser(ctx context.Context, userID string) error {
	exists, err := s.users.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.ErrUserNotFound
	}
	return nil
}

// takeSlot increments key and keeps the slot only while the count stays
// within limit. A rejected slot is given back before returning.
func (s *GameService) takeSlot(ctx context.Context, key string, limit int64) (int64, bool, error) {
	n, err := s.counter.Increment(ctx, key)
	if err != nil {
		return 0, false, err
	}
	if n > limit {
		s.releaseSlots(ctx, key)
		return n, false, nil
	}
	return n, true, nil
}

// releaseSlots gives back slots taken for a scan or claim that did not pay
// out. It runs even when the request context has already ended.
func (s *GameService) releaseSlots(ctx context.Context, keys ...string) {
	ctx = context.WithoutCancel(ctx)
	for _, key := range keys {
		if _, err := s.counter.Decrement(ctx, key); err != nil {
			s.logger.Warn("Failed to release counter slot", map[string]any{
				"key":   key,
				"error": err.Error(),
			})
		}
	}
}
