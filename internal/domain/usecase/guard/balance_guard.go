package guard

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/party-bank/internal/domain/port/core"
	"github.com/amirhossein-jamali/party-bank/internal/domain/port/persistence"
)

// Policy holds the floor constants
type Policy struct {
	ReviveAmount int64
	MinBalance   int64
}

// DefaultPolicy returns the standard floor constants
func DefaultPolicy() Policy {
	return Policy{
		ReviveAmount: entity.ReviveAmount,
		MinBalance:   entity.MinBalance,
	}
}

// BalanceGuard enforces the balance floor and the one-time revive
type BalanceGuard struct {
	gateway      persistence.ReviveGateway
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	metrics      coreport.Metrics
	logger       coreport.Logger
	policy       Policy
}

// NewBalanceGuard creates a new BalanceGuard
func NewBalanceGuard(
	gateway persistence.ReviveGateway,
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	metrics coreport.Metrics,
	logger coreport.Logger,
	policy Policy,
) *BalanceGuard {
	return &BalanceGuard{
		gateway:      gateway,
		uow:          uow,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
		policy:       policy,
	}
}

// NormalizeBalance clamps a raw balance to the floor
func (g *BalanceGuard) NormalizeBalance(raw int64) int64 {
	return entity.ClampBalance(raw, g.policy.MinBalance)
}

// SettleFloor evaluates a raw balance against the floor.
//
// Above the floor nothing is read or written. At the floor the revive flag is
// read; an unspent revive is granted atomically together with its ledger entry
// and notification, a spent one ends the game. A credit that lands between the
// floor hit and the grant wins: the guest stays active at the credited balance
// and keeps the revive. Gateway failures never surface as errors: the caller
// gets the clamped balance and the next floor hit retries.
func (g *BalanceGuard) SettleFloor(ctx context.Context, userID string, raw int64) entity.FloorOutcome {
	safe := g.NormalizeBalance(raw)
	if safe != g.policy.MinBalance {
		g.metrics.RecordFloorOutcome(coreport.FloorOutcomeActive)
		return entity.FloorOutcome{NewBalance: safe}
	}

	hasRevived, err := g.gateway.GetUserRevivedFlag(ctx, userID)
	if err != nil {
		g.logger.Warn("Could not read revive flag, floor settlement deferred", map[string]any{
			"userId":     userID,
			"rawBalance": raw,
			"error":      err.Error(),
		})
		g.metrics.RecordFloorOutcome(coreport.FloorOutcomeReadFailed)
		return entity.FloorOutcome{NewBalance: safe}
	}

	if hasRevived {
		return g.endGame(ctx, userID)
	}

	err = g.grantRevive(ctx, userID)
	var moved *errs.BalanceMovedError
	switch {
	case err == nil:
		g.logger.Info("User revived at balance floor", map[string]any{
			"userId":     userID,
			"rawBalance": raw,
			"amount":     g.policy.ReviveAmount,
		})
		g.metrics.RecordFloorOutcome(coreport.FloorOutcomeRevived)
		return entity.FloorOutcome{Revived: true, NewBalance: g.policy.ReviveAmount}

	case errs.IsAlreadyRevivedError(err):
		g.logger.Info("Revive already spent by a concurrent grant", map[string]any{
			"userId": userID,
		})
		return g.endGame(ctx, userID)

	case errors.As(err, &moved):
		g.logger.Info("Balance left the floor before the revive grant", map[string]any{
			"userId":  userID,
			"balance": moved.Balance,
		})
		g.metrics.RecordFloorOutcome(coreport.FloorOutcomeActive)
		return entity.FloorOutcome{NewBalance: g.NormalizeBalance(moved.Balance)}

	default:
		g.logger.Warn("Revive grant failed, floor settlement deferred", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		g.metrics.RecordFloorOutcome(coreport.FloorOutcomeGrantFailed)
		return entity.FloorOutcome{NewBalance: safe}
	}
}

// grantRevive runs the conditional grant, the ledger entry and the notification
// in one unit of work. Nothing is kept unless all three succeed.
func (g *BalanceGuard) grantRevive(ctx context.Context, userID string) error {
	txCtx, err := g.uow.Begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := g.uow.Rollback(txCtx); rbErr != nil {
			g.logger.Error("Failed to roll back revive grant", map[string]any{
				"userId": userID,
				"error":  rbErr.Error(),
			})
		}
	}()

	gateway := g.uow.ReviveGateway(txCtx)
	amount := g.policy.ReviveAmount

	if err := gateway.ConditionalGrantRevive(txCtx, userID, amount, g.policy.MinBalance); err != nil {
		return err
	}

	entry := entity.NewTransaction(userID, amount, entity.TypeRevive, "One-time revive at zero balance", g.timeProvider)
	if err := gateway.AppendTransaction(txCtx, entry); err != nil {
		return err
	}

	notification := entity.NewReviveNotification(userID, amount, g.timeProvider.Now())
	if err := gateway.AppendNotification(txCtx, notification); err != nil {
		return err
	}

	if err := g.uow.Commit(txCtx); err != nil {
		return err
	}
	committed = true
	return nil
}

// endGame emits the game_over notification. A failed notification is logged;
// the outcome is game over either way.
func (g *BalanceGuard) endGame(ctx context.Context, userID string) entity.FloorOutcome {
	notification := entity.NewGameOverNotification(userID, entity.GameOverReasonAlreadyRevived, g.timeProvider.Now())
	if err := g.gateway.AppendNotification(ctx, notification); err != nil {
		g.logger.Warn("Failed to record game over notification", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
	}

	g.logger.Info("User reached balance floor after revive, game over", map[string]any{
		"userId": userID,
	})
	g.metrics.RecordFloorOutcome(coreport.FloorOutcomeGameOver)
	return entity.FloorOutcome{GameOver: true, NewBalance: g.policy.MinBalance}
}
