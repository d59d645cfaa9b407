package memstore

import (
	"context"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
)

type reviveGateway struct {
	store *Store
	tx    *txState
}

// GetUserRevivedFlag reads the committed flag, or the staged one inside a unit of work
func (g *reviveGateway) GetUserRevivedFlag(ctx context.Context, userID string) (bool, error) {
	g.store.pause(ctx, OpReadRevivedFlag, userID)
	if err := ctx.Err(); err != nil {
		return false, errs.NewGatewayError(OpReadRevivedFlag, userID, err)
	}

	var row userRow
	var ok bool
	if g.tx != nil {
		row, ok = g.tx.read(userID)
	} else {
		row, ok = g.store.committedUser(userID)
	}
	if !ok {
		return false, errs.ErrUserNotFound
	}
	return row.hasRevived, nil
}

// ConditionalGrantRevive waits for the row lock and grants only if the flag is
// still false and the balance has not left the floor. A caller that queued
// behind a winning grant sees the flag set.
func (g *reviveGateway) ConditionalGrantRevive(ctx context.Context, userID string, amount, floor int64) error {
	return run(g.store, g.tx, func(t *txState) error {
		row, err := t.forUpdate(ctx, userID)
		if err != nil {
			return err
		}
		g.store.pause(ctx, OpConditionalGrant, userID)

		if row.hasRevived {
			return errs.ErrAlreadyRevived
		}
		if row.balance > floor {
			return errs.NewBalanceMovedError(userID, row.balance)
		}
		row.balance = amount
		row.hasRevived = true
		row.updatedAt = g.store.timeProvider.Now()
		t.staged[userID] = row
		return nil
	})
}

// AppendTransaction stages a ledger entry; its ID is assigned on commit
func (g *reviveGateway) AppendTransaction(ctx context.Context, tx *entity.Transaction) error {
	return run(g.store, g.tx, func(t *txState) error {
		if err := ctx.Err(); err != nil {
			return errs.NewGatewayError("append_transaction", tx.ToUserID, err)
		}
		entry := *tx
		t.txs = append(t.txs, &entry)
		return nil
	})
}

// AppendNotification stages a notification; an empty ID is assigned on commit
func (g *reviveGateway) AppendNotification(ctx context.Context, notification *entity.Notification) error {
	return run(g.store, g.tx, func(t *txState) error {
		if err := ctx.Err(); err != nil {
			return errs.NewGatewayError("append_notification", notification.UserID, err)
		}
		n := *notification
		t.notes = append(t.notes, &n)
		return nil
	})
}
