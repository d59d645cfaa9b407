package memstore

import (
	"context"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
)

type userRepo struct {
	store *Store
	tx    *txState
}

// GetByID returns the user as the caller's unit of work sees it
func (r *userRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewGatewayError("get_user", id, err)
	}

	var row userRow
	var ok bool
	if r.tx != nil {
		row, ok = r.tx.read(id)
	} else {
		row, ok = r.store.committedUser(id)
	}
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return row.toEntity(), nil
}

// Create stages a new user row
func (r *userRepo) Create(ctx context.Context, user *entity.User) error {
	return run(r.store, r.tx, func(t *txState) error {
		if err := t.lock(ctx, user.ID); err != nil {
			return err
		}
		if _, exists := t.read(user.ID); exists {
			return errs.ErrDuplicateUser
		}
		t.staged[user.ID] = userRow{
			id:         user.ID,
			name:       user.Name,
			balance:    user.Balance(),
			hasRevived: user.HasRevived,
			createdAt:  user.CreatedAt,
			updatedAt:  user.UpdatedAt,
		}
		return nil
	})
}

// ApplyCoinChange locks the row and stores the balance clamped to floor
func (r *userRepo) ApplyCoinChange(ctx context.Context, userID string, delta, floor int64) (previous, raw int64, err error) {
	err = run(r.store, r.tx, func(t *txState) error {
		row, err := t.forUpdate(ctx, userID)
		if err != nil {
			return err
		}
		r.store.pause(ctx, OpApplyCoinChange, userID)

		previous = row.balance
		raw = previous + delta
		row.balance = entity.ClampBalance(raw, floor)
		row.updatedAt = r.store.timeProvider.Now()
		t.staged[userID] = row
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return previous, raw, nil
}
