package memstore

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
	"github.com/amirhossein-jamali/party-bank/internal/domain/port/persistence"
)

type txKey struct{}

var (
	errNoTransaction = errors.New("memstore: no transaction in context")
	errTxClosed      = errors.New("memstore: transaction has already been committed or rolled back")
)

// txState is one unit of work: the row locks it holds and the writes it staged
type txState struct {
	store  *Store
	locked map[string]bool
	staged map[string]userRow
	txs    []*entity.Transaction
	notes  []*entity.Notification
	done   bool
}

func newTxState(store *Store) *txState {
	return &txState{
		store:  store,
		locked: make(map[string]bool),
		staged: make(map[string]userRow),
	}
}

// lock takes the row lock for userID once per unit of work
func (t *txState) lock(ctx context.Context, userID string) error {
	if t.locked[userID] {
		return nil
	}
	if err := t.store.lockRow(ctx, userID); err != nil {
		return err
	}
	t.locked[userID] = true
	return nil
}

// read returns the row as this unit of work sees it, without locking
func (t *txState) read(userID string) (userRow, bool) {
	if row, ok := t.staged[userID]; ok {
		return row, true
	}
	return t.store.committedUser(userID)
}

// forUpdate locks the row and returns its current state
func (t *txState) forUpdate(ctx context.Context, userID string) (userRow, error) {
	if err := t.lock(ctx, userID); err != nil {
		return userRow{}, err
	}
	row, ok := t.read(userID)
	if !ok {
		return userRow{}, errs.ErrUserNotFound
	}
	return row, nil
}

func (t *txState) finish(commit bool) {
	if commit {
		t.store.commit(t.staged, t.txs, t.notes)
	}
	for userID := range t.locked {
		t.store.unlockRow(userID)
	}
	t.done = true
}

// run executes fn in the unit of work bound to the caller, or in a fresh one
// committed on success
func run(store *Store, bound *txState, fn func(t *txState) error) error {
	if bound != nil {
		if bound.done {
			return errTxClosed
		}
		return fn(bound)
	}
	t := newTxState(store)
	err := fn(t)
	t.finish(err == nil)
	return err
}

func txFrom(ctx context.Context) *txState {
	t, _ := ctx.Value(txKey{}).(*txState)
	return t
}

type unitOfWork struct {
	store *Store
}

// Begin starts a unit of work and binds it to the returned context
func (u *unitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewGatewayError("begin", "", err)
	}
	return context.WithValue(ctx, txKey{}, newTxState(u.store)), nil
}

// Commit publishes the staged writes and releases the row locks
func (u *unitOfWork) Commit(ctx context.Context) error {
	t := txFrom(ctx)
	if t == nil {
		return errNoTransaction
	}
	if t.done {
		return errTxClosed
	}
	t.finish(true)
	return nil
}

// Rollback drops the staged writes and releases the row locks
func (u *unitOfWork) Rollback(ctx context.Context) error {
	t := txFrom(ctx)
	if t == nil {
		return errNoTransaction
	}
	if t.done {
		return errTxClosed
	}
	t.finish(false)
	return nil
}

// UserRepository returns a repository bound to the unit of work in ctx
func (u *unitOfWork) UserRepository(ctx context.Context) persistence.UserRepository {
	return &userRepo{store: u.store, tx: txFrom(ctx)}
}

// ReviveGateway returns a gateway bound to the unit of work in ctx
func (u *unitOfWork) ReviveGateway(ctx context.Context) persistence.ReviveGateway {
	return &reviveGateway{store: u.store, tx: txFrom(ctx)}
}
