package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
	"github.com/amirhossein-jamali/party-bank/internal/domain/port/core"
	"github.com/amirhossein-jamali/party-bank/internal/domain/port/persistence"
	"github.com/google/uuid"
)

// Hook points for DelayHook
const (
	OpReadRevivedFlag  = "read_revive_flag"
	OpConditionalGrant = "conditional_grant"
	OpApplyCoinChange  = "apply_coin_change"
)

// DelayHook runs inside gateway operations so tests can widen race windows
type DelayHook func(ctx context.Context, op, userID string)

type userRow struct {
	id         string
	name       string
	balance    int64
	hasRevived bool
	createdAt  time.Time
	updatedAt  time.Time
}

func (r userRow) toEntity() *entity.User {
	return entity.RestoreUser(r.id, r.name, r.balance, r.hasRevived, r.createdAt, r.updatedAt)
}

// Store keeps users, the ledger and notifications in memory.
//
// Writers take a per-user row lock for the lifetime of their unit of work, the
// way SELECT ... FOR UPDATE does. Staged changes become visible to readers only
// on commit.
type Store struct {
	mu            sync.Mutex
	users         map[string]userRow
	rowLocks      map[string]chan struct{}
	transactions  []entity.Transaction
	notifications []entity.Notification
	nextTxID      uint64

	timeProvider core.TimeProvider
	delay        DelayHook
}

// NewStore creates an empty store
func NewStore(timeProvider core.TimeProvider) *Store {
	return &Store{
		users:        make(map[string]userRow),
		rowLocks:     make(map[string]chan struct{}),
		timeProvider: timeProvider,
	}
}

// SetDelayHook installs a hook called at each named operation
func (s *Store) SetDelayHook(hook DelayHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = hook
}

func (s *Store) pause(ctx context.Context, op, userID string) {
	s.mu.Lock()
	hook := s.delay
	s.mu.Unlock()
	if hook != nil {
		hook(ctx, op, userID)
	}
}

// lockRow blocks until the row lock for userID is held or ctx ends
func (s *Store) lockRow(ctx context.Context, userID string) error {
	s.mu.Lock()
	lock, ok := s.rowLocks[userID]
	if !ok {
		lock = make(chan struct{}, 1)
		s.rowLocks[userID] = lock
	}
	s.mu.Unlock()

	select {
	case lock <- struct{}{}:
		return nil
	case <-ctx.Done():
		return errs.NewGatewayError("row_lock", userID, ctx.Err())
	}
}

func (s *Store) unlockRow(userID string) {
	s.mu.Lock()
	lock := s.rowLocks[userID]
	s.mu.Unlock()
	<-lock
}

// committedUser returns the last committed row
func (s *Store) committedUser(userID string) (userRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.users[userID]
	return row, ok
}

// Transactions returns the committed ledger of a user in append order
func (s *Store) Transactions(userID string) []entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Transaction
	for _, tx := range s.transactions {
		if tx.ToUserID == userID {
			out = append(out, tx)
		}
	}
	return out
}

// Notifications returns the committed notifications of a user in append order
func (s *Store) Notifications(userID string) []entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// commit publishes staged rows and appends under one lock
func (s *Store) commit(users map[string]userRow, txs []*entity.Transaction, notes []*entity.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, row := range users {
		s.users[id] = row
	}
	for _, tx := range txs {
		s.nextTxID++
		tx.ID = s.nextTxID
		s.transactions = append(s.transactions, *tx)
	}
	for _, n := range notes {
		if n.ID == "" {
			n.ID = uuid.NewString()
		}
		s.notifications = append(s.notifications, *n)
	}
}

// UserRepository returns a repository that autocommits each call
func (s *Store) UserRepository() persistence.UserRepository {
	return &userRepo{store: s}
}

// ReviveGateway returns a gateway that autocommits each call
func (s *Store) ReviveGateway() persistence.ReviveGateway {
	return &reviveGateway{store: s}
}

// UnitOfWork returns the transaction coordinator for this store
func (s *Store) UnitOfWork() persistence.UnitOfWork {
	return &unitOfWork{store: s}
}
