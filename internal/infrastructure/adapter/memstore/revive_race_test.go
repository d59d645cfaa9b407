package memstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
	"github.com/amirhossein-jamali/party-bank/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/party-bank/internal/domain/usecase/guard"
	"github.com/amirhossein-jamali/party-bank/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/identity"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/memstore"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/metrics"
	timeadapter "github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// barrier holds every caller at one operation until n of them have arrived
type barrier struct {
	mu      sync.Mutex
	n       int
	arrived int
	release chan struct{}
}

func newBarrier(n int) *barrier {
	return &barrier{n: n, release: make(chan struct{})}
}

func (b *barrier) hook(op string) memstore.DelayHook {
	return func(ctx context.Context, hookOp, _ string) {
		if hookOp != op {
			return
		}
		b.mu.Lock()
		b.arrived++
		if b.arrived == b.n {
			close(b.release)
		}
		b.mu.Unlock()

		select {
		case <-b.release:
		case <-ctx.Done():
		case <-time.After(5 * time.Second):
		}
	}
}

func newUserService(store *memstore.Store) *user.UserUseCase {
	tp := timeadapter.NewRealTimeProvider()
	log := logger.NewNoopLogger()
	g := guard.NewBalanceGuard(store.ReviveGateway(), store.UnitOfWork(), tp, metrics.NewNoopMetrics(), log, guard.DefaultPolicy())
	return user.NewUserUseCase(store.UserRepository(), store.UnitOfWork(), g, identity.NewUUIDGenerator(), tp, log, user.DefaultSettings())
}

func TestConcurrentFloorHitsReviveExactlyOnce(t *testing.T) {
	const racers = 8
	ctx := context.Background()

	store := memstore.NewStore(timeadapter.NewRealTimeProvider())
	svc := newUserService(store)

	guest, err := svc.RegisterUser(ctx, "Racer")
	require.NoError(t, err)
	// Bring the guest down to one coin before the race
	_, err = svc.ModifyBalance(ctx, guest.ID, -19, entity.TypeAdjustment, "warm up")
	require.NoError(t, err)

	// Every racer has pushed the balance to the floor before any of them reads the flag
	store.SetDelayHook(newBarrier(racers).hook(memstore.OpReadRevivedFlag))

	results := make([]*usecase.BalanceChange, racers)
	errList := make([]error, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errList[i] = svc.ModifyBalance(ctx, guest.ID, -5, entity.TypeAdjustment, "spilled drink")
		}(i)
	}
	wg.Wait()
	store.SetDelayHook(nil)

	revived, gameOver := 0, 0
	for i := 0; i < racers; i++ {
		require.NoError(t, errList[i])
		if results[i].Revived {
			revived++
			assert.Equal(t, entity.ReviveAmount, results[i].Balance)
		}
		if results[i].GameOver {
			gameOver++
			assert.Equal(t, entity.MinBalance, results[i].Balance)
		}
	}
	assert.Equal(t, 1, revived)
	assert.Equal(t, racers-1, gameOver)

	balance, err := svc.GetUserBalance(ctx, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReviveAmount, balance.Balance)
	assert.True(t, balance.HasRevived)

	var reviveEntries, adjustments int
	for _, tx := range store.Transactions(guest.ID) {
		switch tx.Type {
		case entity.TypeRevive:
			reviveEntries++
			assert.Equal(t, entity.ReviveAmount, tx.Amount)
		case entity.TypeAdjustment:
			adjustments++
		}
	}
	assert.Equal(t, 1, reviveEntries)
	// The warm up and the single racer that still had a coin to lose
	assert.Equal(t, 2, adjustments)

	var reviveNotes, gameOverNotes int
	for _, n := range store.Notifications(guest.ID) {
		switch n.Type {
		case entity.NotificationRevive:
			reviveNotes++
		case entity.NotificationGameOver:
			gameOverNotes++
		}
	}
	assert.Equal(t, 1, reviveNotes)
	assert.Equal(t, racers-1, gameOverNotes)
}

func TestRevivedGuestHittingFloorAgainIsGameOver(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewStore(timeadapter.NewRealTimeProvider())
	svc := newUserService(store)

	guest, err := svc.RegisterUser(ctx, "Second Wind")
	require.NoError(t, err)

	first, err := svc.ModifyBalance(ctx, guest.ID, -25, entity.TypeRiskCard, "Risk card: unlucky_crash")
	require.NoError(t, err)
	assert.True(t, first.Revived)
	assert.Equal(t, int64(-20), first.Applied)
	assert.Equal(t, entity.ReviveAmount, first.Balance)

	second, err := svc.ModifyBalance(ctx, guest.ID, -12, entity.TypeRiskCard, "Risk card: unlucky_crash")
	require.NoError(t, err)
	assert.False(t, second.Revived)
	assert.True(t, second.GameOver)
	assert.Equal(t, int64(-10), second.Applied)
	assert.Equal(t, entity.MinBalance, second.Balance)

	balance, err := svc.GetUserBalance(ctx, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StateAtFloorExhausted, balance.State)

	// Gains still apply after the game is over
	third, err := svc.ModifyBalance(ctx, guest.ID, 4, entity.TypeMission, "Mission: Dance Off")
	require.NoError(t, err)
	assert.Equal(t, int64(4), third.Balance)
	assert.False(t, third.GameOver)
}

func TestCreditDuringSettlementIsNotOverwrittenByRevive(t *testing.T) {
	ctx := context.Background()

	store := memstore.NewStore(timeadapter.NewRealTimeProvider())
	svc := newUserService(store)

	guest, err := svc.RegisterUser(ctx, "Latecomer")
	require.NoError(t, err)
	_, err = svc.ModifyBalance(ctx, guest.ID, -19, entity.TypeAdjustment, "warm up")
	require.NoError(t, err)

	// A friend's gift commits after the deduction but before the revive grant
	var once sync.Once
	var credit *usecase.BalanceChange
	var creditErr error
	store.SetDelayHook(func(_ context.Context, op, userID string) {
		if op != memstore.OpReadRevivedFlag || userID != guest.ID {
			return
		}
		once.Do(func() {
			credit, creditErr = svc.ModifyBalance(ctx, guest.ID, 5, entity.TypeMission, "gift")
		})
	})

	change, err := svc.ModifyBalance(ctx, guest.ID, -1, entity.TypeAdjustment, "last sip")
	store.SetDelayHook(nil)
	require.NoError(t, err)
	require.NoError(t, creditErr)
	require.NotNil(t, credit)

	assert.Equal(t, int64(5), credit.Balance)
	assert.False(t, change.Revived)
	assert.False(t, change.GameOver)
	assert.Equal(t, int64(5), change.Balance)

	balance, err := svc.GetUserBalance(ctx, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), balance.Balance)
	assert.False(t, balance.HasRevived)

	var ledgerSum int64
	for _, tx := range store.Transactions(guest.ID) {
		assert.NotEqual(t, entity.TypeRevive, tx.Type)
		ledgerSum += tx.Amount
	}
	assert.Equal(t, balance.Balance, ledgerSum)
	assert.Empty(t, store.Notifications(guest.ID))
}
