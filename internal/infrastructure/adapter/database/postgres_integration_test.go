package database_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
	"github.com/amirhossein-jamali/party-bank/internal/domain/usecase/guard"
	"github.com/amirhossein-jamali/party-bank/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/identity"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/model"
	timeadapter "github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// connectTestDB connects to the database named by PB_TEST_DB_* or skips the test
func connectTestDB(t *testing.T) *database.Manager {
	t.Helper()

	host := os.Getenv("PB_TEST_DB_HOST")
	if host == "" {
		t.Skip("PB_TEST_DB_HOST not set, skipping PostgreSQL integration test")
	}
	port := os.Getenv("PB_TEST_DB_PORT")
	if port == "" {
		port = "5432"
	}

	cfg := database.NewConfig(config.DatabaseConfig{
		Host:          host,
		Port:          port,
		Username:      os.Getenv("PB_TEST_DB_USERNAME"),
		Password:      os.Getenv("PB_TEST_DB_PASSWORD"),
		Database:      os.Getenv("PB_TEST_DB_NAME"),
		SSLMode:       "disable",
		MaxOpenConns:  20,
		MaxIdleConns:  5,
		QueryTimeout:  5 * time.Second,
		RetryAttempts: 1,
	}, "silent")

	mgr := database.NewManager(cfg, logger.NewNoopLogger(), timeadapter.NewRealTimeProvider(), metrics.NewNoopMetrics())
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := mgr.Connect(ctx)
	require.NoError(t, err)
	require.NoError(t, mgr.Migrate(ctx))
	t.Cleanup(func() { _ = mgr.Close() })
	return mgr
}

func newService(mgr *database.Manager) *user.UserUseCase {
	tp := timeadapter.NewRealTimeProvider()
	log := logger.NewNoopLogger()
	g := guard.NewBalanceGuard(mgr.ReviveGateway(), mgr.UnitOfWork(), tp, metrics.NewNoopMetrics(), log, guard.DefaultPolicy())
	return user.NewUserUseCase(mgr.UserRepository(), mgr.UnitOfWork(), g, identity.NewUUIDGenerator(), tp, log, user.DefaultSettings())
}

func TestPostgres_ConditionalGrant(t *testing.T) {
	mgr := connectTestDB(t)
	ctx := context.Background()
	svc := newService(mgr)

	guest, err := svc.RegisterUser(ctx, "Grant Check")
	require.NoError(t, err)

	gw := mgr.ReviveGateway()

	// Still holding the starting balance, so nothing is granted
	var moved *errs.BalanceMovedError
	if assert.ErrorAs(t, gw.ConditionalGrantRevive(ctx, guest.ID, 10, 0), &moved) {
		assert.Equal(t, int64(20), moved.Balance)
	}
	flag, err := gw.GetUserRevivedFlag(ctx, guest.ID)
	require.NoError(t, err)
	assert.False(t, flag)

	require.NoError(t, gw.ConditionalGrantRevive(ctx, guest.ID, 10, 20))
	assert.ErrorIs(t, gw.ConditionalGrantRevive(ctx, guest.ID, 10, 20), errs.ErrAlreadyRevived)
	assert.ErrorIs(t, gw.ConditionalGrantRevive(ctx, "00000000-0000-0000-0000-000000000000", 10, 20), errs.ErrUserNotFound)

	flag, err = gw.GetUserRevivedFlag(ctx, guest.ID)
	require.NoError(t, err)
	assert.True(t, flag)
}

func TestPostgres_ConcurrentFloorHitsReviveOnce(t *testing.T) {
	mgr := connectTestDB(t)
	ctx := context.Background()
	svc := newService(mgr)

	guest, err := svc.RegisterUser(ctx, "Race Guest")
	require.NoError(t, err)

	const racers = 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	revived, gameOver := 0, 0
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			change, err := svc.ModifyBalance(ctx, guest.ID, -25, entity.TypeAdjustment, "race")
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if change.Revived {
				revived++
			}
			if change.GameOver {
				gameOver++
			}
		}()
	}
	wg.Wait()

	// Deductions after the revive may leave the balance above zero, so only
	// the revive count is exact
	t.Logf("revived=%d gameOver=%d", revived, gameOver)
	assert.Equal(t, 1, revived)

	var reviveRows int64
	require.NoError(t, mgr.DB().Model(&model.Transaction{}).
		Where("to_user_id = ? AND type = ?", guest.ID, string(entity.TypeRevive)).
		Count(&reviveRows).Error)
	assert.Equal(t, int64(1), reviveRows)

	balance, err := svc.GetUserBalance(ctx, guest.ID)
	require.NoError(t, err)
	assert.True(t, balance.HasRevived)
}
