package app

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/party-bank/internal/domain/port/core"
	"github.com/amirhossein-jamali/party-bank/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/party-bank/internal/domain/usecase/game"
	"github.com/amirhossein-jamali/party-bank/internal/domain/usecase/guard"
	"github.com/amirhossein-jamali/party-bank/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/identity"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/memstore"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/random"
	redisadapter "github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/redis"
	timeadapter "github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/config"
	"github.com/prometheus/client_golang/prometheus"
)

// App holds the wired use cases and the resources to release on shutdown
type App struct {
	Users   *user.UserUseCase
	Games   *game.GameService
	Metrics coreport.Metrics
	DB      *database.Manager // nil with the memory driver

	closers []func() error
}

// Build wires storage, counters and use cases from the configuration.
// A nil registerer disables Prometheus metrics.
func Build(ctx context.Context, cfg *config.Config, logger coreport.Logger, registerer prometheus.Registerer) (*App, error) {
	a := &App{}
	tp := timeadapter.NewRealTimeProvider()

	a.Metrics = metrics.NewNoopMetrics()
	if registerer != nil && cfg.Metrics.Enabled {
		m, err := metrics.NewPrometheusMetrics(registerer, cfg.Metrics.Namespace)
		if err != nil {
			return nil, fmt.Errorf("register bank metrics: %w", err)
		}
		a.Metrics = m
	}

	var (
		userRepo persistence.UserRepository
		gateway  persistence.ReviveGateway
		uow      persistence.UnitOfWork
		counter  persistence.ScanCounter
	)

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		manager := database.NewManager(database.NewConfig(cfg.Database, cfg.Logger.Level), logger, tp, a.Metrics)
		if _, err := manager.Connect(ctx); err != nil {
			return nil, err
		}
		a.DB = manager
		a.closers = append(a.closers, manager.Close)

		if cfg.Database.AutoMigrate {
			if err := manager.Migrate(ctx); err != nil {
				_ = a.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		if registerer != nil && cfg.Metrics.Enabled {
			if err := manager.RegisterPoolCollector(registerer); err != nil {
				_ = a.Close()
				return nil, fmt.Errorf("register pool collector: %w", err)
			}
		}

		userRepo, gateway, uow = manager.UserRepository(), manager.ReviveGateway(), manager.UnitOfWork()
	default:
		logger.Warn("Using in-memory storage; balances are lost on restart", nil)
		store := memstore.NewStore(tp)
		userRepo, gateway, uow = store.UserRepository(), store.ReviveGateway(), store.UnitOfWork()
	}

	switch cfg.Redis.Driver {
	case config.DriverRedis:
		client, err := redisadapter.NewClient(ctx, redisadapter.Options{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			KeyPrefix:   cfg.Redis.KeyPrefix,
			DialTimeout: cfg.Redis.DialTimeout,
		})
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		counter = redisadapter.NewScanCounter(client, cfg.Redis.KeyPrefix, a.Metrics)
	default:
		counter = memstore.NewScanCounter()
	}

	rng, err := random.NewSeededSource()
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("seed random source: %w", err)
	}

	policy := guard.Policy{ReviveAmount: cfg.Bank.ReviveAmount, MinBalance: cfg.Bank.MinBalance}
	balanceGuard := guard.NewBalanceGuard(gateway, uow, tp, a.Metrics, logger, policy)

	settings := user.Settings{StartingBalance: cfg.Bank.StartingBalance, MinBalance: cfg.Bank.MinBalance}
	a.Users = user.NewUserUseCase(userRepo, uow, balanceGuard, identity.NewUUIDGenerator(), tp, logger, settings)
	a.Games = game.NewGameService(a.Users, counter, rng, a.Metrics, logger)

	return a, nil
}

// Close releases connections in reverse order of opening
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
