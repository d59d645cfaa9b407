package app

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{Driver: config.DriverMemory},
		Redis:    config.RedisConfig{Driver: config.DriverMemory},
		Bank:     config.BankConfig{ReviveAmount: 15, MinBalance: 0, StartingBalance: 12},
		Metrics:  config.MetricsConfig{Enabled: true, Namespace: "partybank"},
	}
}

func TestBuild_MemoryDriversUseConfiguredAmounts(t *testing.T) {
	ctx := context.Background()
	registry := prometheus.NewRegistry()

	a, err := Build(ctx, memoryConfig(), logger.NewNoopLogger(), registry)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, a.Close()) })
	assert.Nil(t, a.DB)

	guest, err := a.Users.RegisterUser(ctx, "Gina")
	require.NoError(t, err)
	assert.Equal(t, int64(12), guest.Balance())

	change, err := a.Users.ModifyBalance(ctx, guest.ID, -20, entity.TypeAdjustment, "spill")
	require.NoError(t, err)
	assert.True(t, change.Revived)
	assert.Equal(t, int64(15), change.Balance)

	count, err := testutil.GatherAndCount(registry, "partybank_floor_outcomes_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBuild_NilRegistererUsesNoopMetrics(t *testing.T) {
	a, err := Build(context.Background(), memoryConfig(), logger.NewNoopLogger(), nil)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Games.MissionsForTrait("daredevil")
	assert.NoError(t, err)
}

func TestBuild_DuplicateRegistrationFails(t *testing.T) {
	registry := prometheus.NewRegistry()
	first, err := Build(context.Background(), memoryConfig(), logger.NewNoopLogger(), registry)
	require.NoError(t, err)
	defer first.Close()

	_, err = Build(context.Background(), memoryConfig(), logger.NewNoopLogger(), registry)
	assert.Error(t, err)
}
