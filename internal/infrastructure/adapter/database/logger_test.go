package database

import (
	"context"
	"errors"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/party-bank/internal/domain/port/core"
	zaplogger "github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

func observedGormLogger(level string) (*DatabaseLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	coreLogger := zaplogger.NewWithCore(core, zap.NewAtomicLevelAt(zapcore.DebugLevel))
	l := NewGormDatabaseLogger(coreLogger, timeadapter.NewRealTimeProvider(), level).(*DatabaseLogger)
	return l, logs
}

func TestDatabaseLogger_Trace(t *testing.T) {
	ctx := coreport.WithRequestID(context.Background(), "req-1")
	sql := `UPDATE "users" SET "balance"=10,"has_revived"=true WHERE id = 'guest-1' AND has_revived = false`

	t.Run("regular query at debug with request id", func(t *testing.T) {
		l, logs := observedGormLogger("info")
		l.Trace(ctx, time.Now(), func() (string, int64) { return sql, 1 }, nil)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.DebugLevel, entry.Level)
		fields := entry.ContextMap()
		assert.Equal(t, "UPDATE", fields["type"])
		assert.Equal(t, "users", fields["table"])
		assert.Equal(t, "req-1", fields["request_id"])
	})

	t.Run("errors are logged at error", func(t *testing.T) {
		l, logs := observedGormLogger("warn")
		l.Trace(ctx, time.Now(), func() (string, int64) { return sql, 0 }, errors.New("connection reset"))

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		l, logs := observedGormLogger("warn")
		l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT * FROM users", 0 }, gorm.ErrRecordNotFound)
		assert.Equal(t, 0, logs.Len())
	})

	t.Run("slow queries warn", func(t *testing.T) {
		l, logs := observedGormLogger("warn")
		l.Trace(ctx, time.Now().Add(-time.Second), func() (string, int64) { return sql, 1 }, nil)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		l, logs := observedGormLogger("silent")
		l.Trace(ctx, time.Now(), func() (string, int64) { return sql, 1 }, errors.New("boom"))
		assert.Equal(t, 0, logs.Len())
	})
}

func TestExtractTableName(t *testing.T) {
	assert.Equal(t, "users", extractTableName(`SELECT * FROM "users" WHERE id = $1`))
	assert.Equal(t, "transactions", extractTableName(`INSERT INTO "transactions" ("to_user_id") VALUES ($1)`))
	assert.Equal(t, "users", extractTableName(`UPDATE "users" SET "balance"=$1`))
	assert.Equal(t, "", extractTableName(`BEGIN`))
}
