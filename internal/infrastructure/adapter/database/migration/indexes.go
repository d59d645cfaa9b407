package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/party-bank/internal/domain/port/core"
	"gorm.io/gorm"
)

// IndexManager manages PostgreSQL-specific indexes
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

type indexStatement struct {
	name string
	sql  string
}

var indexStatements = []indexStatement{
	{
		// Ledger reads are per guest, newest first
		name: "idx_transactions_user_created",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_user_created
			ON transactions (to_user_id, created_at DESC)`,
	},
	{
		// At most one revive row per guest, whatever the application does
		name: "idx_transactions_one_revive",
		sql: `CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_one_revive
			ON transactions (to_user_id) WHERE type = 'revive'`,
	},
	{
		name: "idx_notifications_user_unread",
		sql: `CREATE INDEX IF NOT EXISTS idx_notifications_user_unread
			ON notifications (user_id, created_at DESC) WHERE is_read = false`,
	},
	{
		name: "idx_transactions_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
			ON transactions USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
}

// CreateIndexes creates the indexes the models cannot express as tags
func (m *IndexManager) CreateIndexes(ctx context.Context) error {
	m.logger.Info("Creating PostgreSQL indexes", nil)

	for _, stmt := range indexStatements {
		if err := m.db.WithContext(ctx).Exec(stmt.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": stmt.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("PostgreSQL indexes created successfully", nil)
	return nil
}

// ApplyPerformanceTweaks applies storage settings. Failures are logged, not returned.
func (m *IndexManager) ApplyPerformanceTweaks(ctx context.Context) {
	// The ledger and notifications are append-only
	for _, table := range []string{"transactions", "notifications"} {
		if err := m.db.WithContext(ctx).Exec("ALTER TABLE " + table + " SET (fillfactor = 100)").Error; err != nil {
			m.logger.Warn("Failed to set fillfactor", map[string]any{
				"table": table,
				"error": err.Error(),
			})
		}
	}
}
