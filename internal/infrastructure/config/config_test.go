package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the loader at an empty temp dir so no repo config or .env leaks in
func isolate(t *testing.T) string {
	dir := t.TempDir()

	oldConfigPaths, oldDotEnvPaths := ConfigPaths, DotEnvPaths
	ConfigPaths = []string{dir}
	DotEnvPaths = []string{filepath.Join(dir, ".env")}
	t.Cleanup(func() {
		ConfigPaths, DotEnvPaths = oldConfigPaths, oldDotEnvPaths
	})

	t.Setenv("PB_ENV", "unittest")
	return dir
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "unittest", cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.Server.RateLimit.Enabled)
	assert.Equal(t, 5.0, cfg.Server.RateLimit.RequestsPerSecond)
	assert.Equal(t, 10, cfg.Server.RateLimit.Burst)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 50*time.Millisecond, cfg.Database.RetryDelay)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, DriverRedis, cfg.Redis.Driver)
	assert.Equal(t, 5*time.Second, cfg.Redis.DialTimeout)
	assert.Equal(t, int64(10), cfg.Bank.ReviveAmount)
	assert.Equal(t, int64(0), cfg.Bank.MinBalance)
	assert.Equal(t, int64(20), cfg.Bank.StartingBalance)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Empty(t, cfg.Database.Password)
}

func TestLoadConfig_FileAndEnvironmentOverrides(t *testing.T) {
	dir := isolate(t)

	yaml := []byte(`
server:
  port: 9090
database:
  driver: memory
  queryTimeout: 2
bank:
  startingBalance: 30
logger:
  level: debug
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unittest.yaml"), yaml, 0o600))

	t.Setenv("PB_DB_PASSWORD", "from-env")
	t.Setenv("PB_DB_HOST", "db.internal")
	t.Setenv("PB_REDIS_ADDR", "cache.internal:6380")
	t.Setenv("PB_SERVER_PORT", "7070")
	t.Setenv("PB_BANK_REVIVE_AMOUNT", "15")
	t.Setenv("PB_DB_RETRY_ATTEMPTS", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "cache.internal:6380", cfg.Redis.Addr)
	assert.Equal(t, int64(15), cfg.Bank.ReviveAmount)
	assert.Equal(t, int64(30), cfg.Bank.StartingBalance)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 3, cfg.Database.RetryAttempts)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PB_DB_USERNAME=bank\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("PB_DB_USERNAME") })

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "bank", cfg.Database.Username)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unittest.yaml"), []byte("server: [unclosed"), 0o600))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Host: "0.0.0.0", Port: 8080},
		Database: DatabaseConfig{Driver: DriverPostgres, Host: "db", Username: "bank", Database: "partybank"},
		Redis:    RedisConfig{Driver: DriverRedis, Addr: "localhost:6379"},
		Bank:     BankConfig{ReviveAmount: 10, MinBalance: 0, StartingBalance: 20},
	}
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid postgres and redis", func(c *Config) {}, false},
		{"memory drivers need no connection settings", func(c *Config) {
			c.Database = DatabaseConfig{Driver: DriverMemory}
			c.Redis = RedisConfig{Driver: DriverMemory}
		}, false},
		{"postgres without host", func(c *Config) { c.Database.Host = "" }, true},
		{"unknown database driver", func(c *Config) { c.Database.Driver = "mysql" }, true},
		{"redis without address", func(c *Config) { c.Redis.Addr = "" }, true},
		{"unknown redis driver", func(c *Config) { c.Redis.Driver = "memcached" }, true},
		{"rate limit without burst", func(c *Config) {
			c.Server.RateLimit = RateLimitConfig{Enabled: true, RequestsPerSecond: 5}
		}, true},
		{"disabled rate limit ignores values", func(c *Config) {
			c.Server.RateLimit = RateLimitConfig{Enabled: false}
		}, false},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, true},
		{"revive not above floor", func(c *Config) { c.Bank.ReviveAmount = 0 }, true},
		{"starting balance below floor", func(c *Config) { c.Bank.StartingBalance = -1 }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServerConfig_Address(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8081", ServerConfig{Host: "127.0.0.1", Port: 8081}.Address())
}
