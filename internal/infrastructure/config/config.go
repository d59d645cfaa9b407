package config

import (
	"errors"
	"fmt"
	"time"
)

// Storage drivers
const (
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Bank        BankConfig     `mapstructure:"bank"`
	Metrics     MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string          `mapstructure:"host"`
	Port              int             `mapstructure:"port"`
	ReadTimeout       time.Duration   `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration   `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration   `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration   `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration   `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string        `mapstructure:"allowedOrigins"`
	RateLimit         RateLimitConfig `mapstructure:"rateLimit"`
}

// RateLimitConfig throttles the game endpoints per client IP
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requestsPerSecond"`
	Burst             int     `mapstructure:"burst"`
}

// Address returns host:port for the HTTP listener
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig contains database connection settings.
// Credentials come from the environment, never from committed files.
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // milliseconds
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
}

// RedisConfig contains scan counter settings
type RedisConfig struct {
	Driver      string        `mapstructure:"driver"`
	Addr        string        `mapstructure:"addr"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	KeyPrefix   string        `mapstructure:"keyPrefix"`
	DialTimeout time.Duration `mapstructure:"dialTimeout"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// BankConfig contains the coin amounts of the party bank
type BankConfig struct {
	ReviveAmount    int64 `mapstructure:"reviveAmount"`
	MinBalance      int64 `mapstructure:"minBalance"`
	StartingBalance int64 `mapstructure:"startingBalance"`
}

// MetricsConfig contains Prometheus exposition settings
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Path      string `mapstructure:"path"`
	Namespace string `mapstructure:"namespace"`
}

// Validate checks the loaded configuration for values the application cannot run with
func (c *Config) Validate() error {
	var problems []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.Username == "" || c.Database.Database == "" {
			problems = append(problems, errors.New("postgres requires PB_DB_HOST, PB_DB_USERNAME and PB_DB_NAME"))
		}
	case DriverMemory:
	default:
		problems = append(problems, fmt.Errorf("unknown database.driver %q", c.Database.Driver))
	}

	switch c.Redis.Driver {
	case DriverRedis:
		if c.Redis.Addr == "" {
			problems = append(problems, errors.New("redis requires PB_REDIS_ADDR"))
		}
	case DriverMemory:
	default:
		problems = append(problems, fmt.Errorf("unknown redis.driver %q", c.Redis.Driver))
	}

	if c.Server.RateLimit.Enabled && (c.Server.RateLimit.RequestsPerSecond <= 0 || c.Server.RateLimit.Burst <= 0) {
		problems = append(problems, errors.New("server.rateLimit needs positive requestsPerSecond and burst"))
	}

	if c.Bank.ReviveAmount <= c.Bank.MinBalance {
		problems = append(problems, errors.New("bank.reviveAmount must be above bank.minBalance"))
	}
	if c.Bank.StartingBalance < c.Bank.MinBalance {
		problems = append(problems, errors.New("bank.startingBalance must not be below bank.minBalance"))
	}

	return errors.Join(problems...)
}
