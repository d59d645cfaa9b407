package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "PB"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from file based on the environment.
// Environment variables win over the file, and the file is optional.
func LoadConfig() (*Config, error) {
	// A missing .env is normal outside local development
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in the search paths
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return godotenv.Load(path)
	}
	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.rateLimit.enabled", true)
	v.SetDefault("server.rateLimit.requestsPerSecond", 5)
	v.SetDefault("server.rateLimit.burst", 10)

	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 50) // milliseconds
	v.SetDefault("database.autoMigrate", true)

	v.SetDefault("redis.driver", DriverRedis)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.keyPrefix", "partybank:")
	v.SetDefault("redis.dialTimeout", 5) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("bank.reviveAmount", 10)
	v.SetDefault("bank.minBalance", 0)
	v.SetDefault("bank.startingBalance", 20)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.namespace", "partybank")
}

// getEnvironment determines the environment to use based on PB_ENV
func getEnvironment() string {
	env := os.Getenv("PB_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps the short environment names onto config keys.
// Connection credentials are only ever supplied this way.
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"PB_DB_DRIVER":      "database.driver",
		"PB_DB_HOST":        "database.host",
		"PB_DB_PORT":        "database.port",
		"PB_DB_USERNAME":    "database.username",
		"PB_DB_PASSWORD":    "database.password",
		"PB_DB_NAME":        "database.database",
		"PB_DB_SSL_MODE":    "database.sslMode",
		"PB_REDIS_DRIVER":   "redis.driver",
		"PB_REDIS_ADDR":     "redis.addr",
		"PB_REDIS_PASSWORD": "redis.password",
		"PB_SERVER_HOST":    "server.host",
		"PB_LOGGER_LEVEL":   "logger.level",
	}
	for name, key := range stringOverrides {
		if val := os.Getenv(name); val != "" {
			v.Set(key, val)
		}
	}

	intOverrides := map[string]string{
		"PB_DB_MAX_OPEN_CONNS":            "database.maxOpenConns",
		"PB_DB_MAX_IDLE_CONNS":            "database.maxIdleConns",
		"PB_DB_QUERY_TIMEOUT_SECONDS":     "database.queryTimeout",
		"PB_DB_RETRY_ATTEMPTS":            "database.retryAttempts",
		"PB_DB_RETRY_DELAY_MS":            "database.retryDelay",
		"PB_REDIS_DB":                     "redis.db",
		"PB_SERVER_PORT":                  "server.port",
		"PB_BANK_REVIVE_AMOUNT":           "bank.reviveAmount",
		"PB_BANK_MIN_BALANCE":             "bank.minBalance",
		"PB_BANK_STARTING_BALANCE":        "bank.startingBalance",
		"PB_SERVER_RATE_LIMIT_BURST":      "server.rateLimit.burst",
		"PB_DB_CONN_MAX_LIFETIME_MINUTES": "database.connMaxLifetime",
	}
	for name, key := range intOverrides {
		if val, ok := getEnvInt(name); ok {
			v.Set(key, val)
		}
	}
}

// getEnvInt reads an integer environment variable, reporting whether it was set and valid
func getEnvInt(name string) (int, bool) {
	valStr := os.Getenv(name)
	if valStr == "" {
		return 0, false
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, false
	}
	return val, true
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Millisecond

	config.Redis.DialTimeout = time.Duration(config.Redis.DialTimeout) * time.Second
}
