package redis

import (
	"context"
	"errors"
	"time"

	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
	"github.com/amirhossein-jamali/party-bank/internal/domain/port/core"
	"github.com/redis/go-redis/v9"
)

// counterClient is the slice of the go-redis API the counter needs
type counterClient interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Decr(ctx context.Context, key string) *redis.IntCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Options configures the Redis connection
type Options struct {
	Addr        string
	Password    string
	DB          int
	KeyPrefix   string
	DialTimeout time.Duration
}

// ScanCounter keeps scan caps and one-time claims in Redis. INCR is atomic on
// the server, so concurrent scans of a capped code can never both see the last slot.
type ScanCounter struct {
	client  counterClient
	prefix  string
	metrics core.Metrics
}

// NewClient opens a go-redis client and pings it
func NewClient(ctx context.Context, opts Options) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: opts.DialTimeout,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.NewGatewayError("redis_ping", "", err)
	}
	return client, nil
}

// NewScanCounter creates a counter on an open client
func NewScanCounter(client counterClient, keyPrefix string, metrics core.Metrics) *ScanCounter {
	return &ScanCounter{
		client:  client,
		prefix:  keyPrefix,
		metrics: metrics,
	}
}

// Increment atomically adds one to key and returns the new value
func (c *ScanCounter) Increment(ctx context.Context, key string) (int64, error) {
	start := time.Now()
	val, err := c.client.Incr(ctx, c.prefix+key).Result()
	c.metrics.RecordGatewayOperation("scan_increment", err != nil, time.Since(start))
	if err != nil {
		return 0, errs.NewGatewayError("scan_increment", "", err)
	}
	return val, nil
}

// Decrement atomically subtracts one from key and returns the new value
func (c *ScanCounter) Decrement(ctx context.Context, key string) (int64, error) {
	start := time.Now()
	val, err := c.client.Decr(ctx, c.prefix+key).Result()
	c.metrics.RecordGatewayOperation("scan_decrement", err != nil, time.Since(start))
	if err != nil {
		return 0, errs.NewGatewayError("scan_decrement", "", err)
	}
	return val, nil
}

// Count returns the current value of key, zero if unset
func (c *ScanCounter) Count(ctx context.Context, key string) (int64, error) {
	start := time.Now()
	val, err := c.client.Get(ctx, c.prefix+key).Int64()
	if errors.Is(err, redis.Nil) {
		err = nil
		val = 0
	}
	c.metrics.RecordGatewayOperation("scan_count", err != nil, time.Since(start))
	if err != nil {
		return 0, errs.NewGatewayError("scan_count", "", err)
	}
	return val, nil
}
