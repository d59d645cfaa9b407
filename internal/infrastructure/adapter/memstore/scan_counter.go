package memstore

import (
	"context"
	"sync"

	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
)

// ScanCounter is a process-local counter map for single-instance runs
type ScanCounter struct {
	mu     sync.Mutex
	counts map[string]int64
}

// NewScanCounter creates an empty counter
func NewScanCounter() *ScanCounter {
	return &ScanCounter{counts: make(map[string]int64)}
}

// Increment atomically adds one to key and returns the new value
func (c *ScanCounter) Increment(ctx context.Context, key string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, errs.NewGatewayError("scan_increment", "", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[key]++
	return c.counts[key], nil
}

// Decrement atomically subtracts one from key, never going below zero
func (c *ScanCounter) Decrement(ctx context.Context, key string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, errs.NewGatewayError("scan_decrement", "", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts[key] > 0 {
		c.counts[key]--
	}
	return c.counts[key], nil
}

// Count returns the current value of key, zero if unset
func (c *ScanCounter) Count(ctx context.Context, key string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, errs.NewGatewayError("scan_count", "", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[key], nil
}
