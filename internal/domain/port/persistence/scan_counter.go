package persistence

import "context"

// ScanCounter keeps shared counters for scan caps and one-time claims
type ScanCounter interface {
	// Increment atomically adds one to key and returns the new value
	Increment(ctx context.Context, key string) (int64, error)

	// Decrement atomically subtracts one from key and returns the new value.
	// It gives back a slot taken by Increment when the scan does not go through.
	Decrement(ctx context.Context, key string) (int64, error)

	// Count returns the current value of key, zero if unset
	Count(ctx context.Context, key string) (int64, error)
}
