package redis

import (
	"context"
	"errors"
	"strconv"
	"testing"

	errs "github.com/amirhossein-jamali/party-bank/internal/domain/error"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient answers INCR, DECR and GET from a map, or with err when set
type fakeClient struct {
	values map[string]int64
	keys   []string
	err    error
}

func newFakeClient() *fakeClient {
	return &fakeClient{values: make(map[string]int64)}
}

func (f *fakeClient) Incr(ctx context.Context, key string) *redis.IntCmd {
	f.keys = append(f.keys, key)
	cmd := redis.NewIntCmd(ctx, "incr", key)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.values[key]++
	cmd.SetVal(f.values[key])
	return cmd
}

func (f *fakeClient) Decr(ctx context.Context, key string) *redis.IntCmd {
	f.keys = append(f.keys, key)
	cmd := redis.NewIntCmd(ctx, "decr", key)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.values[key]--
	cmd.SetVal(f.values[key])
	return cmd
}

func (f *fakeClient) Get(ctx context.Context, key string) *redis.StringCmd {
	f.keys = append(f.keys, key)
	cmd := redis.NewStringCmd(ctx, "get", key)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	v, ok := f.values[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(strconv.FormatInt(v, 10))
	return cmd
}

func TestScanCounter_IncrementAndCount(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	counter := NewScanCounter(client, "partybank:", metrics.NewNoopMetrics())

	n, err := counter.Count(ctx, "qr:HQR-GOLD")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	for want := int64(1); want <= 3; want++ {
		got, err := counter.Increment(ctx, "qr:HQR-GOLD")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	n, err = counter.Count(ctx, "qr:HQR-GOLD")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Contains(t, client.keys, "partybank:qr:HQR-GOLD")

	n, err = counter.Decrement(ctx, "qr:HQR-GOLD")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestScanCounter_TransportErrorsAreGatewayErrors(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	client.err = errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")
	counter := NewScanCounter(client, "", metrics.NewNoopMetrics())

	_, err := counter.Increment(ctx, "qr:HQR-GOLD")
	assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)

	_, err = counter.Count(ctx, "qr:HQR-GOLD")
	assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)

	_, err = counter.Decrement(ctx, "qr:HQR-GOLD")
	assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
}
