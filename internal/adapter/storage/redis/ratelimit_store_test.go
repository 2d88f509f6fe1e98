package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRateLimitStore(t *testing.T, at time.Time) (*RateLimitStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRateLimitStore(client)
	store.now = func() time.Time { return at }
	return store, mr
}

func TestRateLimitStore_Allow(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 30, 0, time.UTC)
	store, _ := newTestRateLimitStore(t, at)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		result, err := store.Allow(ctx, "user-1:voucher_issue", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed, "request %d should be allowed", i)
		assert.Equal(t, 3-i, result.Remaining)
	}

	result, err := store.Allow(ctx, "user-1:voucher_issue", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, int64(0), result.Remaining)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 1, 0, 0, time.UTC).Unix(), result.ResetAt)

	other, err := store.Allow(ctx, "user-2:voucher_issue", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, other.Allowed, "keys are independent")
}

func TestRateLimitStore_CounterExpires(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store, mr := newTestRateLimitStore(t, at)
	ctx := context.Background()

	_, err := store.Allow(ctx, "user-1:wallet_provision", 1, time.Minute)
	require.NoError(t, err)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Equal(t, 61*time.Second, mr.TTL(keys[0]))

	mr.FastForward(62 * time.Second)
	assert.Empty(t, mr.Keys())
}

func TestRateLimitStore_RedisDown(t *testing.T) {
	store, mr := newTestRateLimitStore(t, time.Now())
	mr.Close()

	_, err := store.Allow(context.Background(), "k", 1, time.Minute)
	assert.ErrorContains(t, err, "redis rate limit incr")
}

func TestRateLimitStore_WithNamespace(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store, mr := newTestRateLimitStore(t, at)
	store.WithNamespace("cvs:")

	_, err := store.Allow(context.Background(), "ip:10.0.0.1:voucher_check", 5, time.Minute)
	require.NoError(t, err)

	windowID := at.Unix() / 60
	assert.Equal(t, []string{fmt.Sprintf("cvs:ratelimit:ip:10.0.0.1:voucher_check:%d", windowID)}, mr.Keys())
}
