package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still holds the caller's token,
// so an expired holder cannot release a lock someone else has since taken.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// IssuanceLock implements ports.IssuanceLock with SET NX leases.
type IssuanceLock struct {
	client goredis.UniversalClient
	prefix string
}

// NewIssuanceLock creates a new Redis-backed issuance lock.
func NewIssuanceLock(client goredis.UniversalClient) *IssuanceLock {
	return &IssuanceLock{
		client: client,
		prefix: "lock:",
	}
}

// WithNamespace scopes lock keys under namespace, e.g. "cvs:".
func (l *IssuanceLock) WithNamespace(namespace string) *IssuanceLock {
	l.prefix = namespaced(namespace, "lock:")
	return l
}

// Acquire takes the lock for ttl. It returns the owner token, or "" if the
// lock is currently held by someone else.
func (l *IssuanceLock) Acquire(ctx context.Context, key string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	result, err := l.client.SetArgs(ctx, l.prefix+key, token, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis lock acquire: %w", err)
	}
	if result != "OK" {
		return "", nil
	}
	return token, nil
}

// Release drops the lock if token still owns it.
func (l *IssuanceLock) Release(ctx context.Context, key string, token string) error {
	if err := releaseScript.Run(ctx, l.client, []string{l.prefix + key}, token).Err(); err != nil {
		return fmt.Errorf("redis lock release: %w", err)
	}
	return nil
}
