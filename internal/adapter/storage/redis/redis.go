package redis

import (
	"context"
	"fmt"

	"custodial-voucher/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewClient creates a Redis client for the issuance lock and rate limiter and
// verifies connectivity. Keys are namespaced by the stores, see KeyPrefix.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Str("key_prefix", cfg.KeyPrefix).
		Msg("Redis connection established")

	return client, nil
}

// namespaced joins the service namespace and a store's own key prefix.
func namespaced(namespace, prefix string) string {
	if namespace == "" {
		return prefix
	}
	return namespace + prefix
}
