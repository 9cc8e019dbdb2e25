package redis

import (
	"context"
	"fieldserve/config"
	"net"
	"time"

	"github.com/cenkalti/backoff/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	pingTimeout    = 2 * time.Second
	connectTimeout = 15 * time.Second
)

// New connects to the primary redis used for caching, rate limiting and provider locks.
// Startup waits for redis to answer a ping and exits when it never does.
func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	_, err := backoff.Retry(ctx, func() (string, error) {
		pingCtx, pingCancel := context.WithTimeout(ctx, pingTimeout)
		defer pingCancel()

		pong, pingErr := client.Ping(pingCtx).Result()
		if pingErr != nil {
			log.Warn().Err(pingErr).Str("host", primary.Host).Msg("Redis not ready, retrying")
		}

		return pong, pingErr //nolint:wrapcheck
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", primary.DB).
		Str("host", primary.Host).
		Str("port", primary.Port).
		Msg("Connected to Redis")

	return client
}
