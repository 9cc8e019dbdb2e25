package lock

//go:generate go run go.uber.org/mock/mockgen -source=./lock.go -destination=./mocks/lock_mock.go -package=mocks

import (
	"context"
	"errors"
	"fieldserve/config"
	"fieldserve/infras/otel"
	"fieldserve/shared/constant"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	DriverRedis = "redis"
	DriverLocal = "local"

	releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`
	pollInterval = 25 * time.Millisecond
)

var ErrNotAcquired = errors.New("lock not acquired")

// Release frees a held lock. It is safe to call more than once.
type Release func()

// Locker grants exclusive ownership of a key for at most ttl, waiting up to wait for it.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl, wait time.Duration) (Release, error)
}

func New(cfg *config.Config, client *goRedis.Client, otl otel.Otel) Locker {
	if cfg.Lock.Driver == DriverLocal {
		log.Warn().Msg("Using process-local locker, assignment is only serialized within this instance")

		return NewLocal()
	}

	return NewRedis(client, otl)
}

type redisLocker struct {
	client *goRedis.Client
	script *goRedis.Script
	otel   otel.Otel
}

func NewRedis(client *goRedis.Client, otl otel.Otel) Locker {
	return &redisLocker{
		client: client,
		script: goRedis.NewScript(releaseScript),
		otel:   otl,
	}
}

func (l *redisLocker) Acquire(ctx context.Context, key string, ttl, wait time.Duration) (release Release, err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelLockScopeName, constant.OtelLockScopeName+".Acquire")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("lock.key", key)

	if ttl <= 0 {
		return nil, errors.New("lock ttl must be positive")
	}

	token := uuid.NewString()

	_, err = backoff.Retry(ctx, func() (bool, error) {
		ok, setErr := l.client.SetNX(ctx, key, token, ttl).Result()
		if setErr != nil {
			return false, backoff.Permanent(setErr)
		}

		if !ok {
			return false, ErrNotAcquired
		}

		return true, nil
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(pollInterval)),
		backoff.WithMaxElapsedTime(wait),
	)
	if err != nil {
		if errors.Is(err, ErrNotAcquired) {
			return nil, ErrNotAcquired
		}

		log.Error().Err(err).Str("key", key).Msg("failed to acquire lock")

		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			c := context.WithoutCancel(ctx)
			if relErr := l.script.Run(c, l.client, []string{key}, token).Err(); relErr != nil {
				log.Error().Err(relErr).Str("key", key).Msg("failed to release lock")
			}
		})
	}, nil
}

type localLocker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

// NewLocal returns a Locker backed by in-process channels. ttl is not enforced.
func NewLocal() Locker {
	return &localLocker{slots: map[string]chan struct{}{}}
}

func (l *localLocker) Acquire(ctx context.Context, key string, _, wait time.Duration) (Release, error) {
	l.mu.Lock()
	slot, ok := l.slots[key]
	if !ok {
		slot = make(chan struct{}, 1)
		l.slots[key] = slot
	}
	l.mu.Unlock()

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case slot <- struct{}{}:
		var once sync.Once

		return func() {
			once.Do(func() { <-slot })
		}, nil
	case <-timer.C:
		return nil, ErrNotAcquired
	case <-ctx.Done():
		return nil, fmt.Errorf("failed to acquire lock: %w", ctx.Err())
	}
}

// ProviderKey is the lock guarding a provider's schedule.
func ProviderKey(providerID string) string {
	return "lock:provider:" + providerID
}
