package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"fieldserve/shared/constant"
	"net"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	defaultMaxAttempts     = 3
	defaultInitialInterval = 100 * time.Millisecond
	defaultMaxInterval     = 2 * time.Second
)

// RetryPolicy bounds how often a unit of work is re-run after a transient storage failure.
type RetryPolicy struct {
	MaxAttempts     uint
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// Do runs op until it succeeds, fails with a non-transient error, or attempts run out.
func (p RetryPolicy) Do(ctx context.Context, op func() error) error {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = p.initialInterval()
	expo.MaxInterval = p.maxInterval()

	attempt := 0

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempt++

		err := op()
		if err == nil {
			return struct{}{}, nil
		}

		if !IsTransient(err) {
			return struct{}{}, backoff.Permanent(err)
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("transient storage error, retrying")

		return struct{}{}, err
	},
		backoff.WithBackOff(expo),
		backoff.WithMaxTries(p.maxAttempts()),
	)

	return err //nolint:wrapcheck
}

func (p RetryPolicy) maxAttempts() uint {
	if p.MaxAttempts == 0 {
		return defaultMaxAttempts
	}

	return p.MaxAttempts
}

func (p RetryPolicy) initialInterval() time.Duration {
	if p.InitialInterval <= 0 {
		return defaultInitialInterval
	}

	return p.InitialInterval
}

func (p RetryPolicy) maxInterval() time.Duration {
	if p.MaxInterval <= 0 {
		return defaultMaxInterval
	}

	return p.MaxInterval
}

// IsTransient reports whether err is a connectivity failure worth retrying.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)

		return strings.HasPrefix(code, constant.PqErrorClassConnection) ||
			code == constant.PqErrorCodeAdminShutdown ||
			code == constant.PqErrorCodeCannotConnect
	}

	var netErr net.Error

	return errors.As(err, &netErr)
}

// IsUniqueViolation reports whether err is a unique constraint violation, optionally on constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != constant.PqErrorCodeUniqueViolation {
		return false
	}

	return constraint == "" || pqErr.Constraint == constraint
}
