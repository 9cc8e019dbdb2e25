package postgres

//go:generate go run go.uber.org/mock/mockgen -source=./postgres.go -destination=./mocks/postgres_mock.go -package=mocks

//nolint:revive
import (
	"context"
	"fieldserve/config"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

// Transactor runs fn inside one database transaction, committing when fn returns nil.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

// Connection holds the read replica and the primary. Every transaction runs on the primary.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
	retry RetryPolicy
}

// New opens both pools, waiting for each database to accept connections. Startup aborts when
// either never does.
func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	return &Connection{
		Read:  mustConnect(cfg, "read", pg.Read),
		Write: mustConnect(cfg, "write", pg.Write),
		retry: RetryPolicy{
			MaxAttempts:     pg.Retry.MaxAttempts,
			InitialInterval: pg.Retry.InitialInterval,
			MaxInterval:     pg.Retry.MaxInterval,
		},
	}
}

// NewTransactor exposes the write connection as a Transactor.
func NewTransactor(conn *Connection) Transactor {
	return conn
}

// WithTransaction runs fn in a fresh transaction per attempt. Only connectivity failures are
// retried, so fn must not have effects outside tx.
func (c *Connection) WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return c.retry.Do(ctx, func() error {
		tx, err := c.Write.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}

		if err = fn(tx); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction")
			}

			return err
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}

		return nil
	})
}

// Retry re-runs a read-only op after connectivity failures.
func (c *Connection) Retry(ctx context.Context, op func() error) error {
	return c.retry.Do(ctx, op)
}

func mustConnect(cfg *config.Config, role string, node config.PostgresNode) *sqlx.DB {
	pg := cfg.DB.Postgres
	logger := log.With().Str("role", role).Str("host", node.Host).Str("db", pg.Prefix+node.Name).Logger()

	attempt := 0

	db, err := backoff.Retry(context.Background(), func() (*sqlx.DB, error) {
		attempt++

		db, err := sqlx.Connect(driverName, node.DSN(pg.Prefix, nil))
		if err != nil {
			logger.Warn().Err(err).Int("attempt", attempt).Msg("Database not ready, retrying")

			return nil, err //nolint:wrapcheck
		}

		return db, nil
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(time.Duration(pg.RetryWaitTime)*time.Second)),
		backoff.WithMaxTries(uint(max(pg.MaxRetry, 1))),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not connect to database")
	}

	db.SetMaxOpenConns(pg.Pool.MaxOpen)
	db.SetMaxIdleConns(pg.Pool.MaxIdle)
	db.SetConnMaxLifetime(pg.Pool.MaxLifetime)

	logger.Info().Msg("Connected to database")

	return db
}
