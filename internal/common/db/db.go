package db

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgxpool"

	"kitchen-pos/internal/common/logger"
)

type Conn struct {
	*pgxpool.Pool
	log *logger.Logger
}

type Options struct {
	MaxConns int32
	Retries  int
	// Backoff is multiplied by the attempt number between retries.
	Backoff time.Duration
}

// Connect opens a pool and pings it, retrying while the database comes up.
func Connect(ctx context.Context, dsn string, opts Options, log *logger.Logger) (*Conn, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse database config")
	}
	if opts.MaxConns > 0 {
		poolCfg.MaxConns = opts.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	if opts.Retries < 1 {
		opts.Retries = 1
	}
	if opts.Backoff <= 0 {
		opts.Backoff = 2 * time.Second
	}

	var pool *pgxpool.Pool
	for attempt := 1; attempt <= opts.Retries; attempt++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err = pool.Ping(pingCtx)
			cancel()
			if err == nil {
				return &Conn{Pool: pool, log: log}, nil
			}
			pool.Close()
		}
		if attempt == opts.Retries {
			break
		}
		wait := time.Duration(attempt) * opts.Backoff
		log.Error("db_connection_failed", err, map[string]any{"attempt": attempt, "retry_in": wait.String()})
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, errors.Wrapf(err, "failed to connect to database after %d attempts", opts.Retries)
}

func (c *Conn) Close() {
	if c != nil && c.Pool != nil {
		c.Pool.Close()
	}
}
